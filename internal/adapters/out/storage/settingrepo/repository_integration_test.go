//go:build integration

package settingrepo_test

import (
	"testing"

	"storefront/internal/adapters/out/storage/storagetest"

	"github.com/stretchr/testify/suite"
)

func TestSettingRepository_Postgres(t *testing.T) {
	suite.Run(t, &SettingRepositoryTestSuite{connect: storagetest.OpenPostgres})
}
