package settingrepo_test

import (
	"context"
	"sync"
	"testing"

	"storefront/internal/adapters/out/storage/settingrepo"
	"storefront/internal/adapters/out/storage/storagetest"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/setting"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(key string, aggregate any) {
	m.Called(key, aggregate)
}

type SettingRepositoryTestSuite struct {
	suite.Suite
	connect    func(t testing.TB) *gorm.DB
	db         *gorm.DB
	repository *settingrepo.GormSettingRepository
	tracker    *MockAggregateTracker
}

func (suite *SettingRepositoryTestSuite) SetupSuite() {
	suite.db = suite.connect(suite.T())
}

func (suite *SettingRepositoryTestSuite) SetupTest() {
	storagetest.Reset(suite.T(), suite.db)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = settingrepo.NewGormSettingRepository(suite.db, suite.tracker)
}

func (suite *SettingRepositoryTestSuite) TestGet_Missing_ReturnsNotFound() {
	loaded, err := suite.repository.Get(context.Background(), setting.HighDemand)

	suite.Nil(loaded)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *SettingRepositoryTestSuite) TestGet_EmptyKey_ReturnsError() {
	_, err := suite.repository.Get(context.Background(), "")

	suite.Require().ErrorIs(err, errs.ErrValueIsRequired)
}

func (suite *SettingRepositoryTestSuite) TestAddIfAbsent_KeepsExistingValue() {
	ctx := context.Background()

	suite.Require().NoError(suite.repository.AddIfAbsent(ctx, suite.newSetting(kernel.BoolScalar(true))))
	suite.Require().NoError(suite.repository.AddIfAbsent(ctx, suite.newSetting(kernel.BoolScalar(false))))

	loaded, err := suite.repository.Get(ctx, setting.HighDemand)
	suite.Require().NoError(err)
	suite.True(loaded.Enabled())
	suite.Equal(int64(1), storagetest.Count(suite.T(), suite.db, "configs"))
}

func (suite *SettingRepositoryTestSuite) TestUpsert_OverwritesInPlace() {
	ctx := context.Background()

	suite.Require().NoError(suite.repository.Upsert(ctx, suite.newSetting(kernel.BoolScalar(true))))
	loaded, err := suite.repository.Get(ctx, setting.HighDemand)
	suite.Require().NoError(err)
	suite.True(loaded.Enabled())

	suite.Require().NoError(suite.repository.Upsert(ctx, suite.newSetting(kernel.BoolScalar(false))))
	loaded, err = suite.repository.Get(ctx, setting.HighDemand)
	suite.Require().NoError(err)
	suite.False(loaded.Enabled())

	suite.Equal(int64(1), storagetest.Count(suite.T(), suite.db, "configs"))
	suite.tracker.AssertNumberOfCalls(suite.T(), "TrackAggregate", 2)
}

func (suite *SettingRepositoryTestSuite) TestUpsert_KeepsScalarKind() {
	ctx := context.Background()
	values := []kernel.Scalar{
		kernel.StringScalar("busy"),
		kernel.NumberScalar(1.5),
		kernel.NumberScalar(1),
		kernel.NumberScalar(0),
		kernel.NumberScalar(-2.25),
		kernel.StringScalar("42"),
		kernel.BoolScalar(true),
	}

	for _, v := range values {
		suite.Require().NoError(suite.repository.Upsert(ctx, suite.newSetting(v)))

		loaded, err := suite.repository.Get(ctx, setting.HighDemand)
		suite.Require().NoError(err)
		suite.True(v.IsEqual(loaded.Value()), "stored %s, loaded %s", v, loaded.Value())
	}
}

func (suite *SettingRepositoryTestSuite) TestUpsert_NumberStoredAsText() {
	if suite.db.Dialector.Name() != "sqlite" {
		suite.T().Skip("column affinity only applies to SQLite")
	}
	ctx := context.Background()

	suite.Require().NoError(suite.repository.Upsert(ctx, suite.newSetting(kernel.NumberScalar(1.5))))

	var storedType string
	suite.Require().NoError(suite.db.Raw("SELECT typeof(value) FROM configs WHERE key = ?", "high_demand").
		Scan(&storedType).Error)
	suite.Equal("text", storedType)
}

func (suite *SettingRepositoryTestSuite) TestAddIfAbsent_NumberIsReadBack() {
	ctx := context.Background()

	suite.Require().NoError(suite.repository.AddIfAbsent(ctx, suite.newSetting(kernel.NumberScalar(3))))

	loaded, err := suite.repository.Get(ctx, setting.HighDemand)
	suite.Require().NoError(err)

	n, ok := loaded.Value().AsNumber()
	suite.Require().True(ok)
	suite.InDelta(3.0, n, 0)
	suite.False(loaded.Enabled())
}

func (suite *SettingRepositoryTestSuite) TestAddIfAbsent_ConcurrentFirstWrites() {
	ctx := context.Background()

	settings := make([]*setting.Setting, 8)
	for i := range settings {
		settings[i] = suite.newSetting(kernel.BoolScalar(false))
	}

	var wg sync.WaitGroup
	errCh := make(chan error, len(settings))
	for _, s := range settings {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errCh <- suite.repository.AddIfAbsent(ctx, s)
		}()
	}
	wg.Wait()
	close(errCh)

	for err := range errCh {
		suite.Require().NoError(err)
	}
	suite.Equal(int64(1), storagetest.Count(suite.T(), suite.db, "configs"))
}

func (suite *SettingRepositoryTestSuite) TestInsert_NotConstructed_ReturnsError() {
	err := suite.repository.Upsert(context.Background(), &setting.Setting{})

	suite.Require().ErrorIs(err, setting.ErrSettingIsNotConstructed)
}

func (suite *SettingRepositoryTestSuite) newSetting(value kernel.Scalar) *setting.Setting {
	s, err := setting.NewSetting(setting.HighDemand, value)
	suite.Require().NoError(err)
	return s
}

func TestSettingRepository_SQLite(t *testing.T) {
	suite.Run(t, &SettingRepositoryTestSuite{connect: storagetest.OpenSQLite})
}
