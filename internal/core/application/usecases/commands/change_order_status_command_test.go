package commands_test

import (
	"testing"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChangeOrderStatusCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()

	cmd, err := commands.NewChangeOrderStatusCommand(id, "delivering")

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, id, cmd.OrderID())
	assert.Equal(t, order.Delivering, cmd.Status())
}

func TestNewChangeOrderStatusCommand_UnknownStatus(t *testing.T) {
	_, err := commands.NewChangeOrderStatusCommand(kernel.NewUUID(), "lost")

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewChangeOrderStatusCommand_AggregatesErrors(t *testing.T) {
	_, err := commands.NewChangeOrderStatusCommand(kernel.UUID{}, "")

	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestChangeOrderStatusCommand_NotConstructedViaConstructor(t *testing.T) {
	cmd := commands.ChangeOrderStatusCommand{}

	require.ErrorIs(t, cmd.Validate(), commands.ErrChangeOrderStatusCommandIsNotConstructed)
}
