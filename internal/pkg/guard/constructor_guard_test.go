package guard_test

import (
	"errors"
	"testing"

	"storefront/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard
		expectedError := errors.New("command not constructed")

		err := g.Validate(expectedError)

		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})

	t.Run("guard_survives_copy_by_value", func(t *testing.T) {
		g := guard.NewConstructorGuard()
		guardCopy := g

		require.NoError(t, guardCopy.Validate(nil))
	})
}

func TestConstructorGuard_EmbeddedInStruct(t *testing.T) {
	errTicketNotConstructed := errors.New("Ticket must be created via NewTicket")

	type ticket struct {
		table int
		guard guard.ConstructorGuard
	}

	newTicket := func(table int) (ticket, error) {
		if table <= 0 {
			return ticket{}, errors.New("table must be positive")
		}
		return ticket{table: table, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructed_struct_validates", func(t *testing.T) {
		tk, err := newTicket(4)
		require.NoError(t, err)
		require.NoError(t, tk.guard.Validate(errTicketNotConstructed))
		assert.Equal(t, 4, tk.table)
	})

	t.Run("struct_literal_fails", func(t *testing.T) {
		tk := ticket{table: 4}
		assert.Equal(t, errTicketNotConstructed, tk.guard.Validate(errTicketNotConstructed))
	})
}

func TestConstructorGuardConcurrency(t *testing.T) {
	g := guard.NewConstructorGuard()

	done := make(chan struct{})
	for range 50 {
		go func() {
			for range 100 {
				assert.NoError(t, g.Validate(nil))
			}
			done <- struct{}{}
		}()
	}

	for range 50 {
		<-done
	}
}
