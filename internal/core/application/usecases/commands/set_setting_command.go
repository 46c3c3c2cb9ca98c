package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/setting"
	"storefront/internal/pkg/guard"
)

var (
	ErrSetSettingCommandIsNotConstructed = errors.New(
		"SetSettingCommand must be created via NewSetSettingCommand constructor",
	)
)

// SetSettingCommand stores a new value under a setting key.
// The value only has to be a scalar; its kind is not checked against the key's default.
type SetSettingCommand struct { //nolint:recvcheck //using for validation
	key   setting.Key
	value kernel.Scalar

	guard guard.ConstructorGuard
}

func NewSetSettingCommand(key setting.Key, value kernel.Scalar) (SetSettingCommand, error) {
	cmd := SetSettingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setKey(key),
		cmd.setValue(value),
	); err != nil {
		return SetSettingCommand{}, err
	}

	return cmd, nil
}

func (c SetSettingCommand) Validate() error {
	return c.guard.Validate(ErrSetSettingCommandIsNotConstructed)
}

func (c SetSettingCommand) Key() setting.Key {
	return c.key
}

func (c SetSettingCommand) Value() kernel.Scalar {
	return c.value
}

func (c *SetSettingCommand) setKey(key setting.Key) error {
	if err := key.Validate(); err != nil {
		return err
	}

	c.key = key
	return nil
}

func (c *SetSettingCommand) setValue(value kernel.Scalar) error {
	if err := value.Validate(); err != nil {
		return err
	}

	c.value = value
	return nil
}
