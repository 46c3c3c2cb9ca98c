package commands

import (
	"context"

	"storefront/internal/core/domain/model/setting"
)

// SetSettingCommandHandler upserts a setting and reads back what was stored.
type SetSettingCommandHandler struct {
	uowFactory SettingUoWFactory
}

func NewSetSettingCommandHandler(uowFactory SettingUoWFactory) SetSettingCommandHandler {
	return SetSettingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates the key if it is missing and overwrites it otherwise.
func (h SetSettingCommandHandler) Handle(ctx context.Context, cmd SetSettingCommand) (*setting.Setting, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := setting.NewSetting(cmd.Key(), cmd.Value())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	settingRepo := uow.SettingRepository()

	if err = settingRepo.Upsert(ctx, aggregate); err != nil {
		return nil, err
	}

	stored, err := settingRepo.Get(ctx, cmd.Key())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return stored, nil
}
