package queries

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/setting"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
)

// GetSettingQueryHandler reads a setting and creates it with its default value
// when it has never been written, so after the first call the key always exists.
//
// Example:
//
//	query, _ := NewGetSettingQuery(setting.HighDemand)
//	resp, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(resp.Enabled())
type GetSettingQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

func NewGetSettingQueryHandler(uowFactory ports.UnitOfWorkFactory) GetSettingQueryHandler {
	return GetSettingQueryHandler{uowFactory: uowFactory}
}

// Handle runs without a transaction. Concurrent first reads both insert with
// ON CONFLICT DO NOTHING and then read back the single surviving row.
func (h GetSettingQueryHandler) Handle(ctx context.Context, query GetSettingQuery) (GetSettingQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetSettingQueryResponse{}, err
	}

	repo := h.uowFactory.Create().SettingRepository()

	stored, err := repo.Get(ctx, query.Key())
	if errors.Is(err, errs.ErrObjectNotFound) {
		stored, err = h.createDefault(ctx, repo, query.Key())
	}
	if err != nil {
		return GetSettingQueryResponse{}, err
	}

	return GetSettingQueryResponse{
		Key:   stored.Key(),
		Value: stored.Value(),
	}, nil
}

func (h GetSettingQueryHandler) createDefault(
	ctx context.Context,
	repo ports.SettingRepository,
	key setting.Key,
) (*setting.Setting, error) {
	def, err := setting.NewDefaultSetting(key)
	if err != nil {
		return nil, err
	}

	if err = repo.AddIfAbsent(ctx, def); err != nil {
		return nil, err
	}

	return repo.Get(ctx, key)
}
