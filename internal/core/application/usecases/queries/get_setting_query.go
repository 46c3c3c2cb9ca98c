package queries

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/setting"
	"storefront/internal/pkg/guard"
)

var (
	ErrGetSettingQueryIsNotConstructed = errors.New(
		"GetSettingQuery must be created via NewGetSettingQuery constructor",
	)
)

// GetSettingQuery reads one setting. The first read of a key stores its default.
type GetSettingQuery struct {
	key setting.Key

	guard guard.ConstructorGuard
}

// NewGetSettingQuery accepts only keys that have a default value.
func NewGetSettingQuery(key setting.Key) (GetSettingQuery, error) {
	if _, err := setting.NewDefaultSetting(key); err != nil {
		return GetSettingQuery{}, err
	}

	return GetSettingQuery{
		key:   key,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (q GetSettingQuery) Validate() error {
	return q.guard.Validate(ErrGetSettingQueryIsNotConstructed)
}

func (q GetSettingQuery) Key() setting.Key {
	return q.key
}

// GetSettingQueryResponse carries the stored value as is.
type GetSettingQueryResponse struct {
	Key   setting.Key
	Value kernel.Scalar
}

// Enabled interprets the value as a flag; anything but boolean true reads as disabled.
func (r GetSettingQueryResponse) Enabled() bool {
	v, ok := r.Value.AsBool()
	return ok && v
}
