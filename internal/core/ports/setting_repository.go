package ports

import (
	"context"

	"storefront/internal/core/domain/model/setting"
)

// SettingRepository defines the persistence contract for settings.
// The store keeps at most one record per key.
type SettingRepository interface {
	// Get retrieves the setting stored under key.
	// Returns an errs.ObjectNotFoundError when the key has never been written.
	Get(ctx context.Context, key setting.Key) (*setting.Setting, error)

	// AddIfAbsent inserts the setting unless its key already exists.
	// Losing a race against a concurrent insert is not an error.
	AddIfAbsent(ctx context.Context, aggregate *setting.Setting) error

	// Upsert inserts the setting or overwrites the value stored under its key.
	Upsert(ctx context.Context, aggregate *setting.Setting) error
}
