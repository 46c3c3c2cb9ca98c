package settingrepo

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/setting"
	"storefront/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormSettingRepository implements SettingRepository using GORM.
// Writes are single statements guarded by the unique index on key.
type GormSettingRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(key string, aggregate any)
}

// NewGormSettingRepository creates a new GORM setting repository.
func NewGormSettingRepository(db *gorm.DB, tracker aggregateTracker) *GormSettingRepository {
	return &GormSettingRepository{
		db:      db,
		tracker: tracker,
	}
}

// Get retrieves the setting stored under key.
func (r *GormSettingRepository) Get(ctx context.Context, key setting.Key) (*setting.Setting, error) {
	if err := key.Validate(); err != nil {
		return nil, err
	}

	var dto SettingDTO
	if err := r.db.WithContext(ctx).First(&dto, "key = ?", key.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("setting", key.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// AddIfAbsent inserts with ON CONFLICT (key) DO NOTHING, so a concurrent first read
// that loses the race still succeeds.
func (r *GormSettingRepository) AddIfAbsent(ctx context.Context, aggregate *setting.Setting) error {
	return r.insert(ctx, aggregate, clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoNothing: true,
	})
}

// Upsert inserts with ON CONFLICT (key) DO UPDATE SET value.
func (r *GormSettingRepository) Upsert(ctx context.Context, aggregate *setting.Setting) error {
	return r.insert(ctx, aggregate, clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	})
}

func (r *GormSettingRepository) insert(ctx context.Context, aggregate *setting.Setting, onConflict clause.OnConflict) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	if err = r.db.WithContext(ctx).Clauses(onConflict).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.Key().String(), aggregate)
	return nil
}
