// Package settingrepo persists settings in the configs table, one row per key.
package settingrepo

import (
	"database/sql/driver"
	"fmt"
	"strconv"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/setting"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// SettingDTO is one row of configs. Value holds the JSON encoding of the scalar.
type SettingDTO struct {
	ID    uint     `gorm:"primaryKey"`
	Key   string   `gorm:"type:varchar(64);not null;uniqueIndex"`
	Value jsonText `gorm:"not null"`
}

// TableName specifies the database table name for settings.
func (SettingDTO) TableName() string {
	return "configs"
}

// jsonText is datatypes.JSON kept as TEXT on SQLite. A JSON column there has
// numeric affinity, so a stored 1.5 would come back as REAL instead of JSON text.
type jsonText datatypes.JSON

func (jsonText) GormDataType() string {
	return datatypes.JSON{}.GormDataType()
}

func (jsonText) GormDBDataType(db *gorm.DB, _ *schema.Field) string {
	if db.Dialector.Name() == "postgres" {
		return "JSONB"
	}
	return "TEXT"
}

func (j jsonText) Value() (driver.Value, error) {
	return datatypes.JSON(j).Value()
}

// Scan also accepts numbers, as returned for rows written to a JSON-affinity column.
func (j *jsonText) Scan(value any) error {
	switch v := value.(type) {
	case int64:
		value = strconv.FormatInt(v, 10)
	case float64:
		value = strconv.FormatFloat(v, 'f', -1, 64)
	}
	return (*datatypes.JSON)(j).Scan(value)
}

func fromDomain(aggregate *setting.Setting) (SettingDTO, error) {
	value, err := aggregate.Value().MarshalJSON()
	if err != nil {
		return SettingDTO{}, err
	}

	return SettingDTO{
		Key:   aggregate.Key().String(),
		Value: jsonText(value),
	}, nil
}

func toDomain(dto SettingDTO) (*setting.Setting, error) {
	value, err := kernel.ParseScalarJSON([]byte(dto.Value))
	if err != nil {
		return nil, fmt.Errorf("setting %q: %w", dto.Key, err)
	}

	return setting.NewSetting(setting.Key(dto.Key), value)
}
