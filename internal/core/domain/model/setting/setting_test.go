package setting_test

import (
	"testing"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/setting"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKey(t *testing.T) {
	key, err := setting.ParseKey("  high_demand ")
	require.NoError(t, err)
	assert.Equal(t, setting.HighDemand, key)

	_, err = setting.ParseKey("   ")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestDefaultValue(t *testing.T) {
	v, ok := setting.DefaultValue(setting.HighDemand)
	require.True(t, ok)
	assert.True(t, kernel.BoolScalar(false).IsEqual(v))

	_, ok = setting.DefaultValue("closing_time")
	assert.False(t, ok)
}

func TestNewDefaultSetting(t *testing.T) {
	t.Run("high demand starts disabled", func(t *testing.T) {
		s, err := setting.NewDefaultSetting(setting.HighDemand)

		require.NoError(t, err)
		require.NoError(t, s.Validate())
		assert.Equal(t, setting.HighDemand, s.Key())
		assert.False(t, s.Enabled())
	})

	t.Run("unknown key is rejected", func(t *testing.T) {
		_, err := setting.NewDefaultSetting("closing_time")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "closing_time")
	})
}

func TestNewSetting(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		s, err := setting.NewSetting(setting.HighDemand, kernel.BoolScalar(true))

		require.NoError(t, err)
		assert.True(t, s.Enabled())
	})

	t.Run("aggregates errors", func(t *testing.T) {
		_, err := setting.NewSetting("", kernel.Scalar{})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, kernel.ErrScalarIsNotConstructed)
	})
}

func TestSetting_ChangeValue(t *testing.T) {
	s, err := setting.NewDefaultSetting(setting.HighDemand)
	require.NoError(t, err)

	require.NoError(t, s.ChangeValue(kernel.BoolScalar(true)))
	assert.True(t, s.Enabled())

	require.NoError(t, s.ChangeValue(kernel.StringScalar("yes")))
	assert.False(t, s.Enabled(), "non boolean values read as disabled")

	require.ErrorIs(t, s.ChangeValue(kernel.Scalar{}), kernel.ErrScalarIsNotConstructed)
	assert.True(t, kernel.StringScalar("yes").IsEqual(s.Value()))
}

func TestSetting_Validate(t *testing.T) {
	var nilSetting *setting.Setting
	require.ErrorIs(t, nilSetting.Validate(), setting.ErrSettingIsNotConstructed)
	require.ErrorIs(t, (&setting.Setting{}).Validate(), setting.ErrSettingIsNotConstructed)
}
