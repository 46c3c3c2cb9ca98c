// Package setting provides the key/value Setting aggregate behind storefront-wide flags.
package setting

import (
	"errors"
	"fmt"
	"strings"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

var ErrSettingIsNotConstructed = errors.New("Setting must be created via NewSetting constructor")

// Key names a setting. Keys are unique: the store holds at most one Setting per Key.
type Key string

const (
	// HighDemand switches the storefront into high-demand mode (longer delivery estimates).
	HighDemand Key = "high_demand"
)

// defaults holds the value a setting takes the first time it is read.
// A key must appear here to be readable before it has been written.
var defaults = map[Key]kernel.Scalar{
	HighDemand: kernel.BoolScalar(false),
}

// ParseKey trims and validates a key.
func ParseKey(s string) (Key, error) {
	key := Key(strings.TrimSpace(s))
	if err := key.Validate(); err != nil {
		return "", err
	}
	return key, nil
}

func (k Key) Validate() error {
	if k == "" {
		return errs.NewValueIsRequiredError("key")
	}
	return nil
}

func (k Key) String() string {
	return string(k)
}

// DefaultValue returns the registered default for key.
func DefaultValue(key Key) (kernel.Scalar, bool) {
	v, ok := defaults[key]
	return v, ok
}

// Setting is one stored flag.
type Setting struct {
	key   Key
	value kernel.Scalar

	isConstructed bool
}

// NewSetting builds a setting holding value.
func NewSetting(key Key, value kernel.Scalar) (*Setting, error) {
	s := &Setting{isConstructed: true}

	if err := errors.Join(s.setKey(key), s.setValue(value)); err != nil {
		return nil, err
	}

	return s, nil
}

// NewDefaultSetting builds key with its registered default.
// Keys without a default are rejected.
func NewDefaultSetting(key Key) (*Setting, error) {
	value, ok := DefaultValue(key)
	if !ok {
		return nil, errs.NewValueIsInvalidErrorWithCause("key", fmt.Errorf("%q has no default value", key))
	}
	return NewSetting(key, value)
}

func (s *Setting) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrSettingIsNotConstructed
	}
	return nil
}

func (s *Setting) Key() Key {
	return s.key
}

func (s *Setting) Value() kernel.Scalar {
	return s.value
}

// Enabled interprets the value as a flag. Non-boolean values read as disabled.
func (s *Setting) Enabled() bool {
	v, ok := s.value.AsBool()
	return ok && v
}

// ChangeValue overwrites the value. The shape is not checked against the default.
func (s *Setting) ChangeValue(value kernel.Scalar) error {
	return s.setValue(value)
}

func (s *Setting) setKey(key Key) error {
	if err := key.Validate(); err != nil {
		return err
	}
	s.key = key
	return nil
}

func (s *Setting) setValue(value kernel.Scalar) error {
	if err := value.Validate(); err != nil {
		return err
	}
	s.value = value
	return nil
}
