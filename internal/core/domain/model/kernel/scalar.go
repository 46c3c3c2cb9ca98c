package kernel

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"storefront/internal/pkg/errs"
)

// ErrScalarIsNotConstructed is returned when validating a zero-value Scalar.
var ErrScalarIsNotConstructed = errs.NewValueIsRequiredError("Scalar must be created via StringScalar, NumberScalar, or BoolScalar")

// ScalarKind discriminates the variants a Scalar can hold.
type ScalarKind int

const (
	// KindUnknown is the kind of the zero Scalar.
	KindUnknown ScalarKind = iota
	KindString
	KindNumber
	KindBool
)

func (k ScalarKind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	default:
		return "unknown"
	}
}

// Scalar is a closed sum of string, number and boolean values.
// Settings store one; objects, arrays and null are not representable.
//
// On the wire and in storage a Scalar is the bare JSON value:
//
//	true
//	42.5
//	"closing at 22:00"
type Scalar struct {
	kind ScalarKind
	str  string
	num  float64
	bln  bool
}

func StringScalar(v string) Scalar {
	return Scalar{kind: KindString, str: v}
}

func NumberScalar(v float64) Scalar {
	return Scalar{kind: KindNumber, num: v}
}

func BoolScalar(v bool) Scalar {
	return Scalar{kind: KindBool, bln: v}
}

// Kind reports which variant the Scalar holds.
func (s Scalar) Kind() ScalarKind {
	return s.kind
}

// Validate returns ErrScalarIsNotConstructed for the zero Scalar.
func (s Scalar) Validate() error {
	if s.kind == KindUnknown {
		return ErrScalarIsNotConstructed
	}
	return nil
}

// AsString returns the string variant; ok is false for other kinds.
func (s Scalar) AsString() (string, bool) {
	return s.str, s.kind == KindString
}

// AsNumber returns the number variant; ok is false for other kinds.
func (s Scalar) AsNumber() (float64, bool) {
	return s.num, s.kind == KindNumber
}

// AsBool returns the boolean variant; ok is false for other kinds.
func (s Scalar) AsBool() (bool, bool) {
	return s.bln, s.kind == KindBool
}

// IsEqual compares kind and value.
func (s Scalar) IsEqual(other Scalar) bool {
	return s == other
}

func (s Scalar) String() string {
	switch s.kind {
	case KindString:
		return s.str
	case KindNumber:
		return strconv.FormatFloat(s.num, 'f', -1, 64)
	case KindBool:
		return strconv.FormatBool(s.bln)
	default:
		return ""
	}
}

func (s Scalar) MarshalJSON() ([]byte, error) {
	switch s.kind {
	case KindString:
		return json.Marshal(s.str)
	case KindNumber:
		return json.Marshal(s.num)
	case KindBool:
		return json.Marshal(s.bln)
	default:
		return nil, ErrScalarIsNotConstructed
	}
}

func (s *Scalar) UnmarshalJSON(data []byte) error {
	parsed, err := ParseScalarJSON(data)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseScalarJSON decodes a single JSON string, number or boolean.
func ParseScalarJSON(data []byte) (Scalar, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return Scalar{}, errs.NewValueIsRequiredError("scalar")
	}

	switch data[0] {
	case '"':
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return Scalar{}, errs.NewValueIsInvalidErrorWithCause("scalar", err)
		}
		return StringScalar(v), nil
	case 't', 'f':
		var v bool
		if err := json.Unmarshal(data, &v); err != nil {
			return Scalar{}, errs.NewValueIsInvalidErrorWithCause("scalar", err)
		}
		return BoolScalar(v), nil
	case 'n', '{', '[':
		return Scalar{}, errs.NewValueIsInvalidErrorWithCause(
			"scalar",
			fmt.Errorf("%s is not a string, number or boolean", jsonKind(data[0])),
		)
	default:
		var v float64
		if err := json.Unmarshal(data, &v); err != nil {
			return Scalar{}, errs.NewValueIsInvalidErrorWithCause("scalar", err)
		}
		return NumberScalar(v), nil
	}
}

func jsonKind(first byte) string {
	switch first {
	case 'n':
		return "null"
	case '{':
		return "object"
	default:
		return "array"
	}
}
