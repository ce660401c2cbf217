// Package mode normalizes desired permission modes, given as numbers or as
// octal text, into the 12-bit permission value applied to the filesystem.
package mode

import (
	"fmt"
	"strconv"
	"strings"
)

// PermBits masks the permission bits out of a mode value.
const PermBits = 0o7777

// Kind describes how a [Spec] was given.
type Kind int

const (
	// KindNone means no mode was requested, the attribute is left alone.
	KindNone Kind = iota

	// KindNumeric means the mode was given as an integer.
	KindNumeric

	// KindOctal means the mode was given as octal text, e.g. "0755".
	KindOctal

	// KindInvalid means the mode was given as a value that is neither.
	KindInvalid
)

// Spec is a desired permission mode. The zero value is a [Spec] of
// [KindNone].
type Spec struct {
	Kind  Kind
	Value int64
	Text  string

	// Raw holds the original value for a [Spec] of [KindInvalid].
	Raw any
}

// Numeric returns a [Spec] for a mode given as an integer.
func Numeric(v int64) Spec {
	return Spec{Kind: KindNumeric, Value: v}
}

// Octal returns a [Spec] for a mode given as octal text.
func Octal(text string) Spec {
	return Spec{Kind: KindOctal, Text: text}
}

// FromValue returns a [Spec] for a loosely typed value, as it would be read
// from a configuration file.
func FromValue(v any) Spec {
	switch val := v.(type) {
	case nil:
		return Spec{}
	case Spec:
		return val
	case string:
		return Octal(val)
	case int:
		return Numeric(int64(val))
	case int8:
		return Numeric(int64(val))
	case int16:
		return Numeric(int64(val))
	case int32:
		return Numeric(int64(val))
	case int64:
		return Numeric(val)
	case uint:
		return Numeric(int64(val & PermBits))
	case uint8:
		return Numeric(int64(val))
	case uint16:
		return Numeric(int64(val))
	case uint32:
		return Numeric(int64(val))
	case uint64:
		return Numeric(int64(val & PermBits))
	default:
		return Spec{Kind: KindInvalid, Raw: v}
	}
}

// IsNone returns true if no mode was requested.
func (s Spec) IsNone() bool {
	return s.Kind == KindNone
}

// String returns the [Spec] as it was given.
func (s Spec) String() string {
	switch s.Kind {
	case KindNumeric:
		return Format(uint32(s.Value & PermBits))
	case KindOctal:
		return s.Text
	case KindInvalid:
		return fmt.Sprintf("%#v", s.Raw)
	default:
		return ""
	}
}

// Resolve returns the masked permission bits for a [Spec], or nil if no
// mode was requested. Both numeric and octal text forms of the same bits
// resolve to the same value.
func Resolve(spec Spec) (*uint32, error) {
	var v int64

	switch spec.Kind {
	case KindNone:
		return nil, nil //nolint:nilnil
	case KindNumeric:
		v = spec.Value
	case KindOctal:
		parsed, err := parseOctal(spec.Text)
		if err != nil {
			return nil, fmt.Errorf("(mode) cannot resolve %q to mode: %w", spec.Text, err)
		}
		v = parsed
	default:
		return nil, fmt.Errorf("(mode) cannot resolve %s to mode: %w", spec, ErrInvalidModeSpec)
	}

	perms := uint32(v & PermBits)

	return &perms, nil
}

func parseOctal(text string) (int64, error) {
	s := strings.TrimSpace(text)
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0o"), "0O")

	if s == "" {
		return 0, ErrInvalidModeSpec
	}

	if strings.Trim(s, "01234567") != "" {
		return 0, fmt.Errorf("%w: not octal", ErrInvalidModeSpec)
	}

	// Only the last four digits survive the mask.
	if len(s) > 4 { //nolint:mnd
		s = s[len(s)-4:]
	}

	v, err := strconv.ParseUint(s, 8, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: not octal", ErrInvalidModeSpec)
	}

	return int64(v), nil
}

// Format renders permission bits as zero-padded octal, e.g. "0755".
func Format(perms uint32) string {
	return fmt.Sprintf("%04o", perms&PermBits)
}
