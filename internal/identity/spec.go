package identity

import (
	"fmt"
	"math"
	"strconv"
)

// Kind describes how a [Spec] was given.
type Kind int

const (
	// KindNone means no identity was requested, the attribute is left alone.
	KindNone Kind = iota

	// KindName means the identity was given by name and needs a lookup.
	KindName

	// KindID means the identity was given as a numeric id.
	KindID

	// KindInvalid means the identity was given as a value that is neither a
	// name nor an integer.
	KindInvalid
)

// Spec is a desired owner or group, given either by name or by numeric id.
// The zero value is a [Spec] of [KindNone].
type Spec struct {
	Kind Kind
	Name string
	ID   int64

	// Raw holds the original value for a [Spec] of [KindInvalid].
	Raw any
}

// Name returns a [Spec] for an identity given by name.
func Name(name string) Spec {
	return Spec{Kind: KindName, Name: name}
}

// ID returns a [Spec] for an identity given by numeric id.
func ID(id int64) Spec {
	return Spec{Kind: KindID, ID: id}
}

// FromValue returns a [Spec] for a loosely typed value, as it would be read
// from a configuration file. Strings are names, integers are ids, nil is
// [KindNone] and anything else is [KindInvalid].
func FromValue(v any) Spec {
	switch val := v.(type) {
	case nil:
		return Spec{}
	case Spec:
		return val
	case string:
		return Name(val)
	case int:
		return ID(int64(val))
	case int8:
		return ID(int64(val))
	case int16:
		return ID(int64(val))
	case int32:
		return ID(int64(val))
	case int64:
		return ID(val)
	case uint:
		return fromUnsigned(uint64(val), v)
	case uint8:
		return ID(int64(val))
	case uint16:
		return ID(int64(val))
	case uint32:
		return ID(int64(val))
	case uint64:
		return fromUnsigned(val, v)
	default:
		return Spec{Kind: KindInvalid, Raw: v}
	}
}

func fromUnsigned(u uint64, raw any) Spec {
	if u > math.MaxInt64 {
		return Spec{Kind: KindInvalid, Raw: raw}
	}

	return ID(int64(u))
}

// IsNone returns true if no identity was requested.
func (s Spec) IsNone() bool {
	return s.Kind == KindNone
}

// String returns the [Spec] as it was given.
func (s Spec) String() string {
	switch s.Kind {
	case KindName:
		return s.Name
	case KindID:
		return strconv.FormatInt(s.ID, 10)
	case KindInvalid:
		return fmt.Sprintf("%#v", s.Raw)
	default:
		return ""
	}
}
