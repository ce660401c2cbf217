// Package identity resolves desired owners and groups, given by name or by
// numeric id, into the signed numeric ids used for comparison with and
// application to the filesystem.
package identity

import (
	"errors"
	"fmt"
	"os/user"
	"strconv"
)

const (
	// UInt is the modulus of the unsigned 32-bit id type.
	UInt = int64(1) << 32

	// UIDMax is the largest raw id that is taken at face value. Anything
	// above it is the unsigned wraparound of a negative id. It stays clear of
	// the sentinel ids at the very top of the range.
	UIDMax = UInt - 10

	// IDMin is the smallest id that can be given as a negative number.
	IDMin = -(int64(1) << 31)

	// unchanged is the id that chown reads as "leave as it is".
	unchanged = -1
)

type identityProvider interface {
	LookupUser(name string) (string, error)
	LookupGroup(name string) (string, error)
}

// Handler is the principal implementation for resolving identities.
type Handler struct {
	identityHandler identityProvider
}

// NewHandler returns a pointer to a new identity [Handler].
func NewHandler(identityHandler identityProvider) *Handler {
	return &Handler{
		identityHandler: identityHandler,
	}
}

// Complement applies the diminished radix complement to a raw id: identity
// databases that do not know negative ids report e.g. -2 as 4294967294.
func Complement(raw int64) int64 {
	if raw > UIDMax {
		return raw - UInt
	}

	return raw
}

// Normalize maps an id into the form used for comparison with the
// filesystem: negative ids and their unsigned 32-bit wraparound end up as
// the same value. It returns false for an id outside of [IDMin, UInt) and
// for the id that chown reads as "leave as it is".
func Normalize(id int64) (int64, bool) {
	if id < IDMin || id >= UInt {
		return 0, false
	}

	if id < 0 {
		id += UInt
	}

	id = Complement(id)
	if id == unchanged {
		return 0, false
	}

	return id, true
}

// ResolveOwner returns the user id for a [Spec], or nil if no owner was
// requested. Numeric ids are range checked and normalized like
// the ids of a filesystem snapshot.
func (h *Handler) ResolveOwner(spec Spec) (*int64, error) {
	switch spec.Kind {
	case KindNone:
		return nil, nil //nolint:nilnil
	case KindID:
		id, ok := Normalize(spec.ID)
		if !ok {
			return nil, fmt.Errorf("(identity) uid %d is out of range: %w", spec.ID, ErrInvalidOwnerSpec)
		}

		return &id, nil
	case KindName:
		raw, err := h.identityHandler.LookupUser(spec.Name)
		if err != nil {
			var unknown user.UnknownUserError
			if errors.As(err, &unknown) {
				return nil, fmt.Errorf("(identity) %w for '%s', does the user exist on this system?", ErrUserNotFound, spec.Name)
			}

			return nil, fmt.Errorf("(identity) failed to look up user '%s': %w", spec.Name, err)
		}

		id, err := parseID(raw)
		if err != nil {
			return nil, fmt.Errorf("(identity) user '%s': %w", spec.Name, err)
		}

		return &id, nil
	default:
		return nil, fmt.Errorf("(identity) cannot resolve %s to uid: %w", spec, ErrInvalidOwnerSpec)
	}
}

// ResolveGroup returns the group id for a [Spec], or nil if no group was
// requested. Numeric ids are range checked and normalized like
// the ids of a filesystem snapshot.
func (h *Handler) ResolveGroup(spec Spec) (*int64, error) {
	switch spec.Kind {
	case KindNone:
		return nil, nil //nolint:nilnil
	case KindID:
		id, ok := Normalize(spec.ID)
		if !ok {
			return nil, fmt.Errorf("(identity) gid %d is out of range: %w", spec.ID, ErrInvalidGroupSpec)
		}

		return &id, nil
	case KindName:
		raw, err := h.identityHandler.LookupGroup(spec.Name)
		if err != nil {
			var unknown user.UnknownGroupError
			if errors.As(err, &unknown) {
				return nil, fmt.Errorf("(identity) %w for '%s', does the group exist on this system?", ErrGroupNotFound, spec.Name)
			}

			return nil, fmt.Errorf("(identity) failed to look up group '%s': %w", spec.Name, err)
		}

		id, err := parseID(raw)
		if err != nil {
			return nil, fmt.Errorf("(identity) group '%s': %w", spec.Name, err)
		}

		return &id, nil
	default:
		return nil, fmt.Errorf("(identity) cannot resolve %s to gid: %w", spec, ErrInvalidGroupSpec)
	}
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, raw)
	}

	normalized, ok := Normalize(id)
	if !ok {
		return 0, fmt.Errorf("%w: %q is out of range", ErrInvalidID, raw)
	}

	return normalized, nil
}
