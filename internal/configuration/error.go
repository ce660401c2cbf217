package configuration

import "errors"

var (
	// ErrInvalidSetting is an error that occurs when a setting holds a value
	// that cannot be used.
	ErrInvalidSetting = errors.New("invalid setting")

	// ErrNoResources is an error that occurs when a manifest does not hold
	// any resources to be reconciled.
	ErrNoResources = errors.New("manifest holds no resources")

	// ErrInvalidPath is an error that occurs when a resource path is empty or
	// relative.
	ErrInvalidPath = errors.New("resource path must be absolute")

	// ErrDuplicatePath is an error that occurs when more than one resource
	// is given for the same path.
	ErrDuplicatePath = errors.New("resource path is given more than once")
)
