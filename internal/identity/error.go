package identity

import "errors"

var (
	// ErrInvalidOwnerSpec is an error that occurs when the desired owner is
	// given as a value that is neither a name nor an integer, or as an
	// integer that is not a usable user id.
	ErrInvalidOwnerSpec = errors.New("owner must be a string or an integer in the id range")

	// ErrInvalidGroupSpec is an error that occurs when the desired group is
	// given as a value that is neither a name nor an integer, or as an
	// integer that is not a usable group id.
	ErrInvalidGroupSpec = errors.New("group must be a string or an integer in the id range")

	// ErrUserNotFound is an error that occurs when a well-formed owner name
	// does not correspond to a user on this system.
	ErrUserNotFound = errors.New("cannot determine user id")

	// ErrGroupNotFound is an error that occurs when a well-formed group name
	// does not correspond to a group on this system.
	ErrGroupNotFound = errors.New("cannot determine group id")

	// ErrInvalidID is an error that occurs when the identity database reports
	// an id that cannot be read as an integer or is not a usable id.
	ErrInvalidID = errors.New("identity database reported an unusable id")
)
