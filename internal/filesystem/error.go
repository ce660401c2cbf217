package filesystem

import "errors"

var (
	// ErrNotFound is an error that occurs when the path to be reconciled
	// does not exist.
	ErrNotFound = errors.New("path does not exist")

	// ErrPermissionDenied is an error that occurs when the path to be
	// reconciled cannot be read or changed with the current privileges.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrSymlinkModeUnsupported is an error that occurs when the platform
	// cannot change the mode of a symbolic link itself. It is tolerated and
	// only ever logged.
	ErrSymlinkModeUnsupported = errors.New("changing the mode of a symlink is unsupported")
)
