// Package filesystem reads attribute snapshots of paths and applies
// ownership and mode changes to them. Symbolic links are never followed:
// their own attributes are read and changed, not those of their targets.
package filesystem

import (
	"golang.org/x/sys/unix"
)

// noChange is passed for an id that is to be left as it is.
const noChange = -1

type unixProvider interface {
	Chmod(path string, mode uint32) error
	Chown(path string, uid, gid int) error
	Lchmod(path string, mode uint32) error
	Lchown(path string, uid, gid int) error
	Lstat(path string, stat *unix.Stat_t) error
}

// Handler is the principal implementation for the filesystem operations.
// It holds no state of its own and is safe for concurrent use.
type Handler struct {
	unixHandler unixProvider
}

// NewHandler returns a pointer to a new filesystem [Handler].
func NewHandler(unixHandler unixProvider) *Handler {
	return &Handler{
		unixHandler: unixHandler,
	}
}
