package filesystem

import (
	"errors"
	"fmt"

	"github.com/desertwitch/attrsync/internal/identity"
	"github.com/desertwitch/attrsync/internal/schema"
	"golang.org/x/sys/unix"
)

// GetMetadata returns a [schema.Metadata] snapshot for a path. A single
// lstat both reads the attributes and tells whether the path is a symbolic
// link; for anything but a link it is identical to a stat.
func (f *Handler) GetMetadata(path string) (*schema.Metadata, error) {
	var stat unix.Stat_t

	if err := f.unixHandler.Lstat(path, &stat); err != nil {
		return nil, fmt.Errorf("(fs-metadata) failed to lstat %s: %w", path, classify(err))
	}

	mode := uint32(stat.Mode) //nolint:unconvert

	metadata := &schema.Metadata{
		UID:       identity.Complement(int64(stat.Uid)),
		GID:       identity.Complement(int64(stat.Gid)),
		Mode:      mode,
		IsSymlink: (mode & unix.S_IFMT) == unix.S_IFLNK,
	}

	return metadata, nil
}

func classify(err error) error {
	switch {
	case errors.Is(err, unix.ENOENT), errors.Is(err, unix.ENOTDIR):
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	case errors.Is(err, unix.EACCES), errors.Is(err, unix.EPERM):
		return fmt.Errorf("%w: %w", ErrPermissionDenied, err)
	default:
		return err
	}
}
