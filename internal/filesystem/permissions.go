package filesystem

import (
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sys/unix"
)

// EnsureOwnership changes the owner and/or group of a path. A nil id is left
// unchanged. For a symbolic link the link itself is changed.
func (f *Handler) EnsureOwnership(path string, isSymlink bool, uid, gid *int64) error {
	u, g := noChange, noChange
	if uid != nil {
		u = int(*uid)
	}
	if gid != nil {
		g = int(*gid)
	}

	if isSymlink {
		if err := f.unixHandler.Lchown(path, u, g); err != nil {
			return fmt.Errorf("(fs-perms) failed to set ownership on link %s: %w", path, classify(err))
		}

		return nil
	}

	if err := f.unixHandler.Chown(path, u, g); err != nil {
		return fmt.Errorf("(fs-perms) failed to set ownership on %s: %w", path, classify(err))
	}

	return nil
}

// EnsureMode changes the permission bits of a path and returns whether they
// were applied. For a symbolic link the link itself is changed; where the
// platform cannot do that a warning is logged and false is returned without
// an error.
func (f *Handler) EnsureMode(path string, isSymlink bool, perms uint32) (bool, error) {
	if isSymlink {
		if err := f.unixHandler.Lchmod(path, perms); err != nil {
			if isUnsupported(err) {
				slog.Warn("Mode not changed: changing the mode of a symlink is unsupported on this platform",
					"path", path,
					"err", fmt.Errorf("%w: %w", ErrSymlinkModeUnsupported, err),
				)

				return false, nil
			}

			return false, fmt.Errorf("(fs-perms) failed to set permissions on link %s: %w", path, classify(err))
		}

		return true, nil
	}

	if err := f.unixHandler.Chmod(path, perms); err != nil {
		return false, fmt.Errorf("(fs-perms) failed to set permissions on %s: %w", path, classify(err))
	}

	return true, nil
}

func isUnsupported(err error) bool {
	return errors.Is(err, unix.EOPNOTSUPP) ||
		errors.Is(err, unix.ENOTSUP) ||
		errors.Is(err, unix.ENOSYS)
}
