package schema

import (
	"os"
	"os/user"

	"golang.org/x/sys/unix"
)

// OS is an implementation wrapping operating system functions.
type OS struct{}

// ReadFile wraps around [os.ReadFile].
func (*OS) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

// Unix is an implementation wrapping Unix operating system functions.
type Unix struct{}

// Lstat wraps around [unix.Lstat].
func (*Unix) Lstat(path string, stat *unix.Stat_t) error {
	return unix.Lstat(path, stat)
}

// Chown wraps around [unix.Chown].
func (*Unix) Chown(path string, uid, gid int) error {
	return unix.Chown(path, uid, gid)
}

// Lchown wraps around [unix.Lchown].
func (*Unix) Lchown(path string, uid, gid int) error {
	return unix.Lchown(path, uid, gid)
}

// Chmod wraps around [unix.Chmod].
func (*Unix) Chmod(path string, mode uint32) error {
	return unix.Chmod(path, mode)
}

// Lchmod wraps around [unix.Fchmodat] with [unix.AT_SYMLINK_NOFOLLOW], so
// that the mode of a symbolic link itself is changed. Linux has no such
// operation and returns [unix.EOPNOTSUPP] for it.
func (*Unix) Lchmod(path string, mode uint32) error {
	return unix.Fchmodat(unix.AT_FDCWD, path, mode, unix.AT_SYMLINK_NOFOLLOW)
}

// Identity is an implementation wrapping the system identity database.
type Identity struct{}

// LookupUser wraps around [user.Lookup] and returns the user id exactly as
// reported by the identity database.
func (*Identity) LookupUser(name string) (string, error) {
	u, err := user.Lookup(name)
	if err != nil {
		return "", err
	}

	return u.Uid, nil
}

// LookupGroup wraps around [user.LookupGroup] and returns the group id
// exactly as reported by the identity database.
func (*Identity) LookupGroup(name string) (string, error) {
	g, err := user.LookupGroup(name)
	if err != nil {
		return "", err
	}

	return g.Gid, nil
}
