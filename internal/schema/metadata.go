package schema

// PermBits masks the permission bits (including setuid, setgid and sticky)
// out of a raw file mode. Everything above it encodes the file type.
const PermBits = 0o7777

// Metadata is a snapshot of the attributes of a path that take part in a
// reconciliation. For a symbolic link these are the link's own attributes.
//
// UID and GID are signed, raw readings from the system having already been
// corrected for unsigned wraparound.
type Metadata struct {
	UID       int64
	GID       int64
	Mode      uint32
	IsSymlink bool
}

// Perms returns the permission bits of the [Metadata] mode.
func (m *Metadata) Perms() uint32 {
	return m.Mode & PermBits
}
