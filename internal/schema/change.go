package schema

import "strings"

// Attribute is one of the file attributes that are reconciled.
type Attribute string

const (
	AttrOwner Attribute = "owner"
	AttrGroup Attribute = "group"
	AttrMode  Attribute = "mode"
)

// Change describes a single attribute that was changed (or, in a dry-run,
// would have been changed) from one value to another.
type Change struct {
	Attribute Attribute
	From      string
	To        string
}

// String returns a human-readable form of the [Change].
func (c Change) String() string {
	return string(c.Attribute) + " " + c.From + " -> " + c.To
}

// Notifier is called once for every attribute that was changed.
type Notifier func(change Change)

// ChangeRecord is the outcome of reconciling a single path.
type ChangeRecord struct {
	OwnerChanged bool
	GroupChanged bool
	ModeChanged  bool

	// Changes holds a [Change] for each changed attribute, in the order
	// they were applied.
	Changes []Change
}

// Record marks the attribute of the [Change] as changed and keeps the
// [Change] for later reporting.
func (r *ChangeRecord) Record(change Change) {
	switch change.Attribute {
	case AttrOwner:
		r.OwnerChanged = true
	case AttrGroup:
		r.GroupChanged = true
	case AttrMode:
		r.ModeChanged = true
	}

	r.Changes = append(r.Changes, change)
}

// Changed returns true if any attribute was changed.
func (r *ChangeRecord) Changed() bool {
	return r.OwnerChanged || r.GroupChanged || r.ModeChanged
}

// String returns all changes joined into a single line.
func (r *ChangeRecord) String() string {
	if !r.Changed() {
		return "unchanged"
	}

	parts := make([]string, 0, len(r.Changes))
	for _, c := range r.Changes {
		parts = append(parts, c.String())
	}

	return strings.Join(parts, ", ")
}
