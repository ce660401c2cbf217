// Package reconcile brings the owner, group and mode of a path into
// agreement with a desired state, changing only what differs.
//
// A reconciliation takes one attribute snapshot of the path and then, in the
// order owner, group, mode, resolves each requested attribute, compares it
// to the snapshot and applies it only when it differs. A second run with the
// same desired state therefore makes no changes. The first failure aborts
// the remaining attributes; there are no retries.
package reconcile

import (
	"github.com/desertwitch/attrsync/internal/identity"
	"github.com/desertwitch/attrsync/internal/mode"
	"github.com/desertwitch/attrsync/internal/schema"
)

type identityResolver interface {
	ResolveGroup(spec identity.Spec) (*int64, error)
	ResolveOwner(spec identity.Spec) (*int64, error)
}

type fsProvider interface {
	EnsureMode(path string, isSymlink bool, perms uint32) (bool, error)
	EnsureOwnership(path string, isSymlink bool, uid, gid *int64) error
	GetMetadata(path string) (*schema.Metadata, error)
}

// Desired is the desired state of a path. Each attribute left at its zero
// value is not touched.
type Desired struct {
	Owner identity.Spec
	Group identity.Spec
	Mode  mode.Spec
}

// Target is everything a reconciliation needs to know about a path.
type Target struct {
	// Path is the path to be reconciled.
	Path string

	// Label identifies the thing being modified in log messages, e.g.
	// "file[/etc/motd]". The path is used when it is empty.
	Label string

	// Desired is the desired state of the path.
	Desired Desired

	// OnChange is called once for every attribute that was changed, it may
	// be nil.
	OnChange schema.Notifier
}

func (t *Target) label() string {
	if t.Label == "" {
		return t.Path
	}

	return t.Label
}

// Option configures a [Handler].
type Option func(*Handler)

// WithDryRun makes a [Handler] report the changes it would make without
// making any of them.
func WithDryRun(enabled bool) Option {
	return func(h *Handler) {
		h.dryRun = enabled
	}
}

// Handler is the principal implementation of the reconciler. It holds no
// mutable state and is safe for concurrent use on distinct paths.
type Handler struct {
	identityHandler identityResolver
	fsHandler       fsProvider
	dryRun          bool
}

// NewHandler returns a pointer to a new reconcile [Handler].
func NewHandler(identityHandler identityResolver, fsHandler fsProvider, opts ...Option) *Handler {
	h := &Handler{
		identityHandler: identityHandler,
		fsHandler:       fsHandler,
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// DryRun returns whether the [Handler] is in dry-run mode.
func (r *Handler) DryRun() bool {
	return r.dryRun
}

// ApplyAll reconciles owner, group and mode of a [Target], in that order.
//
// On failure the returned [schema.ChangeRecord] still holds the changes
// that were made before the failing attribute.
func (r *Handler) ApplyAll(target *Target) (*schema.ChangeRecord, error) {
	p := &pass{
		Handler: r,
		target:  target,
		record:  &schema.ChangeRecord{},
	}

	if err := p.setOwner(); err != nil {
		return p.record, err
	}

	if err := p.setGroup(); err != nil {
		return p.record, err
	}

	if err := p.setMode(); err != nil {
		return p.record, err
	}

	return p.record, nil
}
