package reconcile

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/desertwitch/attrsync/internal/identity"
	"github.com/desertwitch/attrsync/internal/mode"
	"github.com/desertwitch/attrsync/internal/schema"
)

// pass is the state of a single [Handler.ApplyAll] call.
type pass struct {
	*Handler

	target *Target
	record *schema.ChangeRecord

	// stat is read on first use and dropped with the pass.
	stat *schema.Metadata
}

func (p *pass) metadata() (*schema.Metadata, error) {
	if p.stat != nil {
		return p.stat, nil
	}

	stat, err := p.fsHandler.GetMetadata(p.target.Path)
	if err != nil {
		return nil, fmt.Errorf("(reconcile) %s: %w", p.target.label(), err)
	}
	p.stat = stat

	return stat, nil
}

func (p *pass) setOwner() error {
	spec := p.target.Desired.Owner

	uid, err := p.identityHandler.ResolveOwner(spec)
	if err != nil {
		if errors.Is(err, identity.ErrInvalidOwnerSpec) {
			slog.Error("The owner of the resource is set to an invalid value",
				"label", p.target.label(),
				"owner", spec.String(),
			)
		}

		return fmt.Errorf("(reconcile) %s owner: %w", p.target.label(), err)
	}
	if uid == nil {
		return nil
	}

	stat, err := p.metadata()
	if err != nil {
		return err
	}
	if *uid == stat.UID {
		return nil
	}

	if !p.dryRun {
		if err := p.fsHandler.EnsureOwnership(p.target.Path, stat.IsSymlink, uid, nil); err != nil {
			return fmt.Errorf("(reconcile) %s owner: %w", p.target.label(), err)
		}
	}

	p.changed(schema.Change{
		Attribute: schema.AttrOwner,
		From:      strconv.FormatInt(stat.UID, 10),
		To:        strconv.FormatInt(*uid, 10),
	})

	return nil
}

func (p *pass) setGroup() error {
	spec := p.target.Desired.Group

	gid, err := p.identityHandler.ResolveGroup(spec)
	if err != nil {
		if errors.Is(err, identity.ErrInvalidGroupSpec) {
			slog.Error("The group of the resource is set to an invalid value",
				"label", p.target.label(),
				"group", spec.String(),
			)
		}

		return fmt.Errorf("(reconcile) %s group: %w", p.target.label(), err)
	}
	if gid == nil {
		return nil
	}

	stat, err := p.metadata()
	if err != nil {
		return err
	}
	if *gid == stat.GID {
		return nil
	}

	if !p.dryRun {
		if err := p.fsHandler.EnsureOwnership(p.target.Path, stat.IsSymlink, nil, gid); err != nil {
			return fmt.Errorf("(reconcile) %s group: %w", p.target.label(), err)
		}
	}

	p.changed(schema.Change{
		Attribute: schema.AttrGroup,
		From:      strconv.FormatInt(stat.GID, 10),
		To:        strconv.FormatInt(*gid, 10),
	})

	return nil
}

func (p *pass) setMode() error {
	spec := p.target.Desired.Mode

	perms, err := mode.Resolve(spec)
	if err != nil {
		slog.Error("The mode of the resource is set to an invalid value",
			"label", p.target.label(),
			"mode", spec.String(),
		)

		return fmt.Errorf("(reconcile) %s mode: %w", p.target.label(), err)
	}
	if perms == nil {
		return nil
	}

	stat, err := p.metadata()
	if err != nil {
		return err
	}
	if *perms == stat.Perms() {
		return nil
	}

	if !p.dryRun {
		applied, err := p.fsHandler.EnsureMode(p.target.Path, stat.IsSymlink, *perms)
		if err != nil {
			return fmt.Errorf("(reconcile) %s mode: %w", p.target.label(), err)
		}
		if !applied {
			return nil
		}
	}

	var note []any
	if p.dryRun && stat.IsSymlink {
		// The real run finds out whether lchmod works only by trying it.
		note = append(note, "note", "changing the mode of a symlink may be unsupported on this platform")
	}

	p.changed(schema.Change{
		Attribute: schema.AttrMode,
		From:      mode.Format(stat.Perms()),
		To:        mode.Format(*perms),
	}, note...)

	return nil
}

func (p *pass) changed(change schema.Change, extra ...any) {
	msg := "Changed " + string(change.Attribute) + ":"
	if p.dryRun {
		msg = "Would change " + string(change.Attribute) + ":"
	}

	args := []any{
		"label", p.target.label(),
		"from", change.From,
		"to", change.To,
	}
	slog.Info(msg, append(args, extra...)...)

	p.record.Record(change)

	if p.target.OnChange != nil {
		p.target.OnChange(change)
	}
}
