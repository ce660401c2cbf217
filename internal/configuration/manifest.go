package configuration

import (
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/desertwitch/attrsync/internal/identity"
	"github.com/desertwitch/attrsync/internal/mode"
	"github.com/zeebo/blake3"
	"gopkg.in/yaml.v3"
)

// Resource is the desired state of a single path as given in a manifest.
//
// Owner and group may be names or numeric ids, mode may be an integer or an
// octal string. Each attribute left out of the manifest is not touched.
type Resource struct {
	Path  string `yaml:"path"`
	Label string `yaml:"label,omitempty"`
	Owner any    `yaml:"owner,omitempty"`
	Group any    `yaml:"group,omitempty"`
	Mode  any    `yaml:"mode,omitempty"`
}

// OwnerSpec returns the [identity.Spec] for the owner of the [Resource].
func (r *Resource) OwnerSpec() identity.Spec {
	return identity.FromValue(r.Owner)
}

// GroupSpec returns the [identity.Spec] for the group of the [Resource].
func (r *Resource) GroupSpec() identity.Spec {
	return identity.FromValue(r.Group)
}

// ModeSpec returns the [mode.Spec] for the mode of the [Resource].
func (r *Resource) ModeSpec() mode.Spec {
	return mode.FromValue(r.Mode)
}

// Manifest is the principal structure holding all resources to be reconciled.
type Manifest struct {
	// Source is the file the manifest was read from.
	Source string `yaml:"-"`

	// Digest is the hex-encoded BLAKE3 digest of the raw manifest.
	Digest string `yaml:"-"`

	Resources []Resource `yaml:"resources"`
}

// LoadManifest reads, parses and validates a YAML manifest.
//
// Environment variables in resource paths are expanded, resources without a
// label are labeled "file[<path>]".
func (c *Handler) LoadManifest(filename string) (*Manifest, error) {
	data, err := c.osHandler.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("(config-manifest) failed to read: %w", err)
	}

	manifest := &Manifest{}
	if err := yaml.Unmarshal(data, manifest); err != nil {
		return nil, fmt.Errorf("(config-manifest) failed to parse: %w", err)
	}

	sum := blake3.Sum256(data)
	manifest.Digest = hex.EncodeToString(sum[:])
	manifest.Source = filename

	if err := manifest.normalize(); err != nil {
		return nil, fmt.Errorf("(config-manifest) %w", err)
	}

	return manifest, nil
}

func (m *Manifest) normalize() error {
	if len(m.Resources) == 0 {
		return ErrNoResources
	}

	seen := make(map[string]struct{}, len(m.Resources))

	for i := range m.Resources {
		res := &m.Resources[i]

		res.Path = os.ExpandEnv(res.Path)
		if res.Path == "" || !filepath.IsAbs(res.Path) {
			return fmt.Errorf("%w: resource %d: %q", ErrInvalidPath, i, res.Path)
		}
		res.Path = filepath.Clean(res.Path)

		if _, exists := seen[res.Path]; exists {
			return fmt.Errorf("%w: %s", ErrDuplicatePath, res.Path)
		}
		seen[res.Path] = struct{}{}

		if res.Label == "" {
			res.Label = "file[" + res.Path + "]"
		}
	}

	return nil
}
