// Package storage resolves named storage tiers to local mounts and
// rewrites local paths into the canonical tier-relative form recorded
// in the catalog.
package storage

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/motorlab/ephys-catalog/internal/config"
)

// Location is one storage tier: a local mount point and the canonical
// (global) root the same data is addressed by on the storage system.
type Location struct {
	LocalRoot  string
	GlobalRoot string
}

// Locations maps tier names to locations.
type Locations map[string]Location

// FromConfig builds Locations from the storage section of a config.
func FromConfig(cfg config.StorageConfig) Locations {
	locs := make(Locations, len(cfg.Tiers))
	for name, tier := range cfg.Tiers {
		locs[name] = Location{
			LocalRoot:  filepath.Clean(tier.LocalRoot),
			GlobalRoot: filepath.Clean(tier.GlobalRoot),
		}
	}
	return locs
}

// LocalPath resolves a tier name to its local mount root.
func (l Locations) LocalPath(tier string) (string, error) {
	loc, ok := l[tier]
	if !ok {
		return "", fmt.Errorf("unknown storage tier: %s", tier)
	}
	return loc.LocalRoot, nil
}

// EnsureGlobal rewrites a local path into the tier's canonical global
// form. Paths already under the global root pass through unchanged.
// Paths under neither root are an error: recording them would produce
// catalog rows no other machine can resolve.
func (l Locations) EnsureGlobal(tier, path string) (string, error) {
	loc, ok := l[tier]
	if !ok {
		return "", fmt.Errorf("unknown storage tier: %s", tier)
	}

	path = filepath.Clean(path)
	if underRoot(loc.GlobalRoot, path) {
		return path, nil
	}
	if underRoot(loc.LocalRoot, path) {
		rel, err := filepath.Rel(loc.LocalRoot, path)
		if err != nil {
			return "", fmt.Errorf("relativize %s: %w", path, err)
		}
		return filepath.Join(loc.GlobalRoot, rel), nil
	}

	return "", fmt.Errorf("path %s is outside storage tier %s", path, tier)
}

func underRoot(root, path string) bool {
	if path == root {
		return true
	}
	return strings.HasPrefix(path, root+string(filepath.Separator))
}
