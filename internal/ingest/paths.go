// Package ingest discovers raw acquisition data on disk and records it
// in the catalog: sessions first, then behavior and ephys recordings
// for sessions not yet populated.
package ingest

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrUnknownHardware is returned when a controller or signal processor
// has no known raw-data layout.
var ErrUnknownHardware = errors.New("unknown hardware")

// RawPath builds the raw-data directory for a (rig, task, monkey)
// triple under a storage root: <root>/<rig>/<task>-task/<monkey>/raw.
func RawPath(root, rig, task, monkey string) string {
	return filepath.Join(root, rig, strings.ToLower(task)+"-task", strings.ToLower(monkey), "raw")
}

// behaviorDirFor maps a task controller to its per-session behavior
// subdirectory name.
func behaviorDirFor(controller string) (string, error) {
	switch controller {
	case "Speedgoat":
		return "speedgoat", nil
	default:
		return "", fmt.Errorf("%w: task controller %q", ErrUnknownHardware, controller)
	}
}

// ephysDirFor maps a neural signal processor to its per-session ephys
// subdirectory name.
func ephysDirFor(processor string) (string, error) {
	switch processor {
	case "Cerebus":
		return "blackrock", nil
	default:
		return "", fmt.Errorf("%w: signal processor %q", ErrUnknownHardware, processor)
	}
}
