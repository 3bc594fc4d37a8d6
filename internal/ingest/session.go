package ingest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"go.uber.org/zap"

	"github.com/motorlab/ephys-catalog/internal/models"
	"github.com/motorlab/ephys-catalog/internal/storage"
)

var notesFileRe = regexp.MustCompile(`notes\.txt$`)

// SessionStore is the catalog surface the session ingestor needs.
type SessionStore interface {
	SessionDates(ctx context.Context, monkeyID int64) (map[string]bool, error)
	InsertSession(ctx context.Context, session *models.Session, note *string, hardwareIDs []int64) error
}

// Selection is the resolved set of lookups one ingestion run operates
// on. Each entry has already been matched to exactly one catalog row.
type Selection struct {
	Monkey          *models.Monkey
	Rig             *models.Rig
	Task            *models.Task // ControllerHardware relation loaded
	SignalProcessor *models.Hardware
}

// SessionIngestor scans a raw-data tree and records new sessions.
type SessionIngestor struct {
	store     SessionStore
	locations storage.Locations
	tier      string
	log       *zap.SugaredLogger
}

// NewSessionIngestor builds a session ingestor.
func NewSessionIngestor(store SessionStore, locations storage.Locations, tier string, log *zap.SugaredLogger) *SessionIngestor {
	return &SessionIngestor{store: store, locations: locations, tier: tier, log: log}
}

// Run ingests every candidate session date for the selection, in
// scanner order. dates, when non-empty, restricts the scan to the
// listed dates. Missing behavior/ephys directories and missing notes
// are per-date warnings; each date is processed independently.
// Returns the number of sessions recorded.
func (si *SessionIngestor) Run(ctx context.Context, sel Selection, dates []string) (int, error) {
	if !sel.SignalProcessor.IsSignalProcessor() {
		return 0, fmt.Errorf("%w: %s is not a neural signal processor", ErrUnknownHardware, sel.SignalProcessor.Name)
	}
	if sel.Task.ControllerHardware == nil {
		return 0, fmt.Errorf("task %s: controller hardware not loaded", sel.Task.Name)
	}

	behaviorDir, err := behaviorDirFor(sel.Task.ControllerHardware.Name)
	if err != nil {
		return 0, err
	}
	ephysDir, err := ephysDirFor(sel.SignalProcessor.Name)
	if err != nil {
		return 0, err
	}

	root, err := si.locations.LocalPath(si.tier)
	if err != nil {
		return 0, err
	}
	rawPath := RawPath(root, sel.Rig.Name, sel.Task.Name, sel.Monkey.Name)

	existing, err := si.store.SessionDates(ctx, sel.Monkey.ID)
	if err != nil {
		return 0, fmt.Errorf("fetch existing session dates: %w", err)
	}

	candidates, err := ScanDates(rawPath, dates, existing)
	if err != nil {
		return 0, err
	}

	ingested := 0
	for _, date := range candidates {
		sessionPath := filepath.Join(rawPath, date)

		if !dirExists(filepath.Join(sessionPath, behaviorDir)) {
			si.log.Warnw("missing behavior files", "monkey", sel.Monkey.Name, "date", date)
			continue
		}
		if !dirExists(filepath.Join(sessionPath, ephysDir)) {
			si.log.Warnw("missing ephys files", "monkey", sel.Monkey.Name, "date", date)
			continue
		}

		note, err := readSessionNote(sessionPath)
		if err != nil {
			si.log.Warnw("read notes", "monkey", sel.Monkey.Name, "date", date, "error", err)
		} else if note == nil {
			si.log.Warnw("missing notes", "monkey", sel.Monkey.Name, "date", date)
		}

		session := &models.Session{
			SessionDate: date,
			MonkeyID:    sel.Monkey.ID,
			RigID:       sel.Rig.ID,
			TaskID:      sel.Task.ID,
		}
		if err := session.Validate(); err != nil {
			si.log.Errorw("invalid session", "date", date, "error", err)
			continue
		}

		if err := si.store.InsertSession(ctx, session, note, []int64{sel.SignalProcessor.ID}); err != nil {
			si.log.Errorw("insert session", "monkey", sel.Monkey.Name, "date", date, "error", err)
			continue
		}

		si.log.Infow("recorded session", "monkey", sel.Monkey.Name, "date", date)
		ingested++
	}

	return ingested, nil
}

// readSessionNote finds a *notes.txt file directly under the session
// directory and returns its full text, or nil when absent.
func readSessionNote(sessionPath string) (*string, error) {
	entries, err := os.ReadDir(sessionPath)
	if err != nil {
		return nil, fmt.Errorf("list session dir: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !notesFileRe.MatchString(entry.Name()) {
			continue
		}
		data, err := os.ReadFile(filepath.Join(sessionPath, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("read notes file: %w", err)
		}
		text := string(data)
		return &text, nil
	}

	return nil, nil
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
