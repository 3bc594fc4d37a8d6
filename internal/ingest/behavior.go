package ingest

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/motorlab/ephys-catalog/internal/models"
	"github.com/motorlab/ephys-catalog/internal/storage"
)

var (
	// ErrNoSummary is returned when a session's behavior directory has
	// no summary file.
	ErrNoSummary = errors.New("no summary file found")
	// ErrAmbiguousSummary is returned when more than one summary file
	// matches; the right one cannot be picked automatically.
	ErrAmbiguousSummary = errors.New("multiple summary files found")
)

// BehaviorStore is the catalog surface the behavior ingestor needs.
// PendingBehaviorSessions returns sessions without a problem flag and
// without a behavior recording, with monkey, rig and task (including
// controller hardware) loaded.
type BehaviorStore interface {
	PendingBehaviorSessions(ctx context.Context) ([]*models.Session, error)
	InsertBehaviorRecording(ctx context.Context, rec *models.BehaviorRecording) error
}

// BehaviorIngestor records the behavior summary file for sessions that
// do not have one yet.
type BehaviorIngestor struct {
	store     BehaviorStore
	locations storage.Locations
	tier      string
	log       *zap.SugaredLogger
}

// NewBehaviorIngestor builds a behavior ingestor.
func NewBehaviorIngestor(store BehaviorStore, locations storage.Locations, tier string, log *zap.SugaredLogger) *BehaviorIngestor {
	return &BehaviorIngestor{store: store, locations: locations, tier: tier, log: log}
}

// PopulateAll processes every pending session. A failure aborts that
// session only; the remaining sessions are still processed.
func (bi *BehaviorIngestor) PopulateAll(ctx context.Context) error {
	pending, err := bi.store.PendingBehaviorSessions(ctx)
	if err != nil {
		return fmt.Errorf("fetch pending sessions: %w", err)
	}

	for _, session := range pending {
		if err := bi.Populate(ctx, session); err != nil {
			bi.log.Errorw("behavior ingest failed",
				"monkey", session.Monkey.Name, "date", session.SessionDate, "error", err)
			continue
		}
		bi.log.Infow("recorded behavior",
			"monkey", session.Monkey.Name, "date", session.SessionDate)
	}

	return nil
}

// Populate records the behavior recording for one session. Exactly one
// summary file must exist; zero or several is a hard error for the
// session and no row is inserted.
func (bi *BehaviorIngestor) Populate(ctx context.Context, session *models.Session) error {
	if session.Task == nil || session.Task.ControllerHardware == nil {
		return fmt.Errorf("session %s: task controller hardware not loaded", session.SessionDate)
	}
	behaviorDir, err := behaviorDirFor(session.Task.ControllerHardware.Name)
	if err != nil {
		return err
	}

	root, err := bi.locations.LocalPath(bi.tier)
	if err != nil {
		return err
	}
	rawPath := RawPath(root, session.Rig.Name, session.Task.Name, session.Monkey.Name)
	dir := filepath.Join(rawPath, session.SessionDate, behaviorDir)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("list behavior dir: %w", err)
	}

	var summaries []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".summary") {
			summaries = append(summaries, entry.Name())
		}
	}
	switch len(summaries) {
	case 0:
		return fmt.Errorf("%w in %s", ErrNoSummary, dir)
	case 1:
	default:
		return fmt.Errorf("%w in %s: %d matches", ErrAmbiguousSummary, dir, len(summaries))
	}

	globalPath, err := bi.locations.EnsureGlobal(bi.tier, filepath.Join(dir, summaries[0]))
	if err != nil {
		return err
	}

	rec := &models.BehaviorRecording{
		SessionID:       session.ID,
		SummaryFilePath: globalPath,
		SampleRate:      models.DefaultBehaviorSampleRate,
	}
	if err := rec.Validate(); err != nil {
		return err
	}

	return bi.store.InsertBehaviorRecording(ctx, rec)
}
