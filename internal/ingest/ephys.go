package ingest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"go.uber.org/zap"

	"github.com/motorlab/ephys-catalog/internal/blackrock"
	"github.com/motorlab/ephys-catalog/internal/models"
	"github.com/motorlab/ephys-catalog/internal/storage"
)

// Vendor multi-file recording convention: an emg/neu/neu_emg infix, a
// three-digit sequence counter and a numbered .nsN suffix.
var nsxFileRe = regexp.MustCompile(`(emg|neu|neu_emg)_00\d\.ns\d$`)

// EphysStore is the catalog surface the ephys ingestor needs.
type EphysStore interface {
	PendingEphysSessions(ctx context.Context) ([]*models.Session, error)
	SessionSignalProcessor(ctx context.Context, sessionID int64) (*models.Hardware, error)
	InsertEphysRecording(ctx context.Context, rec *models.EphysRecording, channels []*models.EphysChannel) error
}

// EphysIngestor records vendor recording files and their channel
// headers for sessions that have no ephys rows yet.
type EphysIngestor struct {
	store     EphysStore
	locations storage.Locations
	tier      string
	log       *zap.SugaredLogger
}

// NewEphysIngestor builds an ephys ingestor.
func NewEphysIngestor(store EphysStore, locations storage.Locations, tier string, log *zap.SugaredLogger) *EphysIngestor {
	return &EphysIngestor{store: store, locations: locations, tier: tier, log: log}
}

// PopulateAll processes every pending session. A failure (including a
// malformed vendor file) aborts that session only.
func (ei *EphysIngestor) PopulateAll(ctx context.Context) error {
	pending, err := ei.store.PendingEphysSessions(ctx)
	if err != nil {
		return fmt.Errorf("fetch pending sessions: %w", err)
	}

	for _, session := range pending {
		if err := ei.Populate(ctx, session); err != nil {
			ei.log.Errorw("ephys ingest failed",
				"monkey", session.Monkey.Name, "date", session.SessionDate, "error", err)
			continue
		}
		ei.log.Infow("recorded ephys",
			"monkey", session.Monkey.Name, "date", session.SessionDate)
	}

	return nil
}

// Populate records every vendor recording file of one session, in
// directory listing order, assigning zero-based file indices.
func (ei *EphysIngestor) Populate(ctx context.Context, session *models.Session) error {
	nsp, err := ei.store.SessionSignalProcessor(ctx, session.ID)
	if err != nil {
		return fmt.Errorf("fetch session signal processor: %w", err)
	}
	ephysDir, err := ephysDirFor(nsp.Name)
	if err != nil {
		return err
	}

	root, err := ei.locations.LocalPath(ei.tier)
	if err != nil {
		return err
	}
	rawPath := RawPath(root, session.Rig.Name, session.Task.Name, session.Monkey.Name)
	dir := filepath.Join(rawPath, session.SessionDate, ephysDir)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("list ephys dir: %w", err)
	}

	fileID := 0
	for _, entry := range entries {
		if entry.IsDir() || !nsxFileRe.MatchString(entry.Name()) {
			continue
		}
		if err := ei.ingestFile(ctx, session, filepath.Join(dir, entry.Name()), fileID); err != nil {
			return fmt.Errorf("file %s: %w", entry.Name(), err)
		}
		fileID++
	}

	return nil
}

func (ei *EphysIngestor) ingestFile(ctx context.Context, session *models.Session, path string, fileID int) error {
	nsx, err := blackrock.Open(path)
	if err != nil {
		return err
	}
	defer nsx.Close()

	// The file-level header carries one sample rate and the packet
	// scan one duration; both are taken to hold for every channel in
	// the file. The vendor format gives no per-channel values to check
	// against.
	duration, err := nsx.Duration()
	if err != nil {
		return err
	}

	globalPath, err := ei.locations.EnsureGlobal(ei.tier, path)
	if err != nil {
		return err
	}

	rec := &models.EphysRecording{
		SessionID:  session.ID,
		FileID:     fileID,
		FilePath:   globalPath,
		SampleRate: nsx.SampleRate(),
		Duration:   duration,
	}
	if err := rec.Validate(); err != nil {
		return err
	}

	electrodes := nsx.Electrodes()
	channels := make([]*models.EphysChannel, 0, len(electrodes))
	for j, elec := range electrodes {
		channelID := int(elec.ID)
		channels = append(channels, &models.EphysChannel{
			ChannelIndex: j,
			ChannelID:    &channelID,
			Label:        ClassifyChannelLabel(elec.Label),
		})
	}

	return ei.store.InsertEphysRecording(ctx, rec, channels)
}
