package repositories

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/motorlab/ephys-catalog/internal/models"
)

// PendingBehaviorSessions returns sessions eligible for behavior
// ingestion: not flagged as a problem and without a behavior recording
// row. Monkey, rig and task (with controller hardware) are loaded.
func PendingBehaviorSessions(ctx context.Context, db bun.IDB) ([]*models.Session, error) {
	var sessions []*models.Session
	err := db.NewSelect().
		Model(&sessions).
		Relation("Monkey").
		Relation("Rig").
		Relation("Task").
		Relation("Task.ControllerHardware").
		Where("se.problem = ?", false).
		Where("NOT EXISTS (SELECT 1 FROM behavior_recordings br WHERE br.session_id = se.id)").
		Order("se.session_date ASC").
		Scan(ctx)
	return sessions, err
}

// PendingEphysSessions returns sessions eligible for ephys ingestion:
// not flagged as a problem and without any ephys recording rows.
func PendingEphysSessions(ctx context.Context, db bun.IDB) ([]*models.Session, error) {
	var sessions []*models.Session
	err := db.NewSelect().
		Model(&sessions).
		Relation("Monkey").
		Relation("Rig").
		Relation("Task").
		Where("se.problem = ?", false).
		Where("NOT EXISTS (SELECT 1 FROM ephys_recordings er WHERE er.session_id = se.id)").
		Order("se.session_date ASC").
		Scan(ctx)
	return sessions, err
}

// SessionSignalProcessor returns the neural signal processor recorded
// for a session via its hardware associations.
func SessionSignalProcessor(ctx context.Context, db bun.IDB, sessionID int64) (*models.Hardware, error) {
	hw := new(models.Hardware)
	err := db.NewSelect().
		Model(hw).
		Join("JOIN session_hardware AS sh ON sh.hardware_id = hw.id").
		Where("sh.session_id = ?", sessionID).
		Where("hw.category = ?", models.CategoryNeuralSignalProcessor).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("session %d signal processor: %w", sessionID, err)
	}
	return hw, nil
}

// InsertBehaviorRecording inserts one behavior recording row.
func InsertBehaviorRecording(ctx context.Context, db bun.IDB, rec *models.BehaviorRecording) error {
	_, err := db.NewInsert().Model(rec).Exec(ctx)
	return err
}

// InsertEphysRecording inserts a recording row and its channel rows in
// one transaction, preserving the channel indices assigned from the
// vendor header order.
func InsertEphysRecording(ctx context.Context, db *bun.DB, rec *models.EphysRecording, channels []*models.EphysChannel) error {
	return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewInsert().Model(rec).Exec(ctx); err != nil {
			return err
		}

		for _, ch := range channels {
			ch.RecordingID = rec.ID
		}

		if len(channels) > 0 {
			if _, err := tx.NewInsert().Model(&channels).Exec(ctx); err != nil {
				return err
			}
		}

		return nil
	})
}

// SessionRecordings returns a session's ephys recordings with channels
// loaded, ordered by file id.
func SessionRecordings(ctx context.Context, db bun.IDB, sessionID int64) ([]*models.EphysRecording, error) {
	var recordings []*models.EphysRecording
	err := db.NewSelect().
		Model(&recordings).
		Relation("Channels", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Order("channel_index ASC")
		}).
		Where("session_id = ?", sessionID).
		Order("file_id ASC").
		Scan(ctx)
	return recordings, err
}
