package repositories

import (
	"context"
	"database/sql"

	"github.com/uptrace/bun"

	"github.com/motorlab/ephys-catalog/internal/models"
)

// SessionDates returns the set of session dates already cataloged for
// a monkey. The scanner uses it to keep ingestion idempotent.
func SessionDates(ctx context.Context, db bun.IDB, monkeyID int64) (map[string]bool, error) {
	var dates []string
	err := db.NewSelect().
		Model((*models.Session)(nil)).
		Column("session_date").
		Where("monkey_id = ?", monkeyID).
		Scan(ctx, &dates)
	if err != nil {
		return nil, err
	}

	set := make(map[string]bool, len(dates))
	for _, d := range dates {
		set[d] = true
	}
	return set, nil
}

// InsertSession inserts a session together with its note and hardware
// associations in one transaction.
func InsertSession(ctx context.Context, db *bun.DB, session *models.Session, note *string, hardwareIDs []int64) error {
	return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewInsert().Model(session).Exec(ctx); err != nil {
			return err
		}

		if note != nil {
			n := &models.SessionNote{SessionID: session.ID, NoteID: 0, Note: *note}
			if _, err := tx.NewInsert().Model(n).Exec(ctx); err != nil {
				return err
			}
		}

		for _, hwID := range hardwareIDs {
			assoc := &models.SessionHardware{SessionID: session.ID, HardwareID: hwID}
			if _, err := tx.NewInsert().Model(assoc).Exec(ctx); err != nil {
				return err
			}
		}

		return nil
	})
}

// AddSessionUser associates a lab member with a session.
func AddSessionUser(ctx context.Context, db bun.IDB, sessionID, userID int64) error {
	assoc := &models.SessionUser{SessionID: sessionID, UserID: userID}
	_, err := db.NewInsert().
		Model(assoc).
		On("CONFLICT (session_id, user_id) DO NOTHING").
		Exec(ctx)
	return err
}

// AddSessionNote appends a note numbered after the session's highest
// existing note id.
func AddSessionNote(ctx context.Context, db *bun.DB, sessionID int64, text string) (*models.SessionNote, error) {
	note := &models.SessionNote{SessionID: sessionID, Note: text}
	err := db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		var maxID sql.NullInt64
		if err := tx.NewSelect().
			Model((*models.SessionNote)(nil)).
			ColumnExpr("MAX(note_id)").
			Where("session_id = ?", sessionID).
			Scan(ctx, &maxID); err != nil {
			return err
		}
		if maxID.Valid {
			note.NoteID = int(maxID.Int64) + 1
		}
		_, err := tx.NewInsert().Model(note).Exec(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return note, nil
}

// MarkSessionProblem flags a session as problematic so the recording
// ingestors skip it.
func MarkSessionProblem(ctx context.Context, db bun.IDB, sessionID int64, description string) error {
	_, err := db.NewUpdate().
		Model((*models.Session)(nil)).
		Set("problem = ?", true).
		Set("problem_description = ?", description).
		Where("id = ?", sessionID).
		Exec(ctx)
	return err
}
