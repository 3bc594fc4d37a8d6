package repositories

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/motorlab/ephys-catalog/internal/models"
)

// Catalog adapts the repository functions to the store interfaces the
// ingestors are written against, so components receive an injected
// handle instead of reaching for a shared database value.
type Catalog struct {
	db *bun.DB
}

// NewCatalog wraps a database handle.
func NewCatalog(db *bun.DB) *Catalog {
	return &Catalog{db: db}
}

// DB exposes the underlying handle for curation tooling and tests.
func (c *Catalog) DB() *bun.DB { return c.db }

func (c *Catalog) SessionDates(ctx context.Context, monkeyID int64) (map[string]bool, error) {
	return SessionDates(ctx, c.db, monkeyID)
}

func (c *Catalog) InsertSession(ctx context.Context, session *models.Session, note *string, hardwareIDs []int64) error {
	return InsertSession(ctx, c.db, session, note, hardwareIDs)
}

func (c *Catalog) PendingBehaviorSessions(ctx context.Context) ([]*models.Session, error) {
	return PendingBehaviorSessions(ctx, c.db)
}

func (c *Catalog) InsertBehaviorRecording(ctx context.Context, rec *models.BehaviorRecording) error {
	return InsertBehaviorRecording(ctx, c.db, rec)
}

func (c *Catalog) PendingEphysSessions(ctx context.Context) ([]*models.Session, error) {
	return PendingEphysSessions(ctx, c.db)
}

func (c *Catalog) SessionSignalProcessor(ctx context.Context, sessionID int64) (*models.Hardware, error) {
	return SessionSignalProcessor(ctx, c.db, sessionID)
}

func (c *Catalog) InsertEphysRecording(ctx context.Context, rec *models.EphysRecording, channels []*models.EphysChannel) error {
	return InsertEphysRecording(ctx, c.db, rec, channels)
}
