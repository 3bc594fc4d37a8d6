package repositories

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/motorlab/ephys-catalog/internal/models"
)

// Channel groups are written by curation tooling, not by ingestion.
// The helpers here keep the group and its renumbered channels in one
// transaction.

// InsertBrainChannelGroup inserts a brain channel group and its
// channel renumbering rows.
func InsertBrainChannelGroup(ctx context.Context, db *bun.DB, group *models.BrainChannelGroup, channels []*models.BrainGroupChannel) error {
	return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewInsert().Model(group).Exec(ctx); err != nil {
			return err
		}

		for _, ch := range channels {
			ch.GroupID = group.ID
		}

		if len(channels) > 0 {
			if _, err := tx.NewInsert().Model(&channels).Exec(ctx); err != nil {
				return err
			}
		}

		return nil
	})
}

// InsertEmgChannelGroup inserts an EMG channel group and its channel
// renumbering rows.
func InsertEmgChannelGroup(ctx context.Context, db *bun.DB, group *models.EmgChannelGroup, channels []*models.EmgGroupChannel) error {
	return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewInsert().Model(group).Exec(ctx); err != nil {
			return err
		}

		for _, ch := range channels {
			ch.GroupID = group.ID
		}

		if len(channels) > 0 {
			if _, err := tx.NewInsert().Model(&channels).Exec(ctx); err != nil {
				return err
			}
		}

		return nil
	})
}
