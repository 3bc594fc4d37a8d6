package migrations

import (
	"context"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		indexes := []string{
			"CREATE INDEX IF NOT EXISTS idx_sessions_monkey_date ON sessions(monkey_id, session_date)",
			"CREATE INDEX IF NOT EXISTS idx_session_hardware_session ON session_hardware(session_id)",
			"CREATE INDEX IF NOT EXISTS idx_session_notes_session ON session_notes(session_id)",
			"CREATE INDEX IF NOT EXISTS idx_ephys_recordings_session ON ephys_recordings(session_id)",
			"CREATE INDEX IF NOT EXISTS idx_ephys_channels_recording ON ephys_channels(recording_id)",
			"CREATE INDEX IF NOT EXISTS idx_ephys_channels_label ON ephys_channels(label)",
			"CREATE INDEX IF NOT EXISTS idx_brain_group_channels_group ON brain_group_channels(group_id)",
			"CREATE INDEX IF NOT EXISTS idx_emg_group_channels_group ON emg_group_channels(group_id)",
		}

		for _, idx := range indexes {
			if _, err := db.ExecContext(ctx, idx); err != nil {
				return err
			}
		}

		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		indexes := []string{
			"DROP INDEX IF EXISTS idx_sessions_monkey_date",
			"DROP INDEX IF EXISTS idx_session_hardware_session",
			"DROP INDEX IF EXISTS idx_session_notes_session",
			"DROP INDEX IF EXISTS idx_ephys_recordings_session",
			"DROP INDEX IF EXISTS idx_ephys_channels_recording",
			"DROP INDEX IF EXISTS idx_ephys_channels_label",
			"DROP INDEX IF EXISTS idx_brain_group_channels_group",
			"DROP INDEX IF EXISTS idx_emg_group_channels_group",
		}

		for _, idx := range indexes {
			if _, err := db.ExecContext(ctx, idx); err != nil {
				return err
			}
		}

		return nil
	})
}
