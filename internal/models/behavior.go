package models

import (
	"errors"

	"github.com/uptrace/bun"
)

// DefaultBehaviorSampleRate is the nominal Speedgoat sampling rate (Hz).
const DefaultBehaviorSampleRate = 1000

// BehaviorRecording is the per-session behavioral summary, at most one
// per session. The path is stored in tier-global form.
type BehaviorRecording struct {
	bun.BaseModel `bun:"table:behavior_recordings,alias:br"`

	ID              int64  `bun:"id,pk,autoincrement" json:"id"`
	SessionID       int64  `bun:"session_id,unique,notnull" json:"session_id"`
	SummaryFilePath string `bun:"summary_file_path,notnull" json:"summary_file_path"`
	SampleRate      int    `bun:"sample_rate,notnull,default:1000" json:"sample_rate"`

	Session *Session `bun:"rel:belongs-to,join:session_id=id" json:"session,omitempty"`
}

// Validate checks that required behavior recording fields are present.
func (b *BehaviorRecording) Validate() error {
	if b.SessionID == 0 {
		return errors.New("session is required")
	}
	if b.SummaryFilePath == "" {
		return errors.New("summary file path is required")
	}
	if b.SampleRate <= 0 {
		return errors.New("sample rate must be positive")
	}
	return nil
}
