package models

import (
	"errors"

	"github.com/uptrace/bun"
)

// EphysRecording is one vendor recording file within a session. FileID
// is the zero-based index assigned by discovery order.
type EphysRecording struct {
	bun.BaseModel `bun:"table:ephys_recordings,alias:er"`

	ID         int64   `bun:"id,pk,autoincrement" json:"id"`
	SessionID  int64   `bun:"session_id,unique:ephys_session_file,notnull" json:"session_id"`
	FileID     int     `bun:"file_id,unique:ephys_session_file,notnull" json:"file_id"`
	FilePath   string  `bun:"file_path,notnull" json:"file_path"`
	SampleRate int     `bun:"sample_rate,notnull" json:"sample_rate"`
	Duration   float64 `bun:"duration,notnull" json:"duration"`

	Session  *Session        `bun:"rel:belongs-to,join:session_id=id" json:"session,omitempty"`
	Channels []*EphysChannel `bun:"rel:has-many,join:id=recording_id" json:"channels,omitempty"`
}

// Validate checks that required ephys recording fields are present.
func (e *EphysRecording) Validate() error {
	if e.SessionID == 0 {
		return errors.New("session is required")
	}
	if e.FileID < 0 {
		return errors.New("file id must be non-negative")
	}
	if e.FilePath == "" {
		return errors.New("file path is required")
	}
	if e.SampleRate <= 0 {
		return errors.New("sample rate must be positive")
	}
	if e.Duration < 0 {
		return errors.New("duration must be non-negative")
	}
	return nil
}

// EphysChannel is one electrode's header entry within a recording file.
// ChannelIndex is the zero-based position in the vendor file header;
// grouping tables key on it, so the ordering must never change once
// recorded.
type EphysChannel struct {
	bun.BaseModel `bun:"table:ephys_channels,alias:ec"`

	ID           int64        `bun:"id,pk,autoincrement" json:"id"`
	RecordingID  int64        `bun:"recording_id,unique:channel_recording_index,notnull" json:"recording_id"`
	ChannelIndex int          `bun:"channel_index,unique:channel_recording_index,notnull" json:"channel_index"`
	ChannelID    *int         `bun:"channel_id" json:"channel_id,omitempty"`
	Label        ChannelLabel `bun:"label,notnull" json:"label"`

	Recording *EphysRecording `bun:"rel:belongs-to,join:recording_id=id" json:"recording,omitempty"`
}

// Validate checks that required channel fields are present.
func (c *EphysChannel) Validate() error {
	if c.ChannelIndex < 0 {
		return errors.New("channel index must be non-negative")
	}
	if c.Label == "" {
		return errors.New("channel label is required")
	}
	return nil
}
