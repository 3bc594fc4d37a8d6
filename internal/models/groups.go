package models

import (
	"github.com/uptrace/bun"
)

// Channel groups are curated by hand after ingestion. The ingestion
// pipeline never writes these tables; they are declared here so the
// schema stays complete and grouping rows can reference recorded
// channels by their stable indices.

// BrainChannelGroup assigns a set of recording channels to a brain
// region probed by one electrode array.
type BrainChannelGroup struct {
	bun.BaseModel `bun:"table:brain_channel_groups,alias:bg"`

	ID            int64      `bun:"id,pk,autoincrement" json:"id"`
	RecordingID   int64      `bun:"recording_id,unique:brain_group_key,notnull" json:"recording_id"`
	GroupID       int        `bun:"group_id,unique:brain_group_key,notnull" json:"group_id"`
	BrainRegion   string     `bun:"brain_region,notnull" json:"brain_region"`
	ArrayID       int64      `bun:"array_id,notnull" json:"array_id"`
	ArrayConfigID int64      `bun:"array_config_id,notnull" json:"array_config_id"`
	Hemisphere    Hemisphere `bun:"hemisphere,notnull" json:"hemisphere"`
	ProbeDepth    *float64   `bun:"probe_depth" json:"probe_depth,omitempty"`
	Notes         string     `bun:"notes,notnull,default:''" json:"notes"`

	Recording *EphysRecording      `bun:"rel:belongs-to,join:recording_id=id" json:"recording,omitempty"`
	Channels  []*BrainGroupChannel `bun:"rel:has-many,join:id=group_id" json:"channels,omitempty"`
}

// BrainGroupChannel renumbers a recording channel within its group.
type BrainGroupChannel struct {
	bun.BaseModel `bun:"table:brain_group_channels,alias:bgc"`

	ID           int64 `bun:"id,pk,autoincrement" json:"id"`
	GroupID      int64 `bun:"group_id,unique:brain_group_channel,notnull" json:"group_id"`
	ChannelID    int64 `bun:"channel_id,unique:brain_group_channel,notnull" json:"channel_id"`
	BrainChannel int   `bun:"brain_channel,notnull" json:"brain_channel"`

	Channel *EphysChannel `bun:"rel:belongs-to,join:channel_id=id" json:"channel,omitempty"`
}

// EmgChannelGroup assigns a set of recording channels to a muscle.
type EmgChannelGroup struct {
	bun.BaseModel `bun:"table:emg_channel_groups,alias:eg"`

	ID            int64  `bun:"id,pk,autoincrement" json:"id"`
	RecordingID   int64  `bun:"recording_id,unique:emg_group_key,notnull" json:"recording_id"`
	GroupID       int    `bun:"group_id,unique:emg_group_key,notnull" json:"group_id"`
	Muscle        string `bun:"muscle,notnull" json:"muscle"`
	ArrayID       int64  `bun:"array_id,notnull" json:"array_id"`
	ArrayConfigID int64  `bun:"array_config_id,notnull" json:"array_config_id"`
	Notes         string `bun:"notes,notnull,default:''" json:"notes"`

	Recording *EphysRecording    `bun:"rel:belongs-to,join:recording_id=id" json:"recording,omitempty"`
	Channels  []*EmgGroupChannel `bun:"rel:has-many,join:id=group_id" json:"channels,omitempty"`
}

// EmgGroupChannel renumbers a recording channel within its group and
// records the channel's sorting quality.
type EmgGroupChannel struct {
	bun.BaseModel `bun:"table:emg_group_channels,alias:egc"`

	ID         int64             `bun:"id,pk,autoincrement" json:"id"`
	GroupID    int64             `bun:"group_id,unique:emg_group_channel,notnull" json:"group_id"`
	ChannelID  int64             `bun:"channel_id,unique:emg_group_channel,notnull" json:"channel_id"`
	EmgChannel int               `bun:"emg_channel,notnull" json:"emg_channel"`
	Quality    EmgChannelQuality `bun:"quality,notnull" json:"quality"`

	Channel *EphysChannel `bun:"rel:belongs-to,join:channel_id=id" json:"channel,omitempty"`
}
