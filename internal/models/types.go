package models

// HardwareCategory groups lab equipment by role.
type HardwareCategory string

const (
	CategoryNeuralSignalProcessor HardwareCategory = "neural signal processor"
	CategoryTaskController        HardwareCategory = "task controller"
	CategoryAmplifier             HardwareCategory = "amplifier"
	CategoryElectrodeArray        HardwareCategory = "electrode array"
)

// ChannelLabel classifies an ephys channel by its electrode label.
type ChannelLabel string

const (
	ChannelBrain ChannelLabel = "brain"
	ChannelEmg   ChannelLabel = "emg"
	ChannelSync  ChannelLabel = "sync"
	ChannelStim  ChannelLabel = "stim"
	// ChannelUnclassified marks electrodes whose label matched no
	// classification rule. Kept explicit so downstream grouping can
	// detect them instead of reading an empty column.
	ChannelUnclassified ChannelLabel = "unclassified"
)

// Hemisphere for brain channel groups.
type Hemisphere string

const (
	HemisphereLeft  Hemisphere = "left"
	HemisphereRight Hemisphere = "right"
)

// EmgChannelQuality describes how usable an EMG channel is for sorting.
type EmgChannelQuality string

const (
	EmgSortable EmgChannelQuality = "sortable"
	EmgHash     EmgChannelQuality = "hash"
	EmgDead     EmgChannelQuality = "dead"
)
