package ingest

import (
	"regexp"

	"github.com/motorlab/ephys-catalog/internal/models"
)

var (
	brainLabelRe = regexp.MustCompile(`^\d`)
	emgLabelRe   = regexp.MustCompile(`ainp[1-8]$`)
)

// ClassifyChannelLabel maps a vendor electrode label to a channel
// classification. Rules are evaluated in order and are mutually
// exclusive: a leading digit marks a brain electrode, analog inputs
// 1-8 carry EMG, input 15 carries the stimulation trigger and input 16
// the sync pulse. Anything else is explicitly unclassified.
func ClassifyChannelLabel(label string) models.ChannelLabel {
	switch {
	case brainLabelRe.MatchString(label):
		return models.ChannelBrain
	case emgLabelRe.MatchString(label):
		return models.ChannelEmg
	case label == "ainp15":
		return models.ChannelStim
	case label == "ainp16":
		return models.ChannelSync
	default:
		return models.ChannelUnclassified
	}
}
