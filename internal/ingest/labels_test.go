package ingest

import (
	"testing"

	"github.com/motorlab/ephys-catalog/internal/models"
)

func TestClassifyChannelLabel(t *testing.T) {
	cases := []struct {
		label string
		want  models.ChannelLabel
	}{
		{"137", models.ChannelBrain},
		{"1", models.ChannelBrain},
		{"96ch", models.ChannelBrain},
		{"ainp1", models.ChannelEmg},
		{"ainp3", models.ChannelEmg},
		{"ainp8", models.ChannelEmg},
		{"ainp15", models.ChannelStim},
		{"ainp16", models.ChannelSync},
		// no rule matches: must come out explicitly unclassified, not
		// defaulted into a real bucket
		{"weird", models.ChannelUnclassified},
		{"ainp9", models.ChannelUnclassified},
		{"ainp", models.ChannelUnclassified},
		{"", models.ChannelUnclassified},
	}

	for _, tc := range cases {
		if got := ClassifyChannelLabel(tc.label); got != tc.want {
			t.Fatalf("label %q: expected %s, got %s", tc.label, tc.want, got)
		}
	}
}
