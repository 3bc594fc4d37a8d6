package models

import (
	"errors"

	"github.com/uptrace/bun"
)

// Hardware is a piece of lab equipment (controllers, signal processors,
// amplifiers, arrays).
type Hardware struct {
	bun.BaseModel `bun:"table:hardware,alias:hw"`

	ID           int64            `bun:"id,pk,autoincrement" json:"id"`
	Name         string           `bun:"name,unique,notnull" json:"name"`
	Category     HardwareCategory `bun:"category,notnull" json:"category"`
	Manufacturer *string          `bun:"manufacturer" json:"manufacturer,omitempty"`
}

// Validate checks that required hardware fields are present.
func (h *Hardware) Validate() error {
	if h.Name == "" {
		return errors.New("hardware name is required")
	}
	if h.Category == "" {
		return errors.New("hardware category is required")
	}
	return nil
}

// IsSignalProcessor reports whether the hardware digitizes neural signals.
func (h *Hardware) IsSignalProcessor() bool {
	return h.Category == CategoryNeuralSignalProcessor
}

// Software is a program or framework used to run experiments.
type Software struct {
	bun.BaseModel `bun:"table:software,alias:sw"`

	ID      int64  `bun:"id,pk,autoincrement" json:"id"`
	Name    string `bun:"name,unique:software_name_version,notnull" json:"name"`
	Version string `bun:"version,unique:software_name_version,notnull,default:''" json:"version"`
}
