package models

import (
	"errors"

	"github.com/uptrace/bun"
)

// Task identifies an experiment protocol variant together with the
// hardware and software that run it. Immutable reference data seeded
// by migration.
type Task struct {
	bun.BaseModel `bun:"table:tasks,alias:tk"`

	ID                   int64  `bun:"id,pk,autoincrement" json:"id"`
	Name                 string `bun:"name,unique:task_name_version,notnull" json:"name"`
	Version              string `bun:"version,unique:task_name_version,notnull" json:"version"`
	ControllerHardwareID int64  `bun:"controller_hardware_id,notnull" json:"controller_hardware_id"`
	ControllerSoftwareID int64  `bun:"controller_software_id,notnull" json:"controller_software_id"`
	GraphicsSoftwareID   int64  `bun:"graphics_software_id,notnull" json:"graphics_software_id"`
	Description          string `bun:"description,notnull,default:''" json:"description"`

	ControllerHardware *Hardware `bun:"rel:belongs-to,join:controller_hardware_id=id" json:"controller_hardware,omitempty"`
	ControllerSoftware *Software `bun:"rel:belongs-to,join:controller_software_id=id" json:"controller_software,omitempty"`
	GraphicsSoftware   *Software `bun:"rel:belongs-to,join:graphics_software_id=id" json:"graphics_software,omitempty"`
}

// Validate checks that required task fields are present.
func (t *Task) Validate() error {
	if t.Name == "" {
		return errors.New("task name is required")
	}
	if t.Version == "" {
		return errors.New("task version is required")
	}
	if t.ControllerHardwareID == 0 {
		return errors.New("controller hardware is required")
	}
	return nil
}
