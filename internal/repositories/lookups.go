package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/motorlab/ephys-catalog/internal/models"
)

// ErrNotUnique is returned when a selector matches zero or several
// catalog rows where exactly one is required.
var ErrNotUnique = errors.New("selection did not match exactly one row")

// FindMonkey resolves a monkey name to exactly one row.
func FindMonkey(ctx context.Context, db bun.IDB, name string) (*models.Monkey, error) {
	var monkeys []*models.Monkey
	if err := db.NewSelect().Model(&monkeys).Where("name = ?", name).Scan(ctx); err != nil {
		return nil, err
	}
	if len(monkeys) != 1 {
		return nil, fmt.Errorf("%w: monkey %q matched %d rows", ErrNotUnique, name, len(monkeys))
	}
	return monkeys[0], nil
}

// FindRig resolves a rig name to exactly one row.
func FindRig(ctx context.Context, db bun.IDB, name string) (*models.Rig, error) {
	var rigs []*models.Rig
	if err := db.NewSelect().Model(&rigs).Where("name = ?", name).Scan(ctx); err != nil {
		return nil, err
	}
	if len(rigs) != 1 {
		return nil, fmt.Errorf("%w: rig %q matched %d rows", ErrNotUnique, name, len(rigs))
	}
	return rigs[0], nil
}

// FindTask resolves a task name (and version, when given) to exactly
// one row with its controller and graphics lookups loaded.
func FindTask(ctx context.Context, db bun.IDB, name, version string) (*models.Task, error) {
	var tasks []*models.Task
	q := db.NewSelect().
		Model(&tasks).
		Relation("ControllerHardware").
		Relation("ControllerSoftware").
		Relation("GraphicsSoftware").
		Where("tk.name = ?", name)
	if version != "" {
		q = q.Where("tk.version = ?", version)
	}
	if err := q.Scan(ctx); err != nil {
		return nil, err
	}
	if len(tasks) != 1 {
		return nil, fmt.Errorf("%w: task %q matched %d rows", ErrNotUnique, name, len(tasks))
	}
	return tasks[0], nil
}

// FindHardware resolves a hardware name to exactly one row.
func FindHardware(ctx context.Context, db bun.IDB, name string) (*models.Hardware, error) {
	var hardware []*models.Hardware
	if err := db.NewSelect().Model(&hardware).Where("name = ?", name).Scan(ctx); err != nil {
		return nil, err
	}
	if len(hardware) != 1 {
		return nil, fmt.Errorf("%w: hardware %q matched %d rows", ErrNotUnique, name, len(hardware))
	}
	return hardware[0], nil
}

// EnsureMonkey inserts a monkey if missing and returns the row.
func EnsureMonkey(ctx context.Context, db bun.IDB, name string) (*models.Monkey, error) {
	monkey := &models.Monkey{Name: name}
	if _, err := db.NewInsert().
		Model(monkey).
		On("CONFLICT (name) DO NOTHING").
		Exec(ctx); err != nil {
		return nil, err
	}
	return FindMonkey(ctx, db, name)
}

// EnsureRig inserts a rig if missing and returns the row.
func EnsureRig(ctx context.Context, db bun.IDB, name string) (*models.Rig, error) {
	rig := &models.Rig{Name: name}
	if _, err := db.NewInsert().
		Model(rig).
		On("CONFLICT (name) DO NOTHING").
		Exec(ctx); err != nil {
		return nil, err
	}
	return FindRig(ctx, db, name)
}

// EnsureUser inserts a user if missing and returns the row.
func EnsureUser(ctx context.Context, db bun.IDB, username string) (*models.User, error) {
	user := &models.User{Username: username}
	if _, err := db.NewInsert().
		Model(user).
		On("CONFLICT (username) DO NOTHING").
		Exec(ctx); err != nil {
		return nil, err
	}
	found := new(models.User)
	if err := db.NewSelect().Model(found).Where("username = ?", username).Scan(ctx); err != nil {
		return nil, err
	}
	return found, nil
}
