package migrations

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/motorlab/ephys-catalog/internal/database"
	"github.com/motorlab/ephys-catalog/internal/models"
)

// Registration happens in package init; running the migrator end to
// end verifies the registered names are accepted and applied in order.
func TestRunMigrationsCreatesSchemaAndSeeds(t *testing.T) {
	ctx := context.Background()
	db, err := database.NewDB(filepath.Join(t.TempDir(), "catalog.db"), false)
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, RunMigrations(ctx, db))

	hardware, err := db.NewSelect().Model((*models.Hardware)(nil)).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, hardware)

	tasks, err := db.NewSelect().Model((*models.Task)(nil)).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, tasks)
}

func TestRunMigrationsIsIdempotent(t *testing.T) {
	ctx := context.Background()
	db, err := database.NewDB(filepath.Join(t.TempDir(), "catalog.db"), false)
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, RunMigrations(ctx, db))
	require.NoError(t, RunMigrations(ctx, db))

	tasks, err := db.NewSelect().Model((*models.Task)(nil)).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, tasks)
}
