package ingest

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/motorlab/ephys-catalog/internal/models"
)

type fakeBehaviorStore struct {
	pending  []*models.Session
	inserted []*models.BehaviorRecording
}

func (f *fakeBehaviorStore) PendingBehaviorSessions(ctx context.Context) ([]*models.Session, error) {
	return f.pending, nil
}

func (f *fakeBehaviorStore) InsertBehaviorRecording(ctx context.Context, rec *models.BehaviorRecording) error {
	f.inserted = append(f.inserted, rec)
	return nil
}

func testSession(id int64, date string) *models.Session {
	sel := testSelection()
	return &models.Session{
		ID:          id,
		SessionDate: date,
		MonkeyID:    sel.Monkey.ID,
		RigID:       sel.Rig.ID,
		TaskID:      sel.Task.ID,
		Monkey:      sel.Monkey,
		Rig:         sel.Rig,
		Task:        sel.Task,
	}
}

func TestBehaviorIngestorRecordsSummary(t *testing.T) {
	_, locations, rawPath := testTree(t)
	sessionPath := addSessionDir(t, rawPath, "2021-01-01", true, true)
	require.NoError(t, os.WriteFile(
		filepath.Join(sessionPath, "speedgoat", "cousteau_2021_01_01.summary"), []byte("{}"), 0o644))

	store := &fakeBehaviorStore{pending: []*models.Session{testSession(7, "2021-01-01")}}
	ingestor := NewBehaviorIngestor(store, locations, "locker", zap.NewNop().Sugar())

	require.NoError(t, ingestor.PopulateAll(context.Background()))
	require.Len(t, store.inserted, 1)

	rec := store.inserted[0]
	assert.Equal(t, int64(7), rec.SessionID)
	assert.Equal(t, models.DefaultBehaviorSampleRate, rec.SampleRate)
	assert.Equal(t,
		"/server/locker/rigJ/pacman-task/cousteau/raw/2021-01-01/speedgoat/cousteau_2021_01_01.summary",
		rec.SummaryFilePath)
}

func TestBehaviorIngestorNoSummary(t *testing.T) {
	_, locations, rawPath := testTree(t)
	addSessionDir(t, rawPath, "2021-01-01", true, true)

	store := &fakeBehaviorStore{}
	ingestor := NewBehaviorIngestor(store, locations, "locker", zap.NewNop().Sugar())

	err := ingestor.Populate(context.Background(), testSession(7, "2021-01-01"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoSummary))
	assert.Empty(t, store.inserted)
}

func TestBehaviorIngestorAmbiguousSummary(t *testing.T) {
	_, locations, rawPath := testTree(t)
	sessionPath := addSessionDir(t, rawPath, "2021-01-01", true, true)
	for _, name := range []string{"a.summary", "b.summary"} {
		require.NoError(t, os.WriteFile(filepath.Join(sessionPath, "speedgoat", name), []byte("{}"), 0o644))
	}

	store := &fakeBehaviorStore{}
	ingestor := NewBehaviorIngestor(store, locations, "locker", zap.NewNop().Sugar())

	err := ingestor.Populate(context.Background(), testSession(7, "2021-01-01"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrAmbiguousSummary))
	assert.Empty(t, store.inserted)
}

func TestBehaviorIngestorContinuesPastFailures(t *testing.T) {
	_, locations, rawPath := testTree(t)

	// first session has no summary file; second is complete
	addSessionDir(t, rawPath, "2021-01-01", true, true)
	second := addSessionDir(t, rawPath, "2021-01-02", true, true)
	require.NoError(t, os.WriteFile(
		filepath.Join(second, "speedgoat", "day2.summary"), []byte("{}"), 0o644))

	store := &fakeBehaviorStore{pending: []*models.Session{
		testSession(1, "2021-01-01"),
		testSession(2, "2021-01-02"),
	}}
	ingestor := NewBehaviorIngestor(store, locations, "locker", zap.NewNop().Sugar())

	require.NoError(t, ingestor.PopulateAll(context.Background()))
	require.Len(t, store.inserted, 1)
	assert.Equal(t, int64(2), store.inserted[0].SessionID)
}
