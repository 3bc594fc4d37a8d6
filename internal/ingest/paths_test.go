package ingest

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRawPath(t *testing.T) {
	got := RawPath("/mnt/locker", "rigJ", "Pacman", "Cousteau")
	assert.Equal(t, "/mnt/locker/rigJ/pacman-task/cousteau/raw", got)
}

func TestBehaviorDirFor(t *testing.T) {
	dir, err := behaviorDirFor("Speedgoat")
	require.NoError(t, err)
	assert.Equal(t, "speedgoat", dir)

	_, err = behaviorDirFor("Arduino")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownHardware))
}

func TestEphysDirFor(t *testing.T) {
	dir, err := ephysDirFor("Cerebus")
	require.NoError(t, err)
	assert.Equal(t, "blackrock", dir)

	_, err = ephysDirFor("IMEC")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownHardware))
}
