package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/dark-light/pkg/types"
)

func TestMockDetector(t *testing.T) {
	detector := NewMockDetector(types.Light)

	assert.Equal(t, types.Light, detector.Detect())
	detector.Set(types.Dark)
	assert.Equal(t, types.Dark, detector.Detect())
	assert.Equal(t, 2, detector.Calls())
}

func TestSequenceDetector(t *testing.T) {
	detector := NewSequenceDetector(types.Light, types.Light, types.Dark)

	got := []types.Mode{detector.Detect(), detector.Detect(), detector.Detect(), detector.Detect()}
	assert.Equal(t, []types.Mode{types.Light, types.Light, types.Dark, types.Dark}, got)

	assert.Equal(t, types.Light, NewSequenceDetector().Detect())
}

func TestManualChangeSource(t *testing.T) {
	source := NewManualChangeSource()
	assert.False(t, source.Trigger(), "no subscriber yet")

	ctx, cancel := context.WithCancel(context.Background())
	hints, err := source.Changes(ctx)
	require.NoError(t, err)
	assert.True(t, source.Subscribed())

	assert.True(t, source.Trigger())
	assert.True(t, source.Trigger(), "second hint coalesces")

	select {
	case <-hints:
	case <-time.After(time.Second):
		t.Fatal("expected a hint")
	}

	cancel()
	for range hints {
	}
	assert.False(t, source.Subscribed())
	assert.Equal(t, 1, source.Subscriptions())
}

func TestFailingChangeSource(t *testing.T) {
	source := NewFailingChangeSource()

	hints, err := source.Changes(context.Background())
	assert.ErrorIs(t, err, ErrSourceUnavailable)
	assert.Nil(t, hints)
}
