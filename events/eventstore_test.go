package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetRunIDExtractsField(t *testing.T) {
	event := RunStarted{RunID: "run-1", Seed: 42}

	assert.Equal(t, "run-1", GetRunID(event))
	assert.Equal(t, "run-1", GetRunID(&event))
}

func TestGetRunIDMissingField(t *testing.T) {
	assert.Equal(t, "", GetRunID(anonymousEvent{}))
}

type anonymousEvent struct{}

func (anonymousEvent) EventName() string { return "anonymous" }

func TestInMemoryEventStoreAppendAndLoad(t *testing.T) {
	store := NewInMemoryEventStore()

	require.NoError(t, store.Append(RunStarted{RunID: "run-1", Seed: 1}))
	require.NoError(t, store.Append(HandPlayed{RunID: "run-1", Total: 50, Score: 50}))
	require.NoError(t, store.Append(RunStarted{RunID: "run-2", Seed: 2}))

	loaded, err := store.LoadEvents("run-1")
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, "run-started", loaded[0].EventName())
	assert.Equal(t, "hand-played", loaded[1].EventName())

	assert.Len(t, store.GetEvents(), 3)
}

func TestAppendRejectsEventWithoutRunID(t *testing.T) {
	store := NewInMemoryEventStore()

	assert.Error(t, store.Append(anonymousEvent{}))
}

func TestLoadEventsUnknownRunIsEmpty(t *testing.T) {
	store := NewInMemoryEventStore()

	loaded, err := store.LoadEvents("nope")
	require.NoError(t, err)
	assert.Empty(t, loaded)
}
