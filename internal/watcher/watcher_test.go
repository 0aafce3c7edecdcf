package watcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestStateWatcher_ReportsWrites(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "agent_state.json")
	require.NoError(t, os.WriteFile(path, []byte(`{}`), 0o644))

	sw, err := New(path, 20*time.Millisecond)
	require.NoError(t, err)
	require.NoError(t, sw.Start(context.Background()))
	defer sw.Stop()

	// A burst of writes collapses into one change.
	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(path, []byte(`{"context":"gameplay_dialogue"}`), 0o644))
	}

	select {
	case <-sw.Changes():
	case <-time.After(2 * time.Second):
		t.Fatal("expected a change notification")
	}
}

func TestStateWatcher_IgnoresOtherFiles(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	sw, err := New(filepath.Join(dir, "agent_state.json"), 20*time.Millisecond)
	require.NoError(t, err)
	require.NoError(t, sw.Start(context.Background()))
	defer sw.Stop()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.json"), []byte(`{}`), 0o644))

	select {
	case <-sw.Changes():
		t.Fatal("unexpected change for unrelated file")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestStateWatcher_ContextCancelStops(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	sw, err := New(filepath.Join(dir, "agent_state.json"), 0)
	require.NoError(t, err)
	assert.Equal(t, DefaultDebounce, sw.debounce)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, sw.Start(ctx))
	require.NoError(t, sw.Start(ctx), "second start is a no-op")

	cancel()
	select {
	case <-sw.doneCh:
	case <-time.After(2 * time.Second):
		t.Fatal("watcher goroutine did not exit on cancel")
	}
	sw.Stop()
}

func TestStateWatcher_StartMissingDirectory(t *testing.T) {
	defer goleak.VerifyNone(t)

	sw, err := New(filepath.Join(t.TempDir(), "gone", "agent_state.json"), 0)
	require.NoError(t, err)

	assert.Error(t, sw.Start(context.Background()))
	sw.Stop()
}
