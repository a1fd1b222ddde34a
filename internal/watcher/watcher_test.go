package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestDetectsChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	writeFile(t, path, "version: \"1\"\n")

	var calls atomic.Int32
	w, err := New(path, WithDebounce(50*time.Millisecond), WithOnChange(func() { calls.Add(1) }))
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))
	t.Cleanup(func() { w.Close() })

	writeFile(t, path, "version: \"2\"\n")

	assert.Eventually(t, func() bool { return calls.Load() >= 1 }, 2*time.Second, 20*time.Millisecond)
}

func TestCoalescesBursts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	writeFile(t, path, "a")

	var calls atomic.Int32
	w, err := New(path, WithDebounce(150*time.Millisecond), WithOnChange(func() { calls.Add(1) }))
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))
	t.Cleanup(func() { w.Close() })

	for i := 0; i < 5; i++ {
		writeFile(t, path, string(rune('a'+i)))
		time.Sleep(10 * time.Millisecond)
	}

	assert.Eventually(t, func() bool { return calls.Load() == 1 }, 2*time.Second, 20*time.Millisecond)
	time.Sleep(300 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())
}

func TestIgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	writeFile(t, path, "a")

	var calls atomic.Int32
	w, err := New(path, WithDebounce(30*time.Millisecond), WithOnChange(func() { calls.Add(1) }))
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))
	t.Cleanup(func() { w.Close() })

	writeFile(t, filepath.Join(dir, "other.yaml"), "b")

	time.Sleep(200 * time.Millisecond)
	assert.Zero(t, calls.Load())
}

func TestStartTwice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	writeFile(t, path, "a")

	w, err := New(path)
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))
	t.Cleanup(func() { w.Close() })

	assert.ErrorIs(t, w.Start(context.Background()), ErrAlreadyStarted)
}

func TestCloseStopsCallbacks(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	writeFile(t, path, "a")

	var calls atomic.Int32
	w, err := New(path, WithDebounce(100*time.Millisecond), WithOnChange(func() { calls.Add(1) }))
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))

	writeFile(t, path, "b")
	time.Sleep(20 * time.Millisecond)
	require.NoError(t, w.Close())
	require.NoError(t, w.Close())

	time.Sleep(250 * time.Millisecond)
	assert.Zero(t, calls.Load())
}

func TestContextCancelStopsLoop(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	writeFile(t, path, "a")

	ctx, cancel := context.WithCancel(context.Background())
	w, err := New(path)
	require.NoError(t, err)
	require.NoError(t, w.Start(ctx))

	cancel()
	require.NoError(t, w.Close())
}

func TestStartMissingDirectory(t *testing.T) {
	w, err := New(filepath.Join(t.TempDir(), "nope", "catalog.yaml"))
	require.NoError(t, err)

	assert.Error(t, w.Start(context.Background()))
}

func TestSupersededTimerDoesNotFire(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	writeFile(t, path, "a")

	var calls atomic.Int32
	w, err := New(path, WithDebounce(time.Hour), WithOnChange(func() { calls.Add(1) }))
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))
	t.Cleanup(func() { w.Close() })

	w.trigger()
	w.mu.Lock()
	stale := w.gen
	w.mu.Unlock()

	// a second trigger re-arms while the first timer's callback is pending
	w.trigger()
	w.fire(stale)

	assert.Zero(t, calls.Load())
	w.mu.Lock()
	assert.NotNil(t, w.timer, "latest timer must stay reachable for Close")
	latest := w.gen
	w.mu.Unlock()

	w.fire(latest)
	assert.Equal(t, int32(1), calls.Load())
	w.mu.Lock()
	assert.Nil(t, w.timer)
	w.mu.Unlock()
}
