package adapter

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/lintel/internal/model"
)

func TestRelevant(t *testing.T) {
	tests := []struct {
		name  string
		event fsnotify.Event
		want  bool
	}{
		{name: "go write", event: fsnotify.Event{Name: "/p/a.go", Op: fsnotify.Write}, want: true},
		{name: "config create", event: fsnotify.Event{Name: "/p/lintel.toml", Op: fsnotify.Create}, want: true},
		{name: "go removal", event: fsnotify.Event{Name: "/p/a.go", Op: fsnotify.Remove}, want: true},
		{name: "chmod only", event: fsnotify.Event{Name: "/p/a.go", Op: fsnotify.Chmod}, want: false},
		{name: "other extension", event: fsnotify.Event{Name: "/p/README.md", Op: fsnotify.Write}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, relevant(tt.event))
		})
	}
}

func TestNewWatcher_MissingRoot(t *testing.T) {
	_, err := NewWatcher([]m.Path{m.Path(filepath.Join(t.TempDir(), "missing"))}, 0)
	assert.Error(t, err)
}

func TestWatcher_Run(t *testing.T) {
	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, "main.go"), "package main\n")

	w, err := NewWatcher([]m.Path{m.Path(root)}, 20*time.Millisecond)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	changes := make(chan []m.Path, 1)
	done := make(chan error, 1)

	go func() {
		done <- w.Run(ctx, func(changed []m.Path) {
			select {
			case changes <- changed:
			default:
			}
		})
	}()

	// Give the watcher a moment to start consuming events.
	time.Sleep(50 * time.Millisecond)
	writeTestFile(t, filepath.Join(root, "main.go"), "package main\n\nfunc main() {}\n")
	writeTestFile(t, filepath.Join(root, "notes.txt"), "ignored\n")

	select {
	case changed := <-changes:
		assert.Equal(t, []m.Path{m.Path(filepath.Join(root, "main.go"))}, changed)
	case <-ctx.Done():
		t.Fatal("no change reported before timeout")
	}

	cancel()
	assert.NoError(t, <-done)
}
