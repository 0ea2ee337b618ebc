package adapter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/mouse-blink/lintel/internal/config"
	m "github.com/mouse-blink/lintel/internal/model"
)

// defaultDebounce coalesces bursts of events (editors often write, then
// rename) into a single re-run.
const defaultDebounce = 300 * time.Millisecond

// Watcher reports changes to Go sources and lintel.toml files below a set of
// roots. Run must be called at most once.
type Watcher struct {
	fsw      *fsnotify.Watcher
	debounce time.Duration
}

// NewWatcher registers every non-excluded directory under roots. File roots
// are watched through their parent directory.
func NewWatcher(roots []m.Path, debounce time.Duration) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: create fsnotify watcher: %w", err)
	}

	if debounce <= 0 {
		debounce = defaultDebounce
	}

	w := &Watcher{fsw: fsw, debounce: debounce}

	for _, root := range roots {
		rootPath, err := normalizeRootPath(string(root))
		if err != nil {
			_ = fsw.Close()
			return nil, fmt.Errorf("watch: %w", err)
		}

		info, err := os.Stat(rootPath)
		if err != nil {
			_ = fsw.Close()
			return nil, fmt.Errorf("watch: %w", err)
		}

		if !info.IsDir() {
			rootPath = filepath.Dir(rootPath)
		}

		if err := w.addTree(rootPath); err != nil {
			_ = fsw.Close()
			return nil, err
		}
	}

	return w, nil
}

// Run blocks until ctx is cancelled, invoking onChange with the sorted set of
// changed paths once the debounce window closes. onChange runs on the Run
// goroutine, so runs never overlap.
func (w *Watcher) Run(ctx context.Context, onChange func(changed []m.Path)) error {
	defer func() { _ = w.fsw.Close() }()

	pending := make(map[m.Path]struct{})

	var (
		timer  *time.Timer
		timerC <-chan time.Time
	)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}

			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					_ = w.addTree(event.Name)
				}
			}

			if !relevant(event) {
				continue
			}

			pending[m.Path(event.Name)] = struct{}{}

			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}

			timerC = timer.C

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}

			return fmt.Errorf("watch: %w", err)

		case <-timerC:
			changed := make([]m.Path, 0, len(pending))
			for path := range pending {
				changed = append(changed, path)
			}

			slices.Sort(changed)
			clear(pending)

			timer, timerC = nil, nil

			onChange(changed)
		}
	}
}

// Close releases the underlying fsnotify watcher.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

func (w *Watcher) addTree(root string) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil || !info.IsDir() {
			return nil //nolint:nilerr // unreadable entries are simply not watched
		}

		if path != root && slices.Contains(config.DefaultExclude, filepath.Base(path)) {
			return filepath.SkipDir
		}

		if err := w.fsw.Add(path); err != nil {
			return fmt.Errorf("watch: add %s: %w", path, err)
		}

		return nil
	})
}

func relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}

	base := filepath.Base(event.Name)

	return filepath.Ext(base) == goFileExt || base == config.FileName
}
