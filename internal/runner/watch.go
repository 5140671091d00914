package runner

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ignoredDirs are directory names never watched. State and VCS churn
// would otherwise retrigger the watched task.
var ignoredDirs = map[string]bool{
	".git":         true,
	".dockhand":    true,
	"__pycache__":  true,
	"node_modules": true,
	".venv":        true,
}

// Watcher re-runs a callback when files under Root change, debounced so a
// burst of writes triggers one rerun.
type Watcher struct {
	Root     string
	Debounce time.Duration
	Logger   *slog.Logger
}

// NewWatcher creates a Watcher with the default debounce interval.
func NewWatcher(root string, logger *slog.Logger) *Watcher {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Watcher{Root: root, Debounce: 500 * time.Millisecond, Logger: logger}
}

// Watch blocks, invoking onChange after each debounced batch of file
// events, until ctx is cancelled.
func (w *Watcher) Watch(ctx context.Context, onChange func(context.Context)) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fsw.Close()

	if err := w.addRecursive(fsw, w.Root); err != nil {
		return err
	}

	var timer *time.Timer
	fire := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if w.ignored(event.Name) {
				continue
			}
			// New directories need watches of their own.
			if event.Op.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					_ = w.addRecursive(fsw, event.Name)
				}
			}
			w.Logger.Debug("file changed", slog.String("path", event.Name), slog.String("op", event.Op.String()))
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.Debounce, func() {
				select {
				case fire <- struct{}{}:
				default:
				}
			})

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.Logger.Warn("watch error", slog.Any("error", err))

		case <-fire:
			onChange(ctx)
		}
	}
}

func (w *Watcher) addRecursive(fsw *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // unreadable subtrees are skipped, not fatal
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && ignoredDirs[d.Name()] {
			return filepath.SkipDir
		}
		return fsw.Add(path)
	})
}

func (w *Watcher) ignored(path string) bool {
	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		if ignoredDirs[part] {
			return true
		}
	}
	return false
}
