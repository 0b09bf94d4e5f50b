package definition

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// pollInterval is how often the polling fallback checks the file.
var pollInterval = 500 * time.Millisecond

// Update is sent by Watch after every (re)load of a definition file.
// Exactly one of Set and Err is non-nil.
type Update struct {
	Set *Set
	Err error
}

// Watch loads path and reloads it whenever it changes, sending the result of
// every load to the returned channel. The first update is the initial load.
// The channel is closed when ctx is cancelled.
// Uses fsnotify on the file's directory with polling fallback.
func Watch(ctx context.Context, path string) <-chan Update {
	ch := make(chan Update, 1)

	go func() {
		defer close(ch)

		watcher, err := newDirWatcher(path)
		if err == nil {
			defer watcher.Close()
		}

		initial := stat(path)
		if !send(ctx, ch, load(path)) {
			return
		}

		if err != nil {
			slog.Debug("fsnotify unavailable, polling definitions", slog.String("error", err.Error()))
			watchPolling(ctx, path, ch, initial)
			return
		}
		watchEvents(ctx, path, ch, watcher)
	}()

	return ch
}

// newDirWatcher watches the directory of path, which also catches editors
// that replace the file by renaming.
func newDirWatcher(path string) (*fsnotify.Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, err
	}
	return watcher, nil
}

func watchEvents(ctx context.Context, path string, ch chan<- Update, watcher *fsnotify.Watcher) {
	baseName := filepath.Base(path)

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != baseName {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if !send(ctx, ch, load(path)) {
				return
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			slog.Warn("definition watcher error", slog.String("error", err.Error()))
		}
	}
}

func watchPolling(ctx context.Context, path string, ch chan<- Update, last fileState) {
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-ticker.C:
			cur := stat(path)
			if cur.same(last) {
				continue
			}
			last = cur
			if !send(ctx, ch, load(path)) {
				return
			}
		}
	}
}

type fileState struct {
	modTime time.Time
	size    int64
	exists  bool
}

func (s fileState) same(o fileState) bool {
	return s.exists == o.exists && s.size == o.size && s.modTime.Equal(o.modTime)
}

func stat(path string) fileState {
	info, err := os.Stat(path)
	if err != nil {
		return fileState{}
	}
	return fileState{modTime: info.ModTime(), size: info.Size(), exists: true}
}

func load(path string) Update {
	set, err := LoadSet(path)
	if err != nil {
		return Update{Err: err}
	}
	slog.Info("definitions loaded", slog.String("path", path), slog.Int("count", set.Len()))
	return Update{Set: set}
}

func send(ctx context.Context, ch chan<- Update, u Update) bool {
	select {
	case ch <- u:
		return true
	case <-ctx.Done():
		return false
	}
}
