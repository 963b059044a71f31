package file

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/papers/internal/logger"
)

const defaultDebounce = 200 * time.Millisecond

// Watch reloads the store whenever the config file changes on disk and then
// calls onChange. It blocks until ctx is cancelled.
//
// The directory is watched rather than the file so that editors which
// replace the file on save are still seen.
func (s *ConfigStore) Watch(ctx context.Context, onChange func()) error {
	return s.watch(ctx, defaultDebounce, onChange)
}

func (s *ConfigStore) watch(ctx context.Context, debounce time.Duration, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(s.filePath)); err != nil {
		return err
	}
	logger.Debug("watching %s", s.filePath)

	var (
		mu    sync.Mutex
		timer *time.Timer
	)
	reload := func() {
		if err := s.Load(); err != nil {
			logger.Warn("reload %s: %v", s.filePath, err)
			return
		}
		logger.Info("config reloaded from %s", s.filePath)
		if onChange != nil {
			onChange()
		}
	}
	defer func() {
		mu.Lock()
		if timer != nil {
			timer.Stop()
		}
		mu.Unlock()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != filepath.Clean(s.filePath) {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			mu.Lock()
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounce, reload)
			mu.Unlock()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("config watcher: %v", err)
		}
	}
}
