package serve

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watch regenerates the site when organized artifacts change. Bursts of
// writes from an organize run collapse into a single regeneration via
// the configured debounce window.
func (s *Server) watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watchTree(watcher, s.config.OrganizedDir); err != nil {
		return err
	}

	var pending *time.Timer
	rebuilds := make(chan struct{}, 1)
	defer func() {
		if pending != nil {
			pending.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.logger.Warn("watcher error", slog.String("error", err.Error()))
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Op.Has(fsnotify.Create | fsnotify.Write | fsnotify.Remove | fsnotify.Rename) {
				continue
			}
			// New category directories need their own watch.
			if event.Op.Has(fsnotify.Create) {
				if err := watchTree(watcher, event.Name); err == nil {
					s.logger.Debug("watching new path", slog.String("path", event.Name))
				}
			}
			if pending == nil {
				pending = time.AfterFunc(s.config.Debounce, func() {
					select {
					case rebuilds <- struct{}{}:
					default:
					}
				})
			} else {
				pending.Reset(s.config.Debounce)
			}
		case <-rebuilds:
			pending = nil
			s.logger.Info("artifacts changed, regenerating site")
			if err := s.regenerate(); err != nil {
				s.logger.Error("regeneration failed", slog.String("error", err.Error()))
			}
		}
	}
}

// watchTree registers a directory and all its subdirectories. Non-directory
// paths are ignored.
func watchTree(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || !d.IsDir() {
			return nil
		}
		if err := watcher.Add(path); err != nil {
			return fmt.Errorf("failed to watch %s: %w", path, err)
		}
		return nil
	})
}
