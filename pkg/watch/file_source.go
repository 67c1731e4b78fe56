package watch

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// FileChangeSource turns writes to settings files into change hints.
// Parent directories are watched rather than the files, because preference
// stores are usually replaced atomically by rename.
type FileChangeSource struct {
	paths  []string
	logger *zap.Logger
}

// NewFileChangeSource creates a source watching the given files.
func NewFileChangeSource(logger *zap.Logger, paths ...string) *FileChangeSource {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FileChangeSource{
		paths:  paths,
		logger: logger,
	}
}

// Changes starts an fsnotify watcher. At least one parent directory must be watchable.
func (s *FileChangeSource) Changes(ctx context.Context) (<-chan struct{}, error) {
	if len(s.paths) == 0 {
		return nil, errors.New("no settings files to watch")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	names := make(map[string]struct{}, len(s.paths))
	added := 0
	var lastErr error
	for _, path := range s.paths {
		path = filepath.Clean(path)
		names[path] = struct{}{}

		dir := filepath.Dir(path)
		if err := watcher.Add(dir); err != nil {
			lastErr = fmt.Errorf("failed to watch %s: %w", dir, err)
			continue
		}
		added++
	}
	if added == 0 {
		_ = watcher.Close()
		return nil, lastErr
	}

	out := make(chan struct{}, 1)
	go func() {
		defer close(out)
		defer func() { _ = watcher.Close() }()

		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if _, watched := names[filepath.Clean(event.Name)]; !watched {
					continue
				}
				s.logger.Debug("settings file changed",
					zap.String("path", event.Name), zap.Stringer("op", event.Op))
				select {
				case out <- struct{}{}:
				default:
					// A hint is already pending
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				s.logger.Debug("file watcher error", zap.Error(err))
			}
		}
	}()

	return out, nil
}
