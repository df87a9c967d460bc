package auth

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/tailorkit/tailor-cli/internal/logger"
)

// CredentialWatcher watches the credential database file and invokes a
// callback when another process rewrites it, so a long-lived session picks
// up a login or logout performed elsewhere without restarting.
type CredentialWatcher struct {
	path     string
	onChange func()
	watcher  *fsnotify.Watcher
	done     chan struct{}
}

// NewCredentialWatcher creates a watcher for path. onChange runs on the
// watcher goroutine; keep it short or dispatch.
func NewCredentialWatcher(path string, onChange func()) *CredentialWatcher {
	return &CredentialWatcher{
		path:     path,
		onChange: onChange,
		done:     make(chan struct{}),
	}
}

// Start begins watching. It watches the parent directory rather than the
// file itself so atomic rename-over writes are still observed. Runs until
// ctx is cancelled or Close is called.
func (w *CredentialWatcher) Start(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	w.watcher = watcher

	dir := filepath.Dir(w.path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	go w.loop(ctx)
	return nil
}

func (w *CredentialWatcher) loop(ctx context.Context) {
	defer close(w.done)

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Name != w.path {
				continue
			}
			if event.Op.Has(fsnotify.Write) || event.Op.Has(fsnotify.Create) {
				logger.Debug("credential file changed: %s", event.Op)
				w.onChange()
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logger.Warn("credential watcher: %v", err)
		}
	}
}

// Close stops the watcher and waits for the event loop to exit.
func (w *CredentialWatcher) Close() error {
	if w.watcher == nil {
		return nil
	}
	err := w.watcher.Close()
	<-w.done
	return err
}
