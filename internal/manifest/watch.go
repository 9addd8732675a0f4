package manifest

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/Iron-Ham/leagueroster/internal/catalog"
	"github.com/Iron-Ham/leagueroster/internal/errors"
	"github.com/Iron-Ham/leagueroster/internal/event"
	"github.com/Iron-Ham/leagueroster/internal/logging"
)

// DefaultDebounce is how long the watcher waits after the last file event
// before reloading.
const DefaultDebounce = 200 * time.Millisecond

// WatchOption configures a Watcher.
type WatchOption func(*Watcher)

// WithBus publishes a TemplatesReloadedEvent after every reload attempt.
func WithBus(bus *event.Bus) WatchOption {
	return func(w *Watcher) { w.bus = bus }
}

// WithLogger sets the watcher's logger.
func WithLogger(l *logging.Logger) WatchOption {
	return func(w *Watcher) {
		if l != nil {
			w.logger = l
		}
	}
}

// WithDebounce overrides DefaultDebounce. Non-positive values keep the default.
func WithDebounce(d time.Duration) WatchOption {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// Watcher reloads a catalog whenever its manifest changes on disk.
type Watcher struct {
	path     string
	cat      *catalog.Catalog
	fsw      *fsnotify.Watcher
	bus      *event.Bus
	logger   *logging.Logger
	debounce time.Duration
}

// NewWatcher starts watching path. The directory is watched rather than the
// file so that editors replacing the file by rename are still seen. Call Run
// to process events.
func NewWatcher(path string, cat *catalog.Catalog, opts ...WatchOption) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrapf(err, "resolve %s", path)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "create file watcher")
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		_ = fsw.Close()
		return nil, errors.Wrapf(err, "watch %s", filepath.Dir(abs))
	}

	w := &Watcher{
		path:     abs,
		cat:      cat,
		fsw:      fsw,
		logger:   logging.NopLogger(),
		debounce: DefaultDebounce,
	}
	for _, opt := range opts {
		opt(w)
	}
	w.logger = w.logger.With("manifest", abs)
	return w, nil
}

// Run processes file events until ctx is done, then closes the watcher.
// Failed reloads are logged and published; the previous templates stay in
// place.
func (w *Watcher) Run(ctx context.Context) error {
	defer func() { _ = w.fsw.Close() }()

	// editors emit several events per save; collapse them into one reload
	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			timer.Reset(w.debounce)

		case <-timer.C:
			_ = w.Reload()

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("file watcher error", "error", err)
		}
	}
}

// Reload loads the manifest and reseeds the catalog once.
func (w *Watcher) Reload() error {
	f, err := Load(w.path)
	if err == nil {
		err = f.Seed(w.cat)
	}

	if err != nil {
		w.logger.Warn("template reload failed; keeping previous templates", "error", err)
		w.publish(0, 0, err)
		return err
	}

	teams, players := len(w.cat.TeamTemplateKeys()), len(w.cat.PlayerTemplateKeys())
	w.logger.Info("templates reloaded", "team_templates", teams, "player_templates", players)
	w.publish(teams, players, nil)
	return nil
}

func (w *Watcher) publish(teams, players int, err error) {
	if w.bus != nil {
		w.bus.Publish(event.NewTemplatesReloadedEvent(w.path, teams, players, err))
	}
}

// Watch seeds cat from path and keeps it reloaded until ctx is done.
func Watch(ctx context.Context, path string, cat *catalog.Catalog, opts ...WatchOption) error {
	w, err := NewWatcher(path, cat, opts...)
	if err != nil {
		return err
	}
	if err := w.Reload(); err != nil {
		_ = w.fsw.Close()
		return err
	}
	return w.Run(ctx)
}
