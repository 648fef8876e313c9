package watcher

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/google/go-cmp/cmp"

	"github.com/MKhiriev/go-plot-style/internal/logger"
	"github.com/MKhiriev/go-plot-style/internal/rcparams"
	"github.com/MKhiriev/go-plot-style/internal/style"
)

// DefaultDebounce is used when no debounce is configured.
const DefaultDebounce = 500 * time.Millisecond

// ErrNoStyles is returned by [NewHolder] without refs.
var ErrNoStyles = errors.New("no styles to hold")

// Composer resolves and merges style refs in order.
type Composer interface {
	Compose(ctx context.Context, refs ...string) (*style.Document, error)
}

// State is one successfully applied composition.
type State struct {
	// Version starts at 1 and grows with every successful reload.
	Version  uint64
	Refs     []string
	Document *style.Document
	Params   *rcparams.Params
	Report   rcparams.Report
	LoadedAt time.Time
}

// Config tells a [Holder] what to load and watch.
type Config struct {
	// Refs are the style refs composed in order.
	Refs []string
	// Files are the paths watched for changes, usually the file refs.
	Files []string
	// UnknownKeys is applied on every load.
	UnknownKeys rcparams.UnknownKeyPolicy
	// Debounce delays a reload after the last file event.
	Debounce time.Duration
}

type Holder struct {
	composer Composer
	cfg      Config
	now      func() time.Time

	mu      sync.RWMutex
	current State

	listenersMu sync.RWMutex
	listeners   []chan<- State

	logger *logger.Logger
}

// NewHolder loads cfg.Refs once and returns a holder for the result.
func NewHolder(ctx context.Context, composer Composer, cfg Config, logger *logger.Logger) (*Holder, error) {
	if len(cfg.Refs) == 0 {
		return nil, ErrNoStyles
	}
	if cfg.Debounce <= 0 {
		cfg.Debounce = DefaultDebounce
	}

	h := &Holder{
		composer: composer,
		cfg:      cfg,
		now:      time.Now,
		logger:   logger,
	}
	if err := h.Reload(ctx); err != nil {
		return nil, err
	}
	return h, nil
}

// Get returns the current state.
func (h *Holder) Get() State {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.current
}

// Reload composes and applies the refs again. On error the current state is
// kept.
func (h *Holder) Reload(ctx context.Context) error {
	doc, err := h.composer.Compose(ctx, h.cfg.Refs...)
	if err != nil {
		h.logger.Error().Err(err).Str("event", "style.reload_failed").Msg("failed to load styles")
		return fmt.Errorf("load styles: %w", err)
	}

	params := rcparams.DefaultParams()
	report, err := params.ApplyDocument(doc,
		rcparams.WithUnknownKeys(h.cfg.UnknownKeys),
		rcparams.WithLogger(h.logger),
	)
	if err != nil {
		h.logger.Error().Err(err).Str("event", "style.apply_failed").Msg("styles failed to apply")
		return fmt.Errorf("apply styles: %w", err)
	}

	h.mu.Lock()
	old := h.current
	next := State{
		Version:  old.Version + 1,
		Refs:     h.cfg.Refs,
		Document: doc,
		Params:   params,
		Report:   report,
		LoadedAt: h.now(),
	}
	h.current = next
	h.mu.Unlock()

	if old.Document != nil {
		if diff := cmp.Diff(old.Document.Map(), doc.Map()); diff != "" {
			h.logger.Debug().Str("diff", diff).Msg("style settings changed")
		}
	}
	h.logger.Info().
		Str("event", "style.reload_success").
		Uint64("version", next.Version).
		Int("keys", doc.Len()).
		Msg("styles loaded")

	h.notifyListeners(next)
	return nil
}

// Subscribe registers ch for states published after a reload. Sends never
// block; a full channel misses the update.
func (h *Holder) Subscribe(ch chan<- State) {
	h.listenersMu.Lock()
	defer h.listenersMu.Unlock()
	h.listeners = append(h.listeners, ch)
}

func (h *Holder) notifyListeners(s State) {
	h.listenersMu.RLock()
	defer h.listenersMu.RUnlock()

	for _, ch := range h.listeners {
		select {
		case ch <- s:
		default:
			h.logger.Warn().Str("event", "style.listener_skip").Msg("listener channel full")
		}
	}
}

// Run watches cfg.Files and reloads after changes settle, until ctx is
// done. Without files it just waits for ctx.
func (h *Holder) Run(ctx context.Context) error {
	if len(h.cfg.Files) == 0 {
		<-ctx.Done()
		return nil
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Close()

	// Directories are watched so that editors replacing the file by rename
	// keep triggering events.
	watched := make(map[string]struct{}, len(h.cfg.Files))
	dirs := make(map[string]struct{})
	for _, f := range h.cfg.Files {
		abs, err := filepath.Abs(f)
		if err != nil {
			return fmt.Errorf("resolve %q: %w", f, err)
		}
		watched[abs] = struct{}{}
		dirs[filepath.Dir(abs)] = struct{}{}
	}
	for dir := range dirs {
		if err := w.Add(dir); err != nil {
			return fmt.Errorf("watch %q: %w", dir, err)
		}
	}

	h.logger.Info().Strs("files", h.cfg.Files).Msg("watching style files")

	var (
		timer   *time.Timer
		pending = make(chan struct{}, 1)
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			h.logger.Info().Str("event", "style.watcher_stopped").Msg("style watcher stopped")
			return nil

		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if _, ok := watched[filepath.Clean(event.Name)]; !ok {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			h.logger.Debug().Str("file", event.Name).Str("op", event.Op.String()).Msg("style file changed")

			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(h.cfg.Debounce, func() {
				select {
				case pending <- struct{}{}:
				default:
				}
			})

		case <-pending:
			// Errors are logged by Reload; the previous state stays active.
			_ = h.Reload(ctx)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			h.logger.Error().Err(err).Str("event", "style.watcher_error").Msg("style watcher error")
		}
	}
}
