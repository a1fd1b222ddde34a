// Package watcher reloads the catalog file when it changes on disk.
package watcher

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce coalesces editor save bursts into one reload
const DefaultDebounce = 200 * time.Millisecond

var (
	ErrAlreadyStarted = errors.New("watcher가 이미 실행 중입니다")
	ErrFileRemoved    = errors.New("감시 중인 파일이 삭제되었습니다")
)

// Option configures a Watcher
type Option func(*Watcher)

// WithDebounce sets the debounce window
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithOnChange sets the callback run after the file settles
func WithOnChange(fn func()) Option {
	return func(w *Watcher) { w.onChange = fn }
}

// WithOnError sets the callback for watch errors
func WithOnError(fn func(error)) Option {
	return func(w *Watcher) { w.onError = fn }
}

// WithLogger sets the logger
func WithLogger(l *zap.Logger) Option {
	return func(w *Watcher) { w.logger = l }
}

// Watcher watches a single file. The parent directory is watched so
// atomic rename-on-save is seen as a write.
type Watcher struct {
	path     string
	debounce time.Duration
	onChange func()
	onError  func(error)
	logger   *zap.Logger

	mu      sync.Mutex
	fsw     *fsnotify.Watcher
	timer   *time.Timer
	gen     uint64 // bumped on every trigger; only the latest timer may fire
	cancel  context.CancelFunc
	done    chan struct{}
	started bool
}

// New creates a watcher for path
func New(path string, opts ...Option) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("경로 변환 실패: %w", err)
	}

	w := &Watcher{
		path:     abs,
		debounce: DefaultDebounce,
		onChange: func() {},
		onError:  func(error) {},
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Path returns the watched file
func (w *Watcher) Path() string {
	return w.path
}

// Start begins watching until ctx is done or Close is called
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.started {
		return ErrAlreadyStarted
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("fsnotify 생성 실패: %w", err)
	}
	if err := fsw.Add(filepath.Dir(w.path)); err != nil {
		fsw.Close()
		return fmt.Errorf("디렉토리 감시 실패: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	w.fsw = fsw
	w.cancel = cancel
	w.done = make(chan struct{})
	w.started = true

	go w.loop(ctx, fsw, w.done)

	w.logger.Debug("Watching catalog", zap.String("path", w.path))
	return nil
}

// Close stops the watcher and waits for its goroutine to exit
func (w *Watcher) Close() error {
	w.mu.Lock()
	if !w.started {
		w.mu.Unlock()
		return nil
	}
	w.started = false
	w.cancel()
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	fsw, done := w.fsw, w.done
	w.fsw = nil
	w.mu.Unlock()

	err := fsw.Close()
	<-done
	return err
}

func (w *Watcher) loop(ctx context.Context, fsw *fsnotify.Watcher, done chan struct{}) {
	defer close(done)

	target := filepath.Base(w.path)
	for {
		select {
		case <-ctx.Done():
			return

		case ev, ok := <-fsw.Events:
			if !ok {
				return
			}
			if filepath.Base(ev.Name) != target {
				continue
			}

			switch {
			case ev.Op.Has(fsnotify.Remove):
				// 에디터가 삭제 후 재생성하는 경우가 있어 파일이 남아 있으면 변경으로 본다
				if _, err := os.Stat(w.path); err == nil {
					w.trigger()
				} else {
					w.onError(ErrFileRemoved)
				}
			case ev.Op.Has(fsnotify.Write), ev.Op.Has(fsnotify.Create), ev.Op.Has(fsnotify.Rename):
				w.trigger()
			}

		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			w.onError(err)
		}
	}
}

// trigger restarts the debounce timer
func (w *Watcher) trigger() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.started {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.gen++
	gen := w.gen
	w.timer = time.AfterFunc(w.debounce, func() { w.fire(gen) })
}

// fire runs the change callback unless a later trigger superseded gen
func (w *Watcher) fire(gen uint64) {
	w.mu.Lock()
	if gen != w.gen {
		w.mu.Unlock()
		return
	}
	started := w.started
	w.timer = nil
	w.mu.Unlock()

	if !started {
		return
	}
	w.logger.Debug("Catalog changed", zap.String("path", w.path))
	w.onChange()
}
