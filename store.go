package goprops

import (
	"os"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
)

// Store holds a validation policy and its diagnostic Sink. Updates swap in a
// new immutable snapshot, so a validation call that loaded a snapshot never
// observes a half-applied update.
type Store struct {
	mu   sync.Mutex // serializes writers; readers only Load.
	snap atomic.Pointer[snapshot]
}

type snapshot struct {
	cfg  Config
	sink Sink
}

// StoreOption customizes a Store at construction.
type StoreOption func(*snapshot)

// WithConfig sets the initial policy.
func WithConfig(c Config) StoreOption { return func(s *snapshot) { s.cfg = c } }

// WithSink sets the initial Sink.
func WithSink(sink Sink) StoreOption {
	return func(s *snapshot) {
		if sink != nil {
			s.sink = sink
		}
	}
}

var (
	defaultSinkOnce sync.Once
	defaultSink     Sink
)

// DefaultSink returns the zap-backed Sink used when none is configured.
func DefaultSink() Sink {
	defaultSinkOnce.Do(func() { defaultSink = NewZapSink(NewConsoleLogger(os.Stderr, zap.WarnLevel)) })
	return defaultSink
}

// NewStore returns a Store with DefaultConfig and DefaultSink unless
// overridden by opts.
func NewStore(opts ...StoreOption) *Store {
	s := &snapshot{cfg: DefaultConfig()}
	for _, o := range opts {
		o(s)
	}
	if s.sink == nil {
		s.sink = DefaultSink()
	}
	st := &Store{}
	st.snap.Store(s)
	return st
}

var defaultStore = NewStore()

// Default returns the process-wide Store used by the package-level functions.
func Default() *Store { return defaultStore }

func (st *Store) load() *snapshot { return st.snap.Load() }

// Config returns the current policy.
func (st *Store) Config() Config { return st.load().cfg }

// IsEnabled reports whether validation runs at all.
func (st *Store) IsEnabled() bool { return st.load().cfg.Enabled }

// CurrentLogLevel returns the active log level.
func (st *Store) CurrentLogLevel() LogLevel { return st.load().cfg.LogLevel }

// SetConfig applies a partial update. An unrecognized log level returns a
// *ConfigError and leaves the Store unchanged.
func (st *Store) SetConfig(opts ConfigOptions) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	next := *st.load()
	if opts.Enabled != nil {
		next.cfg.Enabled = *opts.Enabled
	}
	if opts.LogLevel != nil {
		lvl, err := ParseLogLevel(*opts.LogLevel)
		if err != nil {
			return err
		}
		next.cfg.LogLevel = lvl
	}
	st.snap.Store(&next)
	return nil
}

// SetSink replaces the diagnostic Sink; nil restores DefaultSink.
func (st *Store) SetSink(sink Sink) {
	if sink == nil {
		sink = DefaultSink()
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	next := *st.load()
	next.sink = sink
	st.snap.Store(&next)
}

// Reset restores DefaultConfig and DefaultSink.
func (st *Store) Reset() {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.snap.Store(&snapshot{cfg: DefaultConfig(), sink: DefaultSink()})
}

// SetConfig applies a partial update to the Default store.
func SetConfig(opts ConfigOptions) error { return defaultStore.SetConfig(opts) }

// SetSink replaces the Default store's Sink.
func SetSink(sink Sink) { defaultStore.SetSink(sink) }

// IsEnabled reports whether the Default store has validation enabled.
func IsEnabled() bool { return defaultStore.IsEnabled() }

// CurrentLogLevel returns the Default store's log level.
func CurrentLogLevel() LogLevel { return defaultStore.CurrentLogLevel() }

// Bool returns a pointer to b, for ConfigOptions literals.
func Bool(b bool) *bool { return &b }

// Level returns a pointer to name, for ConfigOptions literals.
func Level(name string) *string { return &name }
