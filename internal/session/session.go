// Package session holds the state of one backpack session: the array and
// linked inventories side by side, plus the logger used to trace operations.
// A Session is opened once at program start and closed once at exit.
package session

import (
	"io"
	"log/slog"

	"github.com/mesh-intelligence/backpack/internal/array"
	"github.com/mesh-intelligence/backpack/internal/linked"
	"github.com/mesh-intelligence/backpack/pkg/types"
)

// Session owns both inventories. It is not safe for concurrent use.
type Session struct {
	config types.Config
	array  *array.Inventory
	list   *linked.Inventory
	log    *slog.Logger
	closed bool
}

// Option configures a Session.
type Option func(*options)

type options struct {
	logger   *slog.Logger
	listOpts []linked.Option
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithListOptions forwards options to the linked inventory.
func WithListOptions(opts ...linked.Option) Option {
	return func(o *options) {
		o.listOpts = append(o.listOpts, opts...)
	}
}

// Open validates cfg and creates both inventories empty.
func Open(cfg types.Config, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	o := options{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(&o)
	}

	s := &Session{
		config: cfg,
		array:  array.New(cfg.Capacity),
		list:   linked.New(o.listOpts...),
		log:    o.logger,
	}
	s.log.Debug("session opened", "capacity", cfg.Capacity)
	return s, nil
}

// Array returns the fixed-capacity inventory.
// Returns ErrSessionClosed after Close.
func (s *Session) Array() (*ArrayView, error) {
	if s.closed {
		return nil, types.ErrSessionClosed
	}
	return &ArrayView{inv: s.array, log: s.log.With("backpack", "array")}, nil
}

// List returns the linked inventory.
// Returns ErrSessionClosed after Close.
func (s *Session) List() (*ListView, error) {
	if s.closed {
		return nil, types.ErrSessionClosed
	}
	return &ListView{inv: s.list, log: s.log.With("backpack", "list")}, nil
}

// Counters reports the three comparison counters without resetting them.
func (s *Session) Counters() types.Counters {
	return types.Counters{
		ArrayLinear: s.array.LinearComparisons(),
		ArrayBinary: s.array.BinaryComparisons(),
		ListLinear:  s.list.Comparisons(),
	}
}

// Config returns the configuration the session was opened with.
func (s *Session) Config() types.Config { return s.config }

// Close releases every node of the linked inventory. Idempotent.
func (s *Session) Close() error {
	if s.closed {
		return nil
	}
	released := s.list.Clear()
	s.closed = true
	s.log.Debug("session closed", "nodes_released", released)
	return nil
}
