package avv

import (
	"errors"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("avv: invalid option supplied")

// Observer receives traversal statistics from Compute. Implementations
// must be safe for concurrent use: ObserveSource is called from workers.
type Observer interface {
	// ObserveSource is called once per scored source with the size of its
	// Depth Map and the deepest layer reached.
	ObserveSource(reached, maxDepth int)

	// ObserveRun is called once per successful Compute.
	ObserveRun(nodes, edges int, elapsed time.Duration)
}

type nopObserver struct{}

func (nopObserver) ObserveSource(int, int)             {}
func (nopObserver) ObserveRun(int, int, time.Duration) {}

// Option configures Compute.
type Option func(*Options)

// Options holds Compute parameters.
type Options struct {
	// Workers bounds the number of concurrent per-source traversals.
	Workers int

	// MaxDepth, if > 0, ignores nodes farther than MaxDepth from the source.
	MaxDepth int

	// Logger receives debug-level run summaries.
	Logger logrus.FieldLogger

	// Observer receives traversal statistics.
	Observer Observer

	err error
}

// DefaultOptions returns Options with one worker per CPU, no depth limit,
// a discarding logger and a no-op observer.
func DefaultOptions() Options {
	quiet := logrus.New()
	quiet.SetOutput(io.Discard)

	return Options{
		Workers:  runtime.GOMAXPROCS(0),
		Logger:   quiet,
		Observer: nopObserver{},
	}
}

// WithWorkers sets the worker bound; n < 1 is an ErrOptionViolation.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Workers must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithMaxDepth limits every traversal to depth d; d == 0 means no limit and
// d < 0 is an ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithLogger sets the logger used for run summaries.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithObserver sets the statistics sink.
func WithObserver(obs Observer) Option {
	return func(o *Options) {
		if obs != nil {
			o.Observer = obs
		}
	}
}
