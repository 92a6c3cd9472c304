package partlist

import (
	"log/slog"
	"reflect"

	"github.com/hupe1980/partlist/codec"
)

type options[K comparable, E any] struct {
	keys             []K
	strictKeys       bool
	reclaimEmpty     bool
	capacity         int
	equal            func(a, b E) bool
	copyFn           func(E) (E, error)
	observer         Observer[K, E]
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures a List.
//
// Options are generic over the key and element types, so they usually need
// explicit instantiation:
//
//	l := partlist.New(kindOf, partlist.WithKeys[Kind, *Shape](Circle, Square))
type Option[K comparable, E any] func(*options[K, E])

// WithKeys pre-declares partitions for the given keys. Declared partitions
// exist (empty) from the start and are never reclaimed.
func WithKeys[K comparable, E any](keys ...K) Option[K, E] {
	return func(o *options[K, E]) {
		o.keys = append(o.keys, keys...)
	}
}

// WithStrictKeys disables lazy partition creation: inserting an element whose
// key was not declared with WithKeys fails with ErrUnsupportedKey.
func WithStrictKeys[K comparable, E any]() Option[K, E] {
	return func(o *options[K, E]) {
		o.strictKeys = true
	}
}

// WithReclaimEmpty unregisters a lazily created partition once its last
// element is removed. Outstanding references to it become detached.
//
// Without this option partitions are kept for the lifetime of the list, which
// grows memory with the number of distinct keys ever seen.
func WithReclaimEmpty[K comparable, E any]() Option[K, E] {
	return func(o *options[K, E]) {
		o.reclaimEmpty = true
	}
}

// WithCapacity preallocates room for n elements.
func WithCapacity[K comparable, E any](n int) Option[K, E] {
	return func(o *options[K, E]) {
		o.capacity = max(n, 0)
	}
}

// WithEqual sets the equality used by IndexOf, Contains and RemoveElement.
// The default is reflect.DeepEqual.
func WithEqual[K comparable, E any](eq func(a, b E) bool) Option[K, E] {
	return func(o *options[K, E]) {
		if eq != nil {
			o.equal = eq
		}
	}
}

// WithCopy sets the per-element copy hook used by Clone.
// The default copies the element value as is (shallow).
func WithCopy[K comparable, E any](fn func(E) (E, error)) Option[K, E] {
	return func(o *options[K, E]) {
		if fn != nil {
			o.copyFn = fn
		}
	}
}

// WithCodecCopy makes Clone deep-copy elements through a codec round trip.
func WithCodecCopy[K comparable, E any](c codec.Codec) Option[K, E] {
	return WithCopy[K](CodecCopy[E](c))
}

// WithObserver registers an observer for all changes.
// Pass nil to remove it.
func WithObserver[K comparable, E any](obs Observer[K, E]) Option[K, E] {
	return func(o *options[K, E]) {
		o.observer = obs
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &partlist.BasicMetricsCollector{}
//	l := partlist.New(keyFn, partlist.WithMetricsCollector[string, Item](metrics))
//	// ... use l ...
//	stats := metrics.GetStats()
//	fmt.Printf("Inserts: %d, cascades touched: %d\n", stats.InsertCount, stats.CascadeTouched)
func WithMetricsCollector[K comparable, E any](mc MetricsCollector) Option[K, E] {
	return func(o *options[K, E]) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
func WithLogger[K comparable, E any](logger *Logger) Option[K, E] {
	return func(o *options[K, E]) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel[K comparable, E any](level slog.Level) Option[K, E] {
	return func(o *options[K, E]) {
		o.logger = NewTextLogger(level)
	}
}

// CodecCopy returns a copy hook that deep-copies elements through c.
func CodecCopy[E any](c codec.Codec) func(E) (E, error) {
	return func(e E) (E, error) {
		return codec.DeepCopy(c, e)
	}
}

func applyOptions[K comparable, E any](optFns []Option[K, E]) options[K, E] {
	o := options[K, E]{
		equal:            func(a, b E) bool { return reflect.DeepEqual(a, b) },
		copyFn:           func(e E) (E, error) { return e, nil },
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
