package partlist

import (
	"github.com/hupe1980/partlist/codec"
	"github.com/hupe1980/partlist/config"
)

// FromConfig returns the options described by cfg for a string-keyed list.
func FromConfig[E any](cfg *config.Config) ([]Option[string, E], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}

	opts := []Option[string, E]{
		WithCapacity[string, E](cfg.Capacity),
	}
	if len(cfg.Keys) > 0 {
		opts = append(opts, WithKeys[string, E](cfg.Keys...))
	}
	if cfg.StrictKeys {
		opts = append(opts, WithStrictKeys[string, E]())
	}
	if cfg.ReclaimEmpty {
		opts = append(opts, WithReclaimEmpty[string, E]())
	}
	if c, ok := codec.ByName(cfg.CopyCodec); ok {
		opts = append(opts, WithCodecCopy[string, E](c))
	}
	if cfg.LogFormat == "json" {
		opts = append(opts, WithLogger[string, E](NewJSONLogger(level)))
	} else {
		opts = append(opts, WithLogLevel[string, E](level))
	}
	return opts, nil
}
