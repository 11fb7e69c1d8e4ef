package pipeline

import (
	"fmt"
	"io"

	"github.com/erraggy/laika/bundle"
	"github.com/erraggy/laika/hocon"
	"github.com/erraggy/laika/internal/options"
)

// Option configures one pipeline operation. Following the teacher's
// parser.Option / parser.ParseWithOptions pattern: a private runConfig
// accumulates every option, then a terminal entry point validates and
// executes it.
type Option func(*runConfig) error

// runConfig holds everything one ParseWithOptions call needs.
type runConfig struct {
	source *string
	reader io.Reader
	bytes  []byte

	sourceName string

	bundles         []*bundle.ExtensionBundle
	filter          bundle.BundleFilter
	configOverrides []configOverride
	messageFilters  MessageFilters
	logger          Logger
	includeOptions  hocon.ResolverOptions
}

type configOverride struct {
	path  string
	value hocon.ConfigValue
}

// WithSource specifies a string as the operation's input source.
func WithSource(text string) Option {
	return func(cfg *runConfig) error {
		cfg.source = &text
		return nil
	}
}

// WithReader specifies an io.Reader as the input source.
func WithReader(r io.Reader) Option {
	return func(cfg *runConfig) error {
		cfg.reader = r
		return nil
	}
}

// WithBytes specifies a byte slice as the input source.
func WithBytes(b []byte) Option {
	return func(cfg *runConfig) error {
		cfg.bytes = b
		return nil
	}
}

// WithSourceName overrides the name attached to diagnostics and the
// resulting document's path, e.g. for an input read from a pipe.
func WithSourceName(name string) Option {
	return func(cfg *runConfig) error {
		cfg.sourceName = name
		return nil
	}
}

// WithBundle appends an extension bundle to the operation's bundle list.
func WithBundle(b *bundle.ExtensionBundle) Option {
	return func(cfg *runConfig) error {
		cfg.bundles = append(cfg.bundles, b)
		return nil
	}
}

// WithBundleFilter sets the BundleFilter applied before bundles merge.
func WithBundleFilter(f bundle.BundleFilter) Option {
	return func(cfg *runConfig) error {
		cfg.filter = f
		return nil
	}
}

// WithMessageFilters sets the fail/render thresholds for this operation.
func WithMessageFilters(f MessageFilters) Option {
	return func(cfg *runConfig) error {
		cfg.messageFilters = f
		return nil
	}
}

// WithLogger sets the Logger this operation reports through.
func WithLogger(l Logger) Option {
	return func(cfg *runConfig) error {
		cfg.logger = l
		return nil
	}
}

// WithConfigOverride sets value at path as a programmatic configuration
// override, taking priority over the document's own configuration
// header once resolved.
func WithConfigOverride(path string, value hocon.ConfigValue) Option {
	return func(cfg *runConfig) error {
		cfg.configOverrides = append(cfg.configOverrides, configOverride{path: path, value: value})
		return nil
	}
}

// WithIncludeOptions sets the hocon.ResolverOptions used to resolve
// `include` directives in the document's configuration header.
func WithIncludeOptions(o hocon.ResolverOptions) Option {
	return func(cfg *runConfig) error {
		cfg.includeOptions = o
		return nil
	}
}

// applyOptions runs opts against a fresh runConfig with the package's
// defaults, then validates exactly one input source was given.
func applyOptions(opts ...Option) (*runConfig, error) {
	cfg := &runConfig{
		messageFilters: DefaultMessageFilters(),
		logger:         NopLogger{},
	}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := options.ValidateSingleInputSource(
		"pipeline: must specify an input source (use WithSource, WithReader, or WithBytes)",
		"pipeline: must specify exactly one input source",
		cfg.source != nil, cfg.reader != nil, cfg.bytes != nil,
	); err != nil {
		return nil, err
	}
	return cfg, nil
}

// resolveInput reads the configured input source into a single string.
func (cfg *runConfig) resolveInput() (string, error) {
	switch {
	case cfg.source != nil:
		return *cfg.source, nil
	case cfg.bytes != nil:
		return string(cfg.bytes), nil
	case cfg.reader != nil:
		data, err := io.ReadAll(cfg.reader)
		if err != nil {
			return "", fmt.Errorf("pipeline: reading input: %w", err)
		}
		return string(data), nil
	default:
		return "", fmt.Errorf("pipeline: no input source specified")
	}
}
