// Package pipeline drives laika's document pipeline: pre-processing raw
// text, parsing a configuration header and root element, resolving
// configuration, running rewrite phases, and post-processing the result.
// It is the glue between the bundle, config, directive, document, hocon,
// and rewrite packages.
package pipeline

import (
	"github.com/erraggy/laika/bundle"
	"github.com/erraggy/laika/config"
	"github.com/erraggy/laika/hocon"
)

// OperationConfig is the merged configuration for one parse/render/
// rewrite operation: the ordered bundle list (before Merge), a filter
// applied before merging, any user-supplied configuration overrides, and
// the message-level thresholds that control failure and rendering.
type OperationConfig struct {
	Bundles         []*bundle.ExtensionBundle
	Filter          bundle.BundleFilter
	ConfigOverrides *config.Config
	MessageFilters  MessageFilters
	Logger          Logger
	IncludeOptions  hocon.ResolverOptions
}

// effectiveBundle returns the single bundle the operation should use:
// Filter applied, then all surviving bundles merged by priority.
func (c OperationConfig) effectiveBundle() *bundle.ExtensionBundle {
	filtered := c.Filter.Apply(c.Bundles)
	logger := c.Logger
	if logger == nil {
		logger = NopLogger{}
	}
	return bundle.MergeWithLogger(filtered, logger)
}
