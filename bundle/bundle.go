package bundle

import (
	"github.com/erraggy/laika/config"
	"github.com/erraggy/laika/directive"
	"github.com/erraggy/laika/document"
	"github.com/erraggy/laika/rewrite"
)

// RewriteRuleFactory builds the rule set a bundle contributes to one
// rewrite phase. Factories are called once per operation, not cached,
// so they may close over operation-scoped state (e.g. a Config).
type RewriteRuleFactory func() rewrite.RuleSet

// DoctypeMatcher reports whether a bundle's parser/theme applies to the
// given input path or declared content type.
type DoctypeMatcher func(path string) bool

// PathTranslator rewrites a link or asset target found in rendered
// output, e.g. to relocate relative paths under a themed output layout.
type PathTranslator func(basePath, target string) string

// RenderOverride produces rendered bytes for one output format from a
// resolved document tree. Laika's own renderers are a non-goal; this
// hook exists purely as an extension point a bundle may fill.
type RenderOverride func(root *document.DocumentTreeRoot) ([]byte, error)

// ProcessExtension lets a bundle inspect and transform every other
// bundle participating in the same merge, before bundles are folded.
// Returning nil for an entry leaves it unchanged.
type ProcessExtension func(others []*ExtensionBundle) []*ExtensionBundle

// ExtensionBundle is a record of partial contributions an extension
// (library, parser, theme, or end user) makes to one parse/render
// operation. Every field besides Origin and Name is optional; a nil
// field means this bundle makes no contribution for that concern.
// ExtensionBundle instances are shared across operations and must be
// treated as immutable: Merge returns a new value rather than mutating
// the bundles it is given.
type ExtensionBundle struct {
	Name   string
	Origin Origin

	// DirectiveSpecs registers additional directive grammars this bundle
	// understands, keyed by directive name.
	DirectiveSpecs map[string]directive.Spec

	// ConfigProvider supplies this bundle's base configuration, merged in
	// as the lowest-priority fallback for the operation.
	ConfigProvider func() (*config.Config, error)

	// MarkupParser parses source into the document's root block content.
	// Concrete markup grammars (Markdown, reStructuredText, ...) are
	// outside laika's own scope; this is the extension point a markup
	// library fills in.
	MarkupParser func(source string) ([]document.Block, error)

	// TemplateParser and StylesheetParser parse raw source into a
	// document tree or stylesheet leaf, when this bundle owns that
	// input kind.
	TemplateParser   func(source string) (*document.UnresolvedDocument, error)
	StylesheetParser func(source string) (document.StyleSheet, error)

	// Doctype reports whether this bundle's parser/theme claims a given
	// input.
	Doctype DoctypeMatcher

	// SlugBuilder generates anchor/filename slugs for this bundle's
	// output; see DefaultSlugBuilder for the stock implementation.
	SlugBuilder SlugBuilder

	// RewriteRules contributes rule factories per rewrite phase.
	RewriteRules map[rewrite.PhaseKind][]RewriteRuleFactory

	// RenderOverrides contributes a renderer per output format name.
	RenderOverrides map[string]RenderOverride

	// PathTranslator extends how link/asset targets are rewritten during
	// the Render phase.
	PathTranslator PathTranslator

	// BaseConfig is merged in as a config fallback beneath ConfigProvider
	// results from lower-priority bundles.
	BaseConfig *config.Config

	// Process lets this bundle transform its peers before the merge
	// fold runs (e.g. a User bundle disabling a Library bundle's
	// directives).
	Process ProcessExtension

	// ForStrictMode returns this bundle's view under BundleFilter.Strict,
	// or ok=false to drop the bundle entirely under strict mode. A nil
	// ForStrictMode leaves the bundle unchanged under strict mode.
	ForStrictMode func() (bundle *ExtensionBundle, ok bool)

	// RawContentDisabled returns this bundle's view when
	// BundleFilter.AcceptRawContent is false. A nil value leaves the
	// bundle unchanged.
	RawContentDisabled func() *ExtensionBundle

	// PreProcessInput transforms raw source text before parsing (pipeline
	// step 1).
	PreProcessInput func(source string) string

	// PostProcessDocument transforms a parsed document's tree after
	// rewrite phases have run (pipeline step 7).
	PostProcessDocument func(doc *document.UnresolvedDocument) *document.UnresolvedDocument
}

// New returns an empty bundle for origin, ready to have contributions
// attached via its exported fields.
func New(name string, origin Origin) *ExtensionBundle {
	return &ExtensionBundle{Name: name, Origin: origin}
}
