package bundle

import (
	"sort"

	"github.com/erraggy/laika/config"
	"github.com/erraggy/laika/directive"
	"github.com/erraggy/laika/document"
	"github.com/erraggy/laika/rewrite"
)

// Logger is the minimal structured-logging sink Merge uses to report a
// bundle's Process hook declining to transform one of its peers (a
// no-op). Its shape matches log/slog's, and the pipeline package's own
// Logger interface, so either satisfies it without an adapter.
type Logger interface {
	Debug(msg string, args ...any)
	Warn(msg string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Warn(string, ...any)  {}

// Merge sorts bundles by Origin (Library, Parser, Theme, Mixed, User,
// stable within an origin by insertion order), runs each bundle's
// Process hook over its peers, then folds the result into one effective
// bundle where a higher-priority origin's contribution wins and a
// missing contribution is inherited from a lower-priority bundle.
//
// This is laika's reading of the teacher's overlay.Applier ordered-
// action application, generalized from "apply JSONPath overlay actions
// to one document in sequence" to "fold named-origin bundles into one
// effective configuration, with a pre-pass allowing any bundle to
// rewrite its peers before the fold."
func Merge(bundles []*ExtensionBundle) *ExtensionBundle {
	return MergeWithLogger(bundles, nopLogger{})
}

// MergeWithLogger behaves like Merge, additionally reporting through
// logger whenever a bundle's Process hook leaves a peer unchanged.
func MergeWithLogger(bundles []*ExtensionBundle, logger Logger) *ExtensionBundle {
	if logger == nil {
		logger = nopLogger{}
	}
	sorted := sortByOrigin(bundles)
	processed := runProcessExtension(sorted, logger)
	return foldBundles(processed)
}

func sortByOrigin(bundles []*ExtensionBundle) []*ExtensionBundle {
	out := append([]*ExtensionBundle(nil), bundles...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Origin.rank() < out[j].Origin.rank()
	})
	return out
}

// runProcessExtension gives every bundle with a Process hook a chance to
// rewrite its peers (everything but itself), left to right, so a later
// (higher-priority) bundle's Process hook sees any adjustments an
// earlier bundle's hook already made.
func runProcessExtension(sorted []*ExtensionBundle, logger Logger) []*ExtensionBundle {
	working := append([]*ExtensionBundle(nil), sorted...)
	for i, b := range working {
		if b.Process == nil {
			continue
		}
		others := make([]*ExtensionBundle, 0, len(working)-1)
		idx := make([]int, 0, len(working)-1)
		for j, o := range working {
			if j == i {
				continue
			}
			others = append(others, o)
			idx = append(idx, j)
		}
		transformed := b.Process(others)
		if transformed == nil {
			logger.Warn("bundle Process hook left all peers unchanged", "bundle", b.Name)
			continue
		}
		for k, j := range idx {
			if k < len(transformed) && transformed[k] != nil {
				working[j] = transformed[k]
			} else {
				logger.Warn("bundle Process hook left a peer unchanged", "bundle", b.Name, "peer", working[j].Name)
			}
		}
	}
	return working
}

// foldBundles combines the bundle list into one effective bundle, each
// successive (higher-priority) bundle winning over the accumulator built
// from lower-priority bundles so far, and inheriting anything the
// accumulator has that it itself does not contribute.
func foldBundles(sorted []*ExtensionBundle) *ExtensionBundle {
	acc := New("", Library)
	for _, b := range sorted {
		acc = withBase(b, acc)
	}
	return acc
}

// withBase merges override on top of base: override's contributions win
// field-by-field, base's fill in anything override leaves nil.
func withBase(override, base *ExtensionBundle) *ExtensionBundle {
	merged := &ExtensionBundle{
		Name:               firstNonEmpty(override.Name, base.Name),
		Origin:             override.Origin,
		DirectiveSpecs:     mergeDirectiveSpecs(base.DirectiveSpecs, override.DirectiveSpecs),
		ConfigProvider:     firstNonNilProvider(override.ConfigProvider, base.ConfigProvider),
		MarkupParser:       firstNonNilMarkupParser(override.MarkupParser, base.MarkupParser),
		TemplateParser:     firstNonNilTemplateParser(override.TemplateParser, base.TemplateParser),
		StylesheetParser:   firstNonNilStylesheetParser(override.StylesheetParser, base.StylesheetParser),
		Doctype:            firstNonNilDoctype(override.Doctype, base.Doctype),
		SlugBuilder:        firstNonNilSlugBuilder(override.SlugBuilder, base.SlugBuilder),
		RewriteRules:       mergeRewriteRules(base.RewriteRules, override.RewriteRules),
		RenderOverrides:    mergeRenderOverrides(base.RenderOverrides, override.RenderOverrides),
		PathTranslator:     firstNonNilPathTranslator(override.PathTranslator, base.PathTranslator),
		BaseConfig:         firstNonNilConfig(override.BaseConfig, base.BaseConfig),
		Process:             override.Process,
		ForStrictMode:       override.ForStrictMode,
		RawContentDisabled:  override.RawContentDisabled,
		PreProcessInput:     firstNonNilTextTransform(override.PreProcessInput, base.PreProcessInput),
		PostProcessDocument: firstNonNilDocTransform(override.PostProcessDocument, base.PostProcessDocument),
	}
	return merged
}

func firstNonNilTextTransform(override, base func(string) string) func(string) string {
	if override != nil {
		return override
	}
	return base
}

func firstNonNilDocTransform(override, base func(*document.UnresolvedDocument) *document.UnresolvedDocument) func(*document.UnresolvedDocument) *document.UnresolvedDocument {
	if override != nil {
		return override
	}
	return base
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}

// mergeDirectiveSpecs combines two directive-name registries, override
// winning on key collision.
func mergeDirectiveSpecs(base, override map[string]directive.Spec) map[string]directive.Spec {
	if len(base) == 0 && len(override) == 0 {
		return nil
	}
	out := make(map[string]directive.Spec, len(base)+len(override))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range override {
		out[k] = v
	}
	return out
}

// mergeRewriteRules combines two phase-keyed rule-factory registries,
// concatenating base's factories before override's so that a contributed
// rule runs in base-then-override order within a phase.
func mergeRewriteRules(base, override map[rewrite.PhaseKind][]RewriteRuleFactory) map[rewrite.PhaseKind][]RewriteRuleFactory {
	if len(base) == 0 && len(override) == 0 {
		return nil
	}
	out := make(map[rewrite.PhaseKind][]RewriteRuleFactory, len(base)+len(override))
	for phase, factories := range base {
		out[phase] = append(out[phase], factories...)
	}
	for phase, factories := range override {
		out[phase] = append(out[phase], factories...)
	}
	return out
}

// mergeRenderOverrides combines two format-keyed renderer registries,
// override winning on format collision.
func mergeRenderOverrides(base, override map[string]RenderOverride) map[string]RenderOverride {
	if len(base) == 0 && len(override) == 0 {
		return nil
	}
	out := make(map[string]RenderOverride, len(base)+len(override))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range override {
		out[k] = v
	}
	return out
}

func firstNonNilProvider(override, base func() (*config.Config, error)) func() (*config.Config, error) {
	if override != nil {
		return override
	}
	return base
}

func firstNonNilMarkupParser(override, base func(string) ([]document.Block, error)) func(string) ([]document.Block, error) {
	if override != nil {
		return override
	}
	return base
}

func firstNonNilTemplateParser(override, base func(string) (*document.UnresolvedDocument, error)) func(string) (*document.UnresolvedDocument, error) {
	if override != nil {
		return override
	}
	return base
}

func firstNonNilStylesheetParser(override, base func(string) (document.StyleSheet, error)) func(string) (document.StyleSheet, error) {
	if override != nil {
		return override
	}
	return base
}

func firstNonNilDoctype(override, base DoctypeMatcher) DoctypeMatcher {
	if override != nil {
		return override
	}
	return base
}

func firstNonNilSlugBuilder(override, base SlugBuilder) SlugBuilder {
	if override != nil {
		return override
	}
	return base
}

func firstNonNilPathTranslator(override, base PathTranslator) PathTranslator {
	if override != nil {
		return override
	}
	return base
}

func firstNonNilConfig(override, base *config.Config) *config.Config {
	if override != nil {
		return override
	}
	return base
}
