package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/erraggy/laika/bundle"
	"github.com/erraggy/laika/config"
	"github.com/erraggy/laika/document"
	"github.com/erraggy/laika/hocon"
	"github.com/erraggy/laika/rewrite"
)

// Diagnostic is a single message produced during an operation, subject
// to MessageFilters.
type Diagnostic struct {
	Level   MessageLevel
	Message string
}

// ParseResult is the outcome of one ParseWithOptions call: the resolved
// document tree, its resolved configuration, and any diagnostics that
// survived MessageFilters.Render.
type ParseResult struct {
	Document    *document.UnresolvedDocument
	Config      *config.Config
	Diagnostics []Diagnostic
}

// fragmentAttribute names the Options.Attributes key a top-level block
// carries to be extracted as a named fragment rather than kept as
// ordinary root content (pipeline step 3).
const fragmentAttribute = "fragment"

// headerFence delimits a document's configuration header, per §6's
// decision to use HOCON front matter rather than an inline convention
// borrowed from any one markup dialect.
const headerFence = "---"

// ParseWithOptions runs the full seven-step document pipeline over the
// configured input source:
//
//  1. pre-process raw text via the merged bundle's PreProcessInput hook
//  2. parse the configuration header (falling back to an empty one) and
//     the root element via the merged bundle's MarkupParser
//  3. collect named fragments out of the root content
//  4. assemble an UnresolvedDocument
//  5. resolve the configuration header against ConfigOverrides/BaseConfig
//  6. run the Build and Resolve rewrite phases against the document tree
//  7. post-process the result via the merged bundle's PostProcessDocument
//     hook
func ParseWithOptions(opts ...Option) (*ParseResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("pipeline: invalid options: %w", err)
	}

	raw, err := cfg.resolveInput()
	if err != nil {
		return nil, err
	}

	opConfig := OperationConfig{
		Bundles:        cfg.bundles,
		Filter:         cfg.filter,
		MessageFilters: cfg.messageFilters,
		Logger:         cfg.logger,
		IncludeOptions: cfg.includeOptions,
	}
	eb := opConfig.effectiveBundle()

	// Step 1: pre-process.
	if eb.PreProcessInput != nil {
		raw = eb.PreProcessInput(raw)
	}

	// Step 2: configuration header + root element.
	headerSource, body := splitHeader(raw)
	headerBuilder, parseErrs := hocon.ParseDocument(cfg.sourceName, headerSource)
	var diagnostics []Diagnostic
	for _, pf := range parseErrs {
		diagnostics = appendDiagnostic(diagnostics, cfg.messageFilters, LevelError, (&pf).Error())
	}

	var blocks []document.Block
	if eb.MarkupParser != nil {
		blocks, err = eb.MarkupParser(body)
		if err != nil {
			return nil, fmt.Errorf("pipeline: parsing root element: %w", err)
		}
	} else {
		blocks = []document.Block{document.CodeBlock{Text: body}}
	}

	// Step 3: collect fragments.
	content, fragments := collectFragments(blocks)

	// Step 4: assemble the unresolved document.
	doc := &document.UnresolvedDocument{
		Path:         cfg.sourceName,
		ConfigHeader: headerSource,
		Content:      content,
		Fragments:    fragments,
	}

	// Step 5: resolve configuration.
	includeOptions := cfg.includeOptions
	if includeOptions.Logger == nil {
		includeOptions.Logger = cfg.logger
	}
	resolver := hocon.NewResolver(context.Background(), includeOptions)
	resolvedRoot, err := resolver.Resolve(headerBuilder)
	if err != nil {
		if cfg.messageFilters.ShouldFail(LevelError) {
			return nil, fmt.Errorf("pipeline: resolving configuration: %w", err)
		}
		diagnostics = appendDiagnostic(diagnostics, cfg.messageFilters, LevelError, err.Error())
		resolvedRoot = hocon.NewObjectValue(hocon.Origin{Description: cfg.sourceName})
	}
	resolved := config.FromResolved(resolvedRoot, hocon.Origin{Description: cfg.sourceName})
	if eb.BaseConfig != nil {
		resolved = resolved.WithFallback(eb.BaseConfig)
	}
	for _, override := range cfg.configOverrides {
		resolved = resolved.WithValue(override.path, override.value)
	}

	// Step 6: rewrite phases.
	doc.Content = runRewritePhase(doc, eb, rewrite.Build())
	doc.Content = runRewritePhase(doc, eb, rewrite.Resolve())

	// Step 7: post-process.
	if eb.PostProcessDocument != nil {
		doc = eb.PostProcessDocument(doc)
	}

	return &ParseResult{Document: doc, Config: resolved, Diagnostics: diagnostics}, nil
}

func runRewritePhase(doc *document.UnresolvedDocument, eb *bundle.ExtensionBundle, phase rewrite.Phase) []document.Block {
	factories := eb.RewriteRules[phase.Kind]
	if len(factories) == 0 {
		return doc.Content
	}
	var merged rewrite.RuleSet
	for _, factory := range factories {
		rs := factory()
		merged.Blocks = append(merged.Blocks, rs.Blocks...)
		merged.Spans = append(merged.Spans, rs.Spans...)
	}
	cursor := rewrite.NewCursor(doc.Path, phase)
	return rewrite.RewriteBlocks(cursor, doc.Content, merged)
}

func appendDiagnostic(diagnostics []Diagnostic, filters MessageFilters, level MessageLevel, message string) []Diagnostic {
	if !filters.ShouldRender(level) {
		return diagnostics
	}
	return append(diagnostics, Diagnostic{Level: level, Message: message})
}

// splitHeader separates a leading `---`-fenced HOCON header from the
// rest of the document body. With no leading fence, the header is empty
// and the whole input is the body.
func splitHeader(raw string) (header, body string) {
	lines := strings.Split(raw, "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != headerFence {
		return "", raw
	}
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == headerFence {
			return strings.Join(lines[1:i], "\n"), strings.Join(lines[i+1:], "\n")
		}
	}
	// Unterminated fence: treat everything after the opening line as
	// header, leaving no body.
	return strings.Join(lines[1:], "\n"), ""
}

func collectFragments(blocks []document.Block) ([]document.Block, map[string]document.Fragment) {
	fragments := map[string]document.Fragment{}
	var remaining []document.Block
	for _, b := range blocks {
		seq, ok := b.(document.BlockSequence)
		name, isFragment := seq.Opts.Attributes[fragmentAttribute]
		if ok && isFragment {
			fragments[name] = document.Fragment{Name: name, Content: seq.Content}
			continue
		}
		remaining = append(remaining, b)
	}
	return remaining, fragments
}
