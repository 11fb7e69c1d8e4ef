package directive

import "github.com/erraggy/laika/document"

// Occurrence is a single parsed directive invocation before validation:
// its name, the positional arguments and named fields as found in source
// order, and any raw body text.
type Occurrence struct {
	Name      string
	Arguments []string
	Fields    map[string]string
	// FieldOrder preserves the order fields were written in, so a
	// duplicate-key error can report which occurrence was the duplicate.
	FieldOrder []string
	Body       string
	Source     string
}

// Spec describes a directive's accepted shape: an ordered sequence of
// Parts, optionally terminated by one Body part.
type Spec struct {
	Name  string
	Parts []Part
}

// New starts building a Spec for a directive named name.
func New(name string, parts ...Part) Spec {
	return Spec{Name: name, Parts: parts}
}

// ParsedDirective is the result of successfully validating an Occurrence
// against a Spec: arguments and fields are available by name, and body
// content (if any) has been classified per the spec's Body part.
type ParsedDirective struct {
	Name       string
	Arguments  map[string]string
	Fields     map[string]string
	BodyText   string
	BodyBlocks []document.Block
	BodySpans  []document.Span
}

// duplicateFieldKeys returns every field key that appears more than once
// in FieldOrder.
func duplicateFieldKeys(order []string) []string {
	seen := make(map[string]int, len(order))
	var dupes []string
	for _, k := range order {
		seen[k]++
		if seen[k] == 2 {
			dupes = append(dupes, k)
		}
	}
	return dupes
}
