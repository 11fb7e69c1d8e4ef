// Package document defines laika's element tree: the Block/Span/
// TemplateSpan tagged-union hierarchy produced by a markup parser and
// consumed by the rewrite engine and renderers.
//
// Grounded on the teacher's OAS document model (parser/common.go's
// Info/Contact/Tag family of plain structs tied together by interface
// fields) generalized from a fixed OpenAPI schema into an open,
// extensible element hierarchy: every concrete element type implements a
// narrow marker interface (Block, Span, or TemplateSpan) instead of
// embedding a common base struct, so new element kinds added by an
// extension never need to touch this package.
package document

// Options is the attribute bag every Block and Span carries: an optional
// identifier, style classes, and arbitrary key/value attributes set by a
// directive or preserved from the original markup.
type Options struct {
	// ID is this element's identifier, used for cross-references and
	// anchors. Empty if unset.
	ID string
	// Styles are style class names, applied in order.
	Styles []string
	// Attributes holds any other key/value pairs attached to the element
	// (e.g. from a directive's fields).
	Attributes map[string]string
}

// Empty reports whether no identifier, styles, or attributes are set.
func (o Options) Empty() bool {
	return o.ID == "" && len(o.Styles) == 0 && len(o.Attributes) == 0
}

// WithID returns a copy of o with ID set.
func (o Options) WithID(id string) Options {
	o.ID = id
	return o
}

// WithStyle returns a copy of o with an additional style class appended.
func (o Options) WithStyle(style string) Options {
	styles := make([]string, len(o.Styles)+1)
	copy(styles, o.Styles)
	styles[len(o.Styles)] = style
	o.Styles = styles
	return o
}

// WithAttribute returns a copy of o with an additional attribute set.
func (o Options) WithAttribute(key, value string) Options {
	attrs := make(map[string]string, len(o.Attributes)+1)
	for k, v := range o.Attributes {
		attrs[k] = v
	}
	attrs[key] = value
	o.Attributes = attrs
	return o
}
