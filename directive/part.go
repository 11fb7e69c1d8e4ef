// Package directive implements the typed directive description DSL:
// extension authors describe a directive's expected arguments, fields,
// and body shape as a sequence of Part values, and the engine validates
// a parsed directive occurrence against that description, producing an
// InvalidElement when the occurrence doesn't match.
//
// Grounded on the teacher's builder.Builder fluent/functional-option
// construction style, generalized from "build an OAS document" to
// "describe a directive's accepted shape".
package directive

// PartKind distinguishes the five part shapes a directive description can
// be built from.
type PartKind int

const (
	KindArgument PartKind = iota
	KindOptArgument
	KindField
	KindOptField
	KindBody
)

// BodyKind distinguishes the three ways a directive's body content may be
// interpreted.
type BodyKind int

const (
	// BodyNone means the directive takes no body content at all.
	BodyNone BodyKind = iota
	// BodyContent means the body is parsed as a single opaque content
	// string, handed to the directive's handler unparsed.
	BodyContent
	// BodyBlock means the body is parsed as a sequence of block-level
	// elements.
	BodyBlock
	// BodySpan means the body is parsed as a sequence of inline spans.
	BodySpan
)

// Part describes one expected piece of a directive occurrence: a
// positional argument, a named field, or the body.
type Part struct {
	Kind PartKind
	// Name identifies a Field/OptField by key, or documents an
	// Argument/OptArgument for error messages; ignored for Body.
	Name string
	// Body further describes a KindBody part's expected content shape.
	Body BodyKind
}

// Argument declares a required positional argument.
func Argument(name string) Part { return Part{Kind: KindArgument, Name: name} }

// OptArgument declares an optional positional argument.
func OptArgument(name string) Part { return Part{Kind: KindOptArgument, Name: name} }

// Field declares a required named field (`key="value"` or `key = value`
// in the directive's attribute list).
func Field(name string) Part { return Part{Kind: KindField, Name: name} }

// OptField declares an optional named field.
func OptField(name string) Part { return Part{Kind: KindOptField, Name: name} }

// Content declares that the directive takes an opaque, unparsed body.
func Content() Part { return Part{Kind: KindBody, Body: BodyContent} }

// BlockContent declares that the directive's body is parsed as block
// elements.
func BlockContent() Part { return Part{Kind: KindBody, Body: BodyBlock} }

// SpanContent declares that the directive's body is parsed as inline
// spans.
func SpanContent() Part { return Part{Kind: KindBody, Body: BodySpan} }
