package document

//go:generate go run ../internal/codegen/astgen

// Block is a structural, line-level element of a document: a paragraph,
// heading, list, code block, or an extension-defined block directive.
// Concrete block types implement this marker interface; the set is open
// to extension packages, which is why it is a small method rather than a
// sealed/closed enumeration.
type Block interface {
	block()
	// BlockOptions returns the element's attribute bag.
	BlockOptions() Options
}

// Span is an inline, character-level element within a block: plain text,
// emphasis, a link, or an extension-defined span directive.
type Span interface {
	span()
	SpanOptions() Options
}

// TemplateSpan is a span that appears only inside a template (not in
// parsed document content): a variable reference or a template directive
// invocation, resolved against a Config during rendering rather than
// against the document tree.
type TemplateSpan interface {
	templateSpan()
}

// Paragraph is a block containing a run of spans.
type Paragraph struct {
	Content []Span
	Opts    Options
}

func (Paragraph) block()                  {}
func (p Paragraph) BlockOptions() Options { return p.Opts }

// Heading is a titled section boundary at a given nesting level.
type Heading struct {
	Level   int
	Content []Span
	Opts    Options
}

func (Heading) block()                  {}
func (h Heading) BlockOptions() Options { return h.Opts }

// CodeBlock is a verbatim, unparsed block of text tagged with an optional
// language hint.
type CodeBlock struct {
	Language string
	Text     string
	Opts     Options
}

func (CodeBlock) block()                  {}
func (c CodeBlock) BlockOptions() Options { return c.Opts }

// ListKind distinguishes ordered from unordered lists.
type ListKind int

const (
	ListUnordered ListKind = iota
	ListOrdered
)

// ListItem is one entry of a List, itself containing a sequence of
// blocks (so list items can hold nested paragraphs, code blocks, etc).
type ListItem struct {
	Content []Block
}

// List is a sequence of list items.
type List struct {
	Kind  ListKind
	Items []ListItem
	Opts  Options
}

func (List) block()                  {}
func (l List) BlockOptions() Options { return l.Opts }

// BlockSequence groups an ordered run of blocks without introducing its
// own section boundary (e.g. a directive's body content).
type BlockSequence struct {
	Content []Block
	Opts    Options
}

func (BlockSequence) block()                  {}
func (b BlockSequence) BlockOptions() Options { return b.Opts }

// InvalidBlock is substituted for a block-level directive or rewrite rule
// that failed on otherwise well-formed input, carrying the original
// source so it can be rendered verbatim or reported per MessageFilters.
type InvalidBlock struct {
	Message string
	Source  string
	Opts    Options
}

func (InvalidBlock) block()                  {}
func (i InvalidBlock) BlockOptions() Options { return i.Opts }

// Text is a run of literal text.
type Text struct {
	Content string
	Opts    Options
}

func (Text) span()                  {}
func (t Text) SpanOptions() Options { return t.Opts }

// Emphasized wraps spans in an emphasis styling.
type Emphasized struct {
	Content []Span
	Opts    Options
}

func (Emphasized) span()                  {}
func (e Emphasized) SpanOptions() Options { return e.Opts }

// Strong wraps spans in a strong-emphasis styling.
type Strong struct {
	Content []Span
	Opts    Options
}

func (Strong) span()                  {}
func (s Strong) SpanOptions() Options { return s.Opts }

// Literal is inline verbatim (unparsed) text, e.g. inline code.
type Literal struct {
	Content string
	Opts    Options
}

func (Literal) span()                  {}
func (l Literal) SpanOptions() Options { return l.Opts }

// SpanLink is an inline hyperlink.
type SpanLink struct {
	Target  string
	Content []Span
	Opts    Options
}

func (SpanLink) span()                  {}
func (s SpanLink) SpanOptions() Options { return s.Opts }

// InvalidSpan mirrors InvalidBlock at span granularity.
type InvalidSpan struct {
	Message string
	Source  string
	Opts    Options
}

func (InvalidSpan) span()                  {}
func (i InvalidSpan) SpanOptions() Options { return i.Opts }

// TemplateVariable is a `${key}`-style reference to a resolved Config
// value, substituted in during template rendering. It implements Span so
// it can sit alongside ordinary Text spans in a template's parsed content,
// and TemplateSpan so rewrite rules can select only template nodes.
type TemplateVariable struct {
	Path string
	Opts Options
}

func (TemplateVariable) span()                  {}
func (v TemplateVariable) SpanOptions() Options { return v.Opts }
func (TemplateVariable) templateSpan()          {}

// TemplateDirectiveCall invokes a named template directive (distinct from
// document-content directives) with raw, unvalidated arguments.
type TemplateDirectiveCall struct {
	Name string
	Args map[string]string
	Opts Options
}

func (TemplateDirectiveCall) span()                  {}
func (c TemplateDirectiveCall) SpanOptions() Options { return c.Opts }
func (TemplateDirectiveCall) templateSpan()          {}
