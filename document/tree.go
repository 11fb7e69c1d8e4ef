package document

// Fragment is a named sub-tree extracted from a document's root content
// during pipeline step 3 ("collect fragments"), keyed by the name given
// at the extraction point (typically a directive like `@:fragment{name}`).
type Fragment struct {
	Name    string
	Content []Block
}

// UnresolvedDocument is the output of parsing a single markup source: its
// configuration header (still unresolved HOCON), root content, and any
// fragments extracted from it. It is "unresolved" in two senses — the
// config header has not yet been merged/resolved against ancestor
// configuration, and the rewrite phases (Resolve, Render) have not yet
// run over its content.
type UnresolvedDocument struct {
	// Path identifies the document's source location (a relative path,
	// typically), used to place it within a DocumentTreeRoot and to
	// resolve sibling-relative includes/links.
	Path string
	// ConfigHeader is the raw HOCON header text found at the top of the
	// source, or "" if none was present.
	ConfigHeader string
	Content      []Block
	Fragments    map[string]Fragment
}

// StaticAsset is a non-document file (an image, a downloadable file) that
// rides alongside rendered documents in a DocumentTreeRoot without being
// parsed or rewritten.
type StaticAsset struct {
	Path string
	Data []byte
}

// StyleSheet is a renderer-specific stylesheet associated with a theme or
// extension bundle, kept distinct from an opaque StaticAsset so a
// renderer can choose whether to inline, link, or skip it.
type StyleSheet struct {
	Path    string
	Content string
	// Formats restricts which output formats this stylesheet applies to;
	// empty means all formats.
	Formats []string
}

// DocumentTreeRoot is the full input to a render: every document found in
// a source tree plus the static assets and stylesheets that travel with
// them, organized by path.
type DocumentTreeRoot struct {
	Documents   map[string]*UnresolvedDocument
	StaticFiles map[string]StaticAsset
	StyleSheets []StyleSheet
}

// NewDocumentTreeRoot returns an empty tree root ready to accumulate
// documents and assets.
func NewDocumentTreeRoot() *DocumentTreeRoot {
	return &DocumentTreeRoot{
		Documents:   make(map[string]*UnresolvedDocument),
		StaticFiles: make(map[string]StaticAsset),
	}
}

// AddDocument registers doc under its own Path.
func (t *DocumentTreeRoot) AddDocument(doc *UnresolvedDocument) {
	t.Documents[doc.Path] = doc
}

// AddStaticFile registers a static asset under its own Path.
func (t *DocumentTreeRoot) AddStaticFile(asset StaticAsset) {
	t.StaticFiles[asset.Path] = asset
}

// AddStyleSheet appends a stylesheet to the tree.
func (t *DocumentTreeRoot) AddStyleSheet(sheet StyleSheet) {
	t.StyleSheets = append(t.StyleSheets, sheet)
}
