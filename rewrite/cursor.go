package rewrite

// arenaNode records one ancestor frame: its parent's arena index (-1 for
// the document root) and a label describing the node kind, for
// diagnostics. Indices into Arena.nodes are stable for the lifetime of
// one rewrite pass, giving DocumentCursor ancestor access without any
// node holding a raw pointer back to its parent (parent pointers would
// make the tree ordinary Go values can't safely share across a rewrite
// that replaces nodes mid-traversal).
type arenaNode struct {
	parent int
	label  string
}

// Arena is the backing store of ancestor frames for one rewrite pass.
type Arena struct {
	nodes []arenaNode
}

// NewArena returns an empty arena.
func NewArena() *Arena {
	return &Arena{}
}

// push records a new frame with the given parent index, returning this
// frame's own index.
func (a *Arena) push(parent int, label string) int {
	a.nodes = append(a.nodes, arenaNode{parent: parent, label: label})
	return len(a.nodes) - 1
}

// DocumentCursor describes one node's position during a rewrite pass: the
// active Phase, the document's path (for relative include/link
// resolution), and an index into the pass's Arena giving access to
// ancestor labels without a raw parent pointer.
type DocumentCursor struct {
	arena        *Arena
	index        int // -1 at the document root, before any node has been entered
	documentPath string
	phase        Phase
}

// NewCursor starts a cursor at the root of documentPath for the given
// phase, backed by a fresh arena.
func NewCursor(documentPath string, phase Phase) *DocumentCursor {
	return &DocumentCursor{arena: NewArena(), index: -1, documentPath: documentPath, phase: phase}
}

// Phase returns the active rewrite phase.
func (c *DocumentCursor) Phase() Phase { return c.phase }

// DocumentPath returns the path of the document being rewritten.
func (c *DocumentCursor) DocumentPath() string { return c.documentPath }

// Depth returns how many ancestors this cursor has (0 at the root).
func (c *DocumentCursor) Depth() int {
	depth := 0
	for i := c.index; i >= 0; i = c.arena.nodes[i].parent {
		depth++
	}
	return depth
}

// AncestorLabels returns the label of every ancestor, root-first.
func (c *DocumentCursor) AncestorLabels() []string {
	var labels []string
	for i := c.index; i >= 0; i = c.arena.nodes[i].parent {
		labels = append(labels, c.arena.nodes[i].label)
	}
	// reverse into root-first order
	for i, j := 0, len(labels)-1; i < j; i, j = i+1, j-1 {
		labels[i], labels[j] = labels[j], labels[i]
	}
	return labels
}

// descend returns a new cursor one level deeper, labeled for diagnostics,
// leaving c unmodified (cursors are passed by value into child rewrites
// so sibling traversals never see each other's arena index).
func (c *DocumentCursor) descend(label string) *DocumentCursor {
	child := *c
	child.index = c.arena.push(c.index, label)
	return &child
}
