package hocon

// FieldRef is a deferred pointer to one field of a not-yet-fully-resolved
// document root. ReHome and WithFallback move it under a different
// effective root (gaining access to substitution targets that live in a
// fallback) without re-parsing or losing the original unresolved builder
// tree: only the final Resolve call commits to a concrete ConfigValue.
type FieldRef struct {
	// root is the full unresolved document this field was looked up
	// within; substitutions in Value may reference any path in root.
	root *ObjectBuilder
	// at is this field's own path within root.
	at Key
	// Value is the raw (unresolved) builder value found at at.
	Value BuilderValue
}

// LookupFieldRef finds the field at path within root's builder tree,
// without resolving it, returning a FieldRef capturing enough context to
// resolve it later. It reports false if no field exists at that path.
func LookupFieldRef(root *ObjectBuilder, path Key) (*FieldRef, bool) {
	v, ok := lookupBuilderPath(root, path)
	if !ok {
		return nil, false
	}
	return &FieldRef{root: root, at: path, Value: v}, true
}

func lookupBuilderPath(root BuilderValue, path Key) (BuilderValue, bool) {
	cur := root
	for _, seg := range path.Segments() {
		obj, ok := cur.(*ObjectBuilder)
		if !ok {
			return nil, false
		}
		v, found := obj.Get(seg)
		if !found {
			return nil, false
		}
		cur = v
	}
	return cur, true
}

// ReHome returns a new FieldRef for the same logical field but rooted
// under a different, typically merged, document (e.g. after
// FieldRef.WithFallback merges fallback data beneath the original root).
// The field's own unresolved Value is preserved; only the root context
// available to its substitutions changes.
func (f *FieldRef) ReHome(newRoot *ObjectBuilder) *FieldRef {
	return &FieldRef{root: newRoot, at: f.at, Value: f.Value}
}

// WithFallback returns a FieldRef whose root is f's root deep-merged over
// fallback (f's fields take priority, matching Config.WithFallback
// semantics: the receiver wins, the argument only fills gaps).
func (f *FieldRef) WithFallback(fallback *ObjectBuilder) *FieldRef {
	merged := deepMergeObjectBuilders(fallback, f.root)
	return f.ReHome(merged)
}

// Path returns this field's location within its root.
func (f *FieldRef) Path() Key { return f.at }

// Resolve fully resolves this field against its captured root, using r for
// include loading and cycle tracking.
func (f *FieldRef) Resolve(r *Resolver) (ConfigValue, error) {
	return r.resolveFieldAt(f.root, f.at)
}
