package hocon

import "strings"

// Key is an ordered sequence of path segments (e.g. "a.b.c" is the segments
// ["a", "b", "c"]). RootKey() is the empty sequence.
type Key struct {
	segments []string
}

// RootKey returns the empty key, the root of every configuration tree.
func RootKey() Key { return Key{} }

// NewKey builds a Key from already-split segments.
func NewKey(segments ...string) Key {
	cp := make([]string, len(segments))
	copy(cp, segments)
	return Key{segments: cp}
}

// ParseKeyPath splits a dotted path string into a Key. Quoted segments
// (`"a.b".c`) are honored so that a literal dot inside a segment name does
// not split it.
func ParseKeyPath(path string) Key {
	var segments []string
	var current strings.Builder
	inQuotes := false
	for _, r := range path {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case r == '.' && !inQuotes:
			segments = append(segments, current.String())
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}
	segments = append(segments, current.String())
	return Key{segments: segments}
}

// Segments returns the key's path segments. The returned slice must not be
// mutated by callers.
func (k Key) Segments() []string { return k.segments }

// IsRoot reports whether this is the empty root key.
func (k Key) IsRoot() bool { return len(k.segments) == 0 }

// Child returns a new Key extending this one with an additional segment.
func (k Key) Child(name string) Key {
	segs := make([]string, len(k.segments)+1)
	copy(segs, k.segments)
	segs[len(k.segments)] = name
	return Key{segments: segs}
}

// Parent returns the key with its last segment removed, and whether a
// parent exists (false for the root key).
func (k Key) Parent() (Key, bool) {
	if len(k.segments) == 0 {
		return k, false
	}
	return Key{segments: k.segments[:len(k.segments)-1]}, true
}

// Last returns the final segment, or "" for the root key.
func (k Key) Last() string {
	if len(k.segments) == 0 {
		return ""
	}
	return k.segments[len(k.segments)-1]
}

// IsChild reports whether k is a strict prefix of other, i.e. other
// descends from k.
func (k Key) IsChild(other Key) bool {
	if len(other.segments) <= len(k.segments) {
		return false
	}
	for i, seg := range k.segments {
		if other.segments[i] != seg {
			return false
		}
	}
	return true
}

// HasPrefix reports whether k's segments start with other's segments
// (other == k or other is an ancestor of k).
func (k Key) HasPrefix(other Key) bool {
	if len(other.segments) > len(k.segments) {
		return false
	}
	for i, seg := range other.segments {
		if k.segments[i] != seg {
			return false
		}
	}
	return true
}

// Equal reports whether two keys have identical segments.
func (k Key) Equal(other Key) bool {
	if len(k.segments) != len(other.segments) {
		return false
	}
	for i, seg := range k.segments {
		if other.segments[i] != seg {
			return false
		}
	}
	return true
}

// Less orders keys lexicographically on segments, matching the resolved
// tree's "field keys within an object are sorted" invariant.
func (k Key) Less(other Key) bool {
	for i := 0; i < len(k.segments) && i < len(other.segments); i++ {
		if k.segments[i] != other.segments[i] {
			return k.segments[i] < other.segments[i]
		}
	}
	return len(k.segments) < len(other.segments)
}

// String renders the key as a dotted path.
func (k Key) String() string {
	return strings.Join(k.segments, ".")
}
