package config

import (
	"fmt"

	"github.com/erraggy/laika/hocon"
)

// ChangeKind classifies one difference between two config trees.
type ChangeKind int

const (
	// Added means the path exists in the new config but not the old.
	Added ChangeKind = iota
	// Removed means the path exists in the old config but not the new.
	Removed
	// Changed means the path exists in both but the values differ.
	Changed
)

func (k ChangeKind) String() string {
	switch k {
	case Added:
		return "added"
	case Removed:
		return "removed"
	case Changed:
		return "changed"
	default:
		return "unknown"
	}
}

// Change is a single path-level difference between two configs.
type Change struct {
	Path string
	Kind ChangeKind
	Old  hocon.ConfigValue
	New  hocon.ConfigValue
}

func (c Change) String() string {
	switch c.Kind {
	case Added:
		return fmt.Sprintf("+ %s = %v", c.Path, toPlain(c.New))
	case Removed:
		return fmt.Sprintf("- %s = %v", c.Path, toPlain(c.Old))
	default:
		return fmt.Sprintf("~ %s: %v -> %v", c.Path, toPlain(c.Old), toPlain(c.New))
	}
}

// Diff compares old and new, returning every leaf-level difference
// between them: changes and removals in the field order of old, followed
// by fields present only in new. Object fields present in both with equal
// scalar value produce no entry; this recurses into nested objects so
// that only leaves (or whole removed/added subtrees) are reported.
func Diff(old, updated *Config) []Change {
	var changes []Change
	diffObjects(hocon.RootKey(), old.root, updated.root, &changes)
	return changes
}

func diffObjects(at hocon.Key, oldObj, newObj hocon.ObjectValue, out *[]Change) {
	seen := make(map[string]bool)
	for _, of := range oldObj.Fields {
		seen[of.Key] = true
		path := at.Child(of.Key)
		nv, ok := newObj.Get(of.Key)
		if !ok {
			*out = append(*out, Change{Path: path.String(), Kind: Removed, Old: of.Value})
			continue
		}
		diffValues(path, of.Value, nv, out)
	}
	for _, nf := range newObj.Fields {
		if seen[nf.Key] {
			continue
		}
		*out = append(*out, Change{Path: at.Child(nf.Key).String(), Kind: Added, New: nf.Value})
	}
}

func diffValues(at hocon.Key, oldVal, newVal hocon.ConfigValue, out *[]Change) {
	oldObj, oldIsObj := oldVal.(hocon.ObjectValue)
	newObj, newIsObj := newVal.(hocon.ObjectValue)
	if oldIsObj && newIsObj {
		diffObjects(at, oldObj, newObj, out)
		return
	}
	if !configValuesEqual(oldVal, newVal) {
		*out = append(*out, Change{Path: at.String(), Kind: Changed, Old: oldVal, New: newVal})
	}
}

func configValuesEqual(a, b hocon.ConfigValue) bool {
	switch av := a.(type) {
	case hocon.StringValue:
		bv, ok := b.(hocon.StringValue)
		return ok && av.Value == bv.Value
	case hocon.LongValue:
		bv, ok := b.(hocon.LongValue)
		return ok && av.Value == bv.Value
	case hocon.DoubleValue:
		bv, ok := b.(hocon.DoubleValue)
		return ok && av.Value == bv.Value
	case hocon.BoolValue:
		bv, ok := b.(hocon.BoolValue)
		return ok && av.Value == bv.Value
	case hocon.NullValue:
		_, ok := b.(hocon.NullValue)
		return ok
	case hocon.ArrayValue:
		bv, ok := b.(hocon.ArrayValue)
		if !ok || len(av.Elements) != len(bv.Elements) {
			return false
		}
		for i := range av.Elements {
			if !configValuesEqual(av.Elements[i], bv.Elements[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
