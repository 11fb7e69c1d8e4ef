package hocon

// expandPaths is stage 3 of resolution: a field whose key is a dotted path
// (`a.b.c = 1`) is rewritten into nested single-segment objects
// (`a { b { c = 1 } }`), recursively, so every later stage only ever sees
// one segment per object level. Array and non-object values are expanded
// on their elements/fields but are otherwise left alone.
func expandPaths(v BuilderValue) BuilderValue {
	switch val := v.(type) {
	case *ObjectBuilder:
		return expandObjectPaths(val)
	case *ArrayBuilder:
		elements := make([]BuilderValue, len(val.Elements))
		for i, e := range val.Elements {
			elements[i] = expandPaths(e)
		}
		return &ArrayBuilder{Elements: elements, origin: val.origin}
	case *ConcatValue:
		parts := make([]ConcatPart, len(val.Parts))
		for i, p := range val.Parts {
			parts[i] = ConcatPart{Value: expandPaths(p.Value)}
		}
		return &ConcatValue{Parts: parts, origin: val.origin}
	case *MergedValue:
		values := make([]BuilderValue, len(val.Values))
		for i, m := range val.Values {
			values[i] = expandPaths(m)
		}
		return &MergedValue{Values: values, origin: val.origin}
	default:
		return v
	}
}

// expandObjectPaths expands every field of o, splitting dotted keys into
// nested objects and merging fields that land on the same top-level
// segment (so `a.b = 1` followed by `a.c = 2` produces one `a` field
// holding the merge of `{b:1}` and `{c:2}`, not two separate `a` fields).
func expandObjectPaths(o *ObjectBuilder) *ObjectBuilder {
	result := &ObjectBuilder{origin: o.origin}
	for _, f := range o.Fields {
		key := ParseKeyPath(f.Key)
		expanded := wrapInPath(key.Segments(), expandPaths(f.Value), f.Value.Origin())
		result = mergeFieldInto(result, expanded)
	}
	return result
}

// wrapInPath builds Field for segments[0], nesting the remaining segments
// as a single-field object around value, innermost-first.
func wrapInPath(segments []string, value BuilderValue, origin Origin) Field {
	if len(segments) == 1 {
		return Field{Key: segments[0], Value: value}
	}
	inner := wrapInPath(segments[1:], value, origin)
	obj := &ObjectBuilder{Fields: []Field{inner}, origin: origin}
	return Field{Key: segments[0], Value: obj}
}

// mergeFieldInto appends f to dst, merging it with an existing field of
// the same key (both must be objects to merge structurally; otherwise the
// new field simply shadows via a MergedValue, resolved later in stage 5).
func mergeFieldInto(dst *ObjectBuilder, f Field) *ObjectBuilder {
	for i, existing := range dst.Fields {
		if existing.Key != f.Key {
			continue
		}
		existingObj, existingIsObj := existing.Value.(*ObjectBuilder)
		newObj, newIsObj := f.Value.(*ObjectBuilder)
		fields := make([]Field, len(dst.Fields))
		copy(fields, dst.Fields)
		if existingIsObj && newIsObj {
			fields[i] = Field{Key: f.Key, Value: shallowMergeObjects(existingObj, newObj)}
		} else {
			fields[i] = Field{Key: f.Key, Value: NewMergedValue(f.Value.Origin(), existing.Value, f.Value)}
		}
		return &ObjectBuilder{Fields: fields, origin: dst.origin}
	}
	return dst.WithField(f)
}

// shallowMergeObjects folds b's fields into a, one level deep, using the
// same mergeFieldInto rule so deeper collisions keep merging recursively.
func shallowMergeObjects(a, b *ObjectBuilder) *ObjectBuilder {
	result := a
	for _, f := range b.Fields {
		result = mergeFieldInto(result, f)
	}
	return result
}
