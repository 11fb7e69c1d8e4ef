package hocon

// mergeObjects is stage 4 of resolution: it walks the builder tree after
// path expansion and collapses every MergedValue's run of concrete
// ObjectBuilder values into a single deep-merged ObjectBuilder, per HOCON's
// "object merges with object, anything else replaces" rule. A value whose
// resolution is not yet known (a substitution, concatenation, or include)
// interrupts the run and is left in place: stage 5 re-applies the same
// fold once such values have been resolved, since only then is it known
// whether they turned out to be objects.
func mergeObjects(v BuilderValue) BuilderValue {
	switch val := v.(type) {
	case *ObjectBuilder:
		fields := make([]Field, len(val.Fields))
		for i, f := range val.Fields {
			fields[i] = Field{Key: f.Key, Value: mergeObjects(f.Value)}
		}
		return &ObjectBuilder{Fields: fields, origin: val.origin}
	case *ArrayBuilder:
		elements := make([]BuilderValue, len(val.Elements))
		for i, e := range val.Elements {
			elements[i] = mergeObjects(e)
		}
		return &ArrayBuilder{Elements: elements, origin: val.origin}
	case *ConcatValue:
		parts := make([]ConcatPart, len(val.Parts))
		for i, p := range val.Parts {
			parts[i] = ConcatPart{Value: mergeObjects(p.Value)}
		}
		return &ConcatValue{Parts: parts, origin: val.origin}
	case *MergedValue:
		return foldMergedValue(val)
	default:
		return v
	}
}

// isDeferred reports whether a value's final shape (object or not) cannot
// be known before substitution/include resolution runs.
func isDeferred(v BuilderValue) bool {
	switch v.(type) {
	case *SubstitutionValue, *SelfReference, *ConcatValue, *IncludeBuilder:
		return true
	default:
		return false
	}
}

// foldMergedValue collapses runs of concrete ObjectBuilder values within a
// MergedValue, leaving deferred values (and any single trailing concrete
// non-object value, which simply replaces everything before it) as
// separate entries for stage 5.
func foldMergedValue(m *MergedValue) BuilderValue {
	var folded []BuilderValue
	for _, raw := range m.Values {
		v := mergeObjects(raw)
		if isDeferred(v) {
			folded = append(folded, v)
			continue
		}
		obj, isObj := v.(*ObjectBuilder)
		if !isObj {
			// A concrete non-object value replaces everything accumulated
			// so far that is not itself deferred-dependent: start fresh,
			// but keep any leading deferred entries since we don't yet
			// know if they'll turn out to be objects this one should
			// merge with.
			folded = append(trimTrailingConcrete(folded), v)
			continue
		}
		if len(folded) > 0 {
			if prevObj, ok := folded[len(folded)-1].(*ObjectBuilder); ok {
				folded[len(folded)-1] = deepMergeObjectBuilders(prevObj, obj)
				continue
			}
		}
		folded = append(folded, obj)
	}
	if len(folded) == 1 {
		return folded[0]
	}
	return &MergedValue{Values: folded, origin: m.origin}
}

// trimTrailingConcrete drops every trailing non-deferred entry, since a
// later concrete value replaces them outright.
func trimTrailingConcrete(values []BuilderValue) []BuilderValue {
	i := len(values)
	for i > 0 && !isDeferred(values[i-1]) {
		i--
	}
	return values[:i]
}

// deepMergeObjectBuilders merges b's fields into a, recursively merging
// any field present as an object in both.
func deepMergeObjectBuilders(a, b *ObjectBuilder) *ObjectBuilder {
	result := &ObjectBuilder{Fields: append([]Field(nil), a.Fields...), origin: a.origin}
	for _, bf := range b.Fields {
		merged := false
		for i, af := range result.Fields {
			if af.Key != bf.Key {
				continue
			}
			merged = true
			aObj, aIsObj := af.Value.(*ObjectBuilder)
			bObj, bIsObj := bf.Value.(*ObjectBuilder)
			if aIsObj && bIsObj {
				result.Fields[i] = Field{Key: bf.Key, Value: deepMergeObjectBuilders(aObj, bObj)}
			} else {
				result.Fields[i] = Field{Key: bf.Key, Value: bf.Value}
			}
			break
		}
		if !merged {
			result.Fields = append(result.Fields, bf)
		}
	}
	return result
}
