package hocon

import (
	"context"
	"fmt"

	"github.com/erraggy/laika/laikaerrors"
)

// ResolverOptions configures how a Resolver finds and loads include
// resources, and bounds recursive include depth (mirroring the teacher's
// RefResolver, which carries the same shape of knobs for $ref chasing).
type ResolverOptions struct {
	FileLoader      IncludeLoader
	ClasspathLoader IncludeLoader
	URLLoader       IncludeLoader
	AnyLoader       IncludeLoader
	// MaxIncludeDepth bounds recursive include expansion; 0 selects a
	// sensible default.
	MaxIncludeDepth int
	// Logger receives Warn-level reports for recoverable resolution
	// anomalies (currently: an optional substitution with no target). A
	// nil Logger discards them.
	Logger Logger
}

const defaultMaxIncludeDepth = 50

// Logger is the minimal structured-logging sink the resolver reports
// recoverable anomalies through. Its shape matches log/slog's, and the
// pipeline package's own Logger interface, so either satisfies it without
// an adapter.
type Logger interface {
	Debug(msg string, args ...any)
	Warn(msg string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Warn(string, ...any)  {}

// Resolver turns an unresolved BuilderValue tree into a fully resolved
// ConfigValue tree, running the five resolution stages in order: include
// expansion, error extraction, path expansion, object merging, and
// recursive substitution resolution with cycle detection.
type Resolver struct {
	opts ResolverOptions
	ctx  context.Context
}

// NewResolver constructs a Resolver. ctx governs any network calls made by
// a configured URL include loader.
func NewResolver(ctx context.Context, opts ResolverOptions) *Resolver {
	if opts.MaxIncludeDepth == 0 {
		opts.MaxIncludeDepth = defaultMaxIncludeDepth
	}
	if opts.Logger == nil {
		opts.Logger = nopLogger{}
	}
	return &Resolver{opts: opts, ctx: ctx}
}

// Resolve runs all five stages against root and returns the fully resolved
// object. Parse-time invalid fields take priority over resolution-time
// failures and short-circuit immediately, since there is no point chasing
// substitutions through content already known to be broken. Resolution-time
// failures (a missing required substitution, a circular reference, an
// illegal concatenation) are instead accumulated across the whole pass and
// rolled up into a single *laikaerrors.ConfigResolverError at the end, so
// one run reports every invalid path rather than just the first.
func (r *Resolver) Resolve(root *ObjectBuilder) (ObjectValue, error) {
	expanded, err := r.expandIncludes(root, 0)
	if err != nil {
		return ObjectValue{}, err
	}
	expandedObj, ok := expanded.(*ObjectBuilder)
	if !ok {
		return ObjectValue{}, fmt.Errorf("hocon: internal error: include expansion of root produced %T", expanded)
	}

	if invalid := extractInvalidFields(expandedObj, RootKey()); len(invalid) > 0 {
		return ObjectValue{}, &laikaerrors.InvalidFields{Fields: invalid}
	}

	pathExpanded := expandPaths(expandedObj).(*ObjectBuilder)
	merged := mergeObjects(pathExpanded).(*ObjectBuilder)

	rc := newResolveContext(merged, r.opts.Logger)
	resolved, err := rc.resolveObject(RootKey(), merged)
	if err != nil {
		return ObjectValue{}, err
	}
	if !rc.invalid.Empty() {
		return ObjectValue{}, rc.invalid
	}
	return resolved, nil
}

// resolveFieldAt resolves a single field within root, for use by
// FieldRef.Resolve. It runs the full stage pipeline scoped to the whole
// document (substitutions may reach anywhere in root) but returns only the
// value at path.
func (r *Resolver) resolveFieldAt(root *ObjectBuilder, path Key) (ConfigValue, error) {
	expanded, err := r.expandIncludes(root, 0)
	if err != nil {
		return nil, err
	}
	expandedObj := expanded.(*ObjectBuilder)
	if invalid := extractInvalidFields(expandedObj, RootKey()); len(invalid) > 0 {
		return nil, &laikaerrors.InvalidFields{Fields: invalid}
	}
	pathExpanded := expandPaths(expandedObj).(*ObjectBuilder)
	merged := mergeObjects(pathExpanded).(*ObjectBuilder)

	rc := newResolveContext(merged, r.opts.Logger)
	v, ok := lookupBuilderPath(merged, path)
	if !ok {
		return nil, fmt.Errorf("hocon: no field at path %q", path.String())
	}
	resolved, err := rc.resolveValue(path, v)
	if err != nil {
		return nil, err
	}
	if !rc.invalid.Empty() {
		return nil, rc.invalid
	}
	return resolved, nil
}

// expandIncludes is stage 1: every `$include` synthetic field produced by
// the parser is replaced in place by the fields of the resource it names,
// loaded and recursively expanded in turn. Field order is preserved so
// that later duplicate-key fields (from stage 3/4 merging) correctly take
// priority over included ones at the same key.
func (r *Resolver) expandIncludes(v BuilderValue, depth int) (BuilderValue, error) {
	if depth > r.opts.MaxIncludeDepth {
		return nil, fmt.Errorf("hocon: include depth exceeds limit of %d (possible include cycle)", r.opts.MaxIncludeDepth)
	}
	switch val := v.(type) {
	case *ObjectBuilder:
		var fields []Field
		for _, f := range val.Fields {
			if f.Key == includeFieldKey {
				inc := f.Value.(*IncludeBuilder)
				loaded, err := r.loadInclude(inc, depth)
				if err != nil {
					if inc.Resource.Required {
						fields = append(fields, Field{
							Key:   "$invalid",
							Value: &InvalidBuilder{Message: err.Error(), origin: inc.origin},
						})
					}
					continue
				}
				fields = append(fields, loaded.Fields...)
				continue
			}
			expanded, err := r.expandIncludes(f.Value, depth)
			if err != nil {
				return nil, err
			}
			fields = append(fields, Field{Key: f.Key, Value: expanded})
		}
		return &ObjectBuilder{Fields: fields, origin: val.origin}, nil
	case *ArrayBuilder:
		elements := make([]BuilderValue, len(val.Elements))
		for i, e := range val.Elements {
			expanded, err := r.expandIncludes(e, depth)
			if err != nil {
				return nil, err
			}
			elements[i] = expanded
		}
		return &ArrayBuilder{Elements: elements, origin: val.origin}, nil
	case *ConcatValue:
		parts := make([]ConcatPart, len(val.Parts))
		for i, p := range val.Parts {
			expanded, err := r.expandIncludes(p.Value, depth)
			if err != nil {
				return nil, err
			}
			parts[i] = ConcatPart{Value: expanded}
		}
		return &ConcatValue{Parts: parts, origin: val.origin}, nil
	case *MergedValue:
		values := make([]BuilderValue, len(val.Values))
		for i, m := range val.Values {
			expanded, err := r.expandIncludes(m, depth)
			if err != nil {
				return nil, err
			}
			values[i] = expanded
		}
		return &MergedValue{Values: values, origin: val.origin}, nil
	default:
		return v, nil
	}
}

func (r *Resolver) loadInclude(inc *IncludeBuilder, depth int) (*ObjectBuilder, error) {
	loader := r.loaderFor(inc.Resource)
	text, err := loader.Load(r.ctx, inc.Resource)
	if err != nil {
		return nil, err
	}
	parsed, failures := ParseDocument(inc.Resource.Location, text)
	if len(failures) > 0 {
		return nil, &laikaerrors.ConfigParserErrors{Errors: failures}
	}
	expanded, err := r.expandIncludes(parsed, depth+1)
	if err != nil {
		return nil, err
	}
	return expanded.(*ObjectBuilder), nil
}

// extractInvalidFields is stage 2: it walks the (include-expanded) tree
// collecting every InvalidBuilder/InvalidString into a flat list keyed by
// path, so a single resolution reports every syntax problem at once.
func extractInvalidFields(v BuilderValue, at Key) []laikaerrors.InvalidField {
	switch val := v.(type) {
	case *ObjectBuilder:
		var out []laikaerrors.InvalidField
		for _, f := range val.Fields {
			out = append(out, extractInvalidFields(f.Value, at.Child(f.Key))...)
		}
		return out
	case *ArrayBuilder:
		var out []laikaerrors.InvalidField
		for i, e := range val.Elements {
			out = append(out, extractInvalidFields(e, at.Child(fmt.Sprintf("[%d]", i)))...)
		}
		return out
	case *ConcatValue:
		var out []laikaerrors.InvalidField
		for _, p := range val.Parts {
			out = append(out, extractInvalidFields(p.Value, at)...)
		}
		return out
	case *MergedValue:
		var out []laikaerrors.InvalidField
		for _, m := range val.Values {
			out = append(out, extractInvalidFields(m, at)...)
		}
		return out
	case *InvalidBuilder:
		return []laikaerrors.InvalidField{{Path: at.String(), Message: val.Message}}
	case *InvalidString:
		return []laikaerrors.InvalidField{{Path: at.String(), Message: val.Message}}
	default:
		return nil
	}
}

// resolveContext tracks cycle-detection state across one top-level Resolve
// call: active_fields guards against a substitution depending (directly or
// transitively) on its own resolution, resolved_fields memoizes completed
// absolute paths, and started_objects guards against an object's own
// merge depending on itself (e.g. via a self-referential include).
type resolveContext struct {
	root           *ObjectBuilder
	activeFields   map[string]bool
	resolvedFields map[string]ConfigValue
	startedObjects map[string]bool
	// invalid accumulates every resolution-time invalid path found during
	// this pass (missing required substitutions, circular references,
	// illegal concatenations), rolled up into one error at the end instead
	// of failing the whole resolve on the first one found.
	invalid *laikaerrors.ConfigResolverError
	logger  Logger
}

func newResolveContext(root *ObjectBuilder, logger Logger) *resolveContext {
	if logger == nil {
		logger = nopLogger{}
	}
	return &resolveContext{
		root:           root,
		activeFields:   make(map[string]bool),
		resolvedFields: make(map[string]ConfigValue),
		startedObjects: make(map[string]bool),
		invalid:        &laikaerrors.ConfigResolverError{},
		logger:         logger,
	}
}

// omitted marks a value produced by an unresolved optional substitution
// (`${?missing}`): it carries no data and is always dropped by its
// surrounding object field or concatenation rather than surfacing as null.
type omitted struct{}

func (omitted) configValue()   {}
func (omitted) Origin() Origin { return UnknownOrigin }

func (rc *resolveContext) resolveObject(at Key, o *ObjectBuilder) (ObjectValue, error) {
	key := at.String()
	if rc.startedObjects[key] {
		return ObjectValue{}, &laikaerrors.ResolverFailed{
			Path:    key,
			Message: "object merge depends on its own resolution",
		}
	}
	rc.startedObjects[key] = true
	defer delete(rc.startedObjects, key)

	var fields []ResolvedField
	for _, f := range o.Fields {
		v, err := rc.resolveValue(at.Child(f.Key), f.Value)
		if err != nil {
			return ObjectValue{}, err
		}
		if _, isOmitted := v.(omitted); isOmitted {
			continue
		}
		fields = append(fields, ResolvedField{Key: f.Key, Value: v})
	}
	sortResolvedFields(fields)
	return NewObjectValue(o.origin, fields...), nil
}

func sortResolvedFields(fields []ResolvedField) {
	for i := 1; i < len(fields); i++ {
		for j := i; j > 0 && fields[j-1].Key > fields[j].Key; j-- {
			fields[j-1], fields[j] = fields[j], fields[j-1]
		}
	}
}

func (rc *resolveContext) resolveValue(at Key, v BuilderValue) (ConfigValue, error) {
	switch val := v.(type) {
	case *ObjectBuilder:
		return rc.resolveObject(at, val)
	case *ArrayBuilder:
		elements := make([]ConfigValue, 0, len(val.Elements))
		for i, e := range val.Elements {
			rv, err := rc.resolveValue(at.Child(fmt.Sprintf("[%d]", i)), e)
			if err != nil {
				return nil, err
			}
			if _, isOmitted := rv.(omitted); isOmitted {
				continue
			}
			elements = append(elements, rv)
		}
		return NewArrayValue(val.origin, elements...), nil
	case *ResolvedBuilder:
		return val.Value, nil
	case *ConcatValue:
		return rc.resolveConcat(at, val)
	case *MergedValue:
		return rc.resolveMerged(at, val)
	case *SubstitutionValue:
		return rc.resolveSubstitution(at, val)
	case *SelfReference:
		return rc.resolveSelfReference(at, val)
	case *IncludeBuilder:
		return nil, fmt.Errorf("hocon: internal error: unresolved include at %q", at.String())
	case *InvalidBuilder:
		return nil, &laikaerrors.InvalidFields{Fields: []laikaerrors.InvalidField{{Path: at.String(), Message: val.Message}}}
	case *InvalidString:
		return nil, &laikaerrors.InvalidFields{Fields: []laikaerrors.InvalidField{{Path: at.String(), Message: val.Message}}}
	default:
		return nil, fmt.Errorf("hocon: internal error: unhandled builder value %T at %q", v, at.String())
	}
}

func (rc *resolveContext) resolveSubstitution(at Key, sub *SubstitutionValue) (ConfigValue, error) {
	targetKey := sub.Path.String()
	if cached, ok := rc.resolvedFields[targetKey]; ok {
		return cached, nil
	}
	if rc.activeFields[targetKey] {
		rc.invalid.Add(laikaerrors.CircularReferenceMessage(at.String(), targetKey))
		return omitted{}, nil
	}
	target, ok := lookupBuilderPath(rc.root, sub.Path)
	if !ok {
		if sub.Optional {
			rc.logger.Warn("optional substitution has no target", "ref", targetKey, "at", at.String())
			return omitted{}, nil
		}
		rc.invalid.Add(laikaerrors.MissingRequiredReferenceMessage(targetKey))
		return omitted{}, nil
	}
	rc.activeFields[targetKey] = true
	resolved, err := rc.resolveValue(sub.Path, target)
	delete(rc.activeFields, targetKey)
	if err != nil {
		return nil, err
	}
	rc.resolvedFields[targetKey] = resolved
	return resolved, nil
}

// resolveSelfReference resolves `${a}` appearing within the value assigned
// to `a` itself (e.g. `a = [1,2]` then later `a = ${a} [3,4]`): it refers
// to whatever `a` had resolved to from fields processed earlier, not to
// the field currently being built. Since stage 4 already folds same-level
// duplicate fields in document order, the self-reference's target is
// simply looked up and resolved as an ordinary path read from the
// original (pre-merge) builder tree, one level up from where the
// self-reference itself lives.
func (rc *resolveContext) resolveSelfReference(at Key, ref *SelfReference) (ConfigValue, error) {
	return rc.resolveSubstitution(at, &SubstitutionValue{Path: ref.Path, Optional: true, origin: ref.origin})
}

func (rc *resolveContext) resolveConcat(at Key, c *ConcatValue) (ConfigValue, error) {
	resolvedParts := make([]ConfigValue, 0, len(c.Parts))
	for _, part := range c.Parts {
		v, err := rc.resolveValue(at, part.Value)
		if err != nil {
			return nil, err
		}
		if _, isOmitted := v.(omitted); isOmitted {
			continue
		}
		resolvedParts = append(resolvedParts, v)
	}
	return rc.concatenate(at, c.origin, resolvedParts), nil
}

// concatenate implements HOCON's self-concatenation typing rule: if every
// part is an object, the result is their deep merge; if every part is
// null or array with at least one array present, null parts are dropped
// and the arrays are appended element-wise; if every part is a scalar
// (including null), the parts are rendered to their string form and
// concatenated; any other combination (e.g. object ++ scalar) is not a
// legal concatenation and is recorded as an invalid path rather than
// rendered to a string.
func (rc *resolveContext) concatenate(at Key, origin Origin, parts []ConfigValue) ConfigValue {
	if len(parts) == 0 {
		return NewNullValue(origin)
	}
	if len(parts) == 1 {
		return parts[0]
	}
	if allObjects(parts) {
		result := NewObjectValue(origin)
		for _, p := range parts {
			result = mergeResolvedObjects(result, p.(ObjectValue))
		}
		return result
	}
	if hasArray(parts) && allNullOrArray(parts) {
		var elements []ConfigValue
		for _, p := range parts {
			if arr, ok := p.(ArrayValue); ok {
				elements = append(elements, arr.Elements...)
			}
		}
		return NewArrayValue(origin, elements...)
	}
	if allScalar(parts) {
		var b []byte
		for _, p := range parts {
			b = append(b, configValueToString(p)...)
		}
		return NewStringValue(string(b), origin)
	}
	rc.invalid.Add(fmt.Sprintf("invalid concatenation at '%s': cannot combine mismatched value types", at.String()))
	return omitted{}
}

func allObjects(parts []ConfigValue) bool {
	for _, p := range parts {
		if _, ok := p.(ObjectValue); !ok {
			return false
		}
	}
	return true
}

func hasArray(parts []ConfigValue) bool {
	for _, p := range parts {
		if _, ok := p.(ArrayValue); ok {
			return true
		}
	}
	return false
}

func allNullOrArray(parts []ConfigValue) bool {
	for _, p := range parts {
		switch p.(type) {
		case NullValue, ArrayValue:
		default:
			return false
		}
	}
	return true
}

func allScalar(parts []ConfigValue) bool {
	for _, p := range parts {
		if !isScalar(p) {
			return false
		}
	}
	return true
}

func isScalar(v ConfigValue) bool {
	switch v.(type) {
	case NullValue, BoolValue, LongValue, DoubleValue, StringValue:
		return true
	default:
		return false
	}
}

func mergeResolvedObjects(a, b ObjectValue) ObjectValue {
	fields := append([]ResolvedField(nil), a.Fields...)
	for _, bf := range b.Fields {
		merged := false
		for i, af := range fields {
			if af.Key != bf.Key {
				continue
			}
			merged = true
			aObj, aIsObj := af.Value.(ObjectValue)
			bObj, bIsObj := bf.Value.(ObjectValue)
			if aIsObj && bIsObj {
				fields[i] = ResolvedField{Key: bf.Key, Value: mergeResolvedObjects(aObj, bObj)}
			} else {
				fields[i] = ResolvedField{Key: bf.Key, Value: bf.Value}
			}
			break
		}
		if !merged {
			fields = append(fields, bf)
		}
	}
	sortResolvedFields(fields)
	return NewObjectValue(a.origin, fields...)
}

func configValueToString(v ConfigValue) string {
	switch val := v.(type) {
	case StringValue:
		return val.Value
	case LongValue:
		return fmt.Sprintf("%d", val.Value)
	case DoubleValue:
		return fmt.Sprintf("%g", val.Value)
	case BoolValue:
		return fmt.Sprintf("%t", val.Value)
	case NullValue:
		return "null"
	default:
		return ""
	}
}

func (rc *resolveContext) resolveMerged(at Key, m *MergedValue) (ConfigValue, error) {
	var acc ConfigValue
	for _, raw := range m.Values {
		v, err := rc.resolveValue(at, raw)
		if err != nil {
			return nil, err
		}
		if _, isOmitted := v.(omitted); isOmitted {
			continue
		}
		if acc == nil {
			acc = v
			continue
		}
		accObj, accIsObj := acc.(ObjectValue)
		vObj, vIsObj := v.(ObjectValue)
		if accIsObj && vIsObj {
			acc = mergeResolvedObjects(accObj, vObj)
		} else {
			acc = v
		}
	}
	if acc == nil {
		return omitted{}, nil
	}
	return acc, nil
}
