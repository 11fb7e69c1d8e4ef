// Package config implements the typed façade applications use to read a
// resolved HOCON document: Config wraps a hocon.ConfigValue root and
// exposes safe, typed accessors, merge operations, and export helpers.
//
// Grounded on the teacher's builder.Builder, which layers a typed,
// chainable API (With*/functional options) over a reflection-backed
// value tree; here the tree is a resolved hocon.ObjectValue instead of an
// OAS document, and the chainable operations are config-merge semantics
// (WithFallback/WithValue/WithOrigin) rather than schema construction.
package config

import (
	"fmt"

	"github.com/erraggy/laika/hocon"
)

// Config is an immutable, resolved configuration tree with typed
// accessors. Every With* method returns a new Config rather than mutating
// the receiver.
type Config struct {
	root   hocon.ObjectValue
	origin hocon.Origin
}

// FromResolved wraps an already-resolved hocon.ObjectValue as a Config.
func FromResolved(root hocon.ObjectValue, origin hocon.Origin) *Config {
	return &Config{root: root, origin: origin}
}

// Root returns the underlying resolved object value.
func (c *Config) Root() hocon.ObjectValue { return c.root }

// Origin returns this config's provenance.
func (c *Config) Origin() hocon.Origin { return c.origin }

// WithOrigin returns a copy of c labeled with a different origin, useful
// after merging multiple sources into one logical config.
func (c *Config) WithOrigin(origin hocon.Origin) *Config {
	return &Config{root: c.root, origin: origin}
}

// WithFallback returns a new Config where c's fields take priority and
// fallback's fields fill in anything c does not define, recursively for
// nested objects (mirroring hocon's object merge rule, not a shallow
// override).
func (c *Config) WithFallback(fallback *Config) *Config {
	return &Config{root: mergeObjectValues(c.root, fallback.root), origin: c.origin}
}

// WithValue returns a new Config with value set at the given dotted path,
// overriding whatever was there (programmatic values always take
// priority, matching "programmatic" origin semantics).
func (c *Config) WithValue(path string, value hocon.ConfigValue) *Config {
	key := hocon.ParseKeyPath(path)
	origin := hocon.Origin{Description: "programmatic"}
	overlay := wrapValueAtPath(key.Segments(), value, origin)
	return &Config{root: mergeObjectValues(overlay, c.root), origin: c.origin}
}

func wrapValueAtPath(segments []string, value hocon.ConfigValue, origin hocon.Origin) hocon.ObjectValue {
	if len(segments) == 1 {
		return hocon.NewObjectValue(origin, hocon.ResolvedField{Key: segments[0], Value: value})
	}
	inner := wrapValueAtPath(segments[1:], value, origin)
	return hocon.NewObjectValue(origin, hocon.ResolvedField{Key: segments[0], Value: inner})
}

func mergeObjectValues(primary, fallback hocon.ObjectValue) hocon.ObjectValue {
	fields := append([]hocon.ResolvedField(nil), primary.Fields...)
	for _, ff := range fallback.Fields {
		merged := false
		for i, pf := range fields {
			if pf.Key != ff.Key {
				continue
			}
			merged = true
			pObj, pIsObj := pf.Value.(hocon.ObjectValue)
			fObj, fIsObj := ff.Value.(hocon.ObjectValue)
			if pIsObj && fIsObj {
				fields[i] = hocon.ResolvedField{Key: ff.Key, Value: mergeObjectValues(pObj, fObj)}
			}
			break
		}
		if !merged {
			fields = append(fields, ff)
		}
	}
	sortFields(fields)
	return hocon.NewObjectValue(primary.Origin(), fields...)
}

func sortFields(fields []hocon.ResolvedField) {
	for i := 1; i < len(fields); i++ {
		for j := i; j > 0 && fields[j-1].Key > fields[j].Key; j-- {
			fields[j-1], fields[j] = fields[j], fields[j-1]
		}
	}
}

// valueAt navigates a dotted path within the config tree.
func (c *Config) valueAt(path string) (hocon.ConfigValue, bool) {
	key := hocon.ParseKeyPath(path)
	var cur hocon.ConfigValue = c.root
	for _, seg := range key.Segments() {
		obj, ok := cur.(hocon.ObjectValue)
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

// AtPath returns the sub-config rooted at path, or false if path does not
// name an object.
func (c *Config) AtPath(path string) (*Config, bool) {
	v, ok := c.valueAt(path)
	if !ok {
		return nil, false
	}
	obj, ok := v.(hocon.ObjectValue)
	if !ok {
		return nil, false
	}
	return &Config{root: obj, origin: c.origin}, true
}

// missingPathError is returned by Get when a required path is absent.
type missingPathError struct{ path string }

func (e *missingPathError) Error() string {
	return fmt.Sprintf("config: no value at path %q", e.path)
}

// typeMismatchError is returned by Get when the value at a path cannot be
// converted to the requested type.
type typeMismatchError struct {
	path string
	want string
	got  hocon.ConfigValue
}

func (e *typeMismatchError) Error() string {
	return fmt.Sprintf("config: value at %q is not convertible to %s (got %T)", e.path, e.want, e.got)
}

// Get reads the value at path and converts it to T, returning an error if
// the path is missing or the value cannot be converted. T may be any of
// string, bool, int64, float64, or []hocon.ConfigValue; any other T
// returns an error. Structs are populated with Config.Decode instead.
func Get[T any](c *Config, path string) (T, error) {
	var zero T
	v, ok := c.valueAt(path)
	if !ok {
		return zero, &missingPathError{path: path}
	}
	converted, err := convert[T](path, v)
	if err != nil {
		return zero, err
	}
	return converted, nil
}

// GetOpt reads the value at path, returning the type's zero value and
// false if the path is absent (never an error in that case — only a type
// mismatch on a present value is an error).
func GetOpt[T any](c *Config, path string) (T, bool, error) {
	var zero T
	v, ok := c.valueAt(path)
	if !ok {
		return zero, false, nil
	}
	converted, err := convert[T](path, v)
	if err != nil {
		return zero, false, err
	}
	return converted, true, nil
}

func convert[T any](path string, v hocon.ConfigValue) (T, error) {
	var zero T
	switch any(zero).(type) {
	case string:
		s, ok := v.(hocon.StringValue)
		if !ok {
			return zero, &typeMismatchError{path: path, want: "string", got: v}
		}
		return any(s.Value).(T), nil
	case bool:
		b, ok := v.(hocon.BoolValue)
		if !ok {
			return zero, &typeMismatchError{path: path, want: "bool", got: v}
		}
		return any(b.Value).(T), nil
	case int64:
		l, ok := v.(hocon.LongValue)
		if !ok {
			return zero, &typeMismatchError{path: path, want: "int64", got: v}
		}
		return any(l.Value).(T), nil
	case float64:
		switch n := v.(type) {
		case hocon.DoubleValue:
			return any(n.Value).(T), nil
		case hocon.LongValue:
			return any(float64(n.Value)).(T), nil
		default:
			return zero, &typeMismatchError{path: path, want: "float64", got: v}
		}
	case []hocon.ConfigValue:
		a, ok := v.(hocon.ArrayValue)
		if !ok {
			return zero, &typeMismatchError{path: path, want: "array", got: v}
		}
		return any(a.Elements).(T), nil
	default:
		return zero, fmt.Errorf("config: unsupported Get type %T", zero)
	}
}
