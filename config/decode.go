package config

import (
	"fmt"
	"reflect"

	"github.com/erraggy/laika/hocon"
)

// Decode populates a struct pointed to by dst from the config value at
// path, matching fields by a `config:"name"` tag (falling back to the
// field's name with its first letter lowercased when no tag is present).
// Nested objects recurse
// into nested structs; unsupported scalar kinds return an error naming
// the offending field.
//
// Grounded on the teacher's builder.Builder reflection-based schema
// cache: a single reflect.Type walk driving population, rather than a
// generated per-type decoder, since Config trees are read far less often
// than OAS documents are built.
func (c *Config) Decode(path string, dst any) error {
	v, ok := c.valueAt(path)
	if !ok {
		return &missingPathError{path: path}
	}
	obj, ok := v.(hocon.ObjectValue)
	if !ok {
		return &typeMismatchError{path: path, want: "object", got: v}
	}
	return decodeObject(obj, dst)
}

func decodeObject(obj hocon.ObjectValue, dst any) error {
	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("config: Decode target must be a pointer to struct, got %T", dst)
	}
	sv := rv.Elem()
	st := sv.Type()

	for i := 0; i < st.NumField(); i++ {
		field := st.Field(i)
		if !field.IsExported() {
			continue
		}
		name := field.Tag.Get("config")
		if name == "" {
			name = lowerFirst(field.Name)
		}
		if name == "-" {
			continue
		}
		value, found := obj.Get(name)
		if !found {
			continue
		}
		if err := decodeField(value, sv.Field(i)); err != nil {
			return fmt.Errorf("config: field %q: %w", field.Name, err)
		}
	}
	return nil
}

func decodeField(value hocon.ConfigValue, field reflect.Value) error {
	switch field.Kind() {
	case reflect.String:
		s, ok := value.(hocon.StringValue)
		if !ok {
			return fmt.Errorf("expected string, got %T", value)
		}
		field.SetString(s.Value)
	case reflect.Bool:
		b, ok := value.(hocon.BoolValue)
		if !ok {
			return fmt.Errorf("expected bool, got %T", value)
		}
		field.SetBool(b.Value)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		l, ok := value.(hocon.LongValue)
		if !ok {
			return fmt.Errorf("expected integer, got %T", value)
		}
		field.SetInt(l.Value)
	case reflect.Float32, reflect.Float64:
		switch n := value.(type) {
		case hocon.DoubleValue:
			field.SetFloat(n.Value)
		case hocon.LongValue:
			field.SetFloat(float64(n.Value))
		default:
			return fmt.Errorf("expected number, got %T", value)
		}
	case reflect.Slice:
		arr, ok := value.(hocon.ArrayValue)
		if !ok {
			return fmt.Errorf("expected array, got %T", value)
		}
		slice := reflect.MakeSlice(field.Type(), len(arr.Elements), len(arr.Elements))
		for i, e := range arr.Elements {
			if err := decodeField(e, slice.Index(i)); err != nil {
				return err
			}
		}
		field.Set(slice)
	case reflect.Struct:
		obj, ok := value.(hocon.ObjectValue)
		if !ok {
			return fmt.Errorf("expected object, got %T", value)
		}
		return decodeObject(obj, field.Addr().Interface())
	case reflect.Map:
		obj, ok := value.(hocon.ObjectValue)
		if !ok {
			return fmt.Errorf("expected object, got %T", value)
		}
		m := reflect.MakeMapWithSize(field.Type(), len(obj.Fields))
		for _, f := range obj.Fields {
			elem := reflect.New(field.Type().Elem()).Elem()
			if err := decodeField(f.Value, elem); err != nil {
				return err
			}
			m.SetMapIndex(reflect.ValueOf(f.Key), elem)
		}
		field.Set(m)
	default:
		return fmt.Errorf("unsupported destination kind %s", field.Kind())
	}
	return nil
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	if r[0] >= 'A' && r[0] <= 'Z' {
		r[0] = r[0] + ('a' - 'A')
	}
	return string(r)
}
