package config

import (
	"encoding/json"

	"github.com/erraggy/laika/hocon"
	yaml "go.yaml.in/yaml/v4"
)

// toPlain converts a resolved ConfigValue tree into plain Go values
// (map[string]any, []any, string, int64, float64, bool, nil) suitable for
// both encoding/json and yaml/v4, which share the same marshaling
// conventions over those types.
func toPlain(v hocon.ConfigValue) any {
	switch val := v.(type) {
	case hocon.NullValue:
		return nil
	case hocon.BoolValue:
		return val.Value
	case hocon.LongValue:
		return val.Value
	case hocon.DoubleValue:
		return val.Value
	case hocon.StringValue:
		return val.Value
	case hocon.ArrayValue:
		out := make([]any, len(val.Elements))
		for i, e := range val.Elements {
			out[i] = toPlain(e)
		}
		return out
	case hocon.ObjectValue:
		out := make(map[string]any, len(val.Fields))
		for _, f := range val.Fields {
			out[f.Key] = toPlain(f.Value)
		}
		return out
	default:
		return nil
	}
}

// ExportJSON renders the full config tree as indented JSON.
func (c *Config) ExportJSON() ([]byte, error) {
	return json.MarshalIndent(toPlain(c.root), "", "  ")
}

// ExportYAML renders the full config tree as YAML.
func (c *Config) ExportYAML() ([]byte, error) {
	return yaml.Marshal(toPlain(c.root))
}
