package directive

import (
	"testing"

	txt "github.com/erraggy/laika/text"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFenced_ArgsFieldsBody(t *testing.T) {
	occ, next, ok := ParseFenced(txt.NewCursor(`@:note type="warning" { careful here } @:@ rest`))
	require.True(t, ok)
	assert.Equal(t, "note", occ.Name)
	assert.Equal(t, "warning", occ.Fields["type"])
	assert.Equal(t, " careful here ", occ.Body)
	assert.Equal(t, " rest", next.Remaining())
}

func TestParseFenced_NoBody(t *testing.T) {
	occ, _, ok := ParseFenced(txt.NewCursor(`@:toc depth=2`))
	require.True(t, ok)
	assert.Equal(t, "toc", occ.Name)
	assert.Equal(t, "2", occ.Fields["depth"])
}

func TestParseLegacy_ArgsFieldsBody(t *testing.T) {
	occ, _, ok := ParseLegacy(txt.NewCursor(`:note type="warning" : careful here` + "\n"))
	require.True(t, ok)
	assert.Equal(t, "note", occ.Name)
	assert.Equal(t, "warning", occ.Fields["type"])
	assert.Equal(t, "careful here", occ.Body)
}

func TestValidate_MissingRequiredField(t *testing.T) {
	spec := New("note", Field("type"), Content())
	occ := Occurrence{Name: "note", Fields: map[string]string{}}
	_, invalidErr := Validate(spec, occ)
	require.NotNil(t, invalidErr)
	assert.Contains(t, invalidErr.Message, "missing required field")
}

func TestValidate_DuplicateField(t *testing.T) {
	spec := New("note", OptField("type"))
	occ := Occurrence{
		Name:       "note",
		Fields:     map[string]string{"type": "warning"},
		FieldOrder: []string{"type", "type"},
	}
	_, invalidErr := Validate(spec, occ)
	require.NotNil(t, invalidErr)
	assert.Contains(t, invalidErr.Message, "duplicate field")
}

func TestValidate_UnknownField(t *testing.T) {
	spec := New("note")
	occ := Occurrence{Name: "note", Fields: map[string]string{"bogus": "1"}, FieldOrder: []string{"bogus"}}
	_, invalidErr := Validate(spec, occ)
	require.NotNil(t, invalidErr)
	assert.Contains(t, invalidErr.Message, "does not accept field")
}

func TestValidate_Success(t *testing.T) {
	spec := New("note", Argument("level"), OptField("type"), Content())
	occ := Occurrence{
		Name:      "note",
		Arguments: []string{"high"},
		Fields:    map[string]string{"type": "warning"},
		FieldOrder: []string{"type"},
		Body:      "be careful",
	}
	parsed, invalidErr := Validate(spec, occ)
	require.Nil(t, invalidErr)
	assert.Equal(t, "high", parsed.Arguments["level"])
	assert.Equal(t, "warning", parsed.Fields["type"])
	assert.Equal(t, "be careful", parsed.BodyText)
}
