package laikaerrors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParserFailure_Is(t *testing.T) {
	err := &ParserFailure{Message: "expected digit", Position: Position{Line: 2, Column: 5, LineContent: "abc123"}}
	assert.True(t, errors.Is(err, ErrParserFailure))
	assert.False(t, errors.Is(err, ErrConfigResolver))
	assert.Contains(t, err.Error(), "expected digit")
	assert.Contains(t, err.Error(), "abc123")
}

func TestPosition_CaretDiagram(t *testing.T) {
	p := Position{Line: 1, Column: 4, LineContent: "a = 1"}
	diagram := p.CaretDiagram()
	assert.Equal(t, "a = 1\n   ^", diagram)
}

func TestPosition_Unknown(t *testing.T) {
	var p Position
	assert.False(t, p.IsKnown())
	assert.Equal(t, "<unknown>", p.String())
	assert.Equal(t, "", p.CaretDiagram())
}

func TestConfigResolverError_Aggregation(t *testing.T) {
	var err ConfigResolverError
	assert.True(t, err.Empty())

	err.Add(CircularReferenceMessage("a", "b")).Add(MissingRequiredReferenceMessage("missing"))
	assert.False(t, err.Empty())
	assert.True(t, errors.Is(&err, ErrConfigResolver))
	assert.Contains(t, err.Error(), "circular reference: 'a' -> 'b'")
	assert.Contains(t, err.Error(), "Missing required reference: 'missing'")
}

func TestInvalidFields_Error(t *testing.T) {
	err := &InvalidFields{Fields: []InvalidField{
		{Path: "a.b", Message: "duplicate key"},
		{Path: "c", Message: "invalid value"},
	}}
	assert.True(t, errors.Is(err, ErrInvalidFields))
	assert.Contains(t, err.Error(), "a.b: duplicate key")
}

func TestMarkupParserException_Unwrap(t *testing.T) {
	cause := &ParserFailure{Message: "boom", Position: Position{}}
	err := &MarkupParserException{Message: "unexpected", Cause: cause}
	assert.True(t, errors.Is(err, ErrMarkupParserException))
	assert.Same(t, cause, errors.Unwrap(err))
}

func TestInvalidElement_Is(t *testing.T) {
	err := &InvalidElement{Message: "missing required argument", Source: ".. oneArg::"}
	assert.True(t, errors.Is(err, ErrInvalidElement))
	assert.Contains(t, err.Error(), "missing required argument")
}

func TestResolverFailed_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	err := &ResolverFailed{Path: "a.b", Message: "dependent value", Cause: cause}
	assert.True(t, errors.Is(err, ErrResolverFailed))
	assert.Same(t, cause, errors.Unwrap(err))
}
