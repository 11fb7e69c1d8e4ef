package hocon

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/laika/laikaerrors"
)

func resolve(t *testing.T, source string) ObjectValue {
	t.Helper()
	root, failures := ParseDocument("test", source)
	require.Empty(t, failures)
	r := NewResolver(context.Background(), ResolverOptions{})
	resolved, err := r.Resolve(root)
	require.NoError(t, err)
	return resolved
}

func TestParseAndResolve_Scalars(t *testing.T) {
	obj := resolve(t, `a = 1
b = "two"
c = true
d = null
e = 3.14`)

	v, ok := obj.Get("a")
	require.True(t, ok)
	assert.Equal(t, int64(1), v.(LongValue).Value)

	v, ok = obj.Get("b")
	require.True(t, ok)
	assert.Equal(t, "two", v.(StringValue).Value)

	v, ok = obj.Get("c")
	require.True(t, ok)
	assert.True(t, v.(BoolValue).Value)

	v, ok = obj.Get("d")
	require.True(t, ok)
	_, isNull := v.(NullValue)
	assert.True(t, isNull)

	v, ok = obj.Get("e")
	require.True(t, ok)
	assert.InDelta(t, 3.14, v.(DoubleValue).Value, 0.0001)
}

func TestPathExpansion(t *testing.T) {
	obj := resolve(t, `a.b.c = 1`)
	a, ok := obj.Get("a")
	require.True(t, ok)
	b, ok := a.(ObjectValue).Get("b")
	require.True(t, ok)
	c, ok := b.(ObjectValue).Get("c")
	require.True(t, ok)
	assert.Equal(t, int64(1), c.(LongValue).Value)
}

func TestObjectMerging(t *testing.T) {
	obj := resolve(t, `a { x = 1 }
a { y = 2 }`)
	a, ok := obj.Get("a")
	require.True(t, ok)
	x, ok := a.(ObjectValue).Get("x")
	require.True(t, ok)
	assert.Equal(t, int64(1), x.(LongValue).Value)
	y, ok := a.(ObjectValue).Get("y")
	require.True(t, ok)
	assert.Equal(t, int64(2), y.(LongValue).Value)
}

func TestDuplicateScalarKey_LastWins(t *testing.T) {
	obj := resolve(t, `a = 1
a = 2`)
	v, ok := obj.Get("a")
	require.True(t, ok)
	assert.Equal(t, int64(2), v.(LongValue).Value)
}

func TestSubstitution(t *testing.T) {
	obj := resolve(t, `home = /usr/local
path = ${home}/bin`)
	v, ok := obj.Get("path")
	require.True(t, ok)
	assert.Equal(t, "/usr/local/bin", v.(StringValue).Value)
}

func TestOptionalSubstitution_MissingIsOmitted(t *testing.T) {
	obj := resolve(t, `a = ${?missing}
b = 1`)
	_, ok := obj.Get("a")
	assert.False(t, ok)
	_, ok = obj.Get("b")
	assert.True(t, ok)
}

func TestRequiredSubstitution_Missing_Errors(t *testing.T) {
	root, failures := ParseDocument("test", `a = ${missing}`)
	require.Empty(t, failures)
	r := NewResolver(context.Background(), ResolverOptions{})
	_, err := r.Resolve(root)
	require.Error(t, err)
	var resErr *laikaerrors.ConfigResolverError
	require.ErrorAs(t, err, &resErr)
	assert.Contains(t, resErr.Error(), "Missing required reference: 'missing'")
}

func TestCircularSubstitution_Errors(t *testing.T) {
	root, failures := ParseDocument("test", `a = ${b}
b = ${a}`)
	require.Empty(t, failures)
	r := NewResolver(context.Background(), ResolverOptions{})
	_, err := r.Resolve(root)
	require.Error(t, err)
	var resErr *laikaerrors.ConfigResolverError
	require.ErrorAs(t, err, &resErr)
	require.Len(t, resErr.InvalidPaths, 1)
	assert.Contains(t, resErr.InvalidPaths[0], "a")
	assert.Contains(t, resErr.InvalidPaths[0], "b")
}

func TestResolve_AccumulatesMultipleInvalidPaths(t *testing.T) {
	root, failures := ParseDocument("test", `a = ${missing1}
b = ${missing2}`)
	require.Empty(t, failures)
	r := NewResolver(context.Background(), ResolverOptions{})
	_, err := r.Resolve(root)
	require.Error(t, err)
	var resErr *laikaerrors.ConfigResolverError
	require.ErrorAs(t, err, &resErr)
	require.Len(t, resErr.InvalidPaths, 2)
	assert.Contains(t, resErr.Error(), "missing1")
	assert.Contains(t, resErr.Error(), "missing2")
}

func TestNullArrayConcatenation_Promotes(t *testing.T) {
	obj := resolve(t, `a = null [1, 2]`)
	v, ok := obj.Get("a")
	require.True(t, ok)
	arr := v.(ArrayValue)
	require.Len(t, arr.Elements, 2)
	assert.Equal(t, int64(1), arr.Elements[0].(LongValue).Value)
}

func TestInvalidConcatenation_RecordsInvalidPath(t *testing.T) {
	root, failures := ParseDocument("test", `a = { x = 1 } [1, 2]`)
	require.Empty(t, failures)
	r := NewResolver(context.Background(), ResolverOptions{})
	_, err := r.Resolve(root)
	require.Error(t, err)
	var resErr *laikaerrors.ConfigResolverError
	require.ErrorAs(t, err, &resErr)
	assert.Contains(t, resErr.Error(), "invalid concatenation")
}

type recordingLogger struct {
	warnings []string
}

func (l *recordingLogger) Debug(string, ...any) {}
func (l *recordingLogger) Warn(msg string, _ ...any) {
	l.warnings = append(l.warnings, msg)
}

func TestOptionalSubstitution_Missing_LogsWarn(t *testing.T) {
	root, failures := ParseDocument("test", `a = ${?missing}`)
	require.Empty(t, failures)
	logger := &recordingLogger{}
	r := NewResolver(context.Background(), ResolverOptions{Logger: logger})
	_, err := r.Resolve(root)
	require.NoError(t, err)
	require.Len(t, logger.warnings, 1)
	assert.Equal(t, "optional substitution has no target", logger.warnings[0])
}

func TestStringConcatenation(t *testing.T) {
	obj := resolve(t, `greeting = "hello " "world"`)
	v, ok := obj.Get("greeting")
	require.True(t, ok)
	assert.Equal(t, "hello world", v.(StringValue).Value)
}

func TestArrayLiteral(t *testing.T) {
	obj := resolve(t, `items = [1, 2, 3]`)
	v, ok := obj.Get("items")
	require.True(t, ok)
	arr := v.(ArrayValue)
	require.Len(t, arr.Elements, 3)
	assert.Equal(t, int64(2), arr.Elements[1].(LongValue).Value)
}

func TestArrayConcatenation(t *testing.T) {
	obj := resolve(t, `a = [1, 2]
b = ${a} [3, 4]`)
	v, ok := obj.Get("b")
	require.True(t, ok)
	arr := v.(ArrayValue)
	require.Len(t, arr.Elements, 4)
	assert.Equal(t, int64(4), arr.Elements[3].(LongValue).Value)
}

func TestInvalidField_Reported(t *testing.T) {
	root, failures := ParseDocument("test", `a = `)
	require.Empty(t, failures)
	r := NewResolver(context.Background(), ResolverOptions{})
	_, err := r.Resolve(root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected a value")
}

func TestFieldRef_LookupAndResolve(t *testing.T) {
	root, failures := ParseDocument("test", `a = ${b}
b = 1`)
	require.Empty(t, failures)
	ref, ok := LookupFieldRef(root, ParseKeyPath("a"))
	require.True(t, ok)

	r := NewResolver(context.Background(), ResolverOptions{})
	v, err := ref.Resolve(r)
	require.NoError(t, err)
	assert.Equal(t, int64(1), v.(LongValue).Value)
}

func TestKey_IsChildAndLess(t *testing.T) {
	root := RootKey()
	a := root.Child("a")
	ab := a.Child("b")
	assert.True(t, root.IsChild(a))
	assert.True(t, a.IsChild(ab))
	assert.False(t, ab.IsChild(a))
	assert.True(t, a.Less(ab))
}
