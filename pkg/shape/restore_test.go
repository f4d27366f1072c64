package shape

import (
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msto63/tidystring/foundation/core/errors"
	"github.com/msto63/tidystring/pkg/frame"
)

func TestRestoreScalar(t *testing.T) {
	view, err := Normalize("hello")
	require.NoError(t, err)

	out, err := Restore(view, []Elem[int]{Some(5)}, false)
	require.NoError(t, err)
	assert.Equal(t, 5, out)

	out, err = Restore(view, []Elem[string]{None[string]()}, true)
	require.NoError(t, err)
	assert.Nil(t, out)

	out, err = Restore(view, []Elem[[]string]{Some([]string{"a", "b"})}, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, out, "multi-valued scalar results are the list itself")
}

func TestRestoreSequence(t *testing.T) {
	view, err := Normalize([]string{"a", "b", "c"})
	require.NoError(t, err)

	out, err := Restore(view, []Elem[bool]{Some(true), Some(false), Some(true)}, false)
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false, true}, out)

	out, err = Restore(view, []Elem[string]{Some("x"), None[string](), None[string]()}, true)
	require.NoError(t, err)
	got, ok := out.([]*string)
	require.True(t, ok, "nullable results restore to []*T, got %T", out)
	require.Len(t, got, 3)
	assert.Equal(t, "x", *got[0])
	assert.Nil(t, got[1])
	assert.Nil(t, got[2])
}

func TestRestoreSequenceNonNullableAbsent(t *testing.T) {
	view, err := Normalize([]string{"a"})
	require.NoError(t, err)

	_, err = Restore(view, []Elem[int]{None[int]()}, false)
	require.Error(t, err)
	assert.Equal(t, errors.ModuleShape, errors.ExtractModule(err))
}

func TestRestoreNullableInputKeepsPointers(t *testing.T) {
	view, err := Normalize([]*string{strp("hello"), nil})
	require.NoError(t, err)

	out, err := Restore(view, []Elem[int]{Some(5), None[int]()}, false)
	require.NoError(t, err)
	got := out.([]*int)
	assert.Equal(t, 5, *got[0])
	assert.Nil(t, got[1])
}

func TestRestoreColumn(t *testing.T) {
	col, err := frame.NewColumnWithIndex("text", []string{"x", "y", "z"}, []string{"hello world", "", "abc"}, []bool{true, false, true})
	require.NoError(t, err)
	view, err := Normalize(col)
	require.NoError(t, err)

	out, err := Restore(view, []Elem[bool]{Some(true), None[bool](), Some(false)}, false)
	require.NoError(t, err)

	got, ok := out.(*frame.Column[bool])
	require.True(t, ok, "got %T", out)
	assert.Equal(t, "text", got.Name())
	assert.Equal(t, []string{"x", "y", "z"}, got.Index())
	assert.Equal(t, []bool{true, false, true}, got.Valid())
	v, present := got.At(0)
	assert.True(t, present)
	assert.True(t, v)
}

func TestRestoreLengthMismatch(t *testing.T) {
	view, err := Normalize([]string{"a", "b", "c"})
	require.NoError(t, err)

	_, err = Restore(view, []Elem[int]{Some(1), Some(2)}, false)
	require.Error(t, err)
	assert.True(t, errors.IsShapeMismatch(err))
}

func TestRoundTrip(t *testing.T) {
	col, err := frame.NewColumnWithIndex("c", []string{"i", "j"}, []string{"p", ""}, []bool{true, false})
	require.NoError(t, err)

	inputs := []any{
		"hello",
		[]string{"a", "b"},
		[]string{},
		[]*string{strp("a"), nil},
		col,
	}

	for _, input := range inputs {
		t.Run(fmt.Sprintf("%T", input), func(t *testing.T) {
			view, err := Normalize(input)
			require.NoError(t, err)
			out, err := Restore(view, view.Values, false)
			require.NoError(t, err)
			assert.Equal(t, input, out)
		})
	}
}

func TestMap(t *testing.T) {
	out, err := Map([]string{"hello", "hi"}, func(s string) (int, error) {
		return utf8.RuneCountInString(s), nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int{5, 2}, out)

	calls := 0
	out, err = Map([]*string{nil, strp("ab")}, func(s string) (string, error) {
		calls++
		return strings.ToUpper(s), nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls, "absent elements are skipped")
	got := out.([]*string)
	assert.Nil(t, got[0])
	assert.Equal(t, "AB", *got[1])

	_, err = Map(42, func(s string) (string, error) { return s, nil })
	assert.True(t, errors.IsTypeKind(err))

	_, err = Map([]string{"a"}, func(string) (string, error) { return "", fmt.Errorf("boom") })
	assert.EqualError(t, err, "boom")
}

func TestMapNullable(t *testing.T) {
	first := func(s string) (string, bool, error) {
		if s == "" {
			return "", false, nil
		}
		return s[:1], true, nil
	}

	out, err := MapNullable("", first)
	require.NoError(t, err)
	assert.Nil(t, out)

	out, err = MapNullable([]string{"ab", ""}, first)
	require.NoError(t, err)
	got := out.([]*string)
	assert.Equal(t, "a", *got[0])
	assert.Nil(t, got[1])
}

func TestEmptyInputsStayEmpty(t *testing.T) {
	out, err := Map([]string{}, func(s string) (int, error) { return len(s), nil })
	require.NoError(t, err)
	assert.Equal(t, []int{}, out)

	out, err = Map(frame.NewColumn[string]("empty", nil), func(s string) (int, error) { return len(s), nil })
	require.NoError(t, err)
	col := out.(*frame.Column[int])
	assert.Equal(t, 0, col.Len())
	assert.Equal(t, "empty", col.Name())
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, Scalar, KindOf("x"))
	assert.Equal(t, Scalar, KindOf(3))
	assert.Equal(t, Scalar, KindOf(nil))
	assert.Equal(t, Sequence, KindOf([]bool{true}))
	assert.Equal(t, Sequence, KindOf([]*string{nil}))
	assert.Equal(t, TabularColumn, KindOf(frame.NewColumn("n", []int{1})))
}
