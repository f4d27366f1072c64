package shape

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msto63/tidystring/foundation/core/errors"
	"github.com/msto63/tidystring/pkg/frame"
)

type label string
type labels []string

func strp(s string) *string { return &s }

func TestNormalizeClassification(t *testing.T) {
	col, err := frame.NewColumnWithIndex("words", []string{"a", "b"}, []string{"x", ""}, []bool{true, false})
	require.NoError(t, err)

	tests := []struct {
		name     string
		input    any
		kind     Kind
		values   []Elem[string]
		nullable bool
	}{
		{"string", "hello", Scalar, []Elem[string]{Some("hello")}, false},
		{"empty string", "", Scalar, []Elem[string]{Some("")}, false},
		{"named string", label("hi"), Scalar, []Elem[string]{Some("hi")}, false},
		{"string slice", []string{"a", "b"}, Sequence, []Elem[string]{Some("a"), Some("b")}, false},
		{"named slice", labels{"a"}, Sequence, []Elem[string]{Some("a")}, false},
		{"pointer slice", []*string{strp("a"), nil}, Sequence, []Elem[string]{Some("a"), None[string]()}, true},
		{"any slice", []any{"a", nil, label("c")}, Sequence, []Elem[string]{Some("a"), None[string](), Some("c")}, true},
		{"empty slice", []string{}, Sequence, []Elem[string]{}, false},
		{"column pointer", col, TabularColumn, []Elem[string]{Some("x"), None[string]()}, true},
		{"column value", *col, TabularColumn, []Elem[string]{Some("x"), None[string]()}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view, err := Normalize(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, view.Kind)
			assert.Equal(t, tt.nullable, view.Nullable)
			if diff := cmp.Diff(tt.values, view.Values); diff != "" {
				t.Errorf("values (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNormalizeColumnKeepsLabels(t *testing.T) {
	col, err := frame.NewColumnWithIndex("names", []string{"r3", "r1", "r2"}, []string{"c", "a", "b"}, nil)
	require.NoError(t, err)

	view, err := Normalize(col)
	require.NoError(t, err)
	assert.Equal(t, "names", view.Name)
	assert.Equal(t, []string{"r3", "r1", "r2"}, view.Index)
	assert.Equal(t, 3, view.Len())
}

func TestNormalizeScalarIsLengthOne(t *testing.T) {
	view, err := Normalize("a b c")
	require.NoError(t, err)
	assert.Equal(t, 1, view.Len())
}

func TestNormalizeRejects(t *testing.T) {
	var nilColumn *frame.Column[string]

	tests := []struct {
		name  string
		input any
	}{
		{"nil", nil},
		{"int", 42},
		{"int slice", []int{1, 2}},
		{"map", map[string]string{"a": "b"}},
		{"nil column", nilColumn},
		{"int column", frame.NewColumn("n", []int{1})},
		{"mixed any slice", []any{"a", 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Normalize(tt.input)
			require.Error(t, err)
			assert.True(t, errors.IsTypeKind(err), "want TypeKind, got %v", err)
			assert.Contains(t, err.Error(), "unsupported input type")
		})
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "scalar", Scalar.String())
	assert.Equal(t, "sequence", Sequence.String())
	assert.Equal(t, "column", TabularColumn.String())
	assert.Equal(t, "unknown", Kind(9).String())
}
