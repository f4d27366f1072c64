package tidy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msto63/tidystring/foundation/core/errors"
)

func TestLength(t *testing.T) {
	out, err := Length("héllo")
	require.NoError(t, err)
	assert.Equal(t, 5, out)

	out, err = Length([]string{"", "abc"})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 3}, out)

	out, err = Length([]*string{nil, strp("ab")})
	require.NoError(t, err)
	got := out.([]*int)
	assert.Nil(t, got[0])
	assert.Equal(t, 2, *got[1])
}

func TestTrimAndSquish(t *testing.T) {
	out, err := Trim("  hi there \t\n")
	require.NoError(t, err)
	assert.Equal(t, "hi there", out)

	out, err = Squish("  hello   world \n again ")
	require.NoError(t, err)
	assert.Equal(t, "hello world again", out)
}

func TestSub(t *testing.T) {
	tests := []struct {
		name       string
		start, end int
		want       string
	}{
		{"prefix", 0, 5, "hello"},
		{"negative start", -5, 11, "world"},
		{"negative end", 0, -6, "hello"},
		{"past the end", 6, 100, "world"},
		{"empty range", 5, 2, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Sub("hello world", tt.start, tt.end)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}

	out, err := SubFrom([]string{"hello", "hé"}, -2)
	require.NoError(t, err)
	assert.Equal(t, []string{"lo", "hé"}, out)
}

func TestPad(t *testing.T) {
	tests := []struct {
		side  Side
		width int
		pad   string
		want  string
	}{
		{SideLeft, 10, "*", "*****hello"},
		{SideRight, 10, "*", "hello*****"},
		{SideBoth, 10, "*", "**hello***"},
		{SideBoth, 9, " ", "  hello  "},
		{SideLeft, 3, "*", "hello"},
		{SideLeft, 7, "é", "ééhello"},
	}
	for _, tt := range tests {
		t.Run(string(tt.side), func(t *testing.T) {
			out, err := Pad("hello", tt.width, tt.side, tt.pad)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestPadErrors(t *testing.T) {
	_, err := Pad("x", 5, Side("middle"), " ")
	require.Error(t, err)
	assert.True(t, errors.IsUnsupportedOption(err))
	assert.Equal(t, "Invalid side: 'middle'. Valid options are: both, left, right", err.Error())
	assert.Equal(t, []string{"both", "left", "right"}, errors.ValidOptions(err))

	_, err = Pad("x", 5, SideLeft, "ab")
	assert.True(t, errors.IsInvalidArgument(err))

	_, err = Pad("x", 5, SideLeft, "")
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestDup(t *testing.T) {
	out, err := Dup("ab", 3)
	require.NoError(t, err)
	assert.Equal(t, "ababab", out)

	out, err = Dup([]string{"x", "yz"}, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"", ""}, out)

	_, err = Dup("ab", -1)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestWrap(t *testing.T) {
	out, err := Wrap("A very long string that needs to be wrapped", WrapOptions{Width: 20})
	require.NoError(t, err)
	assert.Equal(t, "A very long string\nthat needs to be\nwrapped", out)

	out, err = Wrap("short", WrapOptions{})
	require.NoError(t, err)
	assert.Equal(t, "short", out, "zero width falls back to the default")

	_, err = Wrap("x", WrapOptions{Width: -1})
	assert.True(t, errors.IsInvalidArgument(err))

	_, err = Wrap("x", WrapOptions{Indent: -2})
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestAffixes(t *testing.T) {
	out, err := StartsWith([]string{"hello", "world", ".x"}, "he")
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false, false}, out)

	out, err = StartsWith(".x", ".")
	require.NoError(t, err)
	assert.Equal(t, true, out, "the prefix is literal")

	out, err = EndsWith("report.csv", ".csv")
	require.NoError(t, err)
	assert.Equal(t, true, out)

	out, err = EndsWith("reportxcsv", ".csv")
	require.NoError(t, err)
	assert.Equal(t, false, out)
}

func TestDashToSpace(t *testing.T) {
	out, err := DashToSpace("hello-world_again")
	require.NoError(t, err)
	assert.Equal(t, "hello world again", out)

	out, err = DashToSpace([]string{"a.b", "c-d"}, ".")
	require.NoError(t, err)
	assert.Equal(t, []string{"a b", "c-d"}, out)

	_, err = DashToSpace("x", "")
	assert.True(t, errors.IsInvalidArgument(err))
}
