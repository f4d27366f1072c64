package rex

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBuilderSource(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"literal", Literal("a.b"), `a\.b`},
		{"or", Or("cat", "dog", "bird"), "cat|dog|bird"},
		{"either", Either("x", "y"), "x|y"},
		{"chars", Chars("a-z"), `[a\-z]`},
		{"not chars", NotChars("]^"), `[^\]\^]`},
		{"repeat", Repeat(Digit(), 3), `\d{3}`},
		{"repeat range", RepeatRange(Word(), 2, 4), `\w{2,4}`},
		{"repeat open", RepeatRange(Space(), 1, -1), `\s{1,}`},
		{"capture", Capture(OneOrMore(Digit())), `(\d+)`},
		{"group", Optional(Group("ab")), `(?:ab)?`},
		{"lookahead", Lookahead("x"), "(?=x)"},
		{"negative lookahead", NegativeLookahead("x"), "(?!x)"},
		{"anchors", StartsWith(Any()) + EndsWith(ZeroOrMore(Any())), "^..*$"},
		{"whole word", WholeWord("go"), `\bgo\b`},
		{"boundary", Boundary() + Start() + End(), `\b^$`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tt.got); diff != "" {
				t.Errorf("pattern mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBuilderMatches(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		input   string
		want    []string
	}{
		{"word list", WordList("cat", "dog"), "cat catalog dog", []string{"cat", "dog"}},
		{"dates", Date(), "due 2024-01-31 or 1/31/2024", []string{"2024-01-31", "1/31/2024"}},
		{"times", Time(), "at 9:30 and 23:59:59, not 24:00", []string{"9:30", "23:59:59"}},
		{"email", Email(), "mail john.doe@example.com now", []string{"john.doe@example.com"}},
		{"url", URL(), "see https://example.com/docs?page=2 and http://go.dev", []string{"https://example.com/docs?page=2", "http://go.dev"}},
		{"phone", PhoneUS(), "call 555-123-4567 today", []string{"555-123-4567"}},
		{"chars literal dash", OneOrMore(Chars("a-")), "za-b", []string{"a-"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matches, err := MustCompile(tt.pattern).FindAll(tt.input, -1)
			if err != nil {
				t.Fatalf("FindAll() error = %v", err)
			}
			got := make([]string, len(matches))
			for i, m := range matches {
				got[i] = m.Text
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("matches (-want +got):\n%s", diff)
			}
		})
	}
}
