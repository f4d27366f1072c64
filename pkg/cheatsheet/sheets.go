package cheatsheet

var (
	functionColumns  = []string{"Function", "Description", "Example"}
	regexColumns     = []string{"Pattern", "Description", "Example"}
	inputTypeColumns = []string{"Input Type", "Example Input", "Example Function", "Example Output", "Notes"}
)

var builtin = map[string]*Sheet{
	"basic": {
		Group:   "basic",
		Columns: functionColumns,
		Rows: [][]string{
			{"str_length", "Get the length of a string", `str_length("hello") -> 5`},
			{"str_detect", "Detect if a pattern exists in a string", `str_detect("hello world", "o") -> true`},
			{"str_extract", "Extract the first match of a pattern", `str_extract("hello world", "h(\w+)") -> "ello"`},
			{"str_replace", "Replace all matches of a pattern", `str_replace("hello", "l", "X") -> "heXXo"`},
			{"str_remove", "Remove all matches of a pattern", `str_remove("hello", "l") -> "heo"`},
			{"str_trim", "Remove whitespace from start and end", `str_trim("  hello  ") -> "hello"`},
			{"str_to_upper", "Convert to uppercase", `str_to_upper("hello") -> "HELLO"`},
			{"str_to_lower", "Convert to lowercase", `str_to_lower("HELLO") -> "hello"`},
			{"str_to_title", "Convert to title case", `str_to_title("hello world") -> "Hello World"`},
			{"str_split", "Split string by pattern", `str_split("a,b,c", ",") -> ["a", "b", "c"]`},
			{"str_sub", "Extract substring from start/end positions", `str_sub("hello", 1, 3) -> "el"`},
			{"str_count", "Count occurrences of a pattern", `str_count("hello", "l") -> 2`},
		},
	},
	"case": {
		Group:   "case",
		Columns: functionColumns,
		Rows: [][]string{
			{"str_to_upper", "Convert to uppercase", `str_to_upper("hello") -> "HELLO"`},
			{"str_to_lower", "Convert to lowercase", `str_to_lower("HELLO") -> "hello"`},
			{"str_to_title", "Convert to title case", `str_to_title("hello world") -> "Hello World"`},
			{"str_upper_cut", "Capitalize first n characters", `str_upper_cut("hello", n=2) -> "HEllo"`},
			{"camel_to_snake", "Convert camelCase to snake_case", `camel_to_snake("helloWorld") -> "hello_world"`},
			{"snake_to_camel", "Convert snake_case to CamelCase", `snake_to_camel("hello_world") -> "HelloWorld"`},
			{"str_search_recase", "Change case of matched pattern", `str_search_recase("helloWorld", "\w+", "snakecase") -> "hello_world"`},
		},
	},
	"detection": {
		Group:   "detection",
		Columns: functionColumns,
		Rows: [][]string{
			{"str_detect", "Detect if a pattern exists in a string", `str_detect("hello world", "o") -> true`},
			{"str_startswith", "Check if string starts with a prefix", `str_startswith("hello", "he") -> true`},
			{"str_endswith", "Check if string ends with a suffix", `str_endswith("hello", "lo") -> true`},
			{"str_count", "Count occurrences of a pattern", `str_count("hello", "l") -> 2`},
			{"str_locate", "Find position of first match", `str_locate("hello", "l") -> 2`},
			{"str_locate_all", "Find positions of all matches", `str_locate_all("hello", "l") -> [[2, 3], [3, 4]]`},
		},
	},
	"extraction": {
		Group:   "extraction",
		Columns: functionColumns,
		Rows: [][]string{
			{"str_extract", "Extract first match of a pattern", `str_extract("hello world", "h(\w+)") -> "ello"`},
			{"str_sub", "Extract substring from start/end positions", `str_sub("hello", 1, 3) -> "el"`},
			{"str_split", "Split string by pattern into components", `str_split("a,b,c", ",") -> ["a", "b", "c"]`},
		},
	},
	"modification": {
		Group:   "modification",
		Columns: functionColumns,
		Rows: [][]string{
			{"str_replace", "Replace all matches of a pattern", `str_replace("hello", "l", "X") -> "heXXo"`},
			{"str_remove", "Remove all matches of a pattern", `str_remove("hello", "l") -> "heo"`},
			{"str_trim", "Remove whitespace from start and end", `str_trim("  hello  ") -> "hello"`},
			{"str_pad", "Pad a string to a specified width", `str_pad("hello", 10, side="both") -> "  hello   "`},
			{"str_squish", "Trim and replace internal whitespace", `str_squish("  hello    world  ") -> "hello world"`},
			{"str_dup", "Duplicate a string n times", `str_dup("abc", 2) -> "abcabc"`},
			{"str_wrap", "Wrap text to specified width", `str_wrap("long text...", width=20)`},
			{"str_concat", "Concatenate strings with separator", `str_concat("hello", "world", sep="-") -> "hello-world"`},
			{"str_dash_to_space", "Replace dashes with spaces", `str_dash_to_space("hello-world") -> "hello world"`},
			{"str_search_apply", "Apply a function to each regex match", `str_search_apply("ab12", "\d+", double) -> "ab24"`},
		},
	},
	"regex": {
		Group:   "regex",
		Columns: regexColumns,
		Rows: [][]string{
			{".", "Any character except newline", `"h.t" matches "hat", "hit", "hot"`},
			{`\w`, "Word character (letter, digit, underscore)", `"\w+" matches "hello123"`},
			{`\d`, "Digit character", `"\d+" matches "123"`},
			{`\s`, "Whitespace character", `"\s+" matches spaces, tabs, newlines`},
			{`\b`, "Word boundary", `"\bword\b" matches "word" as whole word`},
			{"^", "Start of string", `"^start" matches "start" at beginning`},
			{"$", "End of string", `"end$" matches "end" at the end`},
			{"[abc]", "Any character in the set", `"[aeiou]" matches any vowel`},
			{"[^abc]", "Any character not in the set", `"[^0-9]" matches any non-digit`},
			{"a|b", "a or b", `"cat|dog" matches "cat" or "dog"`},
			{"a*", "0 or more a's", `"a*" matches "", "a", "aa", "aaa"`},
			{"a+", "1 or more a's", `"a+" matches "a", "aa", "aaa"`},
			{"a?", "0 or 1 a", `"colou?r" matches "color" or "colour"`},
			{"a{3}", "Exactly 3 a's", `"a{3}" matches "aaa"`},
			{"a{2,4}", "2 to 4 a's", `"a{2,4}" matches "aa", "aaa", "aaaa"`},
			{"(abc)", "Capturing group", `"(\w+)@(\w+)" captures username and domain`},
			{"(?:abc)", "Non-capturing group", `"(?:\w+)" groups without capturing`},
			{"(?=abc)", "Positive lookahead", `"(?=\d)\w+" matches word starting with a digit`},
			{"(?!abc)", "Negative lookahead", `"(?!\d)\w+" matches word not starting with a digit`},
			{"(?<=abc)", "Positive lookbehind", `"(?<=\$)\d+" matches amounts after a dollar sign`},
			{"(?<!abc)", "Negative lookbehind", `"(?<!^)(?=[A-Z])" finds inner camelCase boundaries`},
		},
	},
	"input_types": {
		Group:   "input_types",
		Columns: inputTypeColumns,
		Rows: [][]string{
			{"string", `"hello world"`, "str_to_upper", `"HELLO WORLD"`, "Returns a string; nil when nothing matched"},
			{"[]string", `[]string{"hello", "world"}`, "str_to_upper", `[]string{"HELLO", "WORLD"}`, "Returns a slice; []*T when results can be missing"},
			{"column", `frame.NewColumn("w", ...)`, "str_to_upper", `*frame.Column[string]`, "Keeps name and index; missing results are NA"},
		},
	},
}

var allFunctions = []string{
	// basic
	"str_length",
	"str_detect",
	"str_extract",
	"str_replace",
	"str_remove",
	"str_trim",
	// case conversion
	"str_to_upper",
	"str_to_lower",
	"str_to_title",
	"str_upper_cut",
	"camel_to_snake",
	"snake_to_camel",
	"str_search_recase",
	// detection
	"str_startswith",
	"str_endswith",
	"str_count",
	"str_locate",
	"str_locate_all",
	// extraction
	"str_sub",
	"str_split",
	// modification
	"str_pad",
	"str_squish",
	"str_dup",
	"str_wrap",
	"str_concat",
	"str_dash_to_space",
	"str_search_apply",
}

// functionGroups are merged into the combined sheet in this order.
var functionGroups = []string{"basic", "case", "detection", "extraction", "modification"}
