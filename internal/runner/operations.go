package runner

import (
	"strconv"

	"github.com/msto63/tidystring/foundation/core/errors"
	"github.com/msto63/tidystring/foundation/utils/mapx"
	"github.com/msto63/tidystring/foundation/utils/stringx"
	"github.com/msto63/tidystring/pkg/frame"
	"github.com/msto63/tidystring/pkg/tidy"
)

var (
	pPattern      = ParameterDef{Name: "pattern", Description: "regular expression", Required: true}
	pPrefix       = ParameterDef{Name: "pattern", Description: "literal prefix or suffix", Required: true}
	pReplacement  = ParameterDef{Name: "replacement", Description: "replacement template, $1 refers to group 1", Required: true}
	pN            = ParameterDef{Name: "n", Description: "maximum number of replacements or splits, 0 or less for all"}
	pWidth        = ParameterDef{Name: "width", Description: "target width in characters"}
	pSide         = ParameterDef{Name: "side", Description: "left, right or both"}
	pPad          = ParameterDef{Name: "pad", Description: "single padding character"}
	pSep          = ParameterDef{Name: "sep", Description: "separator"}
	pCase         = ParameterDef{Name: "case", Description: "lower, upper, title, snake_case or camel_case", Required: true}
	pStart        = ParameterDef{Name: "start", Description: "start position, negative counts from the end"}
	pEnd          = ParameterDef{Name: "end", Description: "end position (exclusive), negative counts from the end"}
	pTimes        = ParameterDef{Name: "times", Description: "number of repetitions", Required: true}
	pIndent       = ParameterDef{Name: "indent", Description: "spaces before the first line"}
	pExdent       = ParameterDef{Name: "exdent", Description: "spaces before following lines"}
	pRemoveDashes = ParameterDef{Name: "remove_dashes", Description: "replace dashes with spaces first"}
	pDashes       = ParameterDef{Name: "dashes", Description: "literal dashes to replace"}
	pWith         = ParameterDef{Name: "with", Description: "further strings to append"}
	pColumns      = ParameterDef{Name: "columns", Description: "table columns to join"}
	pFunc         = ParameterDef{Name: "func", Description: "transform applied to each match", Required: true}
)

// Transforms are the named functions available to str_search_apply.
var Transforms = map[string]func(string) string{
	"upper":   stringx.Upper,
	"lower":   stringx.Lower,
	"title":   stringx.Title,
	"squish":  stringx.Squish,
	"reverse": reverse,
	"double":  double,
}

func (r *Runner) registerBuiltins() {
	simple := func(name, desc string, fn func(any) (any, error)) {
		r.Register(&Operation{Name: name, Description: desc, Handler: func(in any, _ Params) (any, error) { return fn(in) }})
	}
	withPattern := func(name, desc string, fn func(any, string) (any, error)) {
		r.Register(&Operation{
			Name: name, Description: desc, Parameters: []ParameterDef{pPattern},
			Handler: func(in any, p Params) (any, error) { return fn(in, p.String("pattern", "")) },
		})
	}

	simple("str_length", "Get the length of a string", tidy.Length)
	simple("str_trim", "Remove whitespace from start and end", tidy.Trim)
	simple("str_squish", "Trim and replace internal whitespace", tidy.Squish)
	simple("str_to_upper", "Convert to uppercase", tidy.ToUpper)
	simple("str_to_lower", "Convert to lowercase", tidy.ToLower)
	simple("camel_to_snake", "Convert camelCase to snake_case", tidy.CamelToSnake)
	simple("snake_to_camel", "Convert snake_case to CamelCase", tidy.SnakeToCamel)

	withPattern("str_detect", "Detect if a pattern exists in a string", tidy.Detect)
	withPattern("str_extract", "Extract the first match of a pattern", tidy.Extract)
	withPattern("str_remove", "Remove all matches of a pattern", tidy.Remove)
	withPattern("str_count", "Count occurrences of a pattern", tidy.Count)
	withPattern("str_locate", "Find position of first match", tidy.Locate)
	withPattern("str_locate_all", "Find positions of all matches", tidy.LocateAll)

	r.Register(&Operation{
		Name: "str_startswith", Description: "Check if string starts with a prefix",
		Parameters: []ParameterDef{pPrefix},
		Handler: func(in any, p Params) (any, error) {
			return tidy.StartsWith(in, p.String("pattern", ""))
		},
	})
	r.Register(&Operation{
		Name: "str_endswith", Description: "Check if string ends with a suffix",
		Parameters: []ParameterDef{pPrefix},
		Handler: func(in any, p Params) (any, error) {
			return tidy.EndsWith(in, p.String("pattern", ""))
		},
	})

	r.Register(&Operation{
		Name: "str_replace", Description: "Replace matches of a pattern",
		Parameters: []ParameterDef{pPattern, pReplacement, pN},
		Handler: func(in any, p Params) (any, error) {
			n, err := p.Int("n", -1)
			if err != nil {
				return nil, err
			}
			return tidy.ReplaceN(in, p.String("pattern", ""), p.String("replacement", ""), n)
		},
	})
	r.Register(&Operation{
		Name: "str_split", Description: "Split string by pattern",
		Parameters: []ParameterDef{pPattern, pN},
		Handler: func(in any, p Params) (any, error) {
			n, err := p.Int("n", -1)
			if err != nil {
				return nil, err
			}
			return tidy.SplitN(in, p.String("pattern", ""), n)
		},
	})
	r.Register(&Operation{
		Name: "str_sub", Description: "Extract substring from start/end positions",
		Parameters: []ParameterDef{pStart, pEnd},
		Handler: func(in any, p Params) (any, error) {
			start, err := p.Int("start", 0)
			if err != nil {
				return nil, err
			}
			if !p.Has("end") {
				return tidy.SubFrom(in, start)
			}
			end, err := p.Int("end", 0)
			if err != nil {
				return nil, err
			}
			return tidy.Sub(in, start, end)
		},
	})
	r.Register(&Operation{
		Name: "str_pad", Description: "Pad a string to a specified width",
		Parameters: []ParameterDef{{Name: "width", Description: pWidth.Description, Required: true}, pSide, pPad},
		Handler: func(in any, p Params) (any, error) {
			width, err := p.Int("width", 0)
			if err != nil {
				return nil, err
			}
			side := tidy.Side(p.String("side", r.defaults.PadSide))
			return tidy.Pad(in, width, side, p.String("pad", r.defaults.PadChar))
		},
	})
	r.Register(&Operation{
		Name: "str_dup", Description: "Duplicate a string n times",
		Parameters: []ParameterDef{pTimes},
		Handler: func(in any, p Params) (any, error) {
			times, err := p.Int("times", 1)
			if err != nil {
				return nil, err
			}
			return tidy.Dup(in, times)
		},
	})
	r.Register(&Operation{
		Name: "str_wrap", Description: "Wrap text to specified width",
		Parameters: []ParameterDef{pWidth, pIndent, pExdent},
		Handler: func(in any, p Params) (any, error) {
			var opts tidy.WrapOptions
			var err error
			if opts.Width, err = p.Int("width", r.defaults.WrapWidth); err != nil {
				return nil, err
			}
			if opts.Indent, err = p.Int("indent", 0); err != nil {
				return nil, err
			}
			if opts.Exdent, err = p.Int("exdent", 0); err != nil {
				return nil, err
			}
			return tidy.Wrap(in, opts)
		},
	})
	r.Register(&Operation{
		Name: "str_to_title", Description: "Convert to title case",
		Parameters: []ParameterDef{pRemoveDashes},
		Handler: func(in any, p Params) (any, error) {
			remove, err := p.Bool("remove_dashes", false)
			if err != nil {
				return nil, err
			}
			return tidy.ToTitle(in, remove)
		},
	})
	r.Register(&Operation{
		Name: "str_upper_cut", Description: "Capitalize first n characters",
		Parameters: []ParameterDef{pN},
		Handler: func(in any, p Params) (any, error) {
			n, err := p.Int("n", 1)
			if err != nil {
				return nil, err
			}
			return tidy.UpperCut(in, n)
		},
	})
	r.Register(&Operation{
		Name: "str_dash_to_space", Description: "Replace dashes with spaces",
		Parameters: []ParameterDef{pDashes},
		Handler: func(in any, p Params) (any, error) {
			return tidy.DashToSpace(in, p.Strings("dashes", r.defaults.Dashes)...)
		},
	})
	r.Register(&Operation{
		Name: "str_concat", Description: "Concatenate strings with separator",
		Parameters: []ParameterDef{pSep, pWith, pColumns},
		Handler: func(in any, p Params) (any, error) {
			sep := p.String("sep", r.defaults.Separator)
			if t, ok := in.(*frame.Table); ok {
				return tidy.ConcatColumns(t, sep, p.Strings("columns", t.Names())...)
			}
			args := []any{in}
			for _, s := range p.Strings("with", nil) {
				args = append(args, s)
			}
			return tidy.ConcatSep(sep, args...)
		},
	})
	r.Register(&Operation{
		Name: "str_search_apply", Description: "Apply a function to each regex match",
		Parameters: []ParameterDef{pPattern, pFunc},
		Handler: func(in any, p Params) (any, error) {
			name := p.String("func", "")
			fn, ok := Transforms[name]
			if !ok {
				return nil, errors.UnsupportedOption(errors.ModuleRunner, "str_search_apply", "func", name, TransformNames())
			}
			return tidy.SearchApply(in, p.String("pattern", ""), fn)
		},
	})
	r.Register(&Operation{
		Name: "str_search_recase", Description: "Change case of matched pattern",
		Parameters: []ParameterDef{pPattern, pCase},
		Handler: func(in any, p Params) (any, error) {
			return tidy.SearchRecase(in, p.String("pattern", ""), p.String("case", ""))
		},
	})
}

// TransformNames returns the names of Transforms in sorted order.
func TransformNames() []string {
	return mapx.SortedKeys(Transforms)
}

func reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// double doubles integer matches and leaves everything else unchanged.
func double(s string) string {
	n, err := strconv.Atoi(s)
	if err != nil {
		return s
	}
	return strconv.Itoa(2 * n)
}
