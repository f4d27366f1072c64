package runner

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/msto63/tidystring/foundation/core/errors"
)

// Params holds named operation parameters as given on the command line or
// decoded from a request. Values may be typed or strings.
type Params map[string]interface{}

// Has reports whether the parameter is set.
func (p Params) Has(key string) bool {
	_, ok := p[key]
	return ok
}

// String returns a string parameter or def when unset.
func (p Params) String(key, def string) string {
	v, ok := p[key]
	if !ok {
		return def
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// Int returns an integer parameter or def when unset.
func (p Params) Int(key string, def int) (int, error) {
	v, ok := p[key]
	if !ok {
		return def, nil
	}
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		if n == float64(int(n)) {
			return int(n), nil
		}
	case string:
		if i, err := strconv.Atoi(strings.TrimSpace(n)); err == nil {
			return i, nil
		}
	}
	return 0, errors.InvalidArgument(errors.ModuleRunner, "params", key, v, "must be an integer")
}

// Bool returns a boolean parameter or def when unset.
func (p Params) Bool(key string, def bool) (bool, error) {
	v, ok := p[key]
	if !ok {
		return def, nil
	}
	switch b := v.(type) {
	case bool:
		return b, nil
	case string:
		if parsed, err := strconv.ParseBool(b); err == nil {
			return parsed, nil
		}
	}
	return false, errors.InvalidArgument(errors.ModuleRunner, "params", key, v, "must be a boolean")
}

// Strings returns a list parameter or def when unset. A plain string is
// split at commas.
func (p Params) Strings(key string, def []string) []string {
	v, ok := p[key]
	if !ok {
		return def
	}
	switch s := v.(type) {
	case []string:
		return s
	case string:
		if s == "" {
			return nil
		}
		return strings.Split(s, ",")
	default:
		return []string{fmt.Sprint(v)}
	}
}
