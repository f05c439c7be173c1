package github

import (
	"fmt"
	"net/url"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/google/go-querystring/query"
	"github.com/jmgilman/ghwatch/errors"
)

// Params holds caller-supplied options forwarded as query parameters.
// Keys are normalized to lower snake_case before transmission, so
// "perPage", "Per-Page" and "per_page" all address the same parameter.
type Params map[string]any

// ListOptions contains options for list operations.
// The facade forwards them; it never follows pages itself.
type ListOptions struct {
	// Page is the page number for pagination (1-indexed)
	Page int `url:"page,omitempty"`

	// PerPage is the number of items per page
	PerPage int `url:"per_page,omitempty"`
}

// NormalizeKey converts an option name to its canonical form.
//
//	NormalizeKey("perPage")    // "per_page"
//	NormalizeKey(" Per-Page ") // "per_page"
//	NormalizeKey("HTTPStatus") // "http_status"
func NormalizeKey(key string) string {
	runes := []rune(strings.TrimSpace(key))

	var b strings.Builder
	pendingSep := false
	for i, r := range runes {
		switch {
		case r == '_' || r == '-' || r == '.' || unicode.IsSpace(r):
			pendingSep = b.Len() > 0
			continue
		case unicode.IsUpper(r):
			if i > 0 && b.Len() > 0 {
				prev := runes[i-1]
				nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
				if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
					pendingSep = true
				}
			}
			r = unicode.ToLower(r)
		}

		if pendingSep {
			b.WriteByte('_')
			pendingSep = false
		}
		b.WriteRune(r)
	}

	return b.String()
}

// NormalizeParams returns a copy of params with canonical keys.
// Keys that normalize to "" are dropped. When several keys collide, the value
// of the lexically greatest original key wins.
func NormalizeParams(params Params) Params {
	if params == nil {
		return nil
	}

	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	normalized := make(Params, len(params))
	for _, k := range keys {
		canonical := NormalizeKey(k)
		if canonical == "" {
			continue
		}
		normalized[canonical] = params[k]
	}
	return normalized
}

// Normalize is shorthand for NormalizeParams(p).
func (p Params) Normalize() Params {
	return NormalizeParams(p)
}

// Values normalizes p and encodes it as query values.
// nil values are dropped and slices become repeated keys.
func (p Params) Values() url.Values {
	values := url.Values{}
	for key, value := range p.Normalize() {
		appendValue(values, key, value)
	}
	return values
}

// Merge returns a new Params holding p overlaid with other.
func (p Params) Merge(other Params) Params {
	merged := make(Params, len(p)+len(other))
	for k, v := range p {
		merged[k] = v
	}
	for k, v := range other {
		merged[k] = v
	}
	return merged
}

// WithList returns p merged with the encoded pagination options.
func (p Params) WithList(opts ListOptions) (Params, error) {
	values, err := query.Values(opts)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInvalidInput, "failed to encode list options")
	}

	list := make(Params, len(values))
	for k := range values {
		list[k] = values.Get(k)
	}
	return p.Merge(list), nil
}

// ParseParam parses a "key=value" pair.
func ParseParam(s string) (string, string, error) {
	key, value, found := strings.Cut(s, "=")
	if !found || strings.TrimSpace(key) == "" {
		return "", "", newInvalidInputError("param", fmt.Sprintf("%q is not in key=value form", s))
	}
	return strings.TrimSpace(key), value, nil
}

func appendValue(values url.Values, key string, value any) {
	if isNilPointer(value) {
		return
	}

	switch v := value.(type) {
	case nil:
	case string:
		values.Add(key, v)
	case bool:
		values.Add(key, strconv.FormatBool(v))
	case time.Time:
		values.Add(key, v.Format(time.RFC3339))
	case *time.Time:
		if v != nil {
			values.Add(key, v.Format(time.RFC3339))
		}
	case []byte:
		values.Add(key, string(v))
	case fmt.Stringer:
		values.Add(key, v.String())
	default:
		rv := reflect.ValueOf(value)
		if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
			for i := 0; i < rv.Len(); i++ {
				appendValue(values, key, rv.Index(i).Interface())
			}
			return
		}
		values.Add(key, fmt.Sprint(value))
	}
}

// isNilPointer reports whether value is a typed nil that cannot be
// formatted, such as a nil *url.URL stored in an interface.
func isNilPointer(value any) bool {
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}
