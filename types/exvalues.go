package types

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ExValues is an ordered container for HTTP request parameters.
//
// Design notes:
//
//   - order keeps the first-seen order of keys.
//   - values stores one or more values per key.
//   - EncodeQuery preserves key order and value order, so the encoded
//     string can be signed and sent byte for byte.
//   - optional setters never store empty values: an absent key and an
//     empty value mean different things to the exchange.
type ExValues struct {
	order  []string
	values map[string][]string
}

// NewExValues creates a new ExValues instance.
func NewExValues() *ExValues {
	return &ExValues{
		order:  make([]string, 0),
		values: make(map[string][]string),
	}
}

// Set sets a single value for the given key.
// If the key appears for the first time, its position is recorded in order.
// Supported value types: string, int, int64, uint64, bool, decimal.Decimal,
// ExDecimal and fmt.Stringer.
func (v *ExValues) Set(key string, value any) {
	if _, exists := v.values[key]; !exists {
		v.order = append(v.order, key)
	}
	v.values[key] = []string{formatValue(value)}
}

// SetOptional sets key only when value is non-empty after trimming.
func (v *ExValues) SetOptional(key, value string) {
	if strings.TrimSpace(value) == "" {
		return
	}
	v.Set(key, value)
}

// SetJoined stores values as one comma-joined value under key.
// Nothing is stored when values is empty.
func (v *ExValues) SetJoined(key string, values []string) {
	if len(values) == 0 {
		return
	}
	v.Set(key, strings.Join(values, ","))
}

// Merge appends every key of other that is not already present, keeping
// other's order.
func (v *ExValues) Merge(other *ExValues) {
	if other == nil {
		return
	}
	for _, key := range other.order {
		if _, exists := v.values[key]; exists {
			continue
		}
		v.order = append(v.order, key)
		v.values[key] = append([]string(nil), other.values[key]...)
	}
}

// EncodeQuery encodes parameters as a URL query string.
// The output preserves the original insertion order of keys.
func (v *ExValues) EncodeQuery() string {
	if v == nil || len(v.order) == 0 {
		return ""
	}

	var buf strings.Builder

	for _, key := range v.order {
		vs, ok := v.values[key]
		if !ok {
			continue
		}

		keyEscaped := url.QueryEscape(key)

		for _, value := range vs {
			if buf.Len() > 0 {
				buf.WriteByte('&')
			}
			buf.WriteString(keyEscaped)
			buf.WriteByte('=')
			buf.WriteString(url.QueryEscape(value))
		}
	}

	return buf.String()
}

// JoinPath joins the encoded query string to the given path.
func (v *ExValues) JoinPath(path string) string {
	query := v.EncodeQuery()
	if query == "" {
		return path
	}

	if strings.Contains(path, "?") {
		return path + "&" + query
	}

	return path + "?" + query
}

// Has reports whether the given key exists.
func (v *ExValues) Has(key string) bool {
	if v == nil {
		return false
	}
	_, ok := v.values[key]
	return ok
}

// Get returns the first value associated with the given key.
func (v *ExValues) Get(key string) string {
	if v == nil {
		return ""
	}
	if vs := v.values[key]; len(vs) > 0 {
		return vs[0]
	}
	return ""
}

// Keys returns the keys in insertion order.
func (v *ExValues) Keys() []string {
	return append([]string(nil), v.order...)
}

// Len returns the number of distinct keys.
func (v *ExValues) Len() int {
	if v == nil {
		return 0
	}
	return len(v.order)
}

func formatValue(value any) string {
	switch val := value.(type) {
	case string:
		return val
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case uint64:
		return strconv.FormatUint(val, 10)
	case bool:
		return strconv.FormatBool(val)
	case decimal.Decimal:
		return val.String()
	case ExDecimal:
		return val.String()
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprintf("%v", val)
	}
}
