package usecase

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Helpers that read loosely typed input (decoded JSON from the parsing
// service or from old editor saves). Any field may be missing, null, or in an
// unexpected shape; readers return the zero value instead of failing.

// asMap returns v as an object, or nil.
func asMap(v interface{}) map[string]interface{} {
	switch t := v.(type) {
	case map[string]interface{}:
		return t
	case map[string]string:
		out := make(map[string]interface{}, len(t))
		for k, s := range t {
			out[k] = s
		}
		return out
	}
	return nil
}

// asString renders scalars as text. Objects and lists yield "".
func asString(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case bool:
		return strconv.FormatBool(t)
	case fmt.Stringer:
		return strings.TrimSpace(t.String())
	}
	return ""
}

// str reads m[key] as a string.
func str(m map[string]interface{}, key string) string {
	if m == nil {
		return ""
	}
	return asString(m[key])
}

// firstString returns the first non-empty value among keys.
func firstString(m map[string]interface{}, keys ...string) string {
	for _, k := range keys {
		if s := str(m, k); s != "" {
			return s
		}
	}
	return ""
}

// asList returns v as a list. A single object is treated as a one-item list.
func asList(v interface{}) []interface{} {
	switch t := v.(type) {
	case []interface{}:
		return t
	case []string:
		out := make([]interface{}, len(t))
		for i, s := range t {
			out[i] = s
		}
		return out
	case []map[string]interface{}:
		out := make([]interface{}, len(t))
		for i, m := range t {
			out[i] = m
		}
		return out
	case map[string]interface{}:
		return []interface{}{t}
	}
	return nil
}

// stringList reads a list of strings. A plain string is split on commas,
// objects contribute their name or title. Blank entries are dropped.
func stringList(v interface{}) []string {
	out := []string{}
	if s, ok := v.(string); ok {
		return splitCSV(s)
	}
	for _, it := range asList(v) {
		var s string
		if m := asMap(it); m != nil {
			s = firstString(m, "name", "title")
		} else {
			s = asString(it)
		}
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// splitCSV splits on commas, trims each token and drops empty ones.
func splitCSV(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// asInt reads a non-negative whole number from a number or numeric string.
func asInt(v interface{}) int {
	var f float64
	switch t := v.(type) {
	case float64:
		f = t
	case float32:
		f = float64(t)
	case int:
		f = float64(t)
	case int64:
		f = float64(t)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0
		}
		f = parsed
	default:
		return 0
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
		return 0
	}
	if f > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(f)
}

// asBool reads a boolean or a "true"/"false" string.
func asBool(v interface{}) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		b, _ := strconv.ParseBool(strings.TrimSpace(t))
		return b
	}
	return false
}
