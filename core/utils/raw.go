package utils

import "strings"

// Raw is a decoded JSON object of unknown shape.
type Raw = map[string]any

// Has reports whether key is present in m, whatever its value.
func Has(m Raw, key string) bool {
	if m == nil {
		return false
	}
	_, ok := m[key]
	return ok
}

// GetString returns the trimmed string form of m[key], or def when it is absent or blank.
// Numbers are accepted and formatted; objects and arrays are not.
func GetString(m Raw, key, def string) string {
	v, ok := m[key]
	if !ok || v == nil {
		return def
	}
	switch v.(type) {
	case map[string]any, []any:
		return def
	}
	s := strings.TrimSpace(ToString(v))
	if s == "" {
		return def
	}
	return s
}

// GetFloat returns m[key] as a number, or def when it is absent or unparsable.
func GetFloat(m Raw, key string, def float64) float64 {
	if f, ok := ToFloat(m[key]); ok {
		return f
	}
	return def
}

// GetOptionalFloat returns m[key] as a number, or nil when it is absent or unparsable.
func GetOptionalFloat(m Raw, key string) *float64 {
	if f, ok := ToFloat(m[key]); ok {
		return &f
	}
	return nil
}

// GetOptionalInt is GetOptionalFloat truncated to int.
func GetOptionalInt(m Raw, key string) *int {
	if f, ok := ToFloat(m[key]); ok {
		i := int(f)
		return &i
	}
	return nil
}

// GetBool returns m[key] converted with ToBool, or def when the key is absent.
func GetBool(m Raw, key string, def bool) bool {
	v, ok := m[key]
	if !ok {
		return def
	}
	return ToBool(v)
}

// GetMap returns m[key] when it is a JSON object, otherwise nil.
func GetMap(m Raw, key string) Raw {
	if v, ok := m[key].(map[string]any); ok {
		return v
	}
	return nil
}

// GetStrings returns the non-empty strings of the array at m[key].
// Objects inside the array contribute the first non-empty value among fields.
func GetStrings(m Raw, key string, fields ...string) []string {
	items, ok := m[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		var s string
		switch v := item.(type) {
		case string:
			s = strings.TrimSpace(v)
		case map[string]any:
			for _, f := range fields {
				if s = GetString(v, f, ""); s != "" {
					break
				}
			}
		}
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// FirstString returns the first non-blank GetString among keys, or def.
func FirstString(m Raw, def string, keys ...string) string {
	for _, k := range keys {
		if s := GetString(m, k, ""); s != "" {
			return s
		}
	}
	return def
}
