package domain

import "encoding/json"

// Helpers for reading loosely typed API response maps. The Octopart API
// omits optional keys entirely, so every accessor falls back to a zero
// value when the key is missing or has an unexpected shape.

func mapString(m map[string]any, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

func mapInt(m map[string]any, key string) int64 {
	switch v := m[key].(type) {
	case float64:
		return int64(v)
	case int:
		return int64(v)
	case int64:
		return v
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0
		}
		return n
	}
	return 0
}

func mapFloat(m map[string]any, key string) float64 {
	switch v := m[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0
		}
		return f
	}
	return 0
}

func mapBool(m map[string]any, key string) bool {
	if v, ok := m[key].(bool); ok {
		return v
	}
	return false
}

func mapMap(m map[string]any, key string) map[string]any {
	if v, ok := m[key].(map[string]any); ok {
		return v
	}
	return map[string]any{}
}

func mapSlice(m map[string]any, key string) []any {
	if v, ok := m[key].([]any); ok {
		return v
	}
	return nil
}

// mapMaps returns the value under key as a list of maps, skipping any
// entries of a different shape.
func mapMaps(m map[string]any, key string) []map[string]any {
	raw := mapSlice(m, key)
	if len(raw) == 0 {
		return nil
	}
	out := make([]map[string]any, 0, len(raw))
	for _, e := range raw {
		if em, ok := e.(map[string]any); ok {
			out = append(out, em)
		}
	}
	return out
}

func mapIntSlice(m map[string]any, key string) []int64 {
	raw := mapSlice(m, key)
	if len(raw) == 0 {
		return nil
	}
	out := make([]int64, 0, len(raw))
	for _, e := range raw {
		switch v := e.(type) {
		case float64:
			out = append(out, int64(v))
		case int:
			out = append(out, int64(v))
		case int64:
			out = append(out, v)
		case json.Number:
			if n, err := v.Int64(); err == nil {
				out = append(out, n)
			}
		}
	}
	return out
}
