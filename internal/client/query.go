package client

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// buildQuery serializes validated arguments into query parameter values.
// Booleans become 0/1 and list or mapping values become compact JSON, as the
// API expects; remaining scalars are rendered literally.
func buildQuery(args Args) (map[string]string, error) {
	out := make(map[string]string, len(args))
	for name, value := range args {
		s, err := queryValue(value)
		if err != nil {
			return nil, fmt.Errorf("failed to serialize argument %q: %w", name, err)
		}
		out[name] = s
	}
	return out, nil
}

func queryValue(value any) (string, error) {
	switch v := value.(type) {
	case bool:
		if v {
			return "1", nil
		}
		return "0", nil
	case string:
		return v, nil
	case fmt.Stringer:
		return v.String(), nil
	case int:
		return strconv.Itoa(v), nil
	case int32:
		return strconv.FormatInt(int64(v), 10), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	default:
		// Lists and mappings travel as compact JSON text.
		b, err := json.Marshal(v)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
}
