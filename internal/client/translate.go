package client

// aliasTable maps underscore-delimited call-site argument names to the
// dotted parameter names the API expects. Names not listed here pass
// through unchanged, which also makes translation idempotent.
var aliasTable = map[string]string{
	"drilldown_include":                      "drilldown.include",
	"drilldown_fieldname":                    "drilldown.fieldname",
	"drilldown_facets_prefix":                "drilldown.facets.prefix",
	"drilldown_facets_start":                 "drilldown.facets.start",
	"drilldown_facets_limit":                 "drilldown.facets.limit",
	"drilldown_facets_sortby":                "drilldown.facets.sortby",
	"drilldown_facets_include_hits":          "drilldown.facets.include_hits",
	"facets_prefix":                          "facets.prefix",
	"facets_start":                           "facets.start",
	"facets_limit":                           "facets.limit",
	"facets_sortby":                          "facets.sortby",
	"facets_include_hits":                    "facets.include_hits",
	"optimize_return_stubs":                  "optimize.return_stubs",
	"optimize_hide_datasheets":               "optimize.hide_datasheets",
	"optimize_hide_descriptions":             "optimize.hide_descriptions",
	"optimize_hide_images":                   "optimize.hide_images",
	"optimize_hide_hide_offers":              "optimize.hide_hide_offers",
	"optimize_hide_hide_unauthorized_offers": "optimize.hide_hide_unauthorized_offers",
	"optimize_hide_specs":                    "optimize.hide_specs",
}

// translateArgs rewrites aliased argument names to their dotted form,
// returning a fresh map and leaving the caller's map untouched. Nested
// mappings and lists of mappings are translated recursively. A translated
// name colliding with one already supplied is a duplicate-argument error.
func translateArgs(endpoint string, args Args) (Args, error) {
	out := make(Args, len(args))
	for name, value := range args {
		translated, err := translateValue(endpoint, value)
		if err != nil {
			return nil, err
		}

		if canonical, ok := aliasTable[name]; ok {
			name = canonical
		}
		if _, exists := out[name]; exists {
			return nil, &ArgumentError{
				Kind:     KindDuplicateArgument,
				Endpoint: endpoint,
				Argument: name,
			}
		}
		out[name] = translated
	}
	return out, nil
}

func translateValue(endpoint string, value any) (any, error) {
	switch v := value.(type) {
	case Args:
		return translateArgs(endpoint, v)
	case map[string]any:
		return translateArgs(endpoint, v)
	case []Args:
		out := make([]Args, len(v))
		for i, e := range v {
			t, err := translateArgs(endpoint, e)
			if err != nil {
				return nil, err
			}
			out[i] = t
		}
		return out, nil
	case []any:
		out := make([]any, len(v))
		for i, e := range v {
			t, err := translateValue(endpoint, e)
			if err != nil {
				return nil, err
			}
			out[i] = t
		}
		return out, nil
	}
	return value, nil
}
