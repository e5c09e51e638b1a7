package client

import (
	"context"

	"octopart/api/internal/domain"
)

// PartSearchHit pairs a part search result with its highlight snippet.
type PartSearchHit struct {
	Part      *domain.Part
	Highlight string
}

// DrilldownEntry is one faceted-search augmentation block returned when
// drilldown.include is requested.
type DrilldownEntry struct {
	Attribute *domain.PartAttribute
	Facets    []any
}

// PartSearchResult is the full parts/search response: the matched parts
// plus any requested drilldown facets.
type PartSearchResult struct {
	Hits      []PartSearchHit
	Drilldown []DrilldownEntry
}

// PartMatch is one (uid, manufacturer displayname, mpn) tuple from
// parts/match.
type PartMatch struct {
	UID                     int64
	ManufacturerDisplayname string
	MPN                     string
}

// optimizeArgTypes are the optimize.* presentation flags accepted by the
// part-returning endpoints.
var optimizeArgTypes = map[string]valueType{
	"optimize.hide_datasheets":               typeBool,
	"optimize.hide_descriptions":             typeBool,
	"optimize.hide_images":                   typeBool,
	"optimize.hide_hide_offers":              typeBool,
	"optimize.hide_hide_unauthorized_offers": typeBool,
	"optimize.hide_specs":                    typeBool,
}

var partsGetSchema = schema{
	types: mergeTypes(map[string]valueType{"uid": typeInt}, optimizeArgTypes),
}

var partsGetMultiSchema = schema{
	types:    mergeTypes(map[string]valueType{"uids": typeText}, optimizeArgTypes),
	required: []string{"uids"},
}

var partsSearchSchema = schema{
	types: mergeTypes(map[string]valueType{
		"q":                             typeText,
		"start":                         typeInt,
		"limit":                         typeInt,
		"filters":                       typeList,
		"rangedfilters":                 typeList,
		"sortby":                        typeList,
		"drilldown.include":             typeBool,
		"drilldown.fieldname":           typeText,
		"drilldown.facets.prefix":       typeText,
		"drilldown.facets.start":        typeInt,
		"drilldown.facets.limit":        typeInt,
		"drilldown.facets.sortby":       typeText,
		"drilldown.facets.include_hits": typeBool,
	}, optimizeArgTypes),
	required: []string{"q"},
	ranges: map[string]constraint{
		"start":                  {Min: 0, Max: 1000},
		"limit":                  {Min: 0, Max: 100},
		"drilldown.facets.start": {Min: 0, Max: 1000},
		"drilldown.facets.limit": {Min: 0, Max: 100},
	},
}

var partsSuggestSchema = schema{
	types: map[string]valueType{
		"q":     typeText,
		"limit": typeInt,
	},
	required: []string{"q"},
	ranges: map[string]constraint{
		"q":     {Min: 2, Max: unbounded},
		"limit": {Min: 0, Max: 10},
	},
}

var partsMatchSchema = schema{
	types: map[string]valueType{
		"manufacturer_name": typeText,
		"mpn":               typeText,
	},
	required: []string{"manufacturer_name", "mpn"},
}

// PartsGet fetches one part by uid. A 404 from the API means the part does
// not exist and yields (nil, nil) rather than an error. Recognized opts:
// the optimize.* flags (underscore aliases accepted).
func (c *octopartClient) PartsGet(ctx context.Context, uid int, opts Args) (*domain.Part, error) {
	args := mergeArgs(opts, Args{"uid": uid})
	raw, err := c.call(ctx, "parts/get", partsGetSchema, args)
	if err != nil {
		if KindOf(err) == KindNotFound {
			return nil, nil
		}
		return nil, err
	}
	m := asMap(raw)
	if m == nil {
		return nil, nil
	}
	return domain.PartFromMap(m), nil
}

// PartsGetMulti fetches several parts in one call. The uids argument is the
// API's comma-joined uid string. Unlike PartsGet, a 404 here is an error.
func (c *octopartClient) PartsGetMulti(ctx context.Context, uids string, opts Args) ([]*domain.Part, error) {
	args := mergeArgs(opts, Args{"uids": uids})
	raw, err := c.call(ctx, "parts/get_multi", partsGetMultiSchema, args)
	if err != nil {
		return nil, err
	}

	var parts []*domain.Part
	for _, m := range asMaps(raw) {
		parts = append(parts, domain.PartFromMap(m))
	}
	return parts, nil
}

// PartsSearch runs a full-text part search. Recognized opts: start, limit,
// filters, rangedfilters, sortby, the drilldown.* and optimize.* options
// (underscore aliases accepted). Drilldown entries are present only when
// drilldown.include was requested.
func (c *octopartClient) PartsSearch(ctx context.Context, q string, opts Args) (*PartSearchResult, error) {
	args := mergeArgs(opts, Args{"q": q})
	raw, err := c.call(ctx, "parts/search", partsSearchSchema, args)
	if err != nil {
		return nil, err
	}

	result := &PartSearchResult{}
	for _, rm := range resultMaps(raw) {
		item, ok := rm["item"].(map[string]any)
		if !ok {
			continue
		}
		result.Hits = append(result.Hits, PartSearchHit{
			Part:      domain.PartFromMap(item),
			Highlight: stringAt(rm, "highlight"),
		})
	}
	if m := asMap(raw); m != nil {
		for _, dm := range asMaps(m["drilldown"]) {
			attribute, ok := dm["attribute"].(map[string]any)
			if !ok {
				continue
			}
			facets, _ := dm["facets"].([]any)
			result.Drilldown = append(result.Drilldown, DrilldownEntry{
				Attribute: domain.PartAttributeFromMap(attribute),
				Facets:    facets,
			})
		}
	}
	return result, nil
}

// PartsSuggest returns quick part suggestions for a query prefix, suited
// for auto-complete. The query must be at least two characters long.
// Recognized opts: limit.
func (c *octopartClient) PartsSuggest(ctx context.Context, q string, opts Args) ([]*domain.Part, error) {
	args := mergeArgs(opts, Args{"q": q})
	raw, err := c.call(ctx, "parts/suggest", partsSuggestSchema, args)
	if err != nil {
		return nil, err
	}

	var parts []*domain.Part
	for _, m := range resultMaps(raw) {
		parts = append(parts, domain.PartFromMap(m))
	}
	return parts, nil
}

// PartsMatch resolves a (manufacturer name, mpn) pair to part uids.
func (c *octopartClient) PartsMatch(ctx context.Context, manufacturerName, mpn string) ([]PartMatch, error) {
	args := Args{"manufacturer_name": manufacturerName, "mpn": mpn}
	raw, err := c.call(ctx, "parts/match", partsMatchSchema, args)
	if err != nil {
		return nil, err
	}

	list, ok := raw.([]any)
	if !ok {
		return nil, nil
	}
	return collectMatches(list), nil
}

// collectMatches walks the parts/match response, which nests one tuple list
// per queried pair, and flattens every (uid, displayname, mpn) tuple found.
func collectMatches(list []any) []PartMatch {
	var matches []PartMatch
	for _, e := range list {
		tuple, ok := e.([]any)
		if !ok {
			continue
		}
		if m, ok := matchTuple(tuple); ok {
			matches = append(matches, m)
			continue
		}
		matches = append(matches, collectMatches(tuple)...)
	}
	return matches
}

func matchTuple(tuple []any) (PartMatch, bool) {
	if len(tuple) < 3 {
		return PartMatch{}, false
	}
	displayname, ok := tuple[1].(string)
	if !ok {
		return PartMatch{}, false
	}
	mpn, ok := tuple[2].(string)
	if !ok {
		return PartMatch{}, false
	}
	uid, ok := tuple[0].(float64)
	if !ok {
		return PartMatch{}, false
	}
	return PartMatch{
		UID:                     int64(uid),
		ManufacturerDisplayname: displayname,
		MPN:                     mpn,
	}, true
}
