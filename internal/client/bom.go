package client

import (
	"context"

	"octopart/api/internal/domain"
)

// lineBudget caps start+limit for a single bom/match line.
const lineBudget = 100

// BomLineResult is the match outcome for one bill-of-materials line.
type BomLineResult struct {
	Items     []*domain.Part
	Reference string
	Status    string
	Hits      int // number of search hits, when reported
}

var bomLineSchema = schema{
	types: map[string]valueType{
		"q":            typeText,
		"mpn":          typeText,
		"manufacturer": typeText,
		"sku":          typeText,
		"supplier":     typeText,
		"mpn_or_sku":   typeText,
		"start":        typeInt,
		"limit":        typeInt,
		"reference":    typeText,
	},
	required: []string{"reference"},
	ranges: map[string]constraint{
		"limit": {Min: 0, Max: 20},
	},
}

var bomMatchSchema = schema{
	types: mergeTypes(map[string]valueType{
		"lines":                 typeList,
		"optimize.return_stubs": typeBool,
	}, optimizeArgTypes),
	required: []string{"lines"},
}

// BomMatch matches a list of BOM lines against the part database. Every
// line is validated against its own schema before the outer call is; any
// line failure aborts the whole call without issuing a request. Recognized
// opts: optimize.return_stubs and the optimize.* flags (underscore aliases
// accepted).
func (c *octopartClient) BomMatch(ctx context.Context, lines []Args, opts Args) ([]BomLineResult, error) {
	endpoint := "bom/match"

	translatedLines := make([]Args, len(lines))
	for i, line := range lines {
		translated, err := translateArgs(endpoint, line)
		if err != nil {
			return nil, err
		}
		if err := bomLineSchema.validate(endpoint, translated); err != nil {
			return nil, err
		}

		start, _ := intValue(translated["start"])
		limit, _ := intValue(translated["limit"])
		if start+limit > lineBudget {
			return nil, &ArgumentError{
				Kind:     KindLineLimitExceeded,
				Endpoint: endpoint,
				Argument: "start+limit",
				Value:    start + limit,
				Expected: "<= 100",
			}
		}
		translatedLines[i] = translated
	}

	args := mergeArgs(opts, Args{"lines": translatedLines})
	raw, err := c.call(ctx, endpoint, bomMatchSchema, args)
	if err != nil {
		return nil, err
	}

	var results []BomLineResult
	for _, rm := range resultMaps(raw) {
		var items []*domain.Part
		for _, im := range asMaps(rm["items"]) {
			items = append(items, domain.PartFromMap(im))
		}
		result := BomLineResult{
			Items:     items,
			Reference: stringAt(rm, "reference"),
			Status:    stringAt(rm, "status"),
		}
		if hits, ok := rm["hits"].(float64); ok {
			result.Hits = int(hits)
		}
		results = append(results, result)
	}
	return results, nil
}
