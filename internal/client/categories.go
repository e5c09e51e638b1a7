package client

import (
	"context"

	"octopart/api/internal/domain"
)

// CategoryMatch pairs a category search result with its highlight snippet.
type CategoryMatch struct {
	Category  *domain.Category
	Highlight string
}

var categoriesGetSchema = schema{
	types: map[string]valueType{"id": typeInt},
}

var categoriesGetMultiSchema = schema{
	types:    map[string]valueType{"ids": typeList},
	required: []string{"ids"},
}

var categoriesSearchSchema = schema{
	types: map[string]valueType{
		"q":           typeText,
		"start":       typeInt,
		"limit":       typeInt,
		"ancestor_id": typeInt,
	},
	required: []string{"q"},
}

// CategoriesGet fetches one category by id. A 404 from the API means the
// category does not exist and yields (nil, nil) rather than an error.
func (c *octopartClient) CategoriesGet(ctx context.Context, id int) (*domain.Category, error) {
	raw, err := c.call(ctx, "categories/get", categoriesGetSchema, Args{"id": id})
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
	return domain.CategoryFromMap(m), nil
}

// CategoriesGetMulti fetches several categories by id in one call.
func (c *octopartClient) CategoriesGetMulti(ctx context.Context, ids []int) ([]*domain.Category, error) {
	raw, err := c.call(ctx, "categories/get_multi", categoriesGetMultiSchema, Args{"ids": ids})
	if err != nil {
		return nil, err
	}

	var categories []*domain.Category
	for _, m := range asMaps(raw) {
		categories = append(categories, domain.CategoryFromMap(m))
	}
	return categories, nil
}

// CategoriesSearch runs a full-text search over the category tree.
// Recognized opts: start, limit, ancestor_id.
func (c *octopartClient) CategoriesSearch(ctx context.Context, q string, opts Args) ([]CategoryMatch, error) {
	args := mergeArgs(opts, Args{"q": q})
	raw, err := c.call(ctx, "categories/search", categoriesSearchSchema, args)
	if err != nil {
		return nil, err
	}

	var matches []CategoryMatch
	for _, rm := range resultMaps(raw) {
		item, ok := rm["item"].(map[string]any)
		if !ok {
			continue
		}
		matches = append(matches, CategoryMatch{
			Category:  domain.CategoryFromMap(item),
			Highlight: stringAt(rm, "highlight"),
		})
	}
	return matches, nil
}
