package client

import (
	"context"

	"octopart/api/internal/domain"
)

var partAttributesGetSchema = schema{
	types:    map[string]valueType{"fieldname": typeText},
	required: []string{"fieldname"},
}

var partAttributesGetMultiSchema = schema{
	types:    map[string]valueType{"fieldnames": typeList},
	required: []string{"fieldnames"},
}

// PartAttributesGet fetches one attribute definition by fieldname. A 404
// from the API means the attribute does not exist and yields (nil, nil)
// rather than an error.
func (c *octopartClient) PartAttributesGet(ctx context.Context, fieldname string) (*domain.PartAttribute, error) {
	args := Args{"fieldname": fieldname}
	raw, err := c.call(ctx, "partattributes/get", partAttributesGetSchema, args)
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
	return domain.PartAttributeFromMap(m), nil
}

// PartAttributesGetMulti fetches several attribute definitions in one call.
func (c *octopartClient) PartAttributesGetMulti(ctx context.Context, fieldnames []string) ([]*domain.PartAttribute, error) {
	args := Args{"fieldnames": fieldnames}
	raw, err := c.call(ctx, "partattributes/get_multi", partAttributesGetMultiSchema, args)
	if err != nil {
		return nil, err
	}

	var attributes []*domain.PartAttribute
	for _, m := range asMaps(raw) {
		attributes = append(attributes, domain.PartAttributeFromMap(m))
	}
	return attributes, nil
}
