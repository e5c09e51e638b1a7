package domain

// Category is a node in the Octopart part taxonomy tree.
type Category struct {
	ID          int64            `json:"id"`
	ParentID    int64            `json:"parent_id"`
	Nodename    string           `json:"nodename"`
	Images      []map[string]any `json:"images"`        // image URL mappings
	ChildrenIDs []int64          `json:"children_ids"`  // child node ids
	AncestorIDs []int64          `json:"ancestor_ids"`  // immediate parent first
	Ancestors   []*Category      `json:"ancestors"`     // resolved ancestor nodes, when the API includes them
	NumParts    int64            `json:"num_parts"`
}

// CategoryFromMap builds a Category from a raw API response mapping.
// The optional "ancestors" list is resolved recursively into Category values.
func CategoryFromMap(m map[string]any) *Category {
	var ancestors []*Category
	for _, am := range mapMaps(m, "ancestors") {
		ancestors = append(ancestors, CategoryFromMap(am))
	}

	return &Category{
		ID:          mapInt(m, "id"),
		ParentID:    mapInt(m, "parent_id"),
		Nodename:    mapString(m, "nodename"),
		Images:      mapMaps(m, "images"),
		ChildrenIDs: mapIntSlice(m, "children_ids"),
		AncestorIDs: mapIntSlice(m, "ancestor_ids"),
		Ancestors:   ancestors,
		NumParts:    mapInt(m, "num_parts"),
	}
}
