package domain

// PartAttribute type tags defined by the API.
const (
	AttributeTypeText   = "text"
	AttributeTypeNumber = "number"
)

// PartAttribute describes one searchable part attribute field.
type PartAttribute struct {
	Fieldname   string         `json:"fieldname"`
	Displayname string         `json:"displayname"`
	Type        string         `json:"type"` // "text" or "number"
	Metadata    map[string]any `json:"metadata"`
}

// PartAttributeFromMap builds a PartAttribute from a raw API response mapping.
func PartAttributeFromMap(m map[string]any) *PartAttribute {
	return &PartAttribute{
		Fieldname:   mapString(m, "fieldname"),
		Displayname: mapString(m, "displayname"),
		Type:        mapString(m, "type"),
		Metadata:    mapMap(m, "metadata"),
	}
}
