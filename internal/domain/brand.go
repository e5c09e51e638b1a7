package domain

// Brand is a manufacturer or supplier as listed by the Octopart API.
// Brands are immutable once constructed.
type Brand struct {
	ID          int64  `json:"id"`
	Displayname string `json:"displayname"`
	HomepageURL string `json:"homepage_url"`
}

// BrandFromMap builds a Brand from a raw API response mapping.
func BrandFromMap(m map[string]any) *Brand {
	return &Brand{
		ID:          mapInt(m, "id"),
		Displayname: mapString(m, "displayname"),
		HomepageURL: mapString(m, "homepage_url"),
	}
}
