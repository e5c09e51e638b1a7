package domain

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// updateTSLayout is the timestamp format used by offer update_ts fields.
// The API appends a literal Z which is stripped before parsing.
const updateTSLayout = "2006-01-02T15:04:05"

// PriceBreak is one quantity/price step of an offer price ladder.
type PriceBreak struct {
	Quantity int64  `json:"quantity"`
	Price    string `json:"price"`
}

// Offer is a supplier-specific pricing and availability record embedded
// in a Part.
type Offer struct {
	SKU             string       `json:"sku"`
	Supplier        *Brand       `json:"supplier"`
	Avail           int64        `json:"avail"`
	Prices          []PriceBreak `json:"prices"`
	IsAuthorized    bool         `json:"is_authorized"`
	ClickthroughURL string       `json:"clickthrough_url,omitempty"`
	BuynowURL       string       `json:"buynow_url,omitempty"`
	SendRFQURL      string       `json:"sendrfq_url,omitempty"`
	UpdateTS        time.Time    `json:"update_ts,omitempty"`
}

// Spec is an attribute/value pair embedded in a Part.
type Spec struct {
	Attribute *PartAttribute `json:"attribute"`
	Values    []any          `json:"values"`
}

// Part is one electronic component with its manufacturer, supplier offers
// and attribute specs. Every Part owns its nested Offer, Spec and Brand
// values; construction produces fresh objects on each API call.
type Part struct {
	UID              int64            `json:"uid"`
	MPN              string           `json:"mpn"`
	Manufacturer     *Brand           `json:"manufacturer"`
	DetailURL        string           `json:"detail_url"`
	AvgPrice         float64          `json:"avg_price"`
	AvgAvail         float64          `json:"avg_avail"`
	MarketStatus     string           `json:"market_status"`
	NumSuppliers     int64            `json:"num_suppliers"`
	NumAuthsuppliers int64            `json:"num_authsuppliers"`
	ShortDescription string           `json:"short_description"`
	CategoryIDs      []int64          `json:"category_ids"`
	Images           []map[string]any `json:"images"`
	Datasheets       []map[string]any `json:"datasheets"`
	Descriptions     []map[string]any `json:"descriptions"`
	Hyperlinks       map[string]any   `json:"hyperlinks"`
	Offers           []Offer          `json:"offers"`
	Specs            []Spec           `json:"specs"`
}

// PartFromMap builds a Part from a raw API response mapping, converting the
// manufacturer, offer supplier and spec attribute sub-mappings into their
// domain types.
func PartFromMap(m map[string]any) *Part {
	var offers []Offer
	for _, om := range mapMaps(m, "offers") {
		offers = append(offers, offerFromMap(om))
	}

	var specs []Spec
	for _, sm := range mapMaps(m, "specs") {
		specs = append(specs, Spec{
			Attribute: PartAttributeFromMap(mapMap(sm, "attribute")),
			Values:    mapSlice(sm, "values"),
		})
	}

	return &Part{
		UID:              mapInt(m, "uid"),
		MPN:              mapString(m, "mpn"),
		Manufacturer:     BrandFromMap(mapMap(m, "manufacturer")),
		DetailURL:        mapString(m, "detail_url"),
		AvgPrice:         mapFloat(m, "avg_price"),
		AvgAvail:         mapFloat(m, "avg_avail"),
		MarketStatus:     mapString(m, "market_status"),
		NumSuppliers:     mapInt(m, "num_suppliers"),
		NumAuthsuppliers: mapInt(m, "num_authsuppliers"),
		ShortDescription: mapString(m, "short_description"),
		CategoryIDs:      mapIntSlice(m, "category_ids"),
		Images:           mapMaps(m, "images"),
		Datasheets:       mapMaps(m, "datasheets"),
		Descriptions:     mapMaps(m, "descriptions"),
		Hyperlinks:       mapMap(m, "hyperlinks"),
		Offers:           offers,
		Specs:            specs,
	}
}

// AuthorizedOffers returns the offers from authorized suppliers.
func (p *Part) AuthorizedOffers() []Offer {
	var out []Offer
	for _, o := range p.Offers {
		if o.IsAuthorized {
			out = append(out, o)
		}
	}
	return out
}

// UnauthorizedOffers returns the offers from unauthorized suppliers.
func (p *Part) UnauthorizedOffers() []Offer {
	var out []Offer
	for _, o := range p.Offers {
		if !o.IsAuthorized {
			out = append(out, o)
		}
	}
	return out
}

func offerFromMap(m map[string]any) Offer {
	o := Offer{
		SKU:             mapString(m, "sku"),
		Supplier:        BrandFromMap(mapMap(m, "supplier")),
		Avail:           mapInt(m, "avail"),
		Prices:          priceBreaks(mapSlice(m, "prices")),
		IsAuthorized:    mapBool(m, "is_authorized"),
		ClickthroughURL: mapString(m, "clickthrough_url"),
		BuynowURL:       mapString(m, "buynow_url"),
		SendRFQURL:      mapString(m, "sendrfq_url"),
	}
	if ts := mapString(m, "update_ts"); ts != "" {
		if t, err := time.Parse(updateTSLayout, strings.TrimSuffix(ts, "Z")); err == nil {
			o.UpdateTS = t
		}
	}
	return o
}

// priceBreaks converts the API's [quantity, price] pair list. Prices arrive
// as strings or numbers depending on endpoint; both are kept as strings.
func priceBreaks(raw []any) []PriceBreak {
	if len(raw) == 0 {
		return nil
	}
	out := make([]PriceBreak, 0, len(raw))
	for _, e := range raw {
		pair, ok := e.([]any)
		if !ok || len(pair) < 2 {
			continue
		}
		pb := PriceBreak{}
		switch q := pair[0].(type) {
		case float64:
			pb.Quantity = int64(q)
		case json.Number:
			if n, err := q.Int64(); err == nil {
				pb.Quantity = n
			}
		}
		switch p := pair[1].(type) {
		case string:
			pb.Price = p
		case float64:
			pb.Price = strconv.FormatFloat(p, 'f', -1, 64)
		case json.Number:
			pb.Price = p.String()
		}
		out = append(out, pb)
	}
	return out
}
