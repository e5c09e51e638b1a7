package domain

import (
	"testing"
	"time"
)

func samplePartMap() map[string]any {
	return map[string]any{
		"uid": float64(39619421),
		"mpn": "SN74LS240N",
		"manufacturer": map[string]any{
			"id":           float64(4),
			"displayname":  "Texas Instruments",
			"homepage_url": "http://www.ti.com",
		},
		"detail_url":        "https://octopart.com/sn74ls240n-texas+instruments-488824",
		"avg_price":         0.48,
		"avg_avail":         1200.0,
		"market_status":     "active",
		"num_suppliers":     float64(14),
		"num_authsuppliers": float64(6),
		"short_description": "Octal buffer/line driver",
		"category_ids":      []any{float64(4250), float64(4251)},
		"hyperlinks":        map[string]any{"manufacturer": "http://www.ti.com"},
		"offers": []any{
			map[string]any{
				"sku": "296-1652-5-ND",
				"supplier": map[string]any{
					"id":           float64(459),
					"displayname":  "Digi-Key",
					"homepage_url": "http://www.digikey.com",
				},
				"avail":         float64(5000),
				"prices":        []any{[]any{float64(1), "0.54"}, []any{float64(100), "0.36"}},
				"is_authorized": true,
				"update_ts":     "2024-03-01T12:30:45Z",
			},
			map[string]any{
				"sku": "X-1",
				"supplier": map[string]any{
					"id":          float64(900),
					"displayname": "Graymarket Ltd",
				},
				"avail":         float64(10),
				"is_authorized": false,
			},
		},
		"specs": []any{
			map[string]any{
				"attribute": map[string]any{
					"fieldname":   "number_of_channels",
					"displayname": "Number of Channels",
					"type":        "number",
					"metadata":    map[string]any{"datatype": "integer"},
				},
				"values": []any{float64(8)},
			},
		},
	}
}

func TestPartFromMap(t *testing.T) {
	part := PartFromMap(samplePartMap())

	if part.UID != 39619421 || part.MPN != "SN74LS240N" {
		t.Errorf("unexpected identity %d %s", part.UID, part.MPN)
	}

	// The manufacturer sub-mapping becomes a Brand with fields preserved
	// exactly.
	m := part.Manufacturer
	if m == nil {
		t.Fatal("expected manufacturer brand")
	}
	if m.ID != 4 || m.Displayname != "Texas Instruments" || m.HomepageURL != "http://www.ti.com" {
		t.Errorf("unexpected manufacturer %+v", m)
	}

	if part.AvgPrice != 0.48 || part.MarketStatus != "active" {
		t.Errorf("aggregate fields lost: %+v", part)
	}
	if len(part.CategoryIDs) != 2 || part.CategoryIDs[0] != 4250 {
		t.Errorf("unexpected category ids %v", part.CategoryIDs)
	}
}

func TestPartFromMap_Offers(t *testing.T) {
	part := PartFromMap(samplePartMap())

	if len(part.Offers) != 2 {
		t.Fatalf("expected 2 offers, got %d", len(part.Offers))
	}

	offer := part.Offers[0]
	if offer.Supplier == nil || offer.Supplier.Displayname != "Digi-Key" {
		t.Errorf("unexpected supplier %+v", offer.Supplier)
	}
	if len(offer.Prices) != 2 || offer.Prices[1] != (PriceBreak{Quantity: 100, Price: "0.36"}) {
		t.Errorf("unexpected prices %v", offer.Prices)
	}

	want := time.Date(2024, 3, 1, 12, 30, 45, 0, time.UTC)
	if !offer.UpdateTS.Equal(want) {
		t.Errorf("update_ts: got %v, want %v", offer.UpdateTS, want)
	}

	if got := len(part.AuthorizedOffers()); got != 1 {
		t.Errorf("expected 1 authorized offer, got %d", got)
	}
	if got := len(part.UnauthorizedOffers()); got != 1 {
		t.Errorf("expected 1 unauthorized offer, got %d", got)
	}
}

func TestPartFromMap_Specs(t *testing.T) {
	part := PartFromMap(samplePartMap())

	if len(part.Specs) != 1 {
		t.Fatalf("expected 1 spec, got %d", len(part.Specs))
	}
	spec := part.Specs[0]
	if spec.Attribute == nil || spec.Attribute.Fieldname != "number_of_channels" {
		t.Errorf("unexpected spec attribute %+v", spec.Attribute)
	}
	if spec.Attribute.Type != AttributeTypeNumber {
		t.Errorf("unexpected attribute type %q", spec.Attribute.Type)
	}
	if len(spec.Values) != 1 {
		t.Errorf("unexpected spec values %v", spec.Values)
	}
}

// Optional keys may be entirely absent from the response; construction
// falls back to zero values without error.
func TestPartFromMap_AbsentOptionalFields(t *testing.T) {
	part := PartFromMap(map[string]any{
		"uid": float64(1),
		"mpn": "X",
		"manufacturer": map[string]any{
			"id":          float64(2),
			"displayname": "Acme",
		},
		"detail_url": "https://octopart.com/x",
	})

	if part.AvgPrice != 0 || part.ShortDescription != "" {
		t.Errorf("expected zero defaults, got %+v", part)
	}
	if part.Offers != nil || part.Specs != nil {
		t.Errorf("expected no offers or specs, got %+v", part)
	}
	if len(part.Hyperlinks) != 0 {
		t.Errorf("expected empty hyperlinks, got %v", part.Hyperlinks)
	}
}

func TestOfferFromMap_BadTimestampIgnored(t *testing.T) {
	o := offerFromMap(map[string]any{
		"sku":       "A",
		"update_ts": "not-a-time",
	})
	if !o.UpdateTS.IsZero() {
		t.Errorf("expected zero time for malformed update_ts, got %v", o.UpdateTS)
	}
}

func TestPriceBreaksNumericPrices(t *testing.T) {
	got := priceBreaks([]any{[]any{float64(10), 0.5}})
	if len(got) != 1 || got[0].Price != "0.5" || got[0].Quantity != 10 {
		t.Errorf("unexpected price breaks %v", got)
	}
}
