package summary

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html"

	"fitformal.com/app/internal/upstream"
)

// PriceEntry is one row of the shop's price list. Field matching is
// case-insensitive, so both Name/FullPrice and name/fullPrice spellings
// decode.
type PriceEntry struct {
	ID            upstream.ID `json:"id"`
	Name          string      `json:"name"`
	FullPrice     float64     `json:"fullPrice"`
	DiscountPrice float64     `json:"discountPrice"`
	Discount      float64     `json:"discount"`
}

// DecodePriceList accepts the price list as a native JSON array or as a
// JSON string whose contents are an HTML-entity-encoded array (the shape
// some upstream configs store it in).
func DecodePriceList(raw json.RawMessage) ([]PriceEntry, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}

	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, fmt.Errorf("price list: %w", err)
		}
		raw = []byte(html.UnescapeString(s))
	}

	var out []PriceEntry
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("price list: %w", err)
	}
	return out, nil
}
