package orders

import (
	"bytes"
	"encoding/json"
	"log/slog"
)

// Measurement is one body-measurement row captured at the shop.
type Measurement struct {
	Key   string `json:"measurementKey"`
	Value string `json:"measurementValue"`
	Unit  string `json:"unit"`
	Notes string `json:"notes"`
}

// ParseMeasurements accepts the upstream's two spellings of a measurement
// payload: a native JSON array, or a JSON string containing an encoded
// array. Malformed input is logged and yields nil; it never fails the
// screen.
func ParseMeasurements(raw json.RawMessage, log *slog.Logger) []Measurement {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}

	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			log.Warn("measurements: bad string payload", "err", err)
			return nil
		}
		raw = []byte(s)
	}

	var out []Measurement
	if err := json.Unmarshal(raw, &out); err != nil {
		log.Warn("measurements: unparseable payload", "err", err)
		return nil
	}
	return out
}

// FirstNote returns the first non-empty note across all rows. Only one
// note is surfaced beneath the measurement list, by longstanding product
// behavior.
func FirstNote(rows []Measurement) string {
	for _, m := range rows {
		if m.Notes != "" {
			return m.Notes
		}
	}
	return ""
}
