package fulfillment

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Parameters holds queryResult.parameters. A value that is not an object decodes to nil.
type Parameters map[string]any

func (p *Parameters) UnmarshalJSON(data []byte) error {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		*p = nil
		return nil
	}
	*p = m
	return nil
}

// String returns the non-empty string value stored under key.
func (p Parameters) String(key string) (string, bool) {
	v, ok := p[key].(string)
	if !ok || strings.TrimSpace(v) == "" {
		return "", false
	}
	return v, true
}

// Number returns the numeric value stored under key. JSON numbers and
// numeric strings are accepted.
func (p Parameters) Number(key string) (float64, bool) {
	var f float64
	switch v := p[key].(type) {
	case float64:
		f = v
	case json.Number:
		n, err := v.Float64()
		if err != nil {
			return 0, false
		}
		f = n
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		f = n
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// PostCount resolves how many posts to show from the value under key.
// A positive number is truncated toward zero, so 0.5 yields 0; a missing,
// non-numeric or non-positive value yields 1. The result never exceeds limit.
func (p Parameters) PostCount(key string, limit int) int {
	f, ok := p.Number(key)
	switch {
	case !ok || f <= 0:
		return min(1, limit)
	case f >= float64(limit):
		return limit
	default:
		return int(f)
	}
}
