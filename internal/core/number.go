package core

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// CoerceNumber turns a decoded JSON value into a float64. Monetary fields
// arrive either as JSON numbers or as numeric strings ("12.5"), so both are
// accepted. NaN, infinities and non-numeric strings are rejected.
func CoerceNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return checkFinite(n)
	case float32:
		return checkFinite(float64(n))
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return checkFinite(f)
	case string:
		s := strings.TrimSpace(n)
		// strconv also reads hex floats ("0x1p-2") and digit-separator
		// underscores; monetary input is plain decimal only
		if strings.ContainsAny(s, "xXpP_") {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return checkFinite(f)
	}
	return 0, false
}

func checkFinite(f float64) (float64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
