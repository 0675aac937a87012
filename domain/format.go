package domain

import (
	"bytes"
	"encoding/json"
	"math"
	"math/big"
	"strings"
)

// FormatScore renders a feedback score with exactly two decimals.
// Ties round away from zero, so 0.125 renders "0.13" rather than the
// banker's "0.12" that strconv would produce. A nil score renders blank.
func FormatScore(score *float64) string {
	if score == nil {
		return ""
	}
	x := *score
	switch {
	case math.IsNaN(x):
		return "NaN"
	case math.IsInf(x, 1):
		return "Infinity"
	case math.IsInf(x, -1):
		return "-Infinity"
	}

	neg := x < 0
	r := new(big.Rat).SetFloat64(math.Abs(x))
	r.Mul(r, big.NewRat(100, 1))
	r.Add(r, big.NewRat(1, 2))

	// floor(|x|*100 + 1/2); the rational is non-negative so Quo truncates down.
	n := new(big.Int).Quo(r.Num(), r.Denom())
	digits := n.String()
	if len(digits) < 3 {
		digits = strings.Repeat("0", 3-len(digits)) + digits
	}

	out := digits[:len(digits)-2] + "." + digits[len(digits)-2:]
	if neg {
		out = "-" + out
	}
	return out
}

// FormatRewards renders the rewards payload back to compact JSON text,
// preserving the server's key order. An absent payload renders blank.
func FormatRewards(raw json.RawMessage) string {
	if len(bytes.TrimSpace(raw)) == 0 {
		return ""
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(raw)
	}
	return buf.String()
}
