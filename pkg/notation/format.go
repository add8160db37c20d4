package notation

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// FormatNumber renders an evaluation value without exponent notation, e.g.
// 0.5, 14 or 1024. NaN and infinities use strconv's spelling.
func FormatNumber(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return decimal.NewFromFloat(v).String()
}
