package economy

import "github.com/shopspring/decimal"

var (
	hundred     = decimal.NewFromInt(100)
	nearlyWhole = decimal.RequireFromString("99.99")
)

// FormatProbability renders p as a percentage with two decimals. Values that
// would round up to 100% without being certain read "> 99.99%".
func FormatProbability(p float64) string {
	p = clampProb(p)
	if p == 1 {
		return "100%"
	}
	pct := decimal.NewFromFloat(p).Mul(hundred)
	if pct.GreaterThan(nearlyWhole) {
		return "> 99.99%"
	}
	return pct.StringFixed(2) + "%"
}
