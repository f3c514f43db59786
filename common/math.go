package common

const (
	// Bps is the fixed-point scale of all percentage-like values: one
	// unit is 0.01%, Bps units make 100%.
	Bps = 10_000

	// SecondsPerYear is the annualization constant of pool APY rates,
	// 365 days exactly (no leap adjustment, the accrual is linear).
	SecondsPerYear = 31_536_000
)

// MulDiv returns a * b / den with the multiplication performed first.
// NeoVM integers are 256-bit, so the product cannot overflow; the
// division truncates toward zero.
func MulDiv(a, b, den int) int {
	return a * b / den
}

// Clamp bounds v to [0, max].
func Clamp(v, max int) int {
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}
