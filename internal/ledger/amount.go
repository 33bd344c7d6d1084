package ledger

import "math"

// minorUnitFactor converts between display amounts and stored cents.
const minorUnitFactor = 100

// maxAmount keeps the cents conversion inside int64 range.
const maxAmount = float64(math.MaxInt64) / minorUnitFactor

// NormalizeAmount converts a decimal amount to minor units, rounding
// half up. Non-finite and non-positive amounts are rejected, as are
// amounts too small to represent a single minor unit.
func NormalizeAmount(amount float64) (int64, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, ErrInvalidAmount
	}
	if amount <= 0 || amount >= maxAmount {
		return 0, ErrInvalidAmount
	}

	cents := int64(math.Round(amount * minorUnitFactor))
	if cents <= 0 {
		return 0, ErrInvalidAmount
	}
	return cents, nil
}

// toDecimal converts minor units back to a display amount.
func toDecimal(cents int64) float64 {
	return float64(cents) / minorUnitFactor
}
