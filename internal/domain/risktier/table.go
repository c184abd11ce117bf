package risktier

import (
	"errors"
	"math/big"
)

var ErrUnknownTier = errors.New("unknown risk tier")

// Tier bounds for loan underwriting. Tier 1 is the least risky.
const (
	MinTier = 1
	MaxTier = 5
)

// Entry holds the underwriting parameters for one tier: the maximum loan
// principal as a percentage of the collateral stream's total amount, and the
// flat interest rate in basis points.
type Entry struct {
	MaxCollateralPct int64
	InterestRateBps  int64
}

// The table is fixed at build time and not mutable at runtime.
var table = map[int]Entry{
	1: {MaxCollateralPct: 80, InterestRateBps: 400},
	2: {MaxCollateralPct: 65, InterestRateBps: 450},
	3: {MaxCollateralPct: 50, InterestRateBps: 500},
	4: {MaxCollateralPct: 35, InterestRateBps: 550},
	5: {MaxCollateralPct: 25, InterestRateBps: 600},
}

// Lookup returns the entry for a tier, or ErrUnknownTier outside [1,5].
func Lookup(tier int) (Entry, error) {
	e, ok := table[tier]
	if !ok {
		return Entry{}, ErrUnknownTier
	}
	return e, nil
}

// MaxLoanAmount returns the largest principal the tier permits against a
// collateral stream of the given total, with floor division. The multiply is
// done in big.Int so large totals cannot overflow int64 mid-computation.
func (e Entry) MaxLoanAmount(streamTotal int64) int64 {
	max := new(big.Int).Mul(big.NewInt(streamTotal), big.NewInt(e.MaxCollateralPct))
	max.Quo(max, big.NewInt(100))
	return max.Int64()
}
