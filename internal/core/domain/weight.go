package domain

import (
	"fmt"
	"math/big"
)

// Weight is an exact vote-weight fraction: votes over total votes. Threshold
// and majority comparisons are boundary-sensitive (exactly one half must not
// count as a majority), so comparisons cross-multiply with big.Int instead of
// going through floating point.
type Weight struct {
	num int64
	den int64
}

// NewWeight builds the weight fraction votes/totalVotes.
// totalVotes must be positive; callers guard the empty-registry case.
func NewWeight(votes, totalVotes int64) Weight {
	return Weight{num: votes, den: totalVotes}
}

// Fraction builds an arbitrary fraction, used for fixed thresholds.
func Fraction(num, den int64) Weight {
	return Weight{num: num, den: den}
}

// Votes returns the numerator of the fraction.
func (w Weight) Votes() int64 { return w.num }

// TotalVotes returns the denominator of the fraction.
func (w Weight) TotalVotes() int64 { return w.den }

// Float64 returns the fraction as a float, for display only.
func (w Weight) Float64() float64 {
	if w.den == 0 {
		return 0
	}
	f, _ := new(big.Rat).SetFrac64(w.num, w.den).Float64()
	return f
}

// Cmp compares two weights exactly: -1 if w < o, 0 if equal, +1 if w > o.
func (w Weight) Cmp(o Weight) int {
	left := new(big.Int).Mul(big.NewInt(w.num), big.NewInt(o.den))
	right := new(big.Int).Mul(big.NewInt(o.num), big.NewInt(w.den))
	return left.Cmp(right)
}

// AtLeast reports whether w >= o.
func (w Weight) AtLeast(o Weight) bool {
	return w.Cmp(o) >= 0
}

// IsMajority reports whether w is strictly greater than one half.
func (w Weight) IsMajority() bool {
	return w.Cmp(Fraction(1, 2)) > 0
}

// String renders the weight as "votes/total".
func (w Weight) String() string {
	return fmt.Sprintf("%d/%d", w.num, w.den)
}
