package witness

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254"
)

// Find27thRoot returns an element w of exact multiplicative order 27, by
// rejection sampling: draw x uniformly, raise to (p^12-1)/27, accept iff
// w != 1 and w^9 != 1 (together these force the order to be exactly 27,
// since the order must divide 27 and exceed 9).
func Find27thRoot(s Sampler) (bn254.GT, error) {
	one := bn254.GT{}
	one.SetOne()

	for {
		x, err := s.Sample()
		if err != nil {
			return bn254.GT{}, err
		}
		w := *PowP12MinusOneDiv27(&x)

		var w9 bn254.GT
		w9.Exp(w, big.NewInt(9))
		if !w.Equal(&one) && !w9.Equal(&one) {
			return w, nil
		}
	}
}

// FindThirdNonResidue returns (a, b) with b = a^((p^12-1)/27), b^3 != 1 and
// b^9 = 1, i.e. b has multiplicative order exactly 9. Test-only helper.
func FindThirdNonResidue(s Sampler) (bn254.GT, bn254.GT, error) {
	one := bn254.GT{}
	one.SetOne()

	for {
		a, err := s.Sample()
		if err != nil {
			return bn254.GT{}, bn254.GT{}, err
		}
		b := PowP12MinusOneDiv27(&a)

		var b3, b9 bn254.GT
		b3.Exp(*b, big.NewInt(3))
		b9.Exp(*b, big.NewInt(9))
		if !b3.Equal(&one) && b9.Equal(&one) {
			return a, *b, nil
		}
	}
}

// GetOrder returns the number of cubings needed to reach 1 — not the
// multiplicative order itself, but log_3 of it for any a whose order is a
// power of 3 (true for any element reached from the order-27 subgroup).
// Test-only helper.
func GetOrder(a bn254.GT) uint32 {
	one := bn254.GT{}
	one.SetOne()

	var t uint32
	cur := a
	for !cur.Equal(&one) {
		t++
		cur.Exp(cur, big.NewInt(3))
	}
	return t
}
