// Package bignum holds the arbitrary-precision integer helpers the witness
// kernel needs on top of math/big: modular inversion via the extended
// Euclidean algorithm.
package bignum

import "math/big"

// Invert returns a⁻¹ mod m in [0, m), via the extended Euclidean algorithm.
// It panics if gcd(a, m) != 1 — callers are expected to only invoke it on
// coprime operands; this is a programmer error, not a runtime condition.
func Invert(a, m *big.Int) *big.Int {
	b := new(big.Int).Set(m)
	r := new(big.Int).Mod(a, m)
	x, u := big.NewInt(0), big.NewInt(1)
	y, v := big.NewInt(1), big.NewInt(0)

	q, rem := new(big.Int), new(big.Int)
	for r.Sign() != 0 {
		q.QuoRem(b, r, rem)

		mCoef := new(big.Int).Mul(u, q)
		mCoef.Sub(x, mCoef)
		nCoef := new(big.Int).Mul(v, q)
		nCoef.Sub(y, nCoef)

		b, r = r, new(big.Int).Set(rem)
		x, u = u, mCoef
		y, v = v, nCoef
	}

	if b.Cmp(big.NewInt(1)) != 0 {
		panic("bignum: Invert called with non-coprime arguments")
	}

	res := new(big.Int).Set(x)
	for res.Sign() < 0 {
		res.Add(res, m)
	}
	return res
}
