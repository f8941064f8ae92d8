package witness

import "github.com/consensys/gnark-crypto/ecc/bn254"

// RThRootOfF returns g = f^(r^-1 mod h) where h = (p^12-1)/r. g^r = f holds
// when f is an r-th power in F_{p^12}* (f^h = 1); for any other f no r-th
// root exists and g^r differs from f. Spec §4.4.
func RThRootOfF(f bn254.GT) bn254.GT {
	var g bn254.GT
	g.Exp(f, D().InvR)
	return g
}

// MpThRootOfC returns g = c^(m'^-1 mod h). g^m' = c holds when c^h = 1, as
// it does for the output of RThRootOfF on an r-th power. Spec §4.4.
func MpThRootOfC(c bn254.GT) bn254.GT {
	var g bn254.GT
	g.Exp(c, D().InvM)
	return g
}
