package witness

import "github.com/consensys/gnark-crypto/ecc/bn254"

// PowP12MinusOneDiv27 returns a^((p^12-1)/27).
func PowP12MinusOneDiv27(a *bn254.GT) *bn254.GT {
	var z bn254.GT
	z.Exp(*a, D().S27)
	return &z
}

// PowP12MinusOneDiv3 returns a^((p^12-1)/3), the cubic-residue test
// exponentiation.
func PowP12MinusOneDiv3(a *bn254.GT) *bn254.GT {
	var z bn254.GT
	z.Exp(*a, D().S3)
	return &z
}

// IsThirdRoot reports whether a is a cubic residue in F_{p^12}*, i.e.
// a^((p^12-1)/3) = 1.
func IsThirdRoot(a *bn254.GT) bool {
	one := bn254.GT{}
	one.SetOne()
	res := PowP12MinusOneDiv3(a)
	return res.Equal(&one)
}

// RandThirdRoot rejection-samples uniform F_{p^12} elements until one is a
// cubic residue. Acceptance probability is exactly 1/3 per trial.
func RandThirdRoot(s Sampler) (bn254.GT, error) {
	for {
		a, err := s.Sample()
		if err != nil {
			return bn254.GT{}, err
		}
		if IsThirdRoot(&a) {
			return a, nil
		}
	}
}

// TonelliShanksThirdRoot returns x with x^3 = a, assuming a is a cubic
// residue (callers must preflight via IsThirdRoot; the routine does not test
// this up front, but if no correction yields a root it returns
// errNotCubicResidue).
//
// x starts as a^e, where e = (s+1)/3 and s = (p^12-1)/27; the residual
// x^3/a is then a 27th root of unity, corrected away by multiplying by
// successive powers of a primitive 27th root w.
func TonelliShanksThirdRoot(a bn254.GT, s Sampler) (bn254.GT, error) {
	w, err := Find27thRoot(s)
	if err != nil {
		return bn254.GT{}, err
	}

	var x bn254.GT
	x.Exp(a, D().E3)

	aInv := new(bn254.GT).Inverse(&a)

	one := bn254.GT{}
	one.SetOne()

	var residual bn254.GT
	for i := 0; i < 27; i++ {
		residual.Square(&x)
		residual.Mul(&residual, &x)
		residual.Mul(&residual, aInv)
		if residual.Equal(&one) {
			return x, nil
		}
		x.Mul(&x, &w)
	}
	return bn254.GT{}, errNotCubicResidue
}
