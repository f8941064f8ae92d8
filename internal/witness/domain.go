// Package witness implements the field-theoretic kernel of the pairing
// oracle: the 27th-root finder, the cube-root (Tonelli-Shanks) engine, the
// r-th/m'-th root engine, and the witness assembler that combines them.
//
// BigField arithmetic (F_{p^12} tower field operations, exponentiation,
// inversion, random sampling) is provided by gnark-crypto's bn254 package
// and is treated as an external dependency, per the domain's own sizing:
// this package implements only the root-extraction math around it.
package witness

import (
	"math/big"
	"sync"

	"github.com/consensys/gnark-crypto/ecc/bn254/fp"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/consensys/bn254-witness-oracle/internal/bignum"
)

// Domain holds the BN254 constants the witness kernel is built on. All
// values are derived once from gnark-crypto's field moduli; none are
// hardcoded independently of them.
type Domain struct {
	P      *big.Int // base-field modulus
	R      *big.Int // scalar-field modulus (group order)
	P12    *big.Int // p^12
	Lambda *big.Int // 6x+2+p-p^2+p^3
	H      *big.Int // (p^12 - 1) / r
	M      *big.Int // lambda / r
	Mp     *big.Int // m / 3

	S27  *big.Int // (p^12 - 1) / 27, the 27th-root-of-unity exponent
	E3   *big.Int // (s27 + 1) / 3, the cube-root Tonelli-Shanks exponent
	S3   *big.Int // (p^12 - 1) / 3, the cubic-residue test exponent
	InvR *big.Int // r^-1 mod h
	InvM *big.Int // m'^-1 mod h
}

var (
	domainOnce sync.Once
	domain     Domain
)

// D returns the package-wide BN254 domain constants, computing them once.
func D() *Domain {
	domainOnce.Do(initDomain)
	return &domain
}

func initDomain() {
	one := big.NewInt(1)
	three := big.NewInt(3)

	p := fp.Modulus()
	r := fr.Modulus()

	domain.P = new(big.Int).Set(p)
	domain.R = new(big.Int).Set(r)

	p12 := new(big.Int).Exp(p, big.NewInt(12), nil)
	domain.P12 = p12

	// x = 2*((x-1)/2) + 1, with (x-1)/2 = 2482830683596424440 the BN254 seed half.
	xm1div2 := new(big.Int).SetUint64(2482830683596424440)
	x := new(big.Int).Mul(xm1div2, big.NewInt(2))
	x.Add(x, one)

	// lambda = 6x + 2 + p - p^2 + p^3
	lambda := new(big.Int).Mul(big.NewInt(6), x)
	lambda.Add(lambda, big.NewInt(2))
	lambda.Add(lambda, p)
	p2 := new(big.Int).Mul(p, p)
	lambda.Sub(lambda, p2)
	p3 := new(big.Int).Mul(p2, p)
	lambda.Add(lambda, p3)
	domain.Lambda = lambda

	p12m1 := new(big.Int).Sub(p12, one)
	h := new(big.Int).Div(p12m1, r)
	domain.H = h

	m := new(big.Int).Div(lambda, r)
	domain.M = m
	mp := new(big.Int).Div(m, three)
	domain.Mp = mp

	domain.S27 = new(big.Int).Div(p12m1, big.NewInt(27))
	e3 := new(big.Int).Add(domain.S27, one)
	e3.Div(e3, three)
	domain.E3 = e3
	domain.S3 = new(big.Int).Div(p12m1, three)

	domain.InvR = bignum.Invert(r, h)
	domain.InvM = bignum.Invert(mp, h)
}
