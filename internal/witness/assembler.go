package witness

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254"
)

// Pair is the (c, u) witness returned by Generate: c^λ = f·u, with
// u ∈ {1, w, w²} (equivalently u³ lies in the order-9 subgroup ⟨w³⟩).
type Pair struct {
	C bn254.GT
	U bn254.GT
}

// Generate implements the witness-generator protocol:
//  1. find a 27th root of unity w.
//  2. find s ∈ {0,1,2} such that f·w^s is a cubic residue.
//  3. c ← r-th root of f·w^s.
//  4. c ← m'-th root of c.
//  5. c ← cube root of c.
//  6. return (c, w^(3s)).
func Generate(f bn254.GT, s Sampler) (Pair, error) {
	w, err := Find27thRoot(s)
	if err != nil {
		return Pair{}, err
	}

	one := bn254.GT{}
	one.SetOne()

	var w2 bn254.GT
	w2.Square(&w)

	candidates := [3]bn254.GT{one, w, w2}

	var shift int
	var adjusted bn254.GT
	found := false
	for i, wi := range candidates {
		var trial bn254.GT
		trial.Mul(&f, &wi)
		if IsThirdRoot(&trial) {
			shift = i
			adjusted = trial
			found = true
			break
		}
	}
	if !found {
		return Pair{}, errNoCubicResidueShift
	}

	c := RThRootOfF(adjusted)
	c = MpThRootOfC(c)
	c, err = TonelliShanksThirdRoot(c, s)
	if err != nil {
		return Pair{}, err
	}

	// u = w^(3*shift), so that u lies in the order-9 subgroup generated by w^3.
	var u bn254.GT
	u.Exp(w, big.NewInt(3*int64(shift)))

	return Pair{C: c, U: u}, nil
}
