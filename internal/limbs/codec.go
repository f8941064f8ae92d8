// Package limbs implements the 120-bit hex limb encoding used to move
// F_{p^12} elements across the JSON-RPC boundary. Each F_p coordinate is 3
// lowercase-hex limbs, base 2^120, little-endian; a full FieldElt is 12
// coordinates in the canonical tower order, 36 limbs total.
package limbs

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fp"
)

const (
	limbBits       = 120
	limbsPerCoord  = 3
	coordsPerField = 12
	// LimbsPerField is the total hex-limb count of one encoded FieldElt.
	LimbsPerField = limbsPerCoord * coordsPerField
)

var limbBase = new(big.Int).Lsh(big.NewInt(1), limbBits)

// DecodeCoordinate parses 3 hex limbs (little-endian, base 2^120) into the
// integer they represent. An empty string decodes as 0.
func DecodeCoordinate(hexLimbs []string) (*big.Int, error) {
	if len(hexLimbs) != limbsPerCoord {
		return nil, fmt.Errorf("limbs: expected %d limbs, got %d", limbsPerCoord, len(hexLimbs))
	}
	res := new(big.Int)
	weight := new(big.Int).SetInt64(1)
	for _, h := range hexLimbs {
		v := new(big.Int)
		if h != "" {
			if _, ok := v.SetString(h, 16); !ok {
				return nil, fmt.Errorf("limbs: malformed hex limb %q", h)
			}
		}
		if v.Sign() < 0 || v.Cmp(limbBase) >= 0 {
			return nil, fmt.Errorf("limbs: limb %q out of range [0, 2^120)", h)
		}
		term := new(big.Int).Mul(v, weight)
		res.Add(res, term)
		weight.Mul(weight, limbBase)
	}
	return res, nil
}

// EncodeCoordinate splits a non-negative integer into 3 little-endian
// base-2^120 hex limbs.
func EncodeCoordinate(n *big.Int) [limbsPerCoord]string {
	var out [limbsPerCoord]string
	rem := new(big.Int).Set(n)
	for i := 0; i < limbsPerCoord; i++ {
		limb := new(big.Int)
		limb.Mod(rem, limbBase)
		out[i] = limb.Text(16)
		rem.Div(rem, limbBase)
	}
	return out
}

// coordinates returns pointers to the 12 F_p coordinates of e in their
// canonical tower order: c0.c0.c0 .. c1.c2.c1.
func coordinates(e *bn254.GT) [coordsPerField]*fp.Element {
	return [coordsPerField]*fp.Element{
		&e.C0.B0.A0, &e.C0.B0.A1,
		&e.C0.B1.A0, &e.C0.B1.A1,
		&e.C0.B2.A0, &e.C0.B2.A1,
		&e.C1.B0.A0, &e.C1.B0.A1,
		&e.C1.B1.A0, &e.C1.B1.A1,
		&e.C1.B2.A0, &e.C1.B2.A1,
	}
}

// Encode serializes a FieldElt into its 36 canonical hex limbs.
func Encode(e bn254.GT) []string {
	out := make([]string, 0, LimbsPerField)
	for _, c := range coordinates(&e) {
		var cb big.Int
		c.BigInt(&cb)
		limbs := EncodeCoordinate(&cb)
		out = append(out, limbs[:]...)
	}
	return out
}

// Decode parses exactly 36 hex limbs into a FieldElt.
func Decode(hexLimbs []string) (bn254.GT, error) {
	if len(hexLimbs) != LimbsPerField {
		return bn254.GT{}, fmt.Errorf("limbs: expected %d limbs for a field element, got %d", LimbsPerField, len(hexLimbs))
	}
	var e bn254.GT
	dst := coordinates(&e)
	for i := 0; i < coordsPerField; i++ {
		v, err := DecodeCoordinate(hexLimbs[i*limbsPerCoord : i*limbsPerCoord+limbsPerCoord])
		if err != nil {
			return bn254.GT{}, err
		}
		dst[i].SetBigInt(v)
	}
	return e, nil
}
