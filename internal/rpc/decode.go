package rpc

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254"

	"github.com/consensys/bn254-witness-oracle/internal/limbs"
)

// coordsPerField is the number of F_p coordinates in one FieldElt.
const coordsPerField = 12

// decodeFieldElt extracts the 12 F_p coordinates of a FieldElt from the
// request's inputs by position and decodes them into a FieldElt.
//
// A coordinate arrives either as an Array param (its 3 limbs directly) or
// as a Single param, which is treated as a one-element list and padded
// with the empty-string (= 0) high limbs. A mismatch in the overall input
// count is rejected outright.
func decodeFieldElt(inputs []ForeignCallParam) (bn254.GT, error) {
	if len(inputs) != coordsPerField {
		return bn254.GT{}, fmt.Errorf("%w: expected %d inputs, got %d", ErrDecode, coordsPerField, len(inputs))
	}

	hexLimbs := make([]string, 0, limbs.LimbsPerField)
	for _, in := range inputs {
		vals := in.Values()
		coordLimbs := make([]string, 3)
		copy(coordLimbs, vals)
		hexLimbs = append(hexLimbs, coordLimbs...)
	}

	e, err := limbs.Decode(hexLimbs)
	if err != nil {
		return bn254.GT{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return e, nil
}
