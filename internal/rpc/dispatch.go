package rpc

import (
	"fmt"

	"github.com/consensys/bn254-witness-oracle/internal/limbs"
	"github.com/consensys/bn254-witness-oracle/internal/witness"
)

// witnessGenPlaceholder is the fixed string the "witness_gen" function
// returns. It is reserved for future use; do not invent semantics for it.
const witnessGenPlaceholder = "Hello, world!"

// Dispatch maps a function name to one of the oracle operations and
// returns the raw JSON-marshalable result. The result's shape varies by
// function: most return a {"values": [...]} envelope, but witness_gen
// returns a bare string and an unknown function name returns a bare
// ["oops"] array together with ErrUnknownFunction, which the transport
// sends back as a plain result rather than a JSON-RPC error.
func Dispatch(s witness.Sampler, name string, inputs []ForeignCallParam) (interface{}, error) {
	switch name {
	case "witness_gen":
		return witnessGenPlaceholder, nil

	case "third_root":
		a, err := decodeFieldElt(inputs)
		if err != nil {
			return nil, fmt.Errorf("third_root: %w", err)
		}
		root, err := witness.TonelliShanksThirdRoot(a, s)
		if err != nil {
			return nil, fmt.Errorf("third_root: %w", err)
		}
		return valuesResponse{Values: []interface{}{limbs.Encode(root)}}, nil

	case "is_third_root":
		a, err := decodeFieldElt(inputs)
		if err != nil {
			return nil, fmt.Errorf("is_third_root: %w", err)
		}
		res := "0"
		if witness.IsThirdRoot(&a) {
			res = "1"
		}
		return valuesResponse{Values: []string{res}}, nil

	case "random_third_root":
		a, err := witness.RandThirdRoot(s)
		if err != nil {
			return nil, fmt.Errorf("random_third_root: %w", err)
		}
		return valuesResponse{Values: []interface{}{limbs.Encode(a)}}, nil

	case "get_pairing_witnesses":
		f, err := decodeFieldElt(inputs)
		if err != nil {
			return nil, fmt.Errorf("get_pairing_witnesses: %w", err)
		}
		pair, err := witness.Generate(f, s)
		if err != nil {
			return nil, fmt.Errorf("get_pairing_witnesses: %w", err)
		}
		return valuesResponse{Values: []interface{}{limbs.Encode(pair.C), limbs.Encode(pair.U)}}, nil

	default:
		return []string{"oops"}, ErrUnknownFunction
	}
}
