package witness

import "errors"

// errNotCubicResidue signals that the TonelliShanks loop exhausted all 27
// candidate corrections without finding a cube root, meaning its
// precondition (a is a cubic residue) did not hold.
var errNotCubicResidue = errors.New("witness: input is not a cubic residue")

// errNoCubicResidueShift signals that none of f, f·w, f·w² was a cubic
// residue — for BN254 parameters this cannot happen; surfacing it as an
// error rather than panicking keeps a single request's failure from
// affecting the rest of the server.
var errNoCubicResidueShift = errors.New("witness: no shift s in {0,1,2} makes f a cubic residue")
