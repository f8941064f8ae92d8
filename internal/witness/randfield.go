package witness

import (
	"io"
	"math/big"
)

// randFieldElement draws a uniform integer in [0, p) from r by rejection
// sampling over byte strings the width of p, the standard approach for
// turning a byte stream into an unbiased bounded integer.
func randFieldElement(r io.Reader, p *big.Int) (*big.Int, error) {
	byteLen := (p.BitLen() + 7) / 8
	buf := make([]byte, byteLen)
	for {
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, err
		}
		v := new(big.Int).SetBytes(buf)
		if v.Cmp(p) < 0 {
			return v, nil
		}
	}
}
