package witness

import (
	"crypto/rand"
	"io"
	mrand "math/rand"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fp"
)

// Sampler produces uniformly random F_{p^12} elements. Production call
// sites use CryptoSampler; tests and reproducible fixtures use
// DeterministicSampler. The RNG is an injected dependency rather than a
// global, so every rejection-sampling routine in this package takes a
// Sampler explicitly.
type Sampler interface {
	Sample() (bn254.GT, error)
}

// CryptoSampler draws from crypto/rand.Reader, suitable for any witness
// consumed by a live proof.
type CryptoSampler struct{}

func (CryptoSampler) Sample() (bn254.GT, error) {
	return sampleFrom(rand.Reader)
}

// DeterministicSampler draws from a seeded math/rand source. It exists
// purely for reproducible tests; never use it to produce a witness that
// feeds a real proof.
type DeterministicSampler struct {
	src *mrand.Rand
}

// NewDeterministicSampler builds a DeterministicSampler seeded with seed.
func NewDeterministicSampler(seed int64) *DeterministicSampler {
	return &DeterministicSampler{src: mrand.New(mrand.NewSource(seed))}
}

func (d *DeterministicSampler) Sample() (bn254.GT, error) {
	return sampleFrom(d.src)
}

// sampleFrom draws 12 uniform F_p coordinates from r and assembles them
// into an F_{p^12} element in canonical tower-coordinate order.
func sampleFrom(r io.Reader) (bn254.GT, error) {
	var z bn254.GT
	coords := []*fp.Element{
		&z.C0.B0.A0, &z.C0.B0.A1, &z.C0.B1.A0, &z.C0.B1.A1, &z.C0.B2.A0, &z.C0.B2.A1,
		&z.C1.B0.A0, &z.C1.B0.A1, &z.C1.B1.A0, &z.C1.B1.A1, &z.C1.B2.A0, &z.C1.B2.A1,
	}
	p := D().P
	for _, c := range coords {
		v, err := randFieldElement(r, p)
		if err != nil {
			return bn254.GT{}, err
		}
		c.SetBigInt(v)
	}
	return z, nil
}
