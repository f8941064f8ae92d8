package witness

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/stretchr/testify/require"
)

const sampleCount = 20

func newSampler(seed int64) Sampler {
	return NewDeterministicSampler(seed)
}

func TestPowP12MinusOneDiv27IsOrderDividing27(t *testing.T) {
	s := newSampler(1)
	one := bn254.GT{}
	one.SetOne()
	for i := 0; i < sampleCount; i++ {
		a, err := s.Sample()
		require.NoError(t, err)
		w := PowP12MinusOneDiv27(&a)
		var w27 bn254.GT
		w27.Exp(*w, big.NewInt(27))
		require.True(t, w27.Equal(&one))
	}
}

func TestFind27thRootPrimitivity(t *testing.T) {
	s := newSampler(2)
	one := bn254.GT{}
	one.SetOne()
	for i := 0; i < 5; i++ {
		w, err := Find27thRoot(s)
		require.NoError(t, err)

		var w27, w9 bn254.GT
		w27.Exp(w, big.NewInt(27))
		w9.Exp(w, big.NewInt(9))

		require.True(t, w27.Equal(&one))
		require.False(t, w9.Equal(&one))
		require.False(t, w.Equal(&one))
	}
}

func TestFindThirdNonResidue(t *testing.T) {
	s := newSampler(3)
	one := bn254.GT{}
	one.SetOne()
	for i := 0; i < 5; i++ {
		_, b, err := FindThirdNonResidue(s)
		require.NoError(t, err)

		var b3, b9 bn254.GT
		b3.Exp(b, big.NewInt(3))
		b9.Exp(b, big.NewInt(9))
		require.False(t, b3.Equal(&one))
		require.True(t, b9.Equal(&one))
	}
}

func TestIsThirdRootSoundnessAndAcceptanceRate(t *testing.T) {
	s := newSampler(4)
	accepted := 0
	const trials = 90
	for i := 0; i < trials; i++ {
		a, err := s.Sample()
		require.NoError(t, err)
		if IsThirdRoot(&a) {
			accepted++
		}
	}
	// acceptance rate should be close to 1/3
	require.InDelta(t, float64(trials)/3, float64(accepted), float64(trials)/3)
}

func TestRandThirdRootIsThirdRoot(t *testing.T) {
	s := newSampler(5)
	for i := 0; i < sampleCount; i++ {
		a, err := RandThirdRoot(s)
		require.NoError(t, err)
		require.True(t, IsThirdRoot(&a))
	}
}

func TestTonelliShanksThirdRootCorrectness(t *testing.T) {
	s := newSampler(6)
	for i := 0; i < sampleCount; i++ {
		a, err := RandThirdRoot(s)
		require.NoError(t, err)

		x, err := TonelliShanksThirdRoot(a, s)
		require.NoError(t, err)

		var x3 bn254.GT
		x3.Square(&x)
		x3.Mul(&x3, &x)
		require.True(t, x3.Equal(&a))
	}
}

func TestRThRootOfFCorrectness(t *testing.T) {
	s := newSampler(7)
	for i := 0; i < sampleCount; i++ {
		f, err := s.Sample()
		require.NoError(t, err)

		g := RThRootOfF(f)
		var gr bn254.GT
		gr.Exp(g, D().R)
		require.True(t, gr.Equal(&f))
	}
}

func TestWitnessGenerateEquation(t *testing.T) {
	s := newSampler(8)
	for i := 0; i < sampleCount; i++ {
		f, err := s.Sample()
		require.NoError(t, err)

		pair, err := Generate(f, s)
		require.NoError(t, err)

		var cLambda bn254.GT
		cLambda.Exp(pair.C, D().Lambda)

		var fu bn254.GT
		fu.Mul(&f, &pair.U)

		require.True(t, cLambda.Equal(&fu))

		// u must lie in the order-9 subgroup generated by w^3.
		var u9 bn254.GT
		u9.Exp(pair.U, big.NewInt(9))
		one := bn254.GT{}
		one.SetOne()
		require.True(t, u9.Equal(&one))
	}
}

// GetOrder counts cubings-to-reach-one, not the multiplicative order
// itself: a primitive 27th root needs exactly 3 cubings (w -> w^3 -> w^9
// -> w^27=1).
func TestGetOrderOnRootOf27(t *testing.T) {
	s := newSampler(9)
	w, err := Find27thRoot(s)
	require.NoError(t, err)
	require.Equal(t, uint32(3), GetOrder(w))
}
