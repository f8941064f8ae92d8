package bignum

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInvertKnownValues(t *testing.T) {
	cases := []struct {
		a, m, want int64
	}{
		{3, 7, 5},
		{1, 7, 1},
		{6, 7, 6},
		{2, 5, 3},
	}
	for _, c := range cases {
		got := Invert(big.NewInt(c.a), big.NewInt(c.m))
		require.Equal(t, big.NewInt(c.want), got)
	}
}

func TestInvertRoundTrip(t *testing.T) {
	p, _ := new(big.Int).SetString("21888242871839275222246405745257275088548364400416034343698204186575808495617", 10)
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		a := new(big.Int).Rand(r, p)
		if a.Sign() == 0 {
			a.SetInt64(1)
		}
		inv := Invert(a, p)
		prod := new(big.Int).Mul(a, inv)
		prod.Mod(prod, p)
		require.Equal(t, big.NewInt(1), prod)
	}
}

func TestInvertNegativeCoefficientNormalized(t *testing.T) {
	got := Invert(big.NewInt(5), big.NewInt(11))
	require.True(t, got.Sign() >= 0)
	require.True(t, got.Cmp(big.NewInt(11)) < 0)
	prod := new(big.Int).Mul(big.NewInt(5), got)
	prod.Mod(prod, big.NewInt(11))
	require.Equal(t, big.NewInt(1), prod)
}

func TestInvertPanicsOnNonCoprime(t *testing.T) {
	require.Panics(t, func() {
		Invert(big.NewInt(4), big.NewInt(8))
	})
}
