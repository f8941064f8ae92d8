package limbs

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeCoordinateRoundTrip(t *testing.T) {
	vals := []int64{0, 1, 12345, 1<<62 - 1}
	for _, v := range vals {
		n := big.NewInt(v)
		enc := EncodeCoordinate(n)
		dec, err := DecodeCoordinate(enc[:])
		require.NoError(t, err)
		require.Equal(t, n, dec)
	}
}

func TestDecodeCoordinateEmptyStringIsZero(t *testing.T) {
	dec, err := DecodeCoordinate([]string{"", "", ""})
	require.NoError(t, err)
	require.Equal(t, big.NewInt(0), dec)
}

func TestDecodeCoordinateRejectsOutOfRangeLimb(t *testing.T) {
	// 2^120 itself is out of range for a single limb.
	overflow := new(big.Int).Lsh(big.NewInt(1), 120).Text(16)
	_, err := DecodeCoordinate([]string{overflow, "", ""})
	require.Error(t, err)
}

func TestDecodeCoordinateWrongLimbCount(t *testing.T) {
	_, err := DecodeCoordinate([]string{"1", "2"})
	require.Error(t, err)
}

func TestFieldEltRoundTrip(t *testing.T) {
	var e bn254.GT
	e.C0.B0.A0.SetUint64(1)
	e.C0.B0.A1.SetUint64(2)
	e.C0.B1.A0.SetUint64(3)
	e.C0.B1.A1.SetUint64(4)
	e.C0.B2.A0.SetUint64(5)
	e.C0.B2.A1.SetUint64(6)
	e.C1.B0.A0.SetUint64(7)
	e.C1.B0.A1.SetUint64(8)
	e.C1.B1.A0.SetUint64(9)
	e.C1.B1.A1.SetUint64(10)
	e.C1.B2.A0.SetUint64(11)
	e.C1.B2.A1.SetUint64(12)

	encoded := Encode(e)
	require.Len(t, encoded, LimbsPerField)

	decoded, err := Decode(encoded)
	require.NoError(t, err)
	require.True(t, decoded.Equal(&e))
}

func TestDecodeWrongLimbCount(t *testing.T) {
	_, err := Decode(make([]string, 10))
	require.Error(t, err)
}

func TestEveryEncodedLimbWithinBounds(t *testing.T) {
	var e bn254.GT
	e.C0.B0.A0.SetUint64(^uint64(0))
	for _, hex := range Encode(e) {
		v, ok := new(big.Int).SetString(hex, 16)
		require.True(t, ok || hex == "")
		if hex == "" {
			continue
		}
		require.True(t, v.Sign() >= 0)
		require.True(t, v.Cmp(limbBase) < 0)
	}
}
