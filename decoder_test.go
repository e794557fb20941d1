package reedsolomon

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeNoErrors(t *testing.T) {
	enc := NewEncoderWithField(QRCodeField, 4, 0)
	data := []int{10, 20, 30, 40, 50}
	codeword := append(append([]int{}, data...), enc.Encode(data)...)

	dec := NewDecoder(QRCodeField, 0)
	corrected, err := dec.Decode(codeword, 4)
	require.NoError(t, err)
	assert.Zero(t, corrected)
	assert.Equal(t, data, codeword[:len(data)])
}

func TestDecodeCorrectsErrors(t *testing.T) {
	tests := []struct {
		name  string
		field *Field
		nsym  int
		index int
	}{
		{"QRIndex0", QRCodeField, 10, 0},
		{"DataMatrixIndex1", DataMatrixField, 8, 1},
		{"AztecParam", AztecParamField, 6, 1},
		{"MaxiCode", MaxiCodeField, 10, 1},
		{"AztecData10", AztecData10Field, 6, 1},
		{"GeneralizedIndex", QRCodeField, 8, 2},
	}

	rng := rand.New(rand.NewSource(1))
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			enc := NewEncoderWithField(tc.field, tc.nsym, tc.index)
			dec := NewDecoder(tc.field, tc.index)

			data := make([]int, 8)
			for i := range data {
				data[i] = rng.Intn(tc.field.Size() + 1)
			}
			codeword := append(append([]int{}, data...), enc.Encode(data)...)

			for errs := 1; errs <= tc.nsym/2; errs++ {
				received := append([]int{}, codeword...)
				for _, pos := range rng.Perm(len(received))[:errs] {
					received[pos] ^= 1 + rng.Intn(tc.field.Size())
				}

				corrected, err := dec.Decode(received, tc.nsym)
				require.NoError(t, err, "%d errors", errs)
				assert.Equal(t, errs, corrected)
				assert.Equal(t, codeword, received)
			}
		})
	}
}

func TestDecodeTooManyErrors(t *testing.T) {
	// 4 check symbols correct at most 2 errors; 3 must be rejected.
	received := []int{0, 0, 0, 40, 50, 16, 68, 42, 100}

	dec := NewDecoder(QRCodeField, 0)
	_, err := dec.Decode(received, 4)
	assert.ErrorIs(t, err, ErrDecode)
}

func TestEncodeDecodeRoundtrip(t *testing.T) {
	// Exhaustive single-error correction over a small field.
	f := AztecParamField
	enc := NewEncoderWithField(f, 4, 1)
	dec := NewDecoder(f, 1)

	data := []int{7, 1, 14, 0, 9}
	codeword := append(append([]int{}, data...), enc.Encode(data)...)

	for pos := range codeword {
		for delta := 1; delta <= f.Size(); delta++ {
			received := append([]int{}, codeword...)
			received[pos] ^= delta

			corrected, err := dec.Decode(received, 4)
			require.NoError(t, err, "pos=%d delta=%d", pos, delta)
			assert.Equal(t, 1, corrected)
			assert.Equal(t, codeword, received)
		}
	}
}
