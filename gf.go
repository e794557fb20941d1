// Package reedsolomon implements Reed-Solomon error correction coding over
// small Galois fields, as used by 2D and postal barcode symbologies.
//
// A Field is defined by a primitive polynomial over GF(2) and provides
// log/antilog-table arithmetic. An Encoder combines a Field with a generator
// polynomial and computes check symbols for a message; a Decoder corrects
// errors in a received codeword. Symbols are ints in [0, 2^m-1] where m is
// the field's bit width; interpretation of the values (barcode alphabet
// positions, codewords) is left to the caller.
package reedsolomon

import "math/bits"

// MaxFieldBits is the largest supported field width in bits. Log/antilog
// tables grow as 2^m, and no barcode symbology uses symbols wider than 12
// bits.
const MaxFieldBits = 12

// Primitive polynomials of the fields used by common symbologies.
const (
	PolyAztecParam  = 0x13   // GF(16), Aztec mode message
	PolyMaxiCode    = 0x43   // GF(64), MaxiCode and Aztec 6-bit data
	PolyQRCode      = 0x11D  // GF(256), QR Code
	PolyDataMatrix  = 0x12D  // GF(256), Data Matrix ECC 200 and Aztec 8-bit data
	PolyAztecData10 = 0x409  // GF(1024), Aztec 10-bit data
	PolyAztecData12 = 0x1069 // GF(4096), Aztec 12-bit data
)

// Field represents a Galois field GF(2^m) defined by a primitive polynomial.
// Instances are immutable once constructed and safe for concurrent use.
type Field struct {
	primitive int
	m         int
	logmod    int // 2^m - 1, the multiplicative group order
	log       []int
	alog      []int
	zero      *Poly
	one       *Poly
}

// Pre-built fields for common symbologies.
var (
	AztecParamField  = mustField(PolyAztecParam)
	MaxiCodeField    = mustField(PolyMaxiCode)
	QRCodeField      = mustField(PolyQRCode)
	DataMatrixField  = mustField(PolyDataMatrix)
	AztecData10Field = mustField(PolyAztecData10)
	AztecData12Field = mustField(PolyAztecData12)
)

// NewField builds the log and antilog tables for the field defined by the
// given primitive polynomial. The position of the polynomial's highest set
// bit determines the field width m; a width above MaxFieldBits is rejected
// with a *FieldTooLargeError.
//
// The polynomial is trusted to be primitive for its width. A non-primitive
// polynomial is not detected and yields a non-bijective table, silently
// corrupting every codeword computed from it.
func NewField(primitive int) (*Field, error) {
	m, err := fieldBits(primitive)
	if err != nil {
		return nil, err
	}

	f := &Field{
		primitive: primitive,
		m:         m,
		logmod:    1<<m - 1,
	}
	f.log = make([]int, f.logmod+1)
	f.alog = make([]int, f.logmod)

	// Repeated multiplication by the primitive element alpha: shift left,
	// and reduce modulo the defining polynomial whenever bit m is carried
	// out. log[0] stays unused by convention.
	carry := 1 << m
	p := 1
	for v := 0; v < f.logmod; v++ {
		f.alog[v] = p
		f.log[p] = v
		p <<= 1
		if p&carry != 0 {
			p ^= primitive
		}
	}

	f.zero = newPoly(f, []int{0})
	f.one = newPoly(f, []int{1})
	return f, nil
}

func mustField(primitive int) *Field {
	f, err := NewField(primitive)
	if err != nil {
		panic(err)
	}
	return f
}

// fieldBits derives the field width from the primitive polynomial and
// enforces the table-size ceiling.
func fieldBits(primitive int) (int, error) {
	m := bits.Len(uint(primitive)) - 1
	if m < 1 {
		panic("reedsolomon: primitive polynomial must have degree at least 1")
	}
	if m > MaxFieldBits {
		return 0, &FieldTooLargeError{Polynomial: primitive, Bits: m}
	}
	return m, nil
}

// Bits returns the field width m.
func (f *Field) Bits() int { return f.m }

// Size returns the order of the multiplicative group, 2^m - 1. Valid symbol
// values range over [0, Size()].
func (f *Field) Size() int { return f.logmod }

// Primitive returns the defining primitive polynomial.
func (f *Field) Primitive() int { return f.primitive }

// AddOrSubtract computes a + b, which equals a - b in GF(2^m).
func AddOrSubtract(a, b int) int {
	return a ^ b
}

// Exp returns alpha^a. The exponent may be any non-negative value; it is
// reduced modulo the group order.
func (f *Field) Exp(a int) int {
	return f.alog[a%f.logmod]
}

// Log returns the discrete logarithm of a. Panics if a is zero.
func (f *Field) Log(a int) int {
	if a == 0 {
		panic("reedsolomon: log(0)")
	}
	return f.log[a]
}

// Inverse returns the multiplicative inverse of a. Panics if a is zero.
func (f *Field) Inverse(a int) int {
	if a == 0 {
		panic("reedsolomon: inverse(0)")
	}
	return f.alog[(f.logmod-f.log[a])%f.logmod]
}

// Multiply returns a * b via the log/antilog shortcut.
func (f *Field) Multiply(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	return f.alog[(f.log[a]+f.log[b])%f.logmod]
}

// Zero returns the zero polynomial over this field.
func (f *Field) Zero() *Poly { return f.zero }

// One returns the one polynomial over this field.
func (f *Field) One() *Poly { return f.one }

// BuildMonomial returns coefficient * x^degree.
func (f *Field) BuildMonomial(degree, coefficient int) *Poly {
	if degree < 0 {
		panic("reedsolomon: negative degree")
	}
	if coefficient == 0 {
		return f.zero
	}
	coefficients := make([]int, degree+1)
	coefficients[0] = coefficient
	return newPoly(f, coefficients)
}
