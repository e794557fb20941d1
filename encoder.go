package reedsolomon

// Encoder computes Reed-Solomon check symbols for messages over a Field.
// The generator polynomial is built once at construction; after that an
// Encoder is immutable and safe for unlimited concurrent Encode calls.
type Encoder struct {
	field *Field
	nsym  int
	index int
	gen   []int // generator coefficients, gen[i] multiplies x^i, gen[nsym] == 1
}

// New builds an Encoder for the field defined by primitive, producing nsym
// check symbols per message. index is the exponent of the first consecutive
// generator root, a fixed property of the target symbology (0 for QR Code,
// 1 for Data Matrix, Aztec and MaxiCode).
//
// New returns a *FieldTooLargeError if the polynomial implies a field wider
// than MaxFieldBits. nsym, index and the primitivity of the polynomial are
// trusted: values inconsistent with the target symbology produce well-formed
// but incorrect check symbols.
func New(primitive, nsym, index int) (*Encoder, error) {
	field, err := NewField(primitive)
	if err != nil {
		return nil, err
	}
	return NewEncoderWithField(field, nsym, index), nil
}

// NewEncoderWithField builds an Encoder over an existing field, for callers
// that derive several encoders from one set of tables. Panics if nsym < 1 or
// index < 0.
func NewEncoderWithField(field *Field, nsym, index int) *Encoder {
	if nsym < 1 {
		panic("reedsolomon: need at least one check symbol")
	}
	if index < 0 {
		panic("reedsolomon: negative root index")
	}

	e := &Encoder{
		field: field,
		nsym:  nsym,
		index: index,
		gen:   make([]int, nsym+1),
	}

	// Expand prod (x - alpha^(index+k)) for k in [0, nsym), one root at a
	// time. Subtraction is XOR, so the sign of the root is immaterial.
	e.gen[0] = 1
	for k := 0; k < nsym; k++ {
		root := field.Exp(index + k)
		for i := nsym; i > 0; i-- {
			e.gen[i] = AddOrSubtract(e.gen[i-1], field.Multiply(root, e.gen[i]))
		}
		e.gen[0] = field.Multiply(root, e.gen[0])
	}
	return e
}

// Field returns the field this encoder operates over.
func (e *Encoder) Field() *Field { return e.field }

// NumCheckSymbols returns the number of check symbols produced per message.
func (e *Encoder) NumCheckSymbols() int { return e.nsym }

// RootIndex returns the exponent of the first generator root.
func (e *Encoder) RootIndex() int { return e.index }

// Generator returns the generator polynomial coefficients; the coefficient
// of x^i is at position i.
func (e *Encoder) Generator() []int {
	gen := make([]int, len(e.gen))
	copy(gen, e.gen)
	return gen
}

// Encode computes the check symbols for data and returns them in
// transmission order, ready to be appended after the data symbols. Callers
// whose symbology serializes checks lowest-order first iterate the result
// backwards.
//
// Each element of data must be a field element in [0, Field().Size()];
// out-of-range values are not detected and corrupt the result. A fresh
// result buffer is allocated per call.
func (e *Encoder) Encode(data []int) []int {
	// LFSR-style long division by the generator polynomial: the residue
	// register holds the remainder, highest-order coefficient last.
	res := make([]int, e.nsym)
	for _, c := range data {
		feedback := AddOrSubtract(res[e.nsym-1], c)
		if feedback != 0 {
			for i := e.nsym - 1; i > 0; i-- {
				res[i] = AddOrSubtract(res[i-1], e.field.Multiply(feedback, e.gen[i]))
			}
			res[0] = e.field.Multiply(feedback, e.gen[0])
		} else {
			copy(res[1:], res[:e.nsym-1])
			res[0] = 0
		}
	}

	// Reverse into transmission order (highest-order check first).
	for i, j := 0, e.nsym-1; i < j; i, j = i+1, j-1 {
		res[i], res[j] = res[j], res[i]
	}
	return res
}
