package reedsolomon

// Decoder corrects symbol errors in received Reed-Solomon codewords. It must
// be built with the same field and root index as the encoder that produced
// the checks. Decoders are stateless and safe for concurrent use.
type Decoder struct {
	field *Field
	index int
}

// NewDecoder creates a Decoder over the given field whose generator roots
// start at exponent index.
func NewDecoder(field *Field, index int) *Decoder {
	return &Decoder{field: field, index: index}
}

// Decode corrects errors in received in-place and returns the number of
// errors corrected. received holds the data symbols followed by nsym check
// symbols in transmission order. Up to nsym/2 symbol errors are correctable;
// beyond that Decode returns ErrDecode and leaves received unspecified.
func (d *Decoder) Decode(received []int, nsym int) (int, error) {
	poly := newPoly(d.field, received)
	syndromes := make([]int, nsym)
	noError := true
	for i := 0; i < nsym; i++ {
		eval := poly.EvaluateAt(d.field.Exp(i + d.index))
		syndromes[nsym-1-i] = eval
		if eval != 0 {
			noError = false
		}
	}
	if noError {
		return 0, nil
	}

	syndrome := newPoly(d.field, syndromes)
	sigma, omega, err := d.runEuclidean(d.field.BuildMonomial(nsym, 1), syndrome, nsym)
	if err != nil {
		return 0, err
	}
	locations, err := d.findErrorLocations(sigma)
	if err != nil {
		return 0, err
	}
	magnitudes := d.findErrorMagnitudes(omega, locations)
	for i := range locations {
		position := len(received) - 1 - d.field.Log(locations[i])
		if position < 0 {
			return 0, ErrDecode
		}
		received[position] = AddOrSubtract(received[position], magnitudes[i])
	}
	return len(locations), nil
}

// runEuclidean runs the extended Euclidean algorithm on a and b until the
// remainder degree drops below R/2, yielding the error locator sigma and the
// error evaluator omega.
func (d *Decoder) runEuclidean(a, b *Poly, R int) (sigma, omega *Poly, err error) {
	if a.Degree() < b.Degree() {
		a, b = b, a
	}

	rLast, r := a, b
	tLast, t := d.field.Zero(), d.field.One()

	for 2*r.Degree() >= R {
		rLastLast, tLastLast := rLast, tLast
		rLast, tLast = r, t

		if rLast.IsZero() {
			return nil, nil, ErrDecode
		}
		r = rLastLast
		q := d.field.Zero()
		leading := rLast.Coefficient(rLast.Degree())
		inverseLeading := d.field.Inverse(leading)
		for r.Degree() >= rLast.Degree() && !r.IsZero() {
			degreeDiff := r.Degree() - rLast.Degree()
			scale := d.field.Multiply(r.Coefficient(r.Degree()), inverseLeading)
			q = q.Add(d.field.BuildMonomial(degreeDiff, scale))
			r = r.Add(rLast.MultiplyByMonomial(degreeDiff, scale))
		}

		t = q.Multiply(tLast).Add(tLastLast)

		if r.Degree() >= rLast.Degree() {
			return nil, nil, ErrDecode
		}
	}

	sigmaAtZero := t.Coefficient(0)
	if sigmaAtZero == 0 {
		return nil, nil, ErrDecode
	}

	inverse := d.field.Inverse(sigmaAtZero)
	return t.MultiplyScalar(inverse), r.MultiplyScalar(inverse), nil
}

// findErrorLocations finds the roots of the error locator polynomial by
// exhaustive search over the field (Chien search).
func (d *Decoder) findErrorLocations(locator *Poly) ([]int, error) {
	numErrors := locator.Degree()
	if numErrors == 1 {
		return []int{locator.Coefficient(1)}, nil
	}
	result := make([]int, 0, numErrors)
	for i := 1; i <= d.field.Size() && len(result) < numErrors; i++ {
		if locator.EvaluateAt(i) == 0 {
			result = append(result, d.field.Inverse(i))
		}
	}
	if len(result) != numErrors {
		return nil, ErrDecode
	}
	return result, nil
}

// findErrorMagnitudes applies the Forney formula at each error location.
func (d *Decoder) findErrorMagnitudes(evaluator *Poly, locations []int) []int {
	result := make([]int, len(locations))
	for i := range locations {
		xiInverse := d.field.Inverse(locations[i])
		denominator := 1
		for j := range locations {
			if i == j {
				continue
			}
			term := d.field.Multiply(locations[j], xiInverse)
			denominator = d.field.Multiply(denominator, AddOrSubtract(term, 1))
		}
		result[i] = d.field.Multiply(evaluator.EvaluateAt(xiInverse), d.field.Inverse(denominator))
		if d.index != 0 {
			// A nonzero first-root exponent b scales each magnitude by Xi^-b.
			result[i] = d.field.Multiply(result[i], d.field.Exp(d.index*d.field.Log(xiInverse)))
		}
	}
	return result
}
