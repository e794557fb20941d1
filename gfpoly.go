package reedsolomon

// Poly represents a polynomial whose coefficients are elements of a Field.
// Coefficients are ordered from highest degree to lowest. Instances are
// immutable.
type Poly struct {
	field        *Field
	coefficients []int
}

func newPoly(field *Field, coefficients []int) *Poly {
	if len(coefficients) == 0 {
		panic("reedsolomon: empty coefficients")
	}
	// Normalize away leading zero coefficients so Degree is meaningful.
	if len(coefficients) > 1 && coefficients[0] == 0 {
		firstNonZero := 1
		for firstNonZero < len(coefficients) && coefficients[firstNonZero] == 0 {
			firstNonZero++
		}
		if firstNonZero == len(coefficients) {
			coefficients = []int{0}
		} else {
			trimmed := make([]int, len(coefficients)-firstNonZero)
			copy(trimmed, coefficients[firstNonZero:])
			coefficients = trimmed
		}
	}
	return &Poly{field: field, coefficients: coefficients}
}

// Coefficients returns the coefficients, highest degree first.
func (p *Poly) Coefficients() []int {
	return p.coefficients
}

// Degree returns the degree of this polynomial.
func (p *Poly) Degree() int {
	return len(p.coefficients) - 1
}

// IsZero reports whether this is the zero polynomial.
func (p *Poly) IsZero() bool {
	return p.coefficients[0] == 0
}

// Coefficient returns the coefficient of x^degree.
func (p *Poly) Coefficient(degree int) int {
	return p.coefficients[len(p.coefficients)-1-degree]
}

// EvaluateAt evaluates this polynomial at a using Horner's scheme.
func (p *Poly) EvaluateAt(a int) int {
	if a == 0 {
		return p.Coefficient(0)
	}
	if a == 1 {
		result := 0
		for _, c := range p.coefficients {
			result = AddOrSubtract(result, c)
		}
		return result
	}
	result := p.coefficients[0]
	for i := 1; i < len(p.coefficients); i++ {
		result = AddOrSubtract(p.field.Multiply(a, result), p.coefficients[i])
	}
	return result
}

// Add returns the sum of p and other, which in GF(2^m) is also their
// difference.
func (p *Poly) Add(other *Poly) *Poly {
	if p.IsZero() {
		return other
	}
	if other.IsZero() {
		return p
	}

	smaller := p.coefficients
	larger := other.coefficients
	if len(smaller) > len(larger) {
		smaller, larger = larger, smaller
	}

	sum := make([]int, len(larger))
	diff := len(larger) - len(smaller)
	copy(sum, larger[:diff])
	for i := diff; i < len(larger); i++ {
		sum[i] = AddOrSubtract(smaller[i-diff], larger[i])
	}
	return newPoly(p.field, sum)
}

// Multiply returns the product of p and other.
func (p *Poly) Multiply(other *Poly) *Poly {
	if p.IsZero() || other.IsZero() {
		return p.field.Zero()
	}
	product := make([]int, len(p.coefficients)+len(other.coefficients)-1)
	for i, a := range p.coefficients {
		for j, b := range other.coefficients {
			product[i+j] = AddOrSubtract(product[i+j], p.field.Multiply(a, b))
		}
	}
	return newPoly(p.field, product)
}

// MultiplyScalar returns p scaled by a field element.
func (p *Poly) MultiplyScalar(scalar int) *Poly {
	if scalar == 0 {
		return p.field.Zero()
	}
	if scalar == 1 {
		return p
	}
	product := make([]int, len(p.coefficients))
	for i, c := range p.coefficients {
		product[i] = p.field.Multiply(c, scalar)
	}
	return newPoly(p.field, product)
}

// MultiplyByMonomial returns p * coefficient * x^degree.
func (p *Poly) MultiplyByMonomial(degree, coefficient int) *Poly {
	if degree < 0 {
		panic("reedsolomon: negative degree")
	}
	if coefficient == 0 {
		return p.field.Zero()
	}
	product := make([]int, len(p.coefficients)+degree)
	for i, c := range p.coefficients {
		product[i] = p.field.Multiply(c, coefficient)
	}
	return newPoly(p.field, product)
}

// Divide returns the quotient and remainder of p divided by other.
func (p *Poly) Divide(other *Poly) (quotient, remainder *Poly) {
	if other.IsZero() {
		panic("reedsolomon: divide by zero polynomial")
	}

	quotient = p.field.Zero()
	remainder = p

	leading := other.Coefficient(other.Degree())
	inverseLeading := p.field.Inverse(leading)

	for remainder.Degree() >= other.Degree() && !remainder.IsZero() {
		degreeDiff := remainder.Degree() - other.Degree()
		scale := p.field.Multiply(remainder.Coefficient(remainder.Degree()), inverseLeading)
		quotient = quotient.Add(p.field.BuildMonomial(degreeDiff, scale))
		remainder = remainder.Add(other.MultiplyByMonomial(degreeDiff, scale))
	}
	return quotient, remainder
}
