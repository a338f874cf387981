// Package polyn is for arithmetic with polynomials in one variable, as
// needed for the basis functions of Hermite interpolation.
/*
BSD 3-Clause License

Copyright (c) 2017–21, Norbert Pillmayer.

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
   list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
   this list of conditions and the following disclaimer in the documentation
   and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
   contributors may be used to endorse or promote products derived from
   this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package polyn

import (
	"bytes"
	"fmt"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/cardinal"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the polynomials tracer.
func T() tracing.Trace {
	return tracing.Select("polyn")
}

// X is a helper for quick construction of polynomials.
// It denotes a term
//
//	C⋅u^I
//
// I > 0
type X struct {
	I int     // exponent of u
	C float64 // coefficient
}

// New creates a polynomial, given the term coefficients and exponents
//
// Use it as
//
//	polyn.New(1, polyn.X{2,-3}, polyn.X{3,2})
//
// to get
//
//	P(u) = 1 - 3u² + 2u³
func New(c float64, tms ...X) (Polynomial, error) {
	p := NewConstantPolynomial(c)
	var err error
	for _, t := range tms {
		if t.I < 1 {
			err = fmt.Errorf("term exponent must be at least 1, skipping it")
		} else {
			p.SetTerm(t.I, p.Coeff(t.I)+t.C)
		}
	}
	return p.Zap(), err
}

// Polynomial is a polynomial in one variable u:
//
//	p = c + a.1 u + a.2 u² + ... + a.n u^n
//
// We store the coefficients only. Index 0 is the constant term.
// We store the coefficients in a TreeMap (sorted map), keyed by exponent.
type Polynomial struct {
	Terms *treemap.Map
}

// NewConstantPolynomial creates a Polynomial consisting of just a constant term.
func NewConstantPolynomial(c float64) Polynomial {
	p := Polynomial{}
	p.checkTerms()
	p.Terms.Put(0, c) // initialize with constant term (at position 0)
	return p.Zap()
}

func (p *Polynomial) checkTerms() {
	if p.Terms == nil {
		p.Terms = treemap.NewWithIntComparator()
	}
}

// SetTerm sets the coefficient for a term a.i u^i within a Polynomial.
// For i=0, sets the constant term.
func (p Polynomial) SetTerm(i int, coeff float64) Polynomial {
	p.checkTerms()
	p.Terms.Put(i, coeff)
	return p
}

// Coeff gets the coefficient for term # i.
//
// Example:
//
//	p = u + 3u²
//
// ⇒
//
//	coeff(2) = 3
func (p Polynomial) Coeff(i int) float64 {
	p.checkTerms()
	if sc, found := p.Terms.Get(i); found {
		return sc.(float64)
	}
	return 0.0
}

// Degree returns the highest exponent with a non-zero coefficient.
func (p Polynomial) Degree() int {
	p.checkTerms()
	keys := p.Terms.Keys()
	for k := len(keys) - 1; k > 0; k-- {
		if i := keys[k].(int); !cardinal.Is0(p.Coeff(i)) {
			return i
		}
	}
	return 0
}

// Copy makes a copy of a Polynomial.
func (p Polynomial) Copy() Polynomial {
	p1 := NewConstantPolynomial(0.0) // will become our return value
	p.checkTerms()
	it := p.Terms.Iterator()
	for it.Next() {
		p1.SetTerm(it.Key().(int), it.Value().(float64))
	}
	return p1
}

// Internal method: add or subtract 2 polynomials. The high level methods
// are based on this one.
// Flag doAdd signals addition or subtraction.
func (p Polynomial) addOrSub(p2 Polynomial, doAdd bool) Polynomial {
	p1 := p.Copy() // will become our return value
	p2.checkTerms()
	it2 := p2.Terms.Iterator()
	for it2.Next() {
		pos2 := it2.Key().(int)
		coeff2 := it2.Value().(float64)
		if cardinal.Is0(coeff2) {
			continue
		}
		coeff1 := p1.Coeff(pos2)
		if doAdd {
			coeff1 += coeff2
		} else {
			coeff1 -= coeff2
		}
		p1.SetTerm(pos2, coeff1)
	}
	return p1.Zap()
}

// Add adds two Polynomials. Returns a new Polynomial.
func (p Polynomial) Add(p2 Polynomial) Polynomial {
	return p.addOrSub(p2, true)
}

// Subtract subtracts two Polynomials. Returns a new Polynomial.
func (p Polynomial) Subtract(p2 Polynomial) Polynomial {
	return p.addOrSub(p2, false)
}

// Scaled multiplies all coefficients by c. Returns a new Polynomial.
func (p Polynomial) Scaled(c float64) Polynomial {
	p.checkTerms()
	p1 := NewConstantPolynomial(0.0)
	it := p.Terms.Iterator()
	for it.Next() {
		p1.SetTerm(it.Key().(int), it.Value().(float64)*c)
	}
	return p1.Zap()
}

// Derivative returns dp/du.
func (p Polynomial) Derivative() Polynomial {
	p.checkTerms()
	d := NewConstantPolynomial(0.0)
	it := p.Terms.Iterator()
	for it.Next() {
		if i := it.Key().(int); i > 0 {
			d.SetTerm(i-1, float64(i)*it.Value().(float64))
		}
	}
	return d.Zap()
}

// Eval evaluates p at u, using Horner's scheme.
func (p Polynomial) Eval(u float64) float64 {
	r := 0.0
	for i := p.Degree(); i >= 0; i-- {
		r = r*u + p.Coeff(i)
	}
	return r
}

// Zap eliminates all terms with coefficient=0 from a polynomial.
// The constant term is always kept.
func (p Polynomial) Zap() Polynomial {
	p.checkTerms()
	for _, pos := range p.Terms.Keys() {
		if coeff, _ := p.Terms.Get(pos); cardinal.Is0(coeff.(float64)) {
			p.Terms.Remove(pos)
		}
	}
	if _, ok := p.Terms.Get(0); !ok {
		p.Terms.Put(0, 0.0)
	}
	return p
}

// IsConstant checks wether
// a Polynomial is a constant, i.e. p = { c }? Returns the constant and a flag.
func (p Polynomial) IsConstant() (float64, bool) {
	p.checkTerms()
	return p.Coeff(0), p.Terms.Size() == 1
}

// String creates a readable string representation for a Polynomial, in
// ascending order of exponents. Coefficients near 0 are printed as 0.
func (p Polynomial) String() string {
	var buffer bytes.Buffer
	p.checkTerms()
	it := p.Terms.Iterator()
	for it.Next() {
		pos := it.Key().(int)
		c := cardinal.Zap(it.Value().(float64))
		switch pos {
		case 0:
			buffer.WriteString(fmt.Sprintf("{ %g } ", c))
		case 1:
			buffer.WriteString(fmt.Sprintf("{ %g u } ", c))
		default:
			buffer.WriteString(fmt.Sprintf("{ %g u^%d } ", c, pos))
		}
	}
	return buffer.String()
}
