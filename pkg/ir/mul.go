// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package ir

import (
	"slices"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/consensys/go-plonkish/pkg/trace"
	"github.com/consensys/go-plonkish/pkg/util"
)

// Mul represents the product over zero or more expressions.
type Mul struct{ Args []Term }

// Product returns the product of zero or more multiplications.
func Product(terms ...Term) Term {
	// Remove all multiplications by one
	terms = slices.DeleteFunc(slices.Clone(terms), isOne)
	// Check for zero
	if slices.ContainsFunc(terms, isZero) {
		return Const64(0)
	}
	// Final optimisation
	switch len(terms) {
	case 0:
		return Const64(1)
	case 1:
		return terms[0]
	default:
		return &Mul{terms}
	}
}

// Bounds implementation for Boundable interface.
func (p *Mul) Bounds() util.Bounds {
	return util.BoundsForArray(p.Args)
}

// EvalAt implementation for Term interface.
func (p *Mul) EvalAt(k int, tr trace.Trace) fr.Element {
	// Evaluate first argument
	val := p.Args[0].EvalAt(k, tr)
	// Continue evaluating the rest
	for i := 1; i < len(p.Args); i++ {
		// Can short-circuit evaluation?
		if val.IsZero() {
			return val
		}
		// No
		ith := p.Args[i].EvalAt(k, tr)
		val.Mul(&val, &ith)
	}
	// Done
	return val
}

// Degree implementation for Term interface.
func (p *Mul) Degree() uint {
	var degree uint
	// Product sums degrees
	for _, arg := range p.Args {
		degree += arg.Degree()
	}
	//
	return degree
}

// RequiredSelectors implementation for Term interface.
func (p *Mul) RequiredSelectors() []uint {
	return requiredSelectorsOfTerms(p.Args)
}

func (p *Mul) String() string {
	return stringOfTerms("*", p.Args)
}
