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

// Add represents the addition of zero or more expressions.
type Add struct{ Args []Term }

// Sum zero or more expressions together.
func Sum(terms ...Term) Term {
	// Remove any zeros
	terms = slices.DeleteFunc(slices.Clone(terms), isZero)
	// Final simplifications
	switch len(terms) {
	case 0:
		return Const64(0)
	case 1:
		return terms[0]
	default:
		return &Add{terms}
	}
}

// Bounds implementation for Boundable interface.
func (p *Add) Bounds() util.Bounds {
	return util.BoundsForArray(p.Args)
}

// EvalAt implementation for Term interface.
func (p *Add) EvalAt(k int, tr trace.Trace) fr.Element {
	// Evaluate first argument
	val := p.Args[0].EvalAt(k, tr)
	// Continue evaluating the rest
	for i := 1; i < len(p.Args); i++ {
		ith := p.Args[i].EvalAt(k, tr)
		val.Add(&val, &ith)
	}
	// Done
	return val
}

// Degree implementation for Term interface.
func (p *Add) Degree() uint {
	return maxDegreeOfTerms(p.Args)
}

// RequiredSelectors implementation for Term interface.
func (p *Add) RequiredSelectors() []uint {
	return requiredSelectorsOfTerms(p.Args)
}

func (p *Add) String() string {
	return stringOfTerms("+", p.Args)
}
