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
	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/consensys/go-plonkish/pkg/trace"
	"github.com/consensys/go-plonkish/pkg/util"
)

// Sub represents the subtraction of one or more expressions from the first.
type Sub struct{ Args []Term }

// Subtract returns the subtraction of zero or more expressions from a given
// expression.
func Subtract(terms ...Term) Term {
	if len(terms) == 0 {
		panic("subtraction of zero expressions")
	} else if len(terms) == 1 {
		return terms[0]
	}
	//
	return &Sub{terms}
}

// Bounds implementation for Boundable interface.
func (p *Sub) Bounds() util.Bounds {
	return util.BoundsForArray(p.Args)
}

// EvalAt implementation for Term interface.
func (p *Sub) EvalAt(k int, tr trace.Trace) fr.Element {
	// Evaluate first argument
	val := p.Args[0].EvalAt(k, tr)
	// Subtract the rest
	for i := 1; i < len(p.Args); i++ {
		ith := p.Args[i].EvalAt(k, tr)
		val.Sub(&val, &ith)
	}
	// Done
	return val
}

// Degree implementation for Term interface.
func (p *Sub) Degree() uint {
	return maxDegreeOfTerms(p.Args)
}

// RequiredSelectors implementation for Term interface.
func (p *Sub) RequiredSelectors() []uint {
	return requiredSelectorsOfTerms(p.Args)
}

func (p *Sub) String() string {
	return stringOfTerms("-", p.Args)
}
