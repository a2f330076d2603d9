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
	"fmt"
	"slices"
	"strings"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/consensys/go-plonkish/pkg/trace"
	"github.com/consensys/go-plonkish/pkg/util"
)

// Term represents a polynomial expression over the columns and selectors of a
// constraint system, evaluated row by row against a trace.  Terms are
// immutable once constructed; a constraint system freely shares them between
// gates and lookups.
type Term interface {
	util.Boundable
	fmt.Stringer

	// EvalAt evaluates this term at a given row of a trace.
	EvalAt(k int, tr trace.Trace) fr.Element
	// Degree returns the degree of this term, viewing every column and
	// selector access as a variable of degree one.
	Degree() uint
	// RequiredSelectors returns the (sorted) indices of all selectors
	// accessed within this term.
	RequiredSelectors() []uint
}

// stringOfTerms generates a lisp-style rendering of an n-ary operator applied
// to the given arguments.
func stringOfTerms(op string, args []Term) string {
	var builder strings.Builder
	//
	builder.WriteString("(")
	builder.WriteString(op)
	//
	for _, arg := range args {
		builder.WriteString(" ")
		builder.WriteString(arg.String())
	}
	//
	builder.WriteString(")")
	//
	return builder.String()
}

// requiredSelectorsOfTerms unions the selectors accessed by zero or more terms.
func requiredSelectorsOfTerms(args []Term) []uint {
	var required []uint
	//
	for _, arg := range args {
		for _, sel := range arg.RequiredSelectors() {
			if !slices.Contains(required, sel) {
				required = append(required, sel)
			}
		}
	}
	//
	slices.Sort(required)
	//
	return required
}

// maxDegreeOfTerms returns the largest degree of any argument, as needed for
// determining the degree of sums and subtractions.
func maxDegreeOfTerms(args []Term) uint {
	var degree uint
	//
	for _, arg := range args {
		degree = max(degree, arg.Degree())
	}
	//
	return degree
}
