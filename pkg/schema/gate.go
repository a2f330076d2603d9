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
package schema

import (
	"fmt"
	"strings"

	"github.com/consensys/go-plonkish/pkg/ir"
	"github.com/consensys/go-plonkish/pkg/trace"
	"github.com/consensys/go-plonkish/pkg/util"
)

// Constraint is a single named polynomial expression within a gate, required
// to evaluate to zero whenever the gate's selector is active.
type Constraint struct {
	// Name of this constraint, for error reporting.
	Name string
	// Expression which must vanish.
	Expr ir.Term
}

// Gate is a named collection of constraints gated by a common selector.  The
// selector is held apart from the constraint expressions themselves, so the
// degree of a constraint reflects the declared polynomial only.
type Gate struct {
	name        string
	selector    Selector
	constraints []Constraint
}

// Name returns the handle of this gate.
func (p *Gate) Name() string {
	return p.name
}

// Selector returns the selector gating this gate.
func (p *Gate) Selector() Selector {
	return p.selector
}

// Constraints returns the constraints making up this gate.
func (p *Gate) Constraints() []Constraint {
	return p.constraints
}

// Accepts checks whether every constraint of this gate vanishes at every
// active row of a trace, returning a failure for each row where one does not.
func (p *Gate) Accepts(tr trace.Trace) []Failure {
	var failures []Failure
	// Determine well-definedness bounds for this gate
	bounds := util.BoundsForArray(boundables(p.constraints))
	// Sanity check enough rows
	if bounds.Start+bounds.End >= tr.Height() {
		return nil
	}
	//
	selector := tr.Selector(uint(p.selector))
	// Check all in-bounds active rows
	for k := bounds.Start; k < tr.Height()-bounds.End; k++ {
		if !selector.IsEnabled(k) {
			continue
		}
		//
		for _, c := range p.constraints {
			if val := c.Expr.EvalAt(int(k), tr); !val.IsZero() {
				failures = append(failures, &GateFailure{p.name, c.Name, k, val})
			}
		}
	}
	//
	return failures
}

func (p *Gate) String() string {
	var builder strings.Builder
	//
	fmt.Fprintf(&builder, "(gate %s q%d", p.name, p.selector)
	//
	for _, c := range p.constraints {
		fmt.Fprintf(&builder, " (%s %s)", c.Name, c.Expr.String())
	}
	//
	builder.WriteString(")")
	//
	return builder.String()
}

func boundables(constraints []Constraint) []util.Boundable {
	terms := make([]util.Boundable, len(constraints))
	//
	for i, c := range constraints {
		terms[i] = c.Expr
	}
	//
	return terms
}
