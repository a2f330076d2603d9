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

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/consensys/go-plonkish/pkg/ir"
	"github.com/consensys/go-plonkish/pkg/trace"
)

// Lookup is a named relation requiring that, on every row of the trace, an
// input expression evaluates to some value present in a table column.  Rows on
// which the gating (complex) selector is disabled degenerate the input to
// zero, which is expected to be present in the table.
type Lookup struct {
	name  string
	input ir.Term
	table TableColumn
}

// Name returns the handle of this lookup.
func (p *Lookup) Name() string {
	return p.name
}

// Input returns the input expression of this lookup.
func (p *Lookup) Input() ir.Term {
	return p.input
}

// Table returns the table column this lookup reads from.
func (p *Lookup) Table() TableColumn {
	return p.table
}

// Accepts checks whether the input expression resolves to a table value on
// every row of a trace, returning a failure for each row where it does not.
func (p *Lookup) Accepts(tr trace.Trace) []Failure {
	var (
		failures []Failure
		table    = tr.Table(uint(p.table))
		contents = make(map[fr.Element]bool, table.Rows())
	)
	// Materialise table contents for membership testing
	for _, value := range table.Contents() {
		contents[value] = true
	}
	// Check every row, including inactive ones
	for k := uint(0); k < tr.Height(); k++ {
		if value := p.input.EvalAt(int(k), tr); !contents[value] {
			failures = append(failures, &LookupFailure{p.name, k, value})
		}
	}
	//
	return failures
}

func (p *Lookup) String() string {
	return fmt.Sprintf("(lookup %s %s t%d)", p.name, p.input.String(), p.table)
}
