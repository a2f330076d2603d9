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
	"github.com/consensys/go-plonkish/pkg/trace"
)

// Schema is the frozen topology of a circuit, as produced by finalizing a
// Builder.  Once constructed, a schema is immutable for the lifetime of the
// circuit: witness assignment writes row contents only, never topology.
type Schema struct {
	advice    []string
	selectors []string
	tables    []string
	gates     []Gate
	lookups   []Lookup
}

// AdviceColumns returns the names of all advice columns, in allocation order.
func (p *Schema) AdviceColumns() []string {
	return p.advice
}

// Selectors returns the names of all selectors, in allocation order.
func (p *Schema) Selectors() []string {
	return p.selectors
}

// TableColumns returns the names of all table columns, in allocation order.
func (p *Schema) TableColumns() []string {
	return p.tables
}

// Gates returns all gates registered with this schema.
func (p *Schema) Gates() []Gate {
	return p.gates
}

// Lookups returns all lookup relations registered with this schema.
func (p *Schema) Lookups() []Lookup {
	return p.lookups
}

// Accepts checks whether a trace satisfies every gate and lookup of this
// schema, returning all failures encountered (or none if the trace is
// accepted).
func (p *Schema) Accepts(tr trace.Trace) []Failure {
	var failures []Failure
	//
	for i := range p.gates {
		failures = append(failures, p.gates[i].Accepts(tr)...)
	}
	//
	for i := range p.lookups {
		failures = append(failures, p.lookups[i].Accepts(tr)...)
	}
	//
	return failures
}
