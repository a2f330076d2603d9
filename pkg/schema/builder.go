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
	"slices"

	"github.com/consensys/go-plonkish/pkg/ir"
)

// Advice identifies an advice column allocated by a Builder.
type Advice uint

// Selector identifies a selector allocated by a Builder.
type Selector uint

// TableColumn identifies a lookup table column allocated by a Builder.
type TableColumn uint

// Builder accumulates the static topology of a circuit: its columns,
// selectors, gates and lookup relations.  It follows a build / freeze / use
// lifecycle: gadgets declare their constraints against the builder during
// circuit configuration, after which Finalize produces an immutable Schema.
// Any attempt to mutate a finalized builder panics, since this indicates a
// programming error in the enclosing circuit.
type Builder struct {
	advice    []string
	selectors []selectorInfo
	tables    []string
	gates     []Gate
	lookups   []Lookup
	finalized bool
}

// selectorInfo records whether a given selector may participate in lookup
// relations (a "complex" selector) or only in gates.
type selectorInfo struct {
	name    string
	complex bool
}

// NewBuilder constructs an empty constraint-system builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// AdviceColumn allocates a fresh advice column with a given name.
func (p *Builder) AdviceColumn(name string) Advice {
	p.checkMutable()
	p.advice = append(p.advice, name)
	//
	return Advice(len(p.advice) - 1)
}

// Selector allocates a fresh selector usable within gates only.
func (p *Builder) Selector() Selector {
	p.checkMutable()
	p.selectors = append(p.selectors, selectorInfo{p.freshSelectorName(), false})
	//
	return Selector(len(p.selectors) - 1)
}

// ComplexSelector allocates a fresh selector usable within both gates and
// lookup relations.
func (p *Builder) ComplexSelector() Selector {
	p.checkMutable()
	p.selectors = append(p.selectors, selectorInfo{p.freshSelectorName(), true})
	//
	return Selector(len(p.selectors) - 1)
}

// TableColumn allocates a fresh lookup table column with a given name.
func (p *Builder) TableColumn(name string) TableColumn {
	p.checkMutable()
	p.tables = append(p.tables, name)
	//
	return TableColumn(len(p.tables) - 1)
}

// CreateGate registers a named gate holding one or more constraints, each of
// which must vanish on every row where the given selector is active.
func (p *Builder) CreateGate(name string, selector Selector, constraints ...Constraint) {
	p.checkMutable()
	//
	if uint(selector) >= uint(len(p.selectors)) {
		panic(fmt.Sprintf("gate %q uses unallocated selector q%d", name, selector))
	} else if len(constraints) == 0 {
		panic(fmt.Sprintf("gate %q declares no constraints", name))
	}
	//
	p.gates = append(p.gates, Gate{name, selector, slices.Clone(constraints)})
}

// Lookup registers a named lookup relation between an input expression and a
// table column.  Every selector occurring within the input expression must
// have been allocated as a complex selector.
func (p *Builder) Lookup(name string, input ir.Term, table TableColumn) {
	p.checkMutable()
	//
	if uint(table) >= uint(len(p.tables)) {
		panic(fmt.Sprintf("lookup %q uses unallocated table column", name))
	}
	// Simple selectors are arbitrarily recombined by the backend, hence only
	// complex selectors may gate a lookup input.
	for _, sel := range input.RequiredSelectors() {
		if sel >= uint(len(p.selectors)) {
			panic(fmt.Sprintf("lookup %q uses unallocated selector q%d", name, sel))
		} else if !p.selectors[sel].complex {
			panic(fmt.Sprintf("lookup %q uses simple selector q%d", name, sel))
		}
	}
	//
	p.lookups = append(p.lookups, Lookup{name, input, table})
}

// Finalize freezes this builder, yielding the immutable schema against which
// witness assignment and verification proceed.
func (p *Builder) Finalize() *Schema {
	p.checkMutable()
	p.finalized = true
	//
	selectors := make([]string, len(p.selectors))
	for i, info := range p.selectors {
		selectors[i] = info.name
	}
	//
	return &Schema{
		advice:    slices.Clone(p.advice),
		selectors: selectors,
		tables:    slices.Clone(p.tables),
		gates:     slices.Clone(p.gates),
		lookups:   slices.Clone(p.lookups),
	}
}

func (p *Builder) checkMutable() {
	if p.finalized {
		panic("constraint system already finalized")
	}
}

func (p *Builder) freshSelectorName() string {
	return fmt.Sprintf("q%d", len(p.selectors))
}
