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
package rangecheck

import (
	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/consensys/go-plonkish/pkg/ir"
	"github.com/consensys/go-plonkish/pkg/layout"
	"github.com/consensys/go-plonkish/pkg/schema"
)

// LookupCheckConfig is the configuration of the lookup range-check gadget.
// It owns a complex selector, a range table, and one lookup relation binding
// the caller's value column to that table.
type LookupCheckConfig struct {
	// Value is the advice column holding the values being checked.
	Value schema.Advice
	// Q gates the lookup input.
	Q schema.Selector
	// Table holds the canonical range contents.
	Table RangeTableConfig
}

// ConfigureLookupCheck registers a lookup relation constraining values of the
// given advice column to [0, rng) wherever its selector is enabled.  The
// lookup input is the product q * value: on rows where q is disabled the
// input degenerates to zero, which the table always contains, so inactive
// rows are satisfied without any further gating.  The input's degree is two
// regardless of rng, making this the right trade-off for large ranges.
func ConfigureLookupCheck(builder *schema.Builder, value schema.Advice, rng uint) LookupCheckConfig {
	q := builder.ComplexSelector()
	table := ConfigureRangeTable(builder, rng)
	//
	builder.Lookup("range lookup",
		ir.Product(ir.NewSelectorAccess(uint(q)), ir.NewColumnAccess(uint(value), 0)),
		table.Value)
	//
	return LookupCheckConfig{Value: value, Q: q, Table: table}
}

// AssignLookup places one value into a fresh single-row region with the
// lookup selector enabled, returning the wrapped cell.  The range table must
// be loaded (once) before the trace is checked; each assigned value gets its
// own region, whilst the table is shared.
func (p LookupCheckConfig) AssignLookup(layouter *layout.Layouter, value fr.Element) (RangeConstrained, error) {
	cells, err := p.AssignLookupMany(layouter, []fr.Element{value})
	if err != nil {
		return RangeConstrained{}, err
	}
	//
	return cells[0], nil
}

// AssignLookupMany places an ordered sequence of values into successive rows
// of one region, enabling the lookup selector once per row.
func (p LookupCheckConfig) AssignLookupMany(layouter *layout.Layouter, values []fr.Element) ([]RangeConstrained, error) {
	cells := make([]RangeConstrained, len(values))
	//
	err := layouter.AssignRegion("assign lookup values", func(region *layout.Region) error {
		for i, value := range values {
			offset := uint(i)
			//
			if err := region.EnableSelector(p.Q, offset); err != nil {
				return err
			}
			//
			cell, err := region.AssignAdvice(p.Value, offset, value)
			if err != nil {
				return err
			}
			//
			cells[i] = RangeConstrained{cell}
		}
		//
		return nil
	})
	//
	if err != nil {
		return nil, err
	}
	//
	return cells, nil
}
