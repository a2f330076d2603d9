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

// PolyCheckConfig is the configuration of the polynomial range-check gadget.
// It owns one selector gating a single "range" gate over the caller's value
// column.
type PolyCheckConfig struct {
	// Value is the advice column holding the values being checked.
	Value schema.Advice
	// Q gates the range constraint.
	Q schema.Selector
	// Number of elements in the range.
	rng uint
}

// ConfigurePolyCheck registers a gate constraining values of the given advice
// column to [0, rng) wherever its selector is enabled.  The gate holds the
// single constraint
//
//	value * (1 - value) * (2 - value) * ... * (rng-1 - value) == 0
//
// whose zero set is exactly the canonical points 0 .. rng-1: the initial
// factor covers zero, and each subsequent factor covers one nonzero point.
// The constraint's degree equals rng, which bounds the practical size of rng
// by the maximum constraint degree of the proving backend.
func ConfigurePolyCheck(builder *schema.Builder, value schema.Advice, rng uint) PolyCheckConfig {
	if rng == 0 {
		panic("empty range check encountered")
	}
	//
	q := builder.Selector()
	builder.CreateGate("range", q, schema.Constraint{
		Name: "range check",
		Expr: rangeExpr(rng, ir.NewColumnAccess(uint(value), 0)),
	})
	//
	return PolyCheckConfig{Value: value, Q: q, rng: rng}
}

// Range returns the number of elements accepted by this gadget.
func (p PolyCheckConfig) Range() uint {
	return p.rng
}

// Assign places one value into a fresh single-row region with the range gate
// enabled, returning the wrapped cell.  Assignment never inspects the value:
// an out-of-range value assigns successfully and is only caught when the
// constraint system is checked.
func (p PolyCheckConfig) Assign(layouter *layout.Layouter, value fr.Element) (RangeConstrained, error) {
	cells, err := p.AssignMany(layouter, []fr.Element{value})
	if err != nil {
		return RangeConstrained{}, err
	}
	//
	return cells[0], nil
}

// AssignMany places an ordered sequence of values into successive rows of one
// region, enabling the range gate once per row.
func (p PolyCheckConfig) AssignMany(layouter *layout.Layouter, values []fr.Element) ([]RangeConstrained, error) {
	cells := make([]RangeConstrained, len(values))
	//
	err := layouter.AssignRegion("assign range values", func(region *layout.Region) error {
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

// rangeExpr folds the range product over a given value expression, starting
// from the value itself.
func rangeExpr(rng uint, value ir.Term) ir.Term {
	expr := value
	//
	for i := uint(1); i < rng; i++ {
		expr = ir.Product(expr, ir.Subtract(ir.Const64(uint64(i)), value))
	}
	//
	return expr
}
