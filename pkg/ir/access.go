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

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/consensys/go-plonkish/pkg/trace"
	"github.com/consensys/go-plonkish/pkg/util"
)

// ColumnAccess represents reading the value held in a given advice column.
// Furthermore, the current row may be shifted up (or down) by a given amount.
// For example, when evaluating a constraint on row k=5, an access with shift 0
// reads the column at row 5 whilst an access with shift -1 reads it at row 4.
type ColumnAccess struct {
	// Column index being accessed.
	Column uint
	// Offset relative to the current row.
	Shift int
}

// NewColumnAccess constructs an expression representing the value of a given
// advice column at a given shift from the current row.
func NewColumnAccess(column uint, shift int) Term {
	return &ColumnAccess{Column: column, Shift: shift}
}

// Bounds implementation for Boundable interface.
func (p *ColumnAccess) Bounds() util.Bounds {
	if p.Shift >= 0 {
		// Positive shift
		return util.NewBounds(0, uint(p.Shift))
	}
	// Negative shift
	return util.NewBounds(uint(-p.Shift), 0)
}

// EvalAt implementation for Term interface.
func (p *ColumnAccess) EvalAt(k int, tr trace.Trace) fr.Element {
	return tr.Column(p.Column).Get(k + p.Shift)
}

// Degree implementation for Term interface.
func (p *ColumnAccess) Degree() uint {
	return 1
}

// RequiredSelectors implementation for Term interface.
func (p *ColumnAccess) RequiredSelectors() []uint {
	return nil
}

func (p *ColumnAccess) String() string {
	if p.Shift == 0 {
		return fmt.Sprintf("#%d", p.Column)
	}
	// Shifted
	return fmt.Sprintf("(shift #%d %d)", p.Column, p.Shift)
}

// SelectorAccess represents reading the value of a given selector on the
// current row, i.e. one when the selector is enabled there and zero otherwise.
type SelectorAccess struct {
	// Selector index being accessed.
	Selector uint
}

// NewSelectorAccess constructs an expression representing the value of a given
// selector on the current row.
func NewSelectorAccess(selector uint) Term {
	return &SelectorAccess{Selector: selector}
}

// Bounds implementation for Boundable interface.
func (p *SelectorAccess) Bounds() util.Bounds {
	return util.EMPTY_BOUND
}

// EvalAt implementation for Term interface.
func (p *SelectorAccess) EvalAt(k int, tr trace.Trace) fr.Element {
	if tr.Selector(p.Selector).IsEnabled(uint(k)) {
		return fr.One()
	}
	// Disabled
	return fr.Element{}
}

// Degree implementation for Term interface.
func (p *SelectorAccess) Degree() uint {
	return 1
}

// RequiredSelectors implementation for Term interface.
func (p *SelectorAccess) RequiredSelectors() []uint {
	return []uint{p.Selector}
}

func (p *SelectorAccess) String() string {
	return fmt.Sprintf("q%d", p.Selector)
}
