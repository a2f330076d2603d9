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

// Package rangecheck provides two gadgets constraining a private witness
// value to the interval [0, range): one encoding the property as a single
// polynomial identity whose degree grows with the range, and one encoding it
// as membership of a precomputed lookup table.  The former needs no auxiliary
// columns and suits small ranges; the latter pays a one-off table of `range`
// rows in exchange for a per-check cost independent of the range.
package rangecheck

import (
	"github.com/consensys/go-plonkish/pkg/layout"
)

// RangeConstrained wraps a cell whose value has been constrained to lie
// within the gadget's range.  It is a capability token: it deliberately
// exposes no accessor for the underlying value, so holding one proves the
// value passed through a range check without granting access to it.
type RangeConstrained struct {
	cell layout.AssignedCell
}

// Cell returns the position of the range-checked cell.
func (p RangeConstrained) Cell() layout.AssignedCell {
	return p.cell
}
