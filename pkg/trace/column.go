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
package trace

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
)

// Column is a named sequence of witness cells of a fixed height.  Cells which
// have not been explicitly assigned hold the additive identity of the field.
type Column struct {
	name string
	data []fr.Element
}

// NewColumn constructs an empty (i.e. all zero) column of the given height.
func NewColumn(name string, height uint) Column {
	return Column{name, make([]fr.Element, height)}
}

// Name returns the name of this column.
func (p *Column) Name() string {
	return p.name
}

// Height returns the number of rows in this column.
func (p *Column) Height() uint {
	return uint(len(p.data))
}

// Get returns the value held at a given row of this column.  Accessing a row
// outside the column is a programming error, hence this panics rather than
// returning an error.
func (p *Column) Get(row int) fr.Element {
	if row < 0 || row >= len(p.data) {
		panic(fmt.Sprintf("column %q access out-of-bounds (row %d)", p.name, row))
	}
	//
	return p.data[row]
}

// Set overwrites the value held at a given row of this column.
func (p *Column) Set(row int, value fr.Element) {
	if row < 0 || row >= len(p.data) {
		panic(fmt.Sprintf("column %q access out-of-bounds (row %d)", p.name, row))
	}
	//
	p.data[row] = value
}

// SelectorColumn is a boolean-valued column, recording at which rows a given
// gate (or lookup) is active.  Rows are disabled unless explicitly enabled.
type SelectorColumn struct {
	name string
	rows *bitset.BitSet
}

// NewSelectorColumn constructs a selector column with no rows enabled.
func NewSelectorColumn(name string, height uint) SelectorColumn {
	return SelectorColumn{name, bitset.New(height)}
}

// Name returns the name of this selector column.
func (p *SelectorColumn) Name() string {
	return p.name
}

// Enable activates this selector at a given row.
func (p *SelectorColumn) Enable(row uint) {
	p.rows.Set(row)
}

// IsEnabled determines whether this selector is active at a given row.
func (p *SelectorColumn) IsEnabled(row uint) bool {
	return p.rows.Test(row)
}

// Count returns the number of rows at which this selector is enabled.
func (p *SelectorColumn) Count() uint {
	return p.rows.Count()
}

// TableColumn is a named column of fixed (non-witness) values, populated once
// at load time and thereafter used as the target of lookup relations.  Unlike
// advice columns, rows of a table column are tracked individually so that
// unassigned rows can be distinguished from rows holding zero.
type TableColumn struct {
	name     string
	data     []fr.Element
	assigned *bitset.BitSet
}

// NewTableColumn constructs an empty table column of the given capacity.
func NewTableColumn(name string, height uint) TableColumn {
	return TableColumn{name, make([]fr.Element, height), bitset.New(height)}
}

// Name returns the name of this table column.
func (p *TableColumn) Name() string {
	return p.name
}

// Assign places a fixed value at a given row of this table column, returning
// an error if the row lies outside the table's capacity.
func (p *TableColumn) Assign(row uint, value fr.Element) error {
	if row >= uint(len(p.data)) {
		return fmt.Errorf("table column %q exceeded (row %d, capacity %d)", p.name, row, len(p.data))
	}
	//
	p.data[row] = value
	p.assigned.Set(row)
	//
	return nil
}

// Get returns the value assigned at a given row, along with a flag indicating
// whether that row has been assigned at all.
func (p *TableColumn) Get(row uint) (fr.Element, bool) {
	if row >= uint(len(p.data)) {
		return fr.Element{}, false
	}
	//
	return p.data[row], p.assigned.Test(row)
}

// Rows returns the number of assigned rows in this table column.
func (p *TableColumn) Rows() uint {
	return p.assigned.Count()
}

// Contents returns the assigned values of this table column, in row order.
func (p *TableColumn) Contents() []fr.Element {
	values := make([]fr.Element, 0, p.assigned.Count())
	//
	for i, ok := p.assigned.NextSet(0); ok; i, ok = p.assigned.NextSet(i + 1) {
		values = append(values, p.data[i])
	}
	//
	return values
}
