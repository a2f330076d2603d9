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

// Trace describes the witness assignment for one proof instance: a set of
// advice columns, selector columns and table columns, all sharing the same
// height.  Columns are referred to by index, as allocated by the enclosing
// constraint system.
type Trace interface {
	// Column returns a given advice column by its index.
	Column(index uint) *Column
	// Selector returns a given selector column by its index.
	Selector(index uint) *SelectorColumn
	// Table returns a given table column by its index.
	Table(index uint) *TableColumn
	// Height returns the number of rows in this trace.
	Height() uint
}

// ArrayTrace is a trace implementation backed by in-memory arrays.
type ArrayTrace struct {
	height    uint
	columns   []Column
	selectors []SelectorColumn
	tables    []TableColumn
}

// NewArrayTrace constructs a trace of the given height, with one (zeroed)
// advice column per advice name, one (cleared) selector per selector name and
// one (empty) table column per table name.
func NewArrayTrace(height uint, advice []string, selectors []string, tables []string) *ArrayTrace {
	p := &ArrayTrace{height: height}
	//
	for _, name := range advice {
		p.columns = append(p.columns, NewColumn(name, height))
	}
	//
	for _, name := range selectors {
		p.selectors = append(p.selectors, NewSelectorColumn(name, height))
	}
	//
	for _, name := range tables {
		p.tables = append(p.tables, NewTableColumn(name, height))
	}
	//
	return p
}

// Column returns a given advice column by its index.
func (p *ArrayTrace) Column(index uint) *Column {
	return &p.columns[index]
}

// Selector returns a given selector column by its index.
func (p *ArrayTrace) Selector(index uint) *SelectorColumn {
	return &p.selectors[index]
}

// Table returns a given table column by its index.
func (p *ArrayTrace) Table(index uint) *TableColumn {
	return &p.tables[index]
}

// Height returns the number of rows in this trace.
func (p *ArrayTrace) Height() uint {
	return p.height
}
