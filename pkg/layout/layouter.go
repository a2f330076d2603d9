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
package layout

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/consensys/go-plonkish/pkg/schema"
	"github.com/consensys/go-plonkish/pkg/trace"
)

// Layouter allocates regions of rows within a single witness trace.  Regions
// are laid out sequentially from row zero, in the order they are opened, so
// allocation is deterministic and no two regions ever overlap.
type Layouter struct {
	sch     *schema.Schema
	tr      *trace.ArrayTrace
	nextRow uint
}

// NewLayouter constructs a layouter over a fresh trace of 2^k rows, shaped by
// the given schema.
func NewLayouter(sch *schema.Schema, k uint) *Layouter {
	tr := trace.NewArrayTrace(uint(1)<<k, sch.AdviceColumns(), sch.Selectors(), sch.TableColumns())
	//
	return &Layouter{sch: sch, tr: tr}
}

// AssignRegion opens a fresh region and invokes the given assignment function
// against it.  Rows touched by the region are claimed from the trace in
// sequence; any error raised during assignment aborts the region and is
// propagated verbatim to the caller.
func (p *Layouter) AssignRegion(name string, fn func(*Region) error) error {
	region := &Region{layouter: p, name: name, start: p.nextRow}
	//
	if err := fn(region); err != nil {
		return err
	}
	// Claim rows used by this region
	p.nextRow += region.used
	//
	return nil
}

// AssignTable opens a table-assignment region against the trace's table
// columns.  Unlike ordinary regions, table rows are addressed absolutely,
// since a table is populated exactly once.
func (p *Layouter) AssignTable(name string, fn func(*Table) error) error {
	return fn(&Table{layouter: p, name: name})
}

// Trace returns the trace this layouter assigns into.
func (p *Layouter) Trace() *trace.ArrayTrace {
	return p.tr
}

// Table provides assignment access to the table columns of a trace.
type Table struct {
	layouter *Layouter
	name     string
}

// AssignCell places a fixed value at a given row of a table column.
func (p *Table) AssignCell(column schema.TableColumn, row uint, value fr.Element) error {
	if err := p.layouter.tr.Table(uint(column)).Assign(row, value); err != nil {
		return fmt.Errorf("table %q: %w", p.name, err)
	}
	//
	return nil
}
