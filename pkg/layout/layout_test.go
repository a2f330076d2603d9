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
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/consensys/go-plonkish/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestSchema builds a minimal schema with one advice column, one selector
// and one table column.
func newTestSchema() (*schema.Schema, schema.Advice, schema.Selector, schema.TableColumn) {
	builder := schema.NewBuilder()
	x := builder.AdviceColumn("x")
	q := builder.ComplexSelector()
	table := builder.TableColumn("t")
	//
	return builder.Finalize(), x, q, table
}

func TestRegionsAllocateSequentially(t *testing.T) {
	sch, x, _, _ := newTestSchema()
	layouter := NewLayouter(sch, 3)
	//
	var first, second, third AssignedCell
	// Single-row region at row 0
	require.NoError(t, layouter.AssignRegion("first", func(region *Region) error {
		var err error
		first, err = region.AssignAdvice(x, 0, fr.NewElement(1))
		return err
	}))
	// Two-row region at rows 1-2
	require.NoError(t, layouter.AssignRegion("second", func(region *Region) error {
		var err error
		if second, err = region.AssignAdvice(x, 0, fr.NewElement(2)); err != nil {
			return err
		}
		third, err = region.AssignAdvice(x, 1, fr.NewElement(3))
		return err
	}))
	//
	assert.Equal(t, uint(0), first.Row())
	assert.Equal(t, uint(1), second.Row())
	assert.Equal(t, uint(2), third.Row())
	assert.Equal(t, x, first.Column())
	// Values land in the trace at the allocated rows
	assert.Equal(t, fr.NewElement(3), layouter.Trace().Column(uint(x)).Get(2))
}

func TestEmptyRegionClaimsNoRows(t *testing.T) {
	sch, x, _, _ := newTestSchema()
	layouter := NewLayouter(sch, 1)
	//
	require.NoError(t, layouter.AssignRegion("empty", func(*Region) error { return nil }))
	//
	var cell AssignedCell
	require.NoError(t, layouter.AssignRegion("next", func(region *Region) error {
		var err error
		cell, err = region.AssignAdvice(x, 0, fr.NewElement(1))
		return err
	}))
	//
	assert.Equal(t, uint(0), cell.Row())
}

func TestRegionCapacityExceeded(t *testing.T) {
	sch, x, q, _ := newTestSchema()
	// Two rows only
	layouter := NewLayouter(sch, 1)
	//
	require.NoError(t, layouter.AssignRegion("first", func(region *Region) error {
		_, err := region.AssignAdvice(x, 0, fr.NewElement(1))
		return err
	}))
	require.NoError(t, layouter.AssignRegion("second", func(region *Region) error {
		return region.EnableSelector(q, 0)
	}))
	// Third region falls off the end of the trace
	err := layouter.AssignRegion("third", func(region *Region) error {
		_, err := region.AssignAdvice(x, 0, fr.NewElement(3))
		return err
	})
	assert.Error(t, err)
}

func TestEnableSelector(t *testing.T) {
	sch, _, q, _ := newTestSchema()
	layouter := NewLayouter(sch, 2)
	//
	require.NoError(t, layouter.AssignRegion("region", func(region *Region) error {
		return region.EnableSelector(q, 1)
	}))
	//
	assert.False(t, layouter.Trace().Selector(uint(q)).IsEnabled(0))
	assert.True(t, layouter.Trace().Selector(uint(q)).IsEnabled(1))
}

func TestAssignTable(t *testing.T) {
	sch, _, _, table := newTestSchema()
	layouter := NewLayouter(sch, 2)
	//
	require.NoError(t, layouter.AssignTable("table", func(tbl *Table) error {
		for i := uint(0); i < 4; i++ {
			if err := tbl.AssignCell(table, i, fr.NewElement(uint64(i))); err != nil {
				return err
			}
		}
		return nil
	}))
	//
	assert.Equal(t, uint(4), layouter.Trace().Table(uint(table)).Rows())
	// Table capacity matches the trace height
	err := layouter.AssignTable("overflow", func(tbl *Table) error {
		return tbl.AssignCell(table, 4, fr.NewElement(4))
	})
	assert.Error(t, err)
}
