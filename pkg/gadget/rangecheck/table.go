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
	"github.com/consensys/go-plonkish/pkg/layout"
	"github.com/consensys/go-plonkish/pkg/schema"
)

// RangeTableConfig materializes a table column holding the canonical values
// 0 .. rng-1, one per row, for lookup gadgets to check membership against.
type RangeTableConfig struct {
	// Value is the table column holding the range contents.
	Value schema.TableColumn
	// Number of elements in the range.
	rng uint
	// Set once the table has been populated.  Shared between copies of this
	// config so that loading stays idempotent however the config travels.
	loaded *bool
}

// ConfigureRangeTable allocates the table column for a range of rng elements.
func ConfigureRangeTable(builder *schema.Builder, rng uint) RangeTableConfig {
	if rng == 0 {
		panic("empty range table encountered")
	}
	//
	return RangeTableConfig{
		Value:  builder.TableColumn("range table"),
		rng:    rng,
		loaded: new(bool),
	}
}

// Range returns the number of elements held by this table.
func (p RangeTableConfig) Range() uint {
	return p.rng
}

// Load populates the table with the canonical injections of 0 .. rng-1 into
// consecutive rows.  Loading is idempotent: second and subsequent calls are
// no-ops, so circuits composing several gadgets over one table need not
// coordinate who loads it.
func (p RangeTableConfig) Load(layouter *layout.Layouter) error {
	if *p.loaded {
		return nil
	}
	//
	err := layouter.AssignTable("load range table", func(table *layout.Table) error {
		for i := uint(0); i < p.rng; i++ {
			if err := table.AssignCell(p.Value, i, fr.NewElement(uint64(i))); err != nil {
				return err
			}
		}
		//
		return nil
	})
	//
	if err != nil {
		return err
	}
	//
	*p.loaded = true
	//
	return nil
}
