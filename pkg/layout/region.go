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
)

// Region is a window of consecutive rows claimed from the trace by one
// AssignRegion call.  All offsets are relative to the region's first row.
type Region struct {
	layouter *Layouter
	name     string
	start    uint
	used     uint
}

// EnableSelector activates a given selector at a given offset within this
// region.
func (p *Region) EnableSelector(selector schema.Selector, offset uint) error {
	row, err := p.resolve(offset)
	if err != nil {
		return err
	}
	//
	p.layouter.tr.Selector(uint(selector)).Enable(row)
	//
	return nil
}

// AssignAdvice places a witness value into an advice column at a given offset
// within this region, returning a handle to the assigned cell.
func (p *Region) AssignAdvice(column schema.Advice, offset uint, value fr.Element) (AssignedCell, error) {
	row, err := p.resolve(offset)
	if err != nil {
		return AssignedCell{}, err
	}
	//
	p.layouter.tr.Column(uint(column)).Set(int(row), value)
	//
	return AssignedCell{column, row}, nil
}

// resolve maps a region-relative offset to an absolute row, claiming the row
// for this region and failing if the trace has no such row.
func (p *Region) resolve(offset uint) (uint, error) {
	row := p.start + offset
	//
	if row >= p.layouter.tr.Height() {
		return 0, fmt.Errorf("region %q: row %d exceeds circuit capacity (%d rows)",
			p.name, row, p.layouter.tr.Height())
	}
	//
	p.used = max(p.used, offset+1)
	//
	return row, nil
}
