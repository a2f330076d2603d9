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
	"github.com/consensys/go-plonkish/pkg/schema"
)

// AssignedCell is the handle returned by an advice assignment.  It identifies
// the cell's position only: ownership of the assigned value transfers to the
// trace, and nothing outside the proof system can read it back through this
// handle.
type AssignedCell struct {
	column schema.Advice
	row    uint
}

// Column returns the advice column this cell was assigned in.
func (p AssignedCell) Column() schema.Advice {
	return p.column
}

// Row returns the absolute row this cell was assigned at.
func (p AssignedCell) Row() uint {
	return p.row
}
