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
package schema

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
)

// Failure provides structural information about a failing constraint.  An
// unsatisfied constraint is a property of the witness, not an execution error,
// hence failures are reported as values rather than returned as errors.
type Failure interface {
	// Message provides a suitable error message.
	Message() string
}

// GateFailure indicates a gate constraint which did not vanish at an active
// row.
type GateFailure struct {
	// Handle of the failing gate.
	Gate string
	// Name of the failing constraint within the gate.
	Constraint string
	// Row on which the constraint failed.
	Row uint
	// Residual (non-zero) value the constraint evaluated to.
	Residual fr.Element
}

// Message provides a suitable error message.
func (p *GateFailure) Message() string {
	return fmt.Sprintf("gate \"%s/%s\" does not vanish (row %d, residual %s)",
		p.Gate, p.Constraint, p.Row, p.Residual.String())
}

func (p *GateFailure) String() string {
	return p.Message()
}

// LookupFailure indicates a lookup input which matched no row of its table
// column.
type LookupFailure struct {
	// Handle of the failing lookup.
	Handle string
	// Row on which the lookup failed.
	Row uint
	// Input value which was missing from the table.
	Missing fr.Element
}

// Message provides a suitable error message.
func (p *LookupFailure) Message() string {
	return fmt.Sprintf("lookup \"%s\" failed (row %d, value %s not in table)",
		p.Handle, p.Row, p.Missing.String())
}

func (p *LookupFailure) String() string {
	return p.Message()
}
