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
	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/consensys/go-plonkish/pkg/trace"
	"github.com/consensys/go-plonkish/pkg/util"
)

// Constant represents a constant value within an expression.
type Constant struct{ Value fr.Element }

// Const constructs an expression representing a given constant.
func Const(val fr.Element) Term {
	return &Constant{Value: val}
}

// Const64 constructs an expression representing a given constant, using the
// canonical injection of a uint64 into the field.
func Const64(val uint64) Term {
	return &Constant{Value: fr.NewElement(val)}
}

// Bounds implementation for Boundable interface.
func (p *Constant) Bounds() util.Bounds {
	return util.EMPTY_BOUND
}

// EvalAt implementation for Term interface.
func (p *Constant) EvalAt(int, trace.Trace) fr.Element {
	return p.Value
}

// Degree implementation for Term interface.
func (p *Constant) Degree() uint {
	return 0
}

// RequiredSelectors implementation for Term interface.
func (p *Constant) RequiredSelectors() []uint {
	return nil
}

func (p *Constant) String() string {
	return p.Value.String()
}

// isZero checks whether a given term is the constant zero.
func isZero(term Term) bool {
	c, ok := term.(*Constant)
	return ok && c.Value.IsZero()
}

// isOne checks whether a given term is the constant one.
func isOne(term Term) bool {
	c, ok := term.(*Constant)
	return ok && c.Value.IsOne()
}
