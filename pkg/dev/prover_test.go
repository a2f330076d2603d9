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
package dev

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/consensys/go-plonkish/pkg/ir"
	"github.com/consensys/go-plonkish/pkg/layout"
	"github.com/consensys/go-plonkish/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bitCircuit constrains its witness to be a bit via x * (x - 1) == 0.
type bitCircuit struct {
	value fr.Element
	//
	x schema.Advice
	q schema.Selector
}

// Configure implementation for the Circuit interface.
func (p *bitCircuit) Configure(builder *schema.Builder) {
	p.x = builder.AdviceColumn("x")
	p.q = builder.Selector()
	access := ir.NewColumnAccess(uint(p.x), 0)
	//
	builder.CreateGate("bit", p.q, schema.Constraint{
		Name: "bit check",
		Expr: ir.Product(access, ir.Subtract(access, ir.Const64(1))),
	})
}

// Synthesize implementation for the Circuit interface.
func (p *bitCircuit) Synthesize(layouter *layout.Layouter) error {
	return layouter.AssignRegion("assign bit", func(region *layout.Region) error {
		if err := region.EnableSelector(p.q, 0); err != nil {
			return err
		}
		//
		_, err := region.AssignAdvice(p.x, 0, p.value)
		//
		return err
	})
}

func TestMockProverSatisfied(t *testing.T) {
	for _, bit := range []uint64{0, 1} {
		prover, err := Run(2, &bitCircuit{value: fr.NewElement(bit)})
		require.NoError(t, err)
		//
		assert.Empty(t, prover.Verify())
		assert.NoError(t, prover.AssertSatisfied())
	}
}

func TestMockProverUnsatisfied(t *testing.T) {
	prover, err := Run(2, &bitCircuit{value: fr.NewElement(2)})
	require.NoError(t, err)
	// Out-of-range witnesses assign fine, but verification catches them
	assert.NotEmpty(t, prover.Verify())
	assert.Error(t, prover.AssertSatisfied())
}

func TestMockProverExposesSchema(t *testing.T) {
	prover, err := Run(2, &bitCircuit{})
	require.NoError(t, err)
	//
	require.Len(t, prover.Schema().Gates(), 1)
	assert.Equal(t, "bit", prover.Schema().Gates()[0].Name())
	assert.Equal(t, uint(4), prover.Trace().Height())
}
