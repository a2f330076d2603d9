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
	"fmt"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/consensys/go-plonkish/pkg/dev"
	"github.com/consensys/go-plonkish/pkg/ir"
	"github.com/consensys/go-plonkish/pkg/layout"
	"github.com/consensys/go-plonkish/pkg/schema"
	"github.com/consensys/go-plonkish/pkg/trace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// polyCircuit checks its witness values through the polynomial gadget, either
// one region per value (as the single-value entry point behaves) or batched
// into successive rows of one region.
type polyCircuit struct {
	rng    uint
	values []fr.Element
	batch  bool
	//
	cfg PolyCheckConfig
}

// Configure implementation for the dev.Circuit interface.
func (p *polyCircuit) Configure(builder *schema.Builder) {
	value := builder.AdviceColumn("value")
	p.cfg = ConfigurePolyCheck(builder, value, p.rng)
}

// Synthesize implementation for the dev.Circuit interface.
func (p *polyCircuit) Synthesize(layouter *layout.Layouter) error {
	if p.batch {
		_, err := p.cfg.AssignMany(layouter, p.values)
		return err
	}
	//
	for _, value := range p.values {
		if _, err := p.cfg.Assign(layouter, value); err != nil {
			return err
		}
	}
	//
	return nil
}

func TestPolyCheckComplete(t *testing.T) {
	const rng = 8
	// Every canonical value of the range must be accepted
	for i := uint64(0); i < rng; i++ {
		t.Run(fmt.Sprintf("value=%d", i), func(t *testing.T) {
			circuit := &polyCircuit{rng: rng, values: []fr.Element{fr.NewElement(i)}}
			//
			prover, err := dev.Run(4, circuit)
			require.NoError(t, err)
			assert.NoError(t, prover.AssertSatisfied())
		})
	}
}

func TestPolyCheckSound(t *testing.T) {
	const rng = 8
	// The first value beyond the range, and one far beyond it
	for _, i := range []uint64{rng, 1000} {
		t.Run(fmt.Sprintf("value=%d", i), func(t *testing.T) {
			circuit := &polyCircuit{rng: rng, values: []fr.Element{fr.NewElement(i)}}
			//
			prover, err := dev.Run(4, circuit)
			require.NoError(t, err)
			//
			failures := prover.Verify()
			require.Len(t, failures, 1)
			//
			failure, ok := failures[0].(*schema.GateFailure)
			require.True(t, ok)
			assert.Equal(t, "range", failure.Gate)
			assert.Equal(t, uint(0), failure.Row)
			assert.False(t, failure.Residual.IsZero())
		})
	}
}

func TestPolyCheckBatch(t *testing.T) {
	values := make([]fr.Element, 8)
	for i := range values {
		values[i] = fr.NewElement(uint64(i))
	}
	//
	circuit := &polyCircuit{rng: 8, values: values, batch: true}
	prover, err := dev.Run(4, circuit)
	require.NoError(t, err)
	assert.NoError(t, prover.AssertSatisfied())
	// One bad value poisons only its own row
	values[3] = fr.NewElement(9)
	prover, err = dev.Run(4, circuit)
	require.NoError(t, err)
	//
	failures := prover.Verify()
	require.Len(t, failures, 1)
	assert.Equal(t, uint(3), failures[0].(*schema.GateFailure).Row)
}

func TestPolyCheckCellHandles(t *testing.T) {
	values := []fr.Element{fr.NewElement(1), fr.NewElement(2)}
	circuit := &polyCircuit{rng: 8, values: values, batch: true}
	// Batched values occupy successive rows of one region
	builder := schema.NewBuilder()
	circuit.Configure(builder)
	layouter := layout.NewLayouter(builder.Finalize(), 4)
	//
	cells, err := circuit.cfg.AssignMany(layouter, values)
	require.NoError(t, err)
	require.Len(t, cells, 2)
	assert.Equal(t, uint(0), cells[0].Cell().Row())
	assert.Equal(t, uint(1), cells[1].Cell().Row())
	assert.Equal(t, circuit.cfg.Value, cells[0].Cell().Column())
}

func TestPolyCheckCapacityExceeded(t *testing.T) {
	// Five values cannot fit a four row trace
	values := make([]fr.Element, 5)
	circuit := &polyCircuit{rng: 8, values: values}
	//
	_, err := dev.Run(2, circuit)
	assert.Error(t, err)
}

func TestPolyCheckEmptyRangePanics(t *testing.T) {
	builder := schema.NewBuilder()
	value := builder.AdviceColumn("value")
	//
	assert.Panics(t, func() { ConfigurePolyCheck(builder, value, 0) })
}

func TestPolyCheckDegree(t *testing.T) {
	// The range product holds one factor per range element: the seed value
	// plus rng-1 subtracted factors.
	for _, rng := range []uint{1, 2, 8, 13} {
		builder := schema.NewBuilder()
		value := builder.AdviceColumn("value")
		ConfigurePolyCheck(builder, value, rng)
		//
		gates := builder.Finalize().Gates()
		require.Len(t, gates, 1)
		assert.Equal(t, rng, gates[0].Constraints()[0].Expr.Degree())
	}
}

// The range product must vanish exactly on the canonical points 0 .. rng-1.
func TestRangeExprZeroSet(t *testing.T) {
	const rng = 8
	expr := rangeExpr(rng, ir.NewColumnAccess(0, 0))
	//
	tr := trace.NewArrayTrace(16, []string{"value"}, nil, nil)
	for i := uint64(0); i < 16; i++ {
		tr.Column(0).Set(int(i), fr.NewElement(i))
	}
	//
	for i := 0; i < 16; i++ {
		val := expr.EvalAt(i, tr)
		if i < rng {
			assert.True(t, val.IsZero(), "row %d", i)
		} else {
			assert.False(t, val.IsZero(), "row %d", i)
		}
	}
}
