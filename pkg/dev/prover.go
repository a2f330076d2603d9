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

// Package dev provides a mock prover for exercising circuits without a real
// proving backend: it synthesizes a witness trace and checks it directly
// against the circuit's constraints.
package dev

import (
	"errors"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/consensys/go-plonkish/pkg/layout"
	"github.com/consensys/go-plonkish/pkg/schema"
	"github.com/consensys/go-plonkish/pkg/trace"
)

// Circuit is a complete circuit definition: a configuration phase declaring
// columns and constraints, followed by a synthesis phase assigning one
// witness.
type Circuit interface {
	// Configure declares the circuit's columns, gates and lookups against a
	// given builder.  It runs once per circuit and sees no witness data.
	Configure(builder *schema.Builder)
	// Synthesize assigns the circuit's witness through a given layouter.  It
	// runs once per proof instance.
	Synthesize(layouter *layout.Layouter) error
}

// MockProver holds the outcome of synthesizing a circuit: its frozen schema
// together with the witness trace produced for one proof instance.
type MockProver struct {
	sch *schema.Schema
	tr  *trace.ArrayTrace
}

// Run configures and synthesizes a given circuit over 2^k rows.  A non-nil
// error indicates synthesis failed (e.g. circuit capacity was exceeded);
// constraint violations are not errors and surface through Verify instead.
func Run(k uint, circuit Circuit) (*MockProver, error) {
	builder := schema.NewBuilder()
	circuit.Configure(builder)
	//
	sch := builder.Finalize()
	layouter := layout.NewLayouter(sch, k)
	//
	if err := circuit.Synthesize(layouter); err != nil {
		return nil, err
	}
	//
	log.Debugf("synthesized circuit (%d gates, %d lookups, %d rows)",
		len(sch.Gates()), len(sch.Lookups()), layouter.Trace().Height())
	//
	return &MockProver{sch, layouter.Trace()}, nil
}

// Verify checks the synthesized trace against every constraint of the schema,
// returning all failures encountered.
func (p *MockProver) Verify() []schema.Failure {
	return p.sch.Accepts(p.tr)
}

// AssertSatisfied is a convenience wrapper around Verify which renders any
// failures into a single error.
func (p *MockProver) AssertSatisfied() error {
	failures := p.Verify()
	if len(failures) == 0 {
		return nil
	}
	//
	msgs := make([]string, len(failures))
	for i, f := range failures {
		msgs[i] = f.Message()
	}
	//
	return errors.New(strings.Join(msgs, "; "))
}

// Schema returns the frozen schema of the circuit under test.
func (p *MockProver) Schema() *schema.Schema {
	return p.sch
}

// Trace returns the synthesized witness trace.
func (p *MockProver) Trace() *trace.ArrayTrace {
	return p.tr
}
