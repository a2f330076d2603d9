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
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/consensys/go-plonkish/pkg/dev"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

const propertyRange = 16

// accepted determines whether the mock prover accepts a given circuit.
func accepted(t *testing.T, circuit dev.Circuit) bool {
	prover, err := dev.Run(4, circuit)
	if err != nil {
		t.Fatal(err)
	}
	//
	return len(prover.Verify()) == 0
}

func TestPolyCheckProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)
	properties.Property("value accepted iff within range", prop.ForAll(
		func(v uint64) bool {
			circuit := &polyCircuit{
				rng:    propertyRange,
				values: []fr.Element{fr.NewElement(v)},
			}
			//
			return accepted(t, circuit) == (v < propertyRange)
		},
		gen.UInt64Range(0, 4*propertyRange),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestLookupCheckProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)
	properties.Property("value accepted iff within range", prop.ForAll(
		func(v uint64) bool {
			circuit := &lookupCircuit{
				rng:    propertyRange,
				values: []fr.Element{fr.NewElement(v)},
			}
			//
			return accepted(t, circuit) == (v < propertyRange)
		},
		gen.UInt64Range(0, 4*propertyRange),
	))

	properties.Property("both gadgets agree on every value", prop.ForAll(
		func(v uint64) bool {
			value := []fr.Element{fr.NewElement(v)}
			poly := &polyCircuit{rng: propertyRange, values: value}
			lookup := &lookupCircuit{rng: propertyRange, values: value}
			//
			return accepted(t, poly) == accepted(t, lookup)
		},
		gen.UInt64Range(0, 4*propertyRange),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
