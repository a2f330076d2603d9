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
package cmd

import (
	"fmt"
	"os"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/consensys/go-plonkish/pkg/dev"
	"github.com/consensys/go-plonkish/pkg/gadget/rangecheck"
	"github.com/consensys/go-plonkish/pkg/layout"
	"github.com/consensys/go-plonkish/pkg/schema"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check [flags] value...",
	Short: "Range check given values against a mock prover.",
	Long: `Range check one or more values using either the polynomial
	gadget (default) or the lookup gadget, reporting every
	unsatisfied constraint of the resulting circuit.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		circuit := &checkCircuit{
			lookup: getFlag(cmd, "lookup"),
			rng:    getUint(cmd, "range"),
			values: parseValues(args),
		}
		//
		prover, err := dev.Run(getUint(cmd, "rows"), circuit)
		if err != nil {
			log.Fatalf("synthesis failed: %v", err)
		}
		//
		if failures := prover.Verify(); len(failures) != 0 {
			for _, f := range failures {
				fmt.Println(clip(f.Message(), terminalWidth()))
			}
			//
			os.Exit(1)
		}
		//
		fmt.Println("OK")
	},
}

// checkCircuit assigns the requested values through one of the two
// range-check gadgets.
type checkCircuit struct {
	lookup bool
	rng    uint
	values []fr.Element
	//
	polyCfg   rangecheck.PolyCheckConfig
	lookupCfg rangecheck.LookupCheckConfig
}

// Configure implementation for the dev.Circuit interface.
func (p *checkCircuit) Configure(builder *schema.Builder) {
	value := builder.AdviceColumn("value")
	//
	if p.lookup {
		p.lookupCfg = rangecheck.ConfigureLookupCheck(builder, value, p.rng)
	} else {
		p.polyCfg = rangecheck.ConfigurePolyCheck(builder, value, p.rng)
	}
}

// Synthesize implementation for the dev.Circuit interface.
func (p *checkCircuit) Synthesize(layouter *layout.Layouter) error {
	if p.lookup {
		if err := p.lookupCfg.Table.Load(layouter); err != nil {
			return err
		}
		//
		_, err := p.lookupCfg.AssignLookupMany(layouter, p.values)
		//
		return err
	}
	//
	_, err := p.polyCfg.AssignMany(layouter, p.values)
	//
	return err
}

// parseValues converts decimal arguments into field elements via the
// canonical injection.
func parseValues(args []string) []fr.Element {
	values := make([]fr.Element, len(args))
	//
	for i, arg := range args {
		if _, err := values[i].SetString(arg); err != nil {
			log.Fatalf("invalid value %q: %v", arg, err)
		}
	}
	//
	return values
}

// terminalWidth determines the width of the enclosing terminal, falling back
// to a conventional default when stdout is not a terminal.
func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 80
	}
	//
	return width
}

// clip truncates a message to fit within a given width.
func clip(msg string, width int) string {
	if len(msg) <= width || width < 4 {
		return msg
	}
	//
	return msg[:width-3] + "..."
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().Uint("range", 8, "number of elements in the accepted range")
	checkCmd.Flags().Uint("rows", 4, "log2 of the number of circuit rows")
	checkCmd.Flags().Bool("lookup", false, "use the lookup gadget rather than the polynomial gadget")
}
