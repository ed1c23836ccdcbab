/*
Copyright 2025 Vergesort Contributors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package main

import (
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/semihalev/vergesort"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "vgsortbench",
		Short: "Benchmark and inspect the vergesort algorithm",
	}

	root.AddCommand(newBenchCmd())
	root.AddCommand(newVerifyCmd())
	root.AddCommand(newReplCmd())
	return root
}

func newBenchCmd() *cobra.Command {
	var size int
	var seed uint64
	var only string

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Run every input distribution through vergesort and report timing and comparison counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
			var results []benchResult
			for _, d := range distributions {
				if only != "" && d.name != only {
					continue
				}
				data := d.gen(size, rng)
				counter := vergesort.NewCountingLess(func(a, b int) bool { return a < b })

				start := time.Now()
				vergesort.Slice(data, counter.Compare)
				elapsed := time.Since(start)

				results = append(results, benchResult{
					distribution: d.name,
					size:         size,
					elapsed:      elapsed,
					comparisons:  counter.Comparisons,
					sorted:       vergesort.SliceIsSorted(data, func(a, b int) bool { return a < b }),
				})
			}
			renderReport(results)
			return nil
		},
	}

	cmd.Flags().IntVar(&size, "size", 100000, "number of elements to sort")
	cmd.Flags().Uint64Var(&seed, "seed", 1, "seed for the random number generator")
	cmd.Flags().StringVar(&only, "distribution", "", "only run the named distribution")
	return cmd
}

func newVerifyCmd() *cobra.Command {
	var size int
	var seed uint64

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Sort every distribution and fail if any result isn't correctly ordered",
		RunE: func(cmd *cobra.Command, args []string) error {
			rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
			failures := 0
			for _, d := range distributions {
				data := d.gen(size, rng)
				vergesort.Ordered(data)
				ok := vergesort.OrderedIsSorted(data)
				status := "ok"
				if !ok {
					status = "FAILED"
					failures++
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-24s %s\n", d.name, status)
			}
			if failures > 0 {
				return fmt.Errorf("%d distribution(s) failed to sort correctly", failures)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&size, "size", 50000, "number of elements to sort")
	cmd.Flags().Uint64Var(&seed, "seed", 1, "seed for the random number generator")
	return cmd
}

func newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Interactively pick a distribution and size and sort it",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRepl(os.Stdout)
		},
	}
}
