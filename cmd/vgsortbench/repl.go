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
	"io"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/semihalev/vergesort"
)

// runRepl starts an interactive loop where a user can type a
// distribution name and size and immediately see how long vergesort
// takes and how many comparisons it made, grounded on the teacher's
// own readline-driven CLI loop (cmd/stoolap/cli.go).
func runRepl(out io.Writer) error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:            "\033[1;36mvgsortbench>\033[0m ",
		HistoryFile:       homeDir + "/.vgsortbench_history",
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize readline: %v", err)
	}
	defer rl.Close()

	fmt.Fprintln(out, "vgsortbench interactive mode")
	fmt.Fprintln(out, "Type a distribution name and optional size (e.g. 'shuffled 200000'), 'list', or 'exit'.")

	rng := rand.New(rand.NewPCG(1, 2))

	for {
		line, err := rl.Readline()
		if err != nil {
			if err == io.EOF || err == readline.ErrInterrupt {
				return nil
			}
			return err
		}

		line = strings.TrimSpace(line)
		switch {
		case line == "":
			continue
		case line == "exit" || line == "quit":
			return nil
		case line == "list":
			for _, d := range distributions {
				fmt.Fprintln(out, " ", d.name)
			}
			continue
		}

		fields := strings.Fields(line)
		name := fields[0]
		size := 100000
		if len(fields) > 1 {
			if n, err := strconv.Atoi(fields[1]); err == nil {
				size = n
			}
		}

		d := findDistribution(name)
		if d == nil {
			fmt.Fprintf(out, "unknown distribution %q, try 'list'\n", name)
			continue
		}

		data := d.gen(size, rng)
		counter := vergesort.NewCountingLess(func(a, b int) bool { return a < b })
		start := time.Now()
		vergesort.Slice(data, counter.Compare)
		elapsed := time.Since(start)

		fmt.Fprintf(out, "%s (n=%d): %s, %d comparisons, sorted=%v\n",
			d.name, size, elapsed, counter.Comparisons,
			vergesort.SliceIsSorted(data, func(a, b int) bool { return a < b }))
	}
}

func findDistribution(name string) *distribution {
	for i := range distributions {
		if distributions[i].name == name {
			return &distributions[i]
		}
	}
	return nil
}
