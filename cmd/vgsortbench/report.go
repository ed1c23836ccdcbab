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
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
)

// benchResult holds one distribution's timing and comparison count for
// a single run size.
type benchResult struct {
	distribution string
	size         int
	elapsed      time.Duration
	comparisons  int
	sorted       bool
}

// renderReport prints a table of results, one row per distribution,
// using the same rendering library the teacher's own CLI depends on
// for tabular output.
func renderReport(results []benchResult) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Distribution", "Size", "Time", "Comparisons", "Sorted"})

	for _, r := range results {
		t.AppendRow(table.Row{r.distribution, r.size, r.elapsed.String(), r.comparisons, r.sorted})
	}

	t.Render()
}
