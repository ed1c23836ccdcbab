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

import "math/rand/v2"

// distribution builds a slice of the requested size shaped a
// particular way, so benchmarks can see how the algorithm behaves on
// data with (or without) exploitable structure.
type distribution struct {
	name string
	gen  func(size int, rng *rand.Rand) []int
}

// distributions mirrors the input shapes generated by the original
// benchmark suite (bench/bench.cpp): a mix of fully random, already
// ordered, and adversarially patterned inputs.
var distributions = []distribution{
	{"shuffled", shuffled},
	{"shuffled_16_values", shuffled16Values},
	{"all_equal", allEqual},
	{"ascending", ascending},
	{"descending", descending},
	{"pipe_organ", pipeOrgan},
	{"push_front", pushFront},
	{"push_middle", pushMiddle},
	{"ascending_sawtooth", ascendingSawtooth},
	{"descending_sawtooth", descendingSawtooth},
	{"alternating", alternating},
	{"alternating_16_values", alternating16Values},
}

func shuffled(size int, rng *rand.Rand) []int {
	v := make([]int, size)
	for i := range v {
		v[i] = i
	}
	rng.Shuffle(size, func(i, j int) { v[i], v[j] = v[j], v[i] })
	return v
}

func shuffled16Values(size int, rng *rand.Rand) []int {
	v := make([]int, size)
	for i := range v {
		v[i] = i % 16
	}
	rng.Shuffle(size, func(i, j int) { v[i], v[j] = v[j], v[i] })
	return v
}

func allEqual(size int, _ *rand.Rand) []int {
	return make([]int, size)
}

func ascending(size int, _ *rand.Rand) []int {
	v := make([]int, size)
	for i := range v {
		v[i] = i
	}
	return v
}

func descending(size int, _ *rand.Rand) []int {
	v := make([]int, size)
	for i := range v {
		v[i] = size - 1 - i
	}
	return v
}

func pipeOrgan(size int, _ *rand.Rand) []int {
	v := make([]int, size)
	half := size / 2
	for i := 0; i < half; i++ {
		v[i] = i
	}
	for i := half; i < size; i++ {
		v[i] = size - i
	}
	return v
}

func pushFront(size int, _ *rand.Rand) []int {
	v := make([]int, size)
	for i := 1; i < size; i++ {
		v[i-1] = i
	}
	if size > 0 {
		v[size-1] = 0
	}
	return v
}

func pushMiddle(size int, _ *rand.Rand) []int {
	v := make([]int, 0, size)
	mid := size / 2
	for i := 0; i < size; i++ {
		if i != mid {
			v = append(v, i)
		}
	}
	v = append(v, mid)
	return v
}

func sawtoothLimit(size int) int {
	if size < 2 {
		return 1
	}
	limit := int(float64(size) / float64(log2Int(size)) * 1.1)
	if limit < 1 {
		limit = 1
	}
	return limit
}

func log2Int(n int) int {
	depth := 0
	for n > 1 {
		depth++
		n >>= 1
	}
	if depth == 0 {
		return 1
	}
	return depth
}

func ascendingSawtooth(size int, _ *rand.Rand) []int {
	v := make([]int, size)
	limit := sawtoothLimit(size)
	for i := range v {
		v[i] = i % limit
	}
	return v
}

func descendingSawtooth(size int, _ *rand.Rand) []int {
	v := make([]int, size)
	limit := sawtoothLimit(size)
	for i := 0; i < size; i++ {
		v[size-1-i] = i % limit
	}
	return v
}

func alternating(size int, _ *rand.Rand) []int {
	v := make([]int, size)
	for i := range v {
		v[i] = i
	}
	for i := 0; i < size; i += 2 {
		v[i] = -v[i]
	}
	return v
}

func alternating16Values(size int, _ *rand.Rand) []int {
	v := make([]int, size)
	for i := range v {
		v[i] = i % 16
	}
	for i := 0; i < size; i += 2 {
		v[i] = -v[i]
	}
	return v
}
