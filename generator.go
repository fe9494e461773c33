// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"math/rand/v2"
	"strconv"

	"github.com/willf/bloom"
)

// KeyGenerator draws distinct pseudo-random keys in [0, maxKey). The bloom
// filter answers most "never seen" checks; only its maybe answers fall back
// to the exact set.
type KeyGenerator struct {
	rng         *rand.Rand
	bloomFilter *bloom.BloomFilter
	seen        map[int]struct{}
	maxKey      int

	// Collisions counts draws that were already used.
	Collisions int
	// FalsePositives counts maybe answers the exact set refuted.
	FalsePositives int
}

func NewKeyGenerator(seed uint64, maxKey int, bloomBits, bloomHashes uint) *KeyGenerator {
	if bloomBits == 0 {
		bloomBits = 1 << 20
	}
	if bloomHashes == 0 {
		bloomHashes = 5
	}
	return &KeyGenerator{
		rng:         rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		bloomFilter: bloom.New(bloomBits, bloomHashes),
		seen:        make(map[int]struct{}),
		maxKey:      maxKey,
	}
}

// Next returns a key not returned before. It loops until it finds one, so
// callers must not ask for more than maxKey keys.
func (g *KeyGenerator) Next() int {
	for {
		k := g.rng.IntN(g.maxKey)
		s := strconv.Itoa(k)
		if g.bloomFilter.TestString(s) {
			if _, ok := g.seen[k]; ok {
				g.Collisions++
				continue
			}
			g.FalsePositives++
		}
		g.bloomFilter.AddString(s)
		g.seen[k] = struct{}{}
		return k
	}
}

// Distinct returns n keys in draw order.
func (g *KeyGenerator) Distinct(n int) ([]int, error) {
	if n < 0 {
		return nil, fmt.Errorf("cannot generate %d keys", n)
	}
	if n > g.maxKey-len(g.seen) {
		return nil, fmt.Errorf("cannot generate %d distinct keys below %d (%d already used)", n, g.maxKey, len(g.seen))
	}
	keys := make([]int, n)
	for i := range keys {
		keys[i] = g.Next()
	}
	return keys, nil
}
