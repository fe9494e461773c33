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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyGeneratorDistinct(t *testing.T) {
	gen := NewKeyGenerator(42, 1_000_000, 1<<16, 4)
	keys, err := gen.Distinct(20_000)
	require.NoError(t, err)
	require.Len(t, keys, 20_000)

	seen := make(map[int]struct{}, len(keys))
	for _, k := range keys {
		require.GreaterOrEqual(t, k, 0)
		require.Less(t, k, 1_000_000)
		_, dup := seen[k]
		require.False(t, dup, "key %d returned twice", k)
		seen[k] = struct{}{}
	}
}

func TestKeyGeneratorIsDeterministic(t *testing.T) {
	a, err := NewKeyGenerator(7, 10_000, 0, 0).Distinct(100)
	require.NoError(t, err)
	b, err := NewKeyGenerator(7, 10_000, 0, 0).Distinct(100)
	require.NoError(t, err)
	c, err := NewKeyGenerator(8, 10_000, 0, 0).Distinct(100)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestKeyGeneratorExhaustsRange(t *testing.T) {
	gen := NewKeyGenerator(1, 10, 1024, 3)
	keys, err := gen.Distinct(10)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, keys)
	assert.Positive(t, gen.Collisions)

	_, err = gen.Distinct(1)
	assert.Error(t, err)
	_, err = gen.Distinct(-1)
	assert.Error(t, err)
}
