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

package tree

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearch(t *testing.T) {
	keys := []int{30, 10, 50, 20, 40, 70}
	var bst, avl *Node[int]
	for _, key := range keys {
		bst = InsertBST(bst, key)
		avl = InsertAVL(avl, key)
	}

	for _, root := range []*Node[int]{bst, avl} {
		assert.True(t, Search(root, 20))
		assert.False(t, Search(root, 60))
		for _, key := range keys {
			assert.True(t, Search(root, key), "key %d", key)
			assert.Equal(t, key, Find(root, key).Key)
		}
	}

	assert.False(t, Search[int](nil, 1))
	assert.Nil(t, Find[int](nil, 1))
}

func TestSearchAgreesWithInOrder(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 5))
	var root *Node[int]
	present := map[int]bool{}
	for i := 0; i < 200; i++ {
		key := r.IntN(400)
		root = InsertAVL(root, key)
		present[key] = true
	}

	listed := map[int]bool{}
	for k := range InOrder(root) {
		listed[k] = true
	}
	for key := -5; key < 405; key++ {
		require.Equal(t, listed[key], Search(root, key), "key %d", key)
		require.Equal(t, present[key], listed[key], "key %d", key)
	}
}

func TestInOrder(t *testing.T) {
	var root *Node[string]
	for _, key := range []string{"kiwi", "apple", "fig", "banana", "apple"} {
		root = InsertAVL(root, key)
	}

	assert.Equal(t, []string{"apple", "banana", "fig", "kiwi"}, Keys(root))
	// a second walk starts over
	assert.Equal(t, []string{"apple", "banana", "fig", "kiwi"}, Keys(root))

	var firstTwo []string
	for k := range InOrder(root) {
		firstTwo = append(firstTwo, k)
		if len(firstTwo) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"apple", "banana"}, firstTwo)

	assert.Empty(t, Keys[string](nil))
	assert.Equal(t, 4, Len(root))
}

func TestRelease(t *testing.T) {
	var root *Node[int]
	for i := 1; i <= 31; i++ {
		root = InsertAVL(root, i)
	}
	left := root.Left

	assert.Equal(t, 31, Release(root))
	assert.Nil(t, root.Left)
	assert.Nil(t, root.Right)
	assert.Nil(t, left.Left)
	assert.Equal(t, 0, root.Height())
	assert.Equal(t, 0, Release[int](nil))
}
