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
	"cmp"
	"iter"
)

// InOrder yields the keys of the tree in ascending order. Each call starts a
// fresh walk; stopping the range loop early stops the walk.
func InOrder[K cmp.Ordered](root *Node[K]) iter.Seq[K] {
	return func(yield func(K) bool) {
		walk(root, yield)
	}
}

func walk[K cmp.Ordered](n *Node[K], yield func(K) bool) bool {
	if n == nil {
		return true
	}
	return walk(n.Left, yield) && yield(n.Key) && walk(n.Right, yield)
}

// Keys collects InOrder into a slice.
func Keys[K cmp.Ordered](root *Node[K]) []K {
	var keys []K
	for k := range InOrder(root) {
		keys = append(keys, k)
	}
	return keys
}

// Len returns the number of nodes in the tree.
func Len[K cmp.Ordered](root *Node[K]) int {
	if root == nil {
		return 0
	}
	return 1 + Len(root.Left) + Len(root.Right)
}
