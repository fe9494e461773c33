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

import "cmp"

// Node is one stored key. Left and Right are owned exclusively by the node.
type Node[K cmp.Ordered] struct {
	Key    K
	Left   *Node[K]
	Right  *Node[K]
	height int // 1 + max(height(Left), height(Right)); a leaf is 1
}

func newLeaf[K cmp.Ordered](key K) *Node[K] {
	return &Node[K]{Key: key, height: 1}
}

// Height returns the cached subtree height. A nil node has height 0.
func (n *Node[K]) Height() int {
	return Height(n)
}

// Balance returns the node's balance factor.
func (n *Node[K]) Balance() int {
	return Balance(n)
}
