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

// InsertBST adds key to the unbalanced tree rooted at n and returns the root.
// Inserting a key that is already present leaves the tree unchanged.
func InsertBST[K cmp.Ordered](n *Node[K], key K) *Node[K] {
	n, _ = InsertBSTTracked(n, key)
	return n
}

// InsertBSTTracked is InsertBST that also reports whether a node was created.
// Heights are kept current so the skew of the tree can be compared with an AVL
// tree built from the same keys; no rotation is ever applied.
func InsertBSTTracked[K cmp.Ordered](n *Node[K], key K) (*Node[K], bool) {
	if n == nil {
		return newLeaf(key), true
	}

	var inserted bool
	if key < n.Key {
		n.Left, inserted = InsertBSTTracked(n.Left, key)
	} else if key > n.Key {
		n.Right, inserted = InsertBSTTracked(n.Right, key)
	} else {
		return n, false
	}

	if inserted {
		updateHeight(n)
	}
	return n, inserted
}
