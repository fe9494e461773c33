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

// InsertAVL adds key to the AVL tree rooted at n and returns the new root,
// which differs from n whenever a rotation happened at the top.
// Inserting a key that is already present leaves the tree unchanged.
func InsertAVL[K cmp.Ordered](n *Node[K], key K) *Node[K] {
	n, _ = insertAVL(n, key, nil)
	return n
}

// InsertAVLTracked is InsertAVL that also reports whether a node was created
// and accumulates the rotations it applied into st. st may be nil.
func InsertAVLTracked[K cmp.Ordered](n *Node[K], key K, st *Stats) (*Node[K], bool) {
	if st != nil {
		st.Last = NoRotation
	}
	root, inserted := insertAVL(n, key, st)
	if st != nil {
		if inserted {
			st.Inserted++
		} else {
			st.Duplicates++
		}
	}
	return root, inserted
}

func insertAVL[K cmp.Ordered](n *Node[K], key K, st *Stats) (*Node[K], bool) {
	if n == nil {
		return newLeaf(key), true
	}

	var inserted bool
	if key < n.Key {
		n.Left, inserted = insertAVL(n.Left, key, st)
	} else if key > n.Key {
		n.Right, inserted = insertAVL(n.Right, key, st)
	} else {
		// duplicate: no height or rotation work on this path
		return n, false
	}

	updateHeight(n)

	// The inserted key against the immediate child's key tells the straight
	// cases from the zig-zag ones.
	balance := Balance(n)
	switch {
	case balance > 1 && key < n.Left.Key:
		st.record(LeftLeft)
		return rotateRight(n), inserted
	case balance < -1 && key > n.Right.Key:
		st.record(RightRight)
		return rotateLeft(n), inserted
	case balance > 1 && key > n.Left.Key:
		st.record(LeftRight)
		n.Left = rotateLeft(n.Left)
		return rotateRight(n), inserted
	case balance < -1 && key < n.Right.Key:
		st.record(RightLeft)
		n.Right = rotateRight(n.Right)
		return rotateLeft(n), inserted
	}

	return n, inserted
}
