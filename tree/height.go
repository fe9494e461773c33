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

// Height returns 0 for an absent node, else the node's cached height.
func Height[K cmp.Ordered](n *Node[K]) int {
	if n == nil {
		return 0
	}
	return n.height
}

// updateHeight must run after any change to a node's children, before the
// node's balance is read or the node is handed back to its parent.
func updateHeight[K cmp.Ordered](n *Node[K]) {
	if n == nil {
		return
	}
	n.height = max(Height(n.Left), Height(n.Right)) + 1
}

// Balance returns height(left) - height(right). Positive means left-heavy.
func Balance[K cmp.Ordered](n *Node[K]) int {
	if n == nil {
		return 0
	}
	return Height(n.Left) - Height(n.Right)
}
