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

// Search reports whether key is stored in the tree rooted at root.
// It costs O(height) comparisons on either variant.
func Search[K cmp.Ordered](root *Node[K], key K) bool {
	return Find(root, key) != nil
}

// Find returns the node holding key, or nil.
func Find[K cmp.Ordered](root *Node[K], key K) *Node[K] {
	for n := root; n != nil; {
		switch {
		case key < n.Key:
			n = n.Left
		case key > n.Key:
			n = n.Right
		default:
			return n
		}
	}
	return nil
}
