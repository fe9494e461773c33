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

// Release detaches every node of the tree, children before their parent, and
// returns how many nodes it visited. The tree must not be used afterwards.
func Release[K cmp.Ordered](root *Node[K]) int {
	if root == nil {
		return 0
	}
	count := Release(root.Left) + Release(root.Right) + 1
	root.Left = nil
	root.Right = nil
	root.height = 0
	return count
}
