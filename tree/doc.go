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

// Package tree implements two comparable binary search trees over ordered keys:
// an unbalanced binary search tree and a height-balanced AVL tree.
//
// A tree is its root pointer. Every insert returns the (possibly new) root and the
// caller must rebind its reference to it:
//
//	var root *tree.Node[int]
//	for _, k := range []int{10, 20, 30} {
//		root = tree.InsertAVL(root, k)
//	}
//
// Search, InOrder and Check work on either variant.
package tree
