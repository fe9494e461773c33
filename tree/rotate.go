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
	"errors"
	"fmt"
)

// ErrMissingPivot is wrapped in the value a rotation panics with when the child
// it pivots on is absent. Reaching it means the balance bookkeeping is broken.
var ErrMissingPivot = errors.New("tree: rotation without pivot child")

func rotateRight[K cmp.Ordered](y *Node[K]) *Node[K] {
	if y == nil || y.Left == nil {
		panic(fmt.Errorf("rotate right: %w", ErrMissingPivot))
	}

	x := y.Left
	y.Left = x.Right
	x.Right = y

	// y is now below x, so it goes first
	updateHeight(y)
	updateHeight(x)

	return x
}

func rotateLeft[K cmp.Ordered](x *Node[K]) *Node[K] {
	if x == nil || x.Right == nil {
		panic(fmt.Errorf("rotate left: %w", ErrMissingPivot))
	}

	y := x.Right
	x.Right = y.Left
	y.Left = x

	updateHeight(x)
	updateHeight(y)

	return y
}
