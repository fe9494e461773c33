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

var (
	ErrOrder   = errors.New("tree: keys out of order")
	ErrHeight  = errors.New("tree: cached height is stale")
	ErrBalance = errors.New("tree: node out of balance")
)

// Check walks the whole tree and verifies the search ordering and the cached
// heights at every node. With balanced set it also requires |Balance| <= 1.
func Check[K cmp.Ordered](root *Node[K], balanced bool) error {
	_, err := check(root, nil, nil, balanced)
	return err
}

// check returns the recomputed height of n. lo and hi are the exclusive
// bounds inherited from the ancestors.
func check[K cmp.Ordered](n *Node[K], lo, hi *K, balanced bool) (int, error) {
	if n == nil {
		return 0, nil
	}

	if lo != nil && n.Key <= *lo {
		return 0, fmt.Errorf("key %v not greater than %v: %w", n.Key, *lo, ErrOrder)
	}
	if hi != nil && n.Key >= *hi {
		return 0, fmt.Errorf("key %v not less than %v: %w", n.Key, *hi, ErrOrder)
	}

	lh, err := check(n.Left, lo, &n.Key, balanced)
	if err != nil {
		return 0, err
	}
	rh, err := check(n.Right, &n.Key, hi, balanced)
	if err != nil {
		return 0, err
	}

	h := max(lh, rh) + 1
	if n.height != h {
		return 0, fmt.Errorf("key %v has height %d, want %d: %w", n.Key, n.height, h, ErrHeight)
	}
	if b := lh - rh; balanced && (b > 1 || b < -1) {
		return 0, fmt.Errorf("key %v has balance %d: %w", n.Key, b, ErrBalance)
	}

	return h, nil
}
