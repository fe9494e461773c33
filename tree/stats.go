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

import "fmt"

// Rotation names one of the four rebalancing patterns.
type Rotation int

const (
	NoRotation Rotation = iota
	LeftLeft
	RightRight
	LeftRight
	RightLeft
)

func (r Rotation) String() string {
	switch r {
	case LeftLeft:
		return "LL"
	case RightRight:
		return "RR"
	case LeftRight:
		return "LR"
	case RightLeft:
		return "RL"
	default:
		return "none"
	}
}

// Stats counts what AVL insertions did. The zero value is ready to use.
type Stats struct {
	Inserted   int
	Duplicates int
	LeftLeft   int
	RightRight int
	LeftRight  int
	RightLeft  int
	// Last is the pattern applied by the most recent insertion, if any.
	Last Rotation
}

func (s *Stats) record(r Rotation) {
	if s == nil {
		return
	}
	s.Last = r
	switch r {
	case LeftLeft:
		s.LeftLeft++
	case RightRight:
		s.RightRight++
	case LeftRight:
		s.LeftRight++
	case RightLeft:
		s.RightLeft++
	}
}

// Rotations returns the number of rebalancing patterns applied. Zig-zag
// patterns count once even though they rotate twice.
func (s Stats) Rotations() int {
	return s.LeftLeft + s.RightRight + s.LeftRight + s.RightLeft
}

func (s Stats) String() string {
	return fmt.Sprintf("inserted=%d duplicates=%d LL=%d RR=%d LR=%d RL=%d",
		s.Inserted, s.Duplicates, s.LeftLeft, s.RightRight, s.LeftRight, s.RightLeft)
}
