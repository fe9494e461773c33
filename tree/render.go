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
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Render draws the shape of the tree, root on the first line and each level
// of children two lines further down. An empty tree renders as "".
func Render[K cmp.Ordered](root *Node[K]) string {
	if root == nil {
		return ""
	}
	b := renderBlock(root)
	for i, line := range b.lines {
		b.lines[i] = strings.TrimRight(line, " ")
	}
	return strings.Join(b.lines, "\n")
}

// block is a rectangle of text; every line is exactly width columns wide and
// the node's label is centred on column mid.
type block struct {
	lines []string
	width int
	mid   int
}

func renderBlock[K cmp.Ordered](n *Node[K]) block {
	label := fmt.Sprint(n.Key)
	if label == "" {
		label = `""`
	}
	lw := runewidth.StringWidth(label)

	if n.Left == nil && n.Right == nil {
		return block{lines: []string{label}, width: lw, mid: lw / 2}
	}

	var left, right block
	if n.Left != nil {
		left = renderBlock(n.Left)
	}
	if n.Right != nil {
		right = renderBlock(n.Right)
	}

	width := left.width + lw + right.width
	lines := []string{spaces(left.width) + label + spaces(right.width)}

	edges := []byte(spaces(width))
	if n.Left != nil {
		edges[left.mid] = '/'
	}
	if n.Right != nil {
		edges[left.width+lw+right.mid] = '\\'
	}
	lines = append(lines, string(edges))

	for i := 0; i < max(len(left.lines), len(right.lines)); i++ {
		l := spaces(left.width)
		if i < len(left.lines) {
			l = left.lines[i]
		}
		r := spaces(right.width)
		if i < len(right.lines) {
			r = right.lines[i]
		}
		lines = append(lines, l+spaces(lw)+r)
	}

	return block{lines: lines, width: width, mid: left.width + lw/2}
}

func spaces(n int) string {
	return strings.Repeat(" ", n)
}
