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

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Styles holds the styling for reports and the explorer
type Styles struct {
	Title   lipgloss.Style
	Label   lipgloss.Style
	Found   lipgloss.Style
	Missing lipgloss.Style
	Muted   lipgloss.Style
	Border  lipgloss.Style
	Cell    lipgloss.Style

	BorderFocused lipgloss.Style
	BorderBlurred lipgloss.Style

	color bool
}

// NewStyles creates the styles for the detected terminal mode. When color is
// false every style renders its text untouched.
func NewStyles(color bool) *Styles {
	scheme := colorSchemeFor(detectTerminalMode())
	return &Styles{
		Title: lipgloss.NewStyle().
			Foreground(scheme.Primary).
			Bold(true),
		Label: lipgloss.NewStyle().
			Foreground(scheme.Muted),
		Found: lipgloss.NewStyle().
			Foreground(scheme.Success).
			Bold(true),
		Missing: lipgloss.NewStyle().
			Foreground(scheme.Error),
		Muted: lipgloss.NewStyle().
			Foreground(scheme.Muted),
		Border: lipgloss.NewStyle().
			Foreground(scheme.Border),
		Cell: lipgloss.NewStyle().
			Padding(0, 1),
		BorderFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(scheme.Accent),
		BorderBlurred: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(scheme.Border),
		color: color,
	}
}

func (s *Styles) paint(style lipgloss.Style, text string) string {
	if !s.color {
		return text
	}
	return style.Render(text)
}

// formatReport renders the side-by-side comparison of one scenario.
func formatReport(r Report, s *Styles, showShape bool) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", s.paint(s.Title, "▌ "+r.Name))
	fmt.Fprintf(&b, "%s %s\n", s.paint(s.Label, "input:       "), strings.Join(r.Input, " "))
	fmt.Fprintf(&b, "%s %s\n", s.paint(s.Label, "BST in order:"), strings.Join(r.BST.InOrder, " "))
	fmt.Fprintf(&b, "%s %s\n", s.paint(s.Label, "AVL in order:"), strings.Join(r.AVL.InOrder, " "))
	if r.Duplicates > 0 {
		fmt.Fprintf(&b, "%s %d\n", s.paint(s.Label, "duplicates:  "), r.Duplicates)
	}

	rows := [][]string{
		{"root", orDash(r.BST.Root), orDash(r.AVL.Root)},
		{"height", strconv.Itoa(r.BST.Height), strconv.Itoa(r.AVL.Height)},
		{"nodes", strconv.Itoa(r.BST.Nodes), strconv.Itoa(r.AVL.Nodes)},
		{"invariants", checkText(r.BST.Check), checkText(r.AVL.Check)},
		{"rotations", "-", rotationText(r.AVL)},
	}
	for i := range r.AVL.Searches {
		rows = append(rows, []string{
			"search " + r.AVL.Searches[i].Key,
			s.foundText(r.BST.Searches[i].Found),
			s.foundText(r.AVL.Searches[i].Found),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(s.Border).
		StyleFunc(func(row, col int) lipgloss.Style { return s.Cell }).
		Headers("", "BST", "AVL").
		Rows(rows...)
	b.WriteString(t.Render())
	b.WriteString("\n")

	if showShape {
		for _, ts := range []TreeSummary{r.BST, r.AVL} {
			fmt.Fprintf(&b, "%s\n", s.paint(s.Label, ts.Kind+" shape:"))
			if ts.Shape == "" {
				b.WriteString(s.paint(s.Muted, "(empty)") + "\n")
				continue
			}
			b.WriteString(ts.Shape + "\n")
		}
	}

	return b.String()
}

func (s *Styles) foundText(found bool) string {
	if found {
		return s.paint(s.Found, "found")
	}
	return s.paint(s.Missing, "not found")
}

func checkText(err error) string {
	if err == nil {
		return "ok"
	}
	return err.Error()
}

func rotationText(ts TreeSummary) string {
	if ts.Stats == nil {
		return "-"
	}
	st := ts.Stats
	return fmt.Sprintf("LL=%d RR=%d LR=%d RL=%d", st.LeftLeft, st.RightRight, st.LeftRight, st.RightLeft)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
