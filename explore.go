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
	"cmp"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/cybrota/treecmp/tree"
)

// treeView selects which shapes the explorer draws
type treeView int

const (
	viewBoth treeView = iota
	viewAVL
	viewBST
)

func (v treeView) String() string {
	switch v {
	case viewAVL:
		return "AVL"
	case viewBST:
		return "BST"
	default:
		return "BST + AVL"
	}
}

// insertEntry is one line of the insertion log
type insertEntry struct {
	key      string
	inserted bool
	rotation tree.Rotation
}

func (e insertEntry) FilterValue() string { return e.key }
func (e insertEntry) Title() string       { return e.key }
func (e insertEntry) Description() string {
	switch {
	case !e.inserted:
		return "duplicate, ignored"
	case e.rotation != tree.NoRotation:
		return "inserted, AVL rotation " + e.rotation.String()
	default:
		return "inserted"
	}
}

// exploreModel is the Bubble Tea state of the interactive explorer. Both trees
// belong to the model and are rebuilt only by inserts and resets.
type exploreModel[K cmp.Ordered] struct {
	input   textinput.Model
	shapes  viewport.Model
	history list.Model

	parse   func([]string) ([]K, error)
	bst     *tree.Node[K]
	avl     *tree.Node[K]
	stats   tree.Stats
	entries []insertEntry
	view    treeView
	status  string

	styles          *Styles
	glamourRenderer *glamour.TermRenderer
	copyText        func(string) error

	width  int
	height int
	ready  bool
}

func newExploreModel[K cmp.Ordered](parse func([]string) ([]K, error), styles *Styles) exploreModel[K] {
	ti := textinput.New()
	ti.Placeholder = "keys to insert, e.g. 10 20 30"
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 50

	history := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	history.SetShowTitle(false)
	history.SetShowHelp(false)
	history.SetShowStatusBar(false)
	history.SetFilteringEnabled(false)

	shapes := viewport.New(0, 0)
	shapes.SetContent("Insert keys to grow the trees...")

	glamourRenderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(40),
	)
	if err != nil {
		logger.Debug().Err(err).Msg("summary panel falls back to plain markdown")
	}

	return exploreModel[K]{
		input:           ti,
		shapes:          shapes,
		history:         history,
		parse:           parse,
		styles:          styles,
		glamourRenderer: glamourRenderer,
		copyText:        clipboard.WriteAll,
	}
}

func (m exploreModel[K]) Init() tea.Cmd {
	return textinput.Blink
}

func (m exploreModel[K]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.release()
			return m, tea.Quit
		case "enter":
			m.insertInput()
			return m, nil
		case "tab":
			m.view = (m.view + 1) % 3
			m.refresh()
			return m, nil
		case "ctrl+r":
			m.release()
			m.status = "trees cleared"
			m.refresh()
			return m, nil
		case "ctrl+y":
			listing := strings.Join(formatKeys(tree.Keys(m.avl)), " ")
			if err := m.copyText(listing); err != nil {
				m.status = "copy failed: " + err.Error()
			} else {
				m.status = "📋 copied in-order keys"
			}
			return m, nil
		case "pgup":
			m.shapes.LineUp(m.shapes.Height / 2)
			return m, nil
		case "pgdown":
			m.shapes.LineDown(m.shapes.Height / 2)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.ready = true
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// insertInput feeds every key typed in the input to both trees.
func (m *exploreModel[K]) insertInput() {
	words, err := splitKeys(m.input.Value())
	if err != nil {
		m.status = err.Error()
		return
	}
	keys, err := m.parse(words)
	if err != nil {
		m.status = err.Error()
		return
	}

	for _, k := range keys {
		m.bst = tree.InsertBST(m.bst, k)
		var inserted bool
		m.avl, inserted = tree.InsertAVLTracked(m.avl, k, &m.stats)
		m.entries = append(m.entries, insertEntry{
			key:      fmt.Sprint(k),
			inserted: inserted,
			rotation: m.stats.Last,
		})
	}

	m.input.Reset()
	m.status = fmt.Sprintf("inserted %d key(s)", len(keys))
	m.refresh()
}

func (m *exploreModel[K]) release() {
	tree.Release(m.bst)
	tree.Release(m.avl)
	m.bst, m.avl = nil, nil
	m.stats = tree.Stats{}
	m.entries = nil
}

func (m *exploreModel[K]) updateLayout() {
	inner := m.height - 6
	if inner < 3 {
		inner = 3
	}
	left := m.width*2/3 - 2
	right := m.width - left - 6
	m.shapes.Width = max(left, 10)
	m.shapes.Height = inner
	m.history.SetSize(max(right, 10), inner/2)
}

func (m *exploreModel[K]) refresh() {
	var b strings.Builder
	if m.view != viewAVL {
		fmt.Fprintf(&b, "BST (height %d)\n%s\n\n", tree.Height(m.bst), orEmpty(tree.Render(m.bst)))
	}
	if m.view != viewBST {
		fmt.Fprintf(&b, "AVL (height %d)\n%s\n", tree.Height(m.avl), orEmpty(tree.Render(m.avl)))
	}
	m.shapes.SetContent(b.String())

	items := make([]list.Item, 0, len(m.entries))
	for i := len(m.entries) - 1; i >= 0; i-- {
		items = append(items, m.entries[i])
	}
	m.history.SetItems(items)
}

func (m exploreModel[K]) summaryMarkdown() string {
	var b strings.Builder
	fmt.Fprintf(&b, "**BST** height %d, %d nodes\n\n", tree.Height(m.bst), tree.Len(m.bst))
	fmt.Fprintf(&b, "**AVL** height %d, %d nodes\n\n", tree.Height(m.avl), tree.Len(m.avl))
	fmt.Fprintf(&b, "**Rotations** LL %d · RR %d · LR %d · RL %d\n\n",
		m.stats.LeftLeft, m.stats.RightRight, m.stats.LeftRight, m.stats.RightLeft)
	fmt.Fprintf(&b, "**In order** %s\n", strings.Join(formatKeys(tree.Keys(m.avl)), " "))
	return b.String()
}

func (m exploreModel[K]) View() string {
	if !m.ready {
		return "Initializing..."
	}

	summary := m.summaryMarkdown()
	if m.glamourRenderer != nil {
		if rendered, err := m.glamourRenderer.Render(summary); err == nil {
			summary = rendered
		}
	}

	title := m.styles.paint(m.styles.Title, "🌳 treecmp explorer") + "  " +
		m.styles.paint(m.styles.Muted, "view: "+m.view.String())
	left := m.styles.BorderFocused.Render(m.shapes.View())
	right := m.styles.BorderBlurred.Render(lipgloss.JoinVertical(lipgloss.Left, m.history.View(), summary))
	help := m.styles.paint(m.styles.Muted, "enter insert · tab switch view · ctrl+r reset · ctrl+y copy · esc quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		m.input.View(),
		lipgloss.JoinHorizontal(lipgloss.Top, left, right),
		m.status,
		help,
	)
}

func orEmpty(shape string) string {
	if shape == "" {
		return "(empty)"
	}
	return shape
}

// runExplore starts the Bubble Tea application
func runExplore[K cmp.Ordered](parse func([]string) ([]K, error), styles *Styles) error {
	model := newExploreModel(parse, styles)
	program := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)
	_, err := program.Run()
	return err
}
