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

	"github.com/cybrota/treecmp/tree"
)

type SearchResult struct {
	Key   string
	Found bool
}

// TreeSummary is what the caller observes of one tree after a run.
type TreeSummary struct {
	Kind     string
	InOrder  []string
	Root     string
	Height   int
	Nodes    int
	Check    error
	Searches []SearchResult
	Shape    string
	Released int
	// Stats is only filled in for the AVL tree.
	Stats *tree.Stats
}

type Report struct {
	Name       string
	Input      []string
	Duplicates int
	BST        TreeSummary
	AVL        TreeSummary
}

// buildReport parses the words according to keyType and runs the scenario.
func buildReport(name string, keyType KeyType, keyWords, searchWords []string) (Report, error) {
	switch keyType {
	case KeyTypeString:
		keys, err := parseStringKeys(keyWords)
		if err != nil {
			return Report{}, fmt.Errorf("scenario %s: %w", name, err)
		}
		search, err := parseStringKeys(searchWords)
		if err != nil {
			return Report{}, fmt.Errorf("scenario %s search keys: %w", name, err)
		}
		return runScenario(name, keys, search), nil
	case KeyTypeInt, "":
		keys, err := parseIntKeys(keyWords)
		if err != nil {
			return Report{}, fmt.Errorf("scenario %s: %w", name, err)
		}
		search, err := parseIntKeys(searchWords)
		if err != nil {
			return Report{}, fmt.Errorf("scenario %s search keys: %w", name, err)
		}
		return runScenario(name, keys, search), nil
	}
	return Report{}, fmt.Errorf("scenario %s: unknown key type %q", name, keyType)
}

// runScenario feeds the same sequence to a BST and an AVL tree, reads both
// back, searches each for every search key and then releases them.
func runScenario[K cmp.Ordered](name string, keys, search []K) Report {
	var bst, avl *tree.Node[K]
	var st tree.Stats
	for _, k := range keys {
		bst = tree.InsertBST(bst, k)
		avl, _ = tree.InsertAVLTracked(avl, k, &st)
	}

	r := Report{
		Name:       name,
		Input:      formatKeys(keys),
		Duplicates: st.Duplicates,
		BST:        summarize("BST", bst, search, false),
		AVL:        summarize("AVL", avl, search, true),
	}
	r.AVL.Stats = &st

	r.BST.Released = tree.Release(bst)
	r.AVL.Released = tree.Release(avl)

	logger.Debug().
		Str("scenario", name).
		Int("keys", len(keys)).
		Int("bst_height", r.BST.Height).
		Int("avl_height", r.AVL.Height).
		Int("rotations", st.Rotations()).
		Msg("scenario complete")

	return r
}

func summarize[K cmp.Ordered](kind string, root *tree.Node[K], search []K, balanced bool) TreeSummary {
	s := TreeSummary{
		Kind:    kind,
		InOrder: formatKeys(tree.Keys(root)),
		Height:  tree.Height(root),
		Nodes:   tree.Len(root),
		Check:   tree.Check(root, balanced),
		Shape:   tree.Render(root),
	}
	if root != nil {
		s.Root = fmt.Sprint(root.Key)
	}
	for _, k := range search {
		s.Searches = append(s.Searches, SearchResult{Key: fmt.Sprint(k), Found: tree.Search(root, k)})
	}
	return s
}
