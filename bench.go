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
	"context"
	"fmt"
	"io"
	"math/bits"
	"time"

	"github.com/cybrota/treecmp/tree"
	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"
	"github.com/schollz/progressbar/v3"
)

// BenchContext carries everything one benchmark run needs.
type BenchContext struct {
	context.Context

	Log        zerolog.Logger
	Config     BenchConfig
	Metrics    *treeMetrics
	ProgressTo io.Writer
}

type BenchResult struct {
	Size        int
	MinHeight   int
	AVLHeight   int
	BSTHeight   int
	BSTSkipped  bool
	AVLDuration time.Duration
	BSTDuration time.Duration
	Stats       tree.Stats
	Collisions  int
}

const benchBatch = 10_000

// Run generates the keys, then inserts them into an AVL tree and, when the run
// is small enough, into a BST. Cancelling the context stops between batches.
func (c *BenchContext) Run() (BenchResult, error) {
	cfg := c.Config
	gen := NewKeyGenerator(cfg.Seed, cfg.MaxKey, cfg.BloomBits, cfg.BloomHashes)
	keys, err := gen.Distinct(cfg.Size)
	if err != nil {
		return BenchResult{}, err
	}
	c.Log.Info().Msgf("generated %s distinct keys; %d collisions, %d bloom false positives",
		humanize.Comma(int64(len(keys))), gen.Collisions, gen.FalsePositives)

	res := BenchResult{
		Size:       len(keys),
		MinHeight:  bits.Len(uint(len(keys))),
		Collisions: gen.Collisions,
		BSTSkipped: cfg.MaxBSTSize > 0 && len(keys) > cfg.MaxBSTSize,
	}

	var avl *tree.Node[int]
	defer func() { tree.Release(avl) }()
	res.AVLDuration, err = c.insertAll("avl", keys, func(k int) {
		var inserted bool
		avl, inserted = tree.InsertAVLTracked(avl, k, &res.Stats)
		c.Metrics.observeInsert("avl", inserted)
		c.Metrics.observeRotation(res.Stats.Last)
	})
	if err != nil {
		return res, err
	}
	if err := tree.Check(avl, true); err != nil {
		return res, fmt.Errorf("avl tree broken after bench: %w", err)
	}
	res.AVLHeight = tree.Height(avl)
	c.Metrics.observeTree("avl", res.AVLHeight, res.Stats.Inserted)

	if res.BSTSkipped {
		c.Log.Warn().Msgf("skipping BST: %s keys exceed max_bst_size %s",
			humanize.Comma(int64(len(keys))), humanize.Comma(int64(cfg.MaxBSTSize)))
		return res, nil
	}

	var bst *tree.Node[int]
	defer func() { tree.Release(bst) }()
	res.BSTDuration, err = c.insertAll("bst", keys, func(k int) {
		var inserted bool
		bst, inserted = tree.InsertBSTTracked(bst, k)
		c.Metrics.observeInsert("bst", inserted)
	})
	if err != nil {
		return res, err
	}
	res.BSTHeight = tree.Height(bst)
	c.Metrics.observeTree("bst", res.BSTHeight, tree.Len(bst))

	return res, nil
}

func (c *BenchContext) insertAll(kind string, keys []int, insert func(int)) (time.Duration, error) {
	var bar *progressbar.ProgressBar
	if c.Config.Progress && c.ProgressTo != nil {
		bar = progressbar.NewOptions(len(keys),
			progressbar.OptionSetWriter(c.ProgressTo),
			progressbar.OptionSetDescription("🌳 inserting into "+kind),
			progressbar.OptionSetWidth(40),
			progressbar.OptionShowCount(),
			progressbar.OptionThrottle(100*time.Millisecond),
			progressbar.OptionClearOnFinish(),
		)
	}

	var total time.Duration
	for start := 0; start < len(keys); start += benchBatch {
		if err := c.Err(); err != nil {
			return total, err
		}
		end := min(start+benchBatch, len(keys))

		since := time.Now()
		for _, k := range keys[start:end] {
			insert(k)
		}
		elapsed := time.Since(since)
		total += elapsed
		c.Metrics.InsertDurations.WithLabelValues(kind).Observe(elapsed.Seconds())

		if bar != nil {
			_ = bar.Add(end - start)
		}
	}
	if bar != nil {
		_ = bar.Finish()
	}

	c.Log.Debug().Str("tree", kind).Dur("elapsed", total).Msg("inserts done")
	return total, nil
}

func formatBenchResult(w io.Writer, r BenchResult) {
	fmt.Fprintf(w, "keys:            %s\n", humanize.Comma(int64(r.Size)))
	fmt.Fprintf(w, "minimum height:  %d\n", r.MinHeight)
	fmt.Fprintf(w, "AVL height:      %d (%s, %s)\n", r.AVLHeight, r.AVLDuration, perSecond(r.Size, r.AVLDuration))
	if r.BSTSkipped {
		fmt.Fprintf(w, "BST height:      %sskipped%s\n", Warning, Reset)
	} else {
		fmt.Fprintf(w, "BST height:      %d (%s, %s)\n", r.BSTHeight, r.BSTDuration, perSecond(r.Size, r.BSTDuration))
	}
	fmt.Fprintf(w, "AVL rotations:   %s (LL=%d RR=%d LR=%d RL=%d)\n",
		humanize.Comma(int64(r.Stats.Rotations())),
		r.Stats.LeftLeft, r.Stats.RightRight, r.Stats.LeftRight, r.Stats.RightLeft)
}

func perSecond(n int, d time.Duration) string {
	if d <= 0 {
		return "- keys/s"
	}
	return humanize.Comma(int64(float64(n)/d.Seconds())) + " keys/s"
}
