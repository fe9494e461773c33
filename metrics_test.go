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
	"bytes"
	"testing"

	"github.com/cybrota/treecmp/tree"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTreeMetrics(t *testing.T) {
	m := newTreeMetrics()

	m.observeInsert("avl", true)
	m.observeInsert("avl", true)
	m.observeInsert("avl", false)
	m.observeRotation(tree.RightRight)
	m.observeRotation(tree.NoRotation)
	m.observeTree("avl", 3, 5)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Inserts.WithLabelValues("avl", "inserted")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Inserts.WithLabelValues("avl", "duplicate")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Rotations.WithLabelValues("RR")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.TreeHeight.WithLabelValues("avl")))
	assert.Equal(t, 5.0, testutil.ToFloat64(m.TreeSize.WithLabelValues("avl")))

	var out bytes.Buffer
	require.NoError(t, m.WriteText(&out))
	assert.Contains(t, out.String(), `treecmp_avl_rotations_total{case="RR"} 1`)
	assert.Contains(t, out.String(), `treecmp_tree_height{tree="avl"} 3`)
	assert.NotContains(t, out.String(), `case="none"`)
}

func TestTreeMetricsAreIndependent(t *testing.T) {
	a, b := newTreeMetrics(), newTreeMetrics()
	a.observeInsert("bst", true)
	assert.Equal(t, 0.0, testutil.ToFloat64(b.Inserts.WithLabelValues("bst", "inserted")))
}
