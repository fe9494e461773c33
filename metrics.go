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
	"io"

	"github.com/cybrota/treecmp/tree"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"
)

type treeMetrics struct {
	registry *prometheus.Registry

	Inserts         *prometheus.CounterVec
	Rotations       *prometheus.CounterVec
	TreeHeight      *prometheus.GaugeVec
	TreeSize        *prometheus.GaugeVec
	InsertDurations *prometheus.HistogramVec
}

// newTreeMetrics registers on a private registry so repeated runs and tests
// never collide on the default one.
func newTreeMetrics() *treeMetrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &treeMetrics{
		registry: reg,
		Inserts: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "treecmp_inserts_total",
			Help: "insert calls by tree kind and outcome",
		}, []string{"tree", "outcome"}),
		Rotations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "treecmp_avl_rotations_total",
			Help: "rebalancing patterns applied by AVL inserts",
		}, []string{"case"}),
		TreeHeight: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "treecmp_tree_height",
			Help: "height of the tree after the run",
		}, []string{"tree"}),
		TreeSize: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "treecmp_tree_size",
			Help: "number of nodes after the run",
		}, []string{"tree"}),
		InsertDurations: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "treecmp_insert_batch_seconds",
			Help:    "time to insert one batch of keys",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
		}, []string{"tree"}),
	}
}

func (m *treeMetrics) observeInsert(kind string, inserted bool) {
	outcome := "inserted"
	if !inserted {
		outcome = "duplicate"
	}
	m.Inserts.WithLabelValues(kind, outcome).Inc()
}

func (m *treeMetrics) observeRotation(r tree.Rotation) {
	if r == tree.NoRotation {
		return
	}
	m.Rotations.WithLabelValues(r.String()).Inc()
}

func (m *treeMetrics) observeTree(kind string, height, size int) {
	m.TreeHeight.WithLabelValues(kind).Set(float64(height))
	m.TreeSize.WithLabelValues(kind).Set(float64(size))
}

// WriteText dumps every metric in the Prometheus text exposition format.
func (m *treeMetrics) WriteText(w io.Writer) error {
	families, err := m.registry.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
