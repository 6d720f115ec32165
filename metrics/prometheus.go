// SPDX-License-Identifier: MIT

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/lvhash/hashtable"
)

// Label values of the result label.
const (
	ResultInserted    = "inserted"
	ResultOverwritten = "overwritten"
	ResultHit         = "hit"
	ResultMiss        = "miss"
	ResultRemoved     = "removed"
	ResultNoop        = "noop"
)

// PrometheusCollector implements hashtable.Collector with Prometheus counters.
type PrometheusCollector struct {
	ops          *prometheus.CounterVec
	treeifyTotal prometheus.Counter
	treeifySizes prometheus.Histogram
}

var _ hashtable.Collector = (*PrometheusCollector)(nil)

// NewPrometheusCollector registers the collector's series on reg under the
// given namespace. It panics if they are already registered there, like
// promauto does.
func NewPrometheusCollector(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	f := promauto.With(reg)

	return &PrometheusCollector{
		ops: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "hashtable",
			Name:      "operations_total",
			Help:      "Hash table operations by kind, bucket mode and outcome.",
		}, []string{"op", "mode", "result"}),
		treeifyTotal: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "hashtable",
			Name:      "treeifications_total",
			Help:      "Buckets converted from list to tree mode.",
		}),
		treeifySizes: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "hashtable",
			Name:      "treeify_entries",
			Help:      "Bucket population at the moment of conversion to tree mode.",
			Buckets:   prometheus.LinearBuckets(8, 8, 8),
		}),
	}
}

func (p *PrometheusCollector) RecordPut(mode hashtable.Mode, inserted bool) {
	p.ops.WithLabelValues("put", mode.String(), pick(inserted, ResultInserted, ResultOverwritten)).Inc()
}

func (p *PrometheusCollector) RecordGet(mode hashtable.Mode, hit bool) {
	p.ops.WithLabelValues("get", mode.String(), pick(hit, ResultHit, ResultMiss)).Inc()
}

func (p *PrometheusCollector) RecordRemove(mode hashtable.Mode, removed bool) {
	p.ops.WithLabelValues("remove", mode.String(), pick(removed, ResultRemoved, ResultNoop)).Inc()
}

func (p *PrometheusCollector) RecordTreeify(_ int, entries int) {
	p.treeifyTotal.Inc()
	p.treeifySizes.Observe(float64(entries))
}

func pick(cond bool, yes, no string) string {
	if cond {
		return yes
	}

	return no
}
