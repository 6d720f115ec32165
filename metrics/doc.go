// SPDX-License-Identifier: MIT

// Package metrics exports hashtable operations to Prometheus.
//
//	reg := prometheus.NewRegistry()
//	c := metrics.NewPrometheusCollector(reg, "myapp")
//	h, _ := hashtable.New[string, int](hashtable.WithCollector(c))
//
// Three series are registered:
//
//	<ns>_hashtable_operations_total{op, mode, result}
//	<ns>_hashtable_treeifications_total
//	<ns>_hashtable_treeify_entries (histogram)
package metrics
