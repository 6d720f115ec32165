// SPDX-License-Identifier: MIT

package hashtable

// Collector receives one callback per table operation. Implement it to feed
// a monitoring system; see package metrics for a Prometheus implementation.
//
// Every call happens synchronously inside the operation, so implementations
// must be cheap and must not call back into the table.
type Collector interface {
	// RecordPut is called after Put or PutNil. inserted is false when an
	// existing value was overwritten.
	RecordPut(mode Mode, inserted bool)

	// RecordGet is called after Get or GetNil. hit reports whether the key
	// was present.
	RecordGet(mode Mode, hit bool)

	// RecordRemove is called after Remove or RemoveNil. removed reports
	// whether an entry was dropped.
	RecordRemove(mode Mode, removed bool)

	// RecordTreeify is called once per bucket, when it converts to tree mode.
	RecordTreeify(bucket, entries int)
}

// NoopCollector discards every callback. It is the default.
type NoopCollector struct{}

func (NoopCollector) RecordPut(Mode, bool)    {}
func (NoopCollector) RecordGet(Mode, bool)    {}
func (NoopCollector) RecordRemove(Mode, bool) {}
func (NoopCollector) RecordTreeify(int, int)  {}
