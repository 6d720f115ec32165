// Package lvhash is an in-memory hash table whose collision chains adapt to
// load, plus the pieces needed to observe it in production.
//
// Under the hood, everything is organized under two subpackages:
//
//	hashtable/ — HashTable, Bucket, list and tree chains, hashing, options
//	metrics/   — Prometheus implementation of hashtable.Collector
//
// Quick sketch of one overloaded bucket:
//
//	list:  k3 → k1 → k7 → … (9 entries, threshold 8)
//	tree:        k5
//	           /    \
//	         k1      k7
//
// See examples/ for a runnable demo.
//
//	go get github.com/katalvlaran/lvhash/hashtable
package lvhash
