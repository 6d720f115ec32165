// SPDX-License-Identifier: MIT

// Package hashtable: functional configuration. This file defines:
//   - documented defaults (constants),
//   - Options and the WithX constructors,
//   - validate, which enforces the invariants once at construction.
//
// Options only record values; nothing is checked until New or NewFunc runs,
// so a bad value is reported as an error rather than a panic.
package hashtable

import (
	"fmt"
	"log/slog"
)

// DEFAULTS - single source of truth for zero-configuration behavior.
const (
	// DefaultCapacity is the number of buckets allocated when WithCapacity is
	// not given. The bucket array never grows.
	DefaultCapacity = 16

	// DefaultTreeifyThreshold is the bucket population that must be exceeded
	// before a list-mode bucket is rebuilt as a tree.
	DefaultTreeifyThreshold = 8

	// DefaultHashAlgorithm is used for string and integer keys.
	DefaultHashAlgorithm = XXHash
)

// Options holds the construction parameters of a HashTable.
// Use DefaultOptions and the WithX helpers instead of filling it by hand.
type Options struct {
	Capacity         int
	TreeifyThreshold int
	HashAlgorithm    HashAlgorithm
	Logger           *slog.Logger
	Collector        Collector
}

// Option mutates Options before the table is built.
type Option func(*Options)

// DefaultOptions returns the configuration used when no Option is passed.
func DefaultOptions() Options {
	return Options{
		Capacity:         DefaultCapacity,
		TreeifyThreshold: DefaultTreeifyThreshold,
		HashAlgorithm:    DefaultHashAlgorithm,
		Logger:           slog.New(slog.DiscardHandler),
		Collector:        NoopCollector{},
	}
}

// WithCapacity sets the fixed number of buckets. Must be > 0.
func WithCapacity(n int) Option {
	return func(o *Options) { o.Capacity = n }
}

// WithTreeifyThreshold sets the population a list bucket must exceed before
// it converts to tree mode. Must be > 0.
func WithTreeifyThreshold(n int) Option {
	return func(o *Options) { o.TreeifyThreshold = n }
}

// WithHashAlgorithm selects the hash used for string and integer keys.
func WithHashAlgorithm(a HashAlgorithm) Option {
	return func(o *Options) { o.HashAlgorithm = a }
}

// WithLogger sets the structured logger. A nil logger keeps the default,
// which discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithCollector installs an operation collector. A nil collector keeps the
// default NoopCollector.
func WithCollector(c Collector) Option {
	return func(o *Options) {
		if c != nil {
			o.Collector = c
		}
	}
}

func gatherOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.validate()
}

func (o Options) validate() error {
	if o.Capacity <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidCapacity, o.Capacity)
	}
	if o.TreeifyThreshold <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidThreshold, o.TreeifyThreshold)
	}
	if !o.HashAlgorithm.valid() {
		return fmt.Errorf("%w: %d", ErrUnknownHashAlgorithm, o.HashAlgorithm)
	}

	return nil
}
