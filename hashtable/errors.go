// SPDX-License-Identifier: MIT
// Package hashtable: sentinel error set.
// Every exported operation that can fail returns one of these sentinels,
// possibly wrapped with fmt.Errorf("...: %w", ErrX) to carry the offending
// value. Callers match with errors.Is.
//
// A missing key is not an error: Get reports it through its bool result and
// Remove is a silent no-op.

package hashtable

import "errors"

var (
	// ErrInvalidCapacity is returned by the constructors when the configured
	// bucket count is not positive.
	ErrInvalidCapacity = errors.New("hashtable: capacity must be positive")

	// ErrInvalidThreshold is returned by the constructors when the treeify
	// threshold is not positive.
	ErrInvalidThreshold = errors.New("hashtable: treeify threshold must be positive")

	// ErrUnknownHashAlgorithm is returned by the constructors when
	// WithHashAlgorithm names an algorithm this package does not implement.
	ErrUnknownHashAlgorithm = errors.New("hashtable: unknown hash algorithm")

	// ErrNilCompare is returned by NewFunc when no key comparator is supplied.
	ErrNilCompare = errors.New("hashtable: compare function is nil")

	// ErrInvalidKey is returned when the absent (nil) key is used against a
	// bucket in tree mode, where every key must be orderable.
	ErrInvalidKey = errors.New("hashtable: absent key in tree-mode bucket")

	// ErrBucketIndex indicates a bucket index outside [0, Capacity()).
	ErrBucketIndex = errors.New("hashtable: bucket index out of range")
)
