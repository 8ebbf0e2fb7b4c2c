// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for Dense construction.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal) that resolves defaults then setters.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Options fields are unexported; public constructors consume ...Option.
//
// Notes:
//   - Storage mode applies to NewDenseFromData only. NewDenseFromRows always
//     flattens into a fresh buffer, NewDense always allocates.
//   - Numeric policy is carried by the Dense and preserved by Clone. Results of
//     Add/Sub/Mul are allocated with default options.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultBorrowStorage controls whether NewDenseFromData aliases the
	// caller's slice. false ⇒ the data is copied.
	DefaultBorrowStorage = false

	// DefaultValidateNaNInf toggles finite-only validation in Set and in
	// constructors that ingest caller data. false ⇒ any float64 is storable.
	DefaultValidateNaNInf = false
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; use NewMatrixOptions and the accessors to inspect.
type Options struct {
	borrow         bool // DefaultBorrowStorage
	validateNaNInf bool // DefaultValidateNaNInf
}

// BorrowStorage reports whether the resolved options request borrow mode.
func (o Options) BorrowStorage() bool { return o.borrow }

// ValidateNaNInf reports whether the resolved options reject non-finite values.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// WithBorrowedStorage makes NewDenseFromData wrap the caller's slice without
// copying.
//
// Sharing hazard: the caller's slice and the Dense are the same memory. Writes
// through either side are visible to the other, and the "operands are never
// modified" guarantee of Add/Sub/Mul no longer protects data the caller keeps
// mutating. Concurrent mutation from both owners is undefined. Use only when
// the caller hands the slice over and stops touching it, or synchronizes.
func WithBorrowedStorage() Option {
	return func(o *Options) { o.borrow = true }
}

// WithCopiedStorage restores the default copy semantics.
func WithCopiedStorage() Option {
	return func(o *Options) { o.borrow = false }
}

// WithValidateNaNInf enables finite-only validation.
// Set returns ErrNaNInf for NaN/±Inf; NewDenseFromRows/NewDenseFromData reject
// non-finite source data. The policy is preserved by Clone.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables finite-only validation (the default).
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// NewMatrixOptions resolves opts over the documented defaults.
// Stable for a given sequence of opts (last-writer-wins).
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		borrow:         DefaultBorrowStorage,
		validateNaNInf: DefaultValidateNaNInf,
	}
}

// gatherOptions applies user-provided Option setters on top of defaults.
// nil setters are skipped.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, set := range user {
		if set == nil {
			continue
		}
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
