// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for numeric policy.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: options are plain setters; there is nothing
//     nonsensical to reject for a boolean policy.
package matrix

// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
const DefaultValidateNaNInf = true

// Option mutates Options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	validateNaNInf bool // DefaultValidateNaNInf
}

// WithNoValidateNaNInf disables finite-value validation.
// Intended for scratch buffers that are sanitized before leaving a package.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// gatherOptions resolves opts over the documented defaults.
// Complexity: O(len(opts)).
func gatherOptions(opts ...Option) Options {
	o := Options{validateNaNInf: DefaultValidateNaNInf}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
