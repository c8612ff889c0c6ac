// SPDX-License-Identifier: MIT

package scenario

import "errors"

var (
	// ErrUnknownFamily: a function block names a family not valid for its slot.
	ErrUnknownFamily = errors.New("scenario: unknown function family")

	// ErrInvalid: malformed document or out-of-range parameter.
	ErrInvalid = errors.New("scenario: invalid scenario")
)
