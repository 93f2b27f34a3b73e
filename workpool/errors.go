// SPDX-License-Identifier: MIT

package workpool

import "errors"

var (
	// ErrPoolClosed is returned by Run after Close has been called.
	ErrPoolClosed = errors.New("workpool: pool is closed")

	// ErrInvalidSize is returned by New when the worker count is < 1.
	ErrInvalidSize = errors.New("workpool: pool size must be >= 1")
)
