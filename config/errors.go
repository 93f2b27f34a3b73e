// SPDX-License-Identifier: MIT

package config

import "errors"

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("config: invalid configuration")
