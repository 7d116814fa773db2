// SPDX-License-Identifier: MIT

package gridgraph

import "errors"

// ErrBadDimensions indicates negative row or column counts passed to NewGraph.
var ErrBadDimensions = errors.New("gridgraph: rows and cols must be non-negative")
