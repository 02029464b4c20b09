// Package stdlib carries the standard-library source text compiled into the
// binary. The core reads it once at bootstrap and evaluates it in the global
// scope.
package stdlib

import _ "embed"

//go:embed stdlib.llth
var Source string

// Name is the pseudo file name used in reader diagnostics.
const Name = "stdlib.llth"
