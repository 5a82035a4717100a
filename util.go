package zpacker

import (
	"encoding/binary"

	"golang.org/x/exp/constraints"
)

// hostOrder is the byte order of the wire format. The format deliberately
// inherits host endianness; cross-architecture portability is not a goal
// and adding it later is a version-bumping change.
var hostOrder = binary.NativeEndian

// Roundup rounds n up to the nearest multiple of align.
func Roundup[T constraints.Integer](n, align T) T { return (n + (align - 1)) &^ (align - 1) }
