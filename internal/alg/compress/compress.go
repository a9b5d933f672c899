// Package compress is the call boundary for the block transform. The
// streaming layer only ever goes through Compress, so an optimized
// backend can be slotted in here without touching anything above it.
package compress

import (
	"github.com/hashkit/md5/internal/alg/compress/compress_pure"
)

// Compress absorbs one 64-byte block, given as sixteen little-endian
// words, into the running state in place.
func Compress(state *[4]uint32, block *[16]uint32) {
	compress_pure.Compress(state, block)
}
