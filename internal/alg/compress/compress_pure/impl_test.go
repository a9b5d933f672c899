package compress_pure_test

import (
	"math"
	"math/bits"
	"testing"

	"github.com/hashkit/md5/internal/alg/compress/compress_pure"
	"github.com/zeebo/assert"
	"github.com/zeebo/pcg"
)

// Regression anchor for the bare transform, independent of any padding
// or serialization above it.
func TestCompressZero(t *testing.T) {
	var state [4]uint32
	var block [16]uint32

	compress_pure.Compress(&state, &block)

	assert.Equal(t, [4]uint32{0xf7cd1c97, 0xa5483681, 0x2b68d832, 0xf90ca639}, state)
}

func TestCompress(t *testing.T) {
	for i := 0; i < 1e4; i++ {
		var s1, s2 [4]uint32
		var block [16]uint32

		for j := range &s1 {
			s1[j] = pcg.Uint32()
		}
		s2 = s1
		for j := range &block {
			block[j] = pcg.Uint32()
		}

		compress_pure.Compress(&s1, &block)
		refCompress(&s2, &block)

		assert.Equal(t, s2, s1)
	}
}

// refCompress is a table-driven rendition of the transform used to
// cross-check the unrolled implementation. Its round constants are
// recomputed from their floor(abs(sin(i+1)) * 2^32) definition so the
// folded constant table is checked too.
var refK [64]uint32

func init() {
	for i := range refK {
		refK[i] = uint32(math.Abs(math.Sin(float64(i+1))) * (1 << 32))
	}
}

var refShift = [4][4]int{
	{7, 12, 17, 22},
	{5, 9, 14, 20},
	{4, 11, 16, 23},
	{6, 10, 15, 21},
}

func refCompress(state *[4]uint32, m *[16]uint32) {
	a, b, c, d := state[0], state[1], state[2], state[3]

	for i := 0; i < 64; i++ {
		var f uint32
		var g int

		switch {
		case i < 16:
			f = (b & c) | (^b & d)
			g = i
		case i < 32:
			f = (b & d) | (c & ^d)
			g = (5*i + 1) % 16
		case i < 48:
			f = b ^ c ^ d
			g = (3*i + 5) % 16
		default:
			f = c ^ (b | ^d)
			g = (7 * i) % 16
		}

		s := refShift[i/16][i%4]
		a, d, c, b = d, c, b, b+bits.RotateLeft32(a+f+m[g]+refK[i], s)
	}

	state[0] += a
	state[1] += b
	state[2] += c
	state[3] += d
}
