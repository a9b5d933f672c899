package md5

import (
	stdmd5 "crypto/md5"
	"encoding/hex"
	"testing"

	"github.com/zeebo/assert"
	"github.com/zeebo/pcg"
)

func TestVectors(t *testing.T) {
	for _, v := range vectors {
		h := New()
		n, err := h.WriteString(v.Input)
		assert.NoError(t, err)
		assert.Equal(t, len(v.Input), n)
		assert.Equal(t, v.Digest, hex.EncodeToString(h.Sum(nil)))

		sum := Sum16([]byte(v.Input))
		assert.Equal(t, v.Digest, hex.EncodeToString(sum[:]))
	}
}

func TestPaddingBoundaries(t *testing.T) {
	// 55 is the longest message whose marker byte and length trailer
	// still fit in a single block; 56 through 63 force the two-block
	// path; 64 and 65 put a full data block in front of both cases.
	for _, n := range []int{0, 1, 54, 55, 56, 57, 63, 64, 65, 119, 120, 127, 128, 129} {
		msg := make([]byte, n)
		for i := range msg {
			msg[i] = byte(i) % 251
		}

		exp := stdmd5.Sum(msg)
		got := Sum16(msg)
		assert.Equal(t, exp, got)
	}
}

func TestAgainstStdlib(t *testing.T) {
	for i := 0; i < 1000; i++ {
		msg := make([]byte, pcg.Uint32()%300)
		for j := range msg {
			msg[j] = byte(pcg.Uint32())
		}

		exp := stdmd5.Sum(msg)
		got := Sum16(msg)
		assert.Equal(t, exp, got)
	}
}

func TestDeterministic(t *testing.T) {
	msg := []byte("determinism check over a couple of blocks of input data, " +
		"long enough to cross the first block boundary")

	first := Sum16(msg)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Sum16(msg))
	}
}
