package md5

import (
	"encoding/binary"
	"unsafe"

	"github.com/hashkit/md5/internal/alg/compress"
	"github.com/hashkit/md5/internal/consts"
	"github.com/hashkit/md5/internal/utils"
)

//
// hasher contains state for one in-progress md5 computation
//

type hasher struct {
	state [4]uint32
	len   uint64 // total bytes consumed
	n     int    // bytes buffered in buf, always < consts.BlockLen
	buf   [consts.BlockLen]byte
}

func (h *hasher) reset() {
	h.state = consts.IV
	h.len = 0
	h.n = 0
}

func (h *hasher) update(p []byte) {
	h.len += uint64(len(p))

	if h.n > 0 {
		n := copy(h.buf[h.n:], p)
		h.n += n
		p = p[n:]
		if h.n == consts.BlockLen {
			compressBlock(&h.state, &h.buf)
			h.n = 0
		}
	}

	for len(p) >= consts.BlockLen {
		compressBlock(&h.state, (*[consts.BlockLen]byte)(unsafe.Pointer(&p[0])))
		p = p[consts.BlockLen:]
	}

	if len(p) > 0 {
		h.n = copy(h.buf[:], p)
	}
}

// finalize pads and compresses the trailing partial block against a
// copy of the state, leaving the hasher usable for further writes.
func (h *hasher) finalize() [consts.DigestLen]byte {
	state := h.state

	var block [consts.BlockLen]byte
	n := copy(block[:], h.buf[:h.n])
	block[n] = 0x80
	n++

	// If the 8-byte length trailer no longer fits, the marker block is
	// compressed on its own and the trailer goes into a fresh one.
	if consts.BlockLen-n < consts.TrailerLen {
		compressBlock(&state, &block)
		block = [consts.BlockLen]byte{}
	}

	// Bit length of the message, wrapped mod 2^64.
	binary.LittleEndian.PutUint64(block[consts.BlockLen-consts.TrailerLen:], h.len<<3)
	compressBlock(&state, &block)

	var out [consts.DigestLen]byte
	utils.WordsToBytes(&state, out[:])
	return out
}

// compressBlock feeds exactly one full block to the compression core.
func compressBlock(state *[4]uint32, block *[consts.BlockLen]byte) {
	if consts.IsLittleEndian {
		compress.Compress(state, (*[16]uint32)(unsafe.Pointer(block)))
	} else {
		var words [16]uint32
		utils.BytesToWords(block, &words)
		compress.Compress(state, &words)
	}
}
