// Package md5 implements the MD5 message-digest algorithm from RFC 1321
// with a fully portable compression core.
//
// MD5 is cryptographically broken and must not be used where collision
// resistance matters; it survives as a checksum and for compatibility
// with existing formats. Before the first digest is produced the package
// verifies itself against the published test vectors and refuses to run
// if they do not match; see SelfCheck.
package md5

import (
	"hash"
)

// Size of an MD5 digest in bytes.
const Size = 16

// BlockSize of the compression function in bytes.
const BlockSize = 64

// Hasher computes an MD5 digest incrementally. It implements hash.Hash.
type Hasher struct {
	h hasher
}

var _ hash.Hash = (*Hasher)(nil)

// New returns a new Hasher. It panics if the package self-check has
// failed, so a defective build cannot silently produce wrong digests.
func New() *Hasher {
	mustSelfCheck()
	h := &Hasher{}
	h.h.reset()
	return h
}

// Write implements part of the hash.Hash interface. It never returns an error.
func (h *Hasher) Write(p []byte) (int, error) {
	h.h.update(p)
	return len(p), nil
}

// WriteString is like Write but takes a string.
func (h *Hasher) WriteString(s string) (int, error) {
	return h.Write([]byte(s))
}

// Reset implements part of the hash.Hash interface. It causes the Hasher to
// act as if it was newly created.
func (h *Hasher) Reset() {
	h.h.reset()
}

// Size implements part of the hash.Hash interface. It returns the number of
// bytes the hash will output, which is always 16.
func (h *Hasher) Size() int {
	return Size
}

// BlockSize implements part of the hash.Hash interface.
func (h *Hasher) BlockSize() int {
	return BlockSize
}

// Sum implements part of the hash.Hash interface. It appends the digest of
// the Hasher to the provided buffer and returns it. The state is not
// consumed, so more data may be written afterward.
func (h *Hasher) Sum(b []byte) []byte {
	d := h.h.finalize()
	return append(b, d[:]...)
}

// Clone returns a new Hasher with the same state.
func (h *Hasher) Clone() *Hasher {
	c := *h
	return &c
}

// Sum16 returns the MD5 digest of data. Like New, it panics if the
// package self-check has failed.
func Sum16(data []byte) [Size]byte {
	mustSelfCheck()
	var h hasher
	h.reset()
	h.update(data)
	return h.finalize()
}
