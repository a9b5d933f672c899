package md5

import (
	"bytes"
	"encoding/hex"
	"sync"

	"github.com/pkg/errors"
)

// Vector is a published message/digest pair. Digest holds the 32 hex
// characters of the digest in serialized (little-endian word) order.
type Vector struct {
	Digest string
	Input  string
}

// vectors is the fixed self-check table: the seven vectors published
// with RFC 1321.
var vectors = [...]Vector{
	{"d41d8cd98f00b204e9800998ecf8427e", ""},
	{"0cc175b9c0f1b6a831c399e269772661", "a"},
	{"900150983cd24fb0d6963f7d28e17f72", "abc"},
	{"f96b697d7cb7938d525a2f31aaf161d0", "message digest"},
	{"c3fcd3d76192e4007dfb496cca67e13b", "abcdefghijklmnopqrstuvwxyz"},
	{"d174ab98d277d9f5a5611c2c9f419d9f", "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"},
	{"57edf4a22be3c955ac49da2e2107b67a", "12345678901234567890123456789012345678901234567890123456789012345678901234567890"},
}

// Vectors returns a copy of the self-check table, for callers that want
// to run their own verification.
func Vectors() []Vector {
	return append([]Vector(nil), vectors[:]...)
}

var (
	checkOnce sync.Once
	checkErr  error
)

// SelfCheck hashes every vector in the table and compares the digests
// byte for byte. The result is computed once and cached: a mismatch is
// deterministic and signals a defective build, not a transient fault.
func SelfCheck() error {
	checkOnce.Do(func() { checkErr = checkVectors(vectors[:]) })
	return checkErr
}

func checkVectors(vs []Vector) error {
	for _, v := range vs {
		exp, err := hex.DecodeString(v.Digest)
		if err != nil {
			return errors.Wrapf(err, "md5: bad vector for input %q", v.Input)
		}

		var h hasher
		h.reset()
		h.update([]byte(v.Input))
		got := h.finalize()

		if !bytes.Equal(got[:], exp) {
			return errors.Errorf("md5: self-check failed for input %q: got %x, want %x",
				v.Input, got[:], exp)
		}
	}
	return nil
}

func mustSelfCheck() {
	if err := SelfCheck(); err != nil {
		panic(err)
	}
}
