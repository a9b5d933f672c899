package consts

import "unsafe"

// TODO: maybe this would be better if it was a const. then the compiler could
// do dead code elimination.
var IsLittleEndian = *(*uint32)(unsafe.Pointer(&[4]byte{0, 0, 0, 1})) != 1

var IV = [...]uint32{IV0, IV1, IV2, IV3}

const (
	IV0 = 0x67452301
	IV1 = 0xEFCDAB89
	IV2 = 0x98BADCFE
	IV3 = 0x10325476
)

const (
	BlockLen   = 64
	DigestLen  = 16
	TrailerLen = 8
)
