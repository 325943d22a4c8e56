// little-endian fixed width integer encoding/decoding
package bint

import (
	"github.com/indexsupply/wire/werr"
)

// Encodes v into exactly width little-endian bytes.
// width must be 1, 2, or 4 and v must fit in width bytes.
// Values wider than 4 bytes go through BigBytes or limb.Split.
func Bytes(v uint64, width int) ([]byte, error) {
	switch width {
	case 1, 2, 4:
	default:
		return nil, werr.New("bint.Bytes", werr.UnsupportedWidth, width)
	}
	if v>>(8*width) != 0 {
		return nil, werr.New("bint.Bytes", werr.EncodingError, v)
	}
	b := make([]byte, width)
	for i := range b {
		b[i] = byte(v)
		v >>= 8
	}
	return b, nil
}

// Decodes 1, 2, or 4 little-endian bytes
func Uint(b []byte) (uint32, error) {
	switch len(b) {
	case 1:
		return uint32(b[0]), nil
	case 2:
		return uint32(b[0]) | uint32(b[1])<<8, nil
	case 4:
		return Uint32LE(b, 0)
	default:
		return 0, werr.New("bint.Uint", werr.UnsupportedLength, len(b))
	}
}

// Reads b[off:off+4] as a little-endian uint32
func Uint32LE(b []byte, off int) (uint32, error) {
	if off < 0 || off > len(b)-4 {
		return 0, werr.New("bint.Uint32LE", werr.IndexOutOfRange, off)
	}
	_ = b[off+3]
	return uint32(b[off]) |
		uint32(b[off+1])<<8 |
		uint32(b[off+2])<<16 |
		uint32(b[off+3])<<24, nil
}

// Reinterprets the bits of a byte (0-255) as
// a two's complement int8. 0xff becomes -1.
func Int8(v int) (int8, error) {
	if v < 0 || v > 0xff {
		return 0, werr.New("bint.Int8", werr.OutOfRange, v)
	}
	return int8(uint8(v)), nil
}

func Uint8(v int8) uint8 { return uint8(v) }
