package bint

import (
	"math/big"

	"github.com/holiman/uint256"
	"github.com/indexsupply/wire/werr"
)

func reverse(b []byte) []byte {
	r := make([]byte, len(b))
	for i := range b {
		r[len(b)-1-i] = b[i]
	}
	return r
}

// Decodes exactly 8 little-endian bytes.
// b is not modified.
func BigInt(b []byte) (*big.Int, error) {
	if len(b) != 8 {
		return nil, werr.New("bint.BigInt", werr.InvalidLength, len(b))
	}
	return new(big.Int).SetBytes(reverse(b)), nil
}

// Encodes v as little-endian bytes, zero padded
// to at least 8 bytes. Values >= 2^64 produce
// more than 8 bytes and are not truncated, so
// the result is only readable by BigInt when v
// fits in 64 bits.
func BigBytes(v *big.Int) ([]byte, error) {
	switch {
	case v == nil:
		return nil, werr.New("bint.BigBytes", werr.EncodingError, nil)
	case v.Sign() < 0:
		return nil, werr.New("bint.BigBytes", werr.OutOfRange, v.String())
	}
	be := v.Bytes()
	if len(be) < 8 {
		be = append(make([]byte, 8-len(be)), be...)
	}
	return reverse(be), nil
}

// Decodes exactly 32 little-endian bytes
func Uint256(b []byte) (uint256.Int, error) {
	var i uint256.Int
	if len(b) != 32 {
		return i, werr.New("bint.Uint256", werr.InvalidLength, len(b))
	}
	i.SetBytes32(reverse(b))
	return i, nil
}

// Encodes v as 32 little-endian bytes
func Uint256Bytes(v *uint256.Int) []byte {
	be := v.Bytes32()
	return reverse(be[:])
}
