// small byte buffer helpers
package wbuf

import "github.com/indexsupply/wire/werr"

// Returns a new slice holding a followed by b
func Concat(a, b []byte) []byte {
	res := make([]byte, len(a)+len(b))
	n := copy(res, a)
	copy(res[n:], b)
	return res
}

// Returns a copy of the first n bytes of buf
func Prefix(buf []byte, n int) ([]byte, error) {
	if n < 0 || n > len(buf) {
		return nil, werr.New("wbuf.Prefix", werr.RangeError, n)
	}
	res := make([]byte, n)
	copy(res, buf)
	return res, nil
}

// Returns the smallest p >= 0 such that
// (size + p) % align == 0
func PadSize(size, align int) (int, error) {
	switch {
	case align <= 0:
		return 0, werr.New("wbuf.PadSize", werr.OutOfRange, align)
	case size < 0:
		return 0, werr.New("wbuf.PadSize", werr.OutOfRange, size)
	}
	return (align - size%align) % align, nil
}

// Returns a copy of buf with trailing
// zeros up to a multiple of align
func Pad(buf []byte, align int) ([]byte, error) {
	p, err := PadSize(len(buf), align)
	if err != nil {
		return nil, err
	}
	return Concat(buf, make([]byte, p)), nil
}
