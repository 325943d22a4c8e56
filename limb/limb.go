// A uint64 split into two uint32 limbs: [low, high].
//
// Values are native uint64 inside this module. Pair is
// the boundary format for callers that still exchange
// limbs, and Compact only hands back a scalar when the
// value survives a round trip through a float64.
package limb

import "github.com/indexsupply/wire/werr"

// 2^53-1
const MaxSafe uint64 = 1<<53 - 1

// high limbs at or above this are not safe
const safeHigh uint32 = 0x00200000

type Pair [2]uint32

func (p Pair) Low() uint32  { return p[0] }
func (p Pair) High() uint32 { return p[1] }

func (p Pair) Uint64() uint64 {
	return uint64(p[1])<<32 | uint64(p[0])
}

func Split(v uint64) Pair {
	return Pair{uint32(v), uint32(v >> 32)}
}

// Returns high*2^32 + low and true when the
// value is <= MaxSafe. Otherwise returns false
// and the caller should keep using p.
func Compact(p Pair) (uint64, bool) {
	if p[1] >= safeHigh {
		return 0, false
	}
	return p.Uint64(), true
}

func Safe(v uint64) bool { return v <= MaxSafe }

// 8 bytes, low limb first, each limb little-endian
func (p Pair) Bytes() []byte {
	b := make([]byte, 8)
	for i := 0; i < 4; i++ {
		b[i] = byte(p[0] >> (8 * i))
		b[i+4] = byte(p[1] >> (8 * i))
	}
	return b
}

func FromBytes(b []byte) (Pair, error) {
	if len(b) != 8 {
		return Pair{}, werr.New("limb.FromBytes", werr.InvalidLength, len(b))
	}
	var p Pair
	for i := 3; i >= 0; i-- {
		p[0] = p[0]<<8 | uint32(b[i])
		p[1] = p[1]<<8 | uint32(b[i+4])
	}
	return p, nil
}
