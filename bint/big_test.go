package bint

import (
	"math/big"
	"testing"

	"github.com/holiman/uint256"
	"github.com/indexsupply/wire/tc"
	"github.com/indexsupply/wire/werr"
	"kr.dev/diff"
)

func FuzzBigInt(f *testing.F) {
	f.Add([]byte{1, 2, 3, 4, 5, 6, 7, 8})
	f.Add([]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff})
	f.Fuzz(func(t *testing.T, b []byte) {
		if len(b) != 8 {
			return
		}
		i, err := BigInt(b)
		tc.NoErr(t, err)
		got, err := BigBytes(i)
		tc.NoErr(t, err)
		diff.Test(t, t.Errorf, got, b)
	})
}

func TestBigInt(t *testing.T) {
	input := []byte{0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01}
	got, err := BigInt(input)
	tc.NoErr(t, err)
	diff.Test(t, t.Errorf, got.Text(16), "102030405060708")
	diff.Test(t, t.Errorf, input, []byte{0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01})

	got, err = BigInt([]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff})
	tc.NoErr(t, err)
	diff.Test(t, t.Errorf, got.String(), "18446744073709551615")

	for _, n := range []int{0, 7, 9} {
		_, err := BigInt(make([]byte, n))
		tc.ErrKind(t, err, werr.InvalidLength)
	}
}

func TestBigBytes(t *testing.T) {
	cases := []struct {
		desc  string
		input *big.Int
		want  []byte
	}{
		{"zero", big.NewInt(0), make([]byte, 8)},
		{"one", big.NewInt(1), []byte{1, 0, 0, 0, 0, 0, 0, 0}},
		{
			"2^64",
			new(big.Int).Lsh(big.NewInt(1), 64),
			[]byte{0, 0, 0, 0, 0, 0, 0, 0, 1},
		},
	}
	for _, c := range cases {
		got, err := BigBytes(c.input)
		tc.NoErr(t, err)
		diff.Test(t, t.Errorf, got, c.want)
	}

	_, err := BigBytes(big.NewInt(-1))
	tc.ErrKind(t, err, werr.OutOfRange)
	_, err = BigBytes(nil)
	tc.ErrKind(t, err, werr.EncodingError)
}

func TestUint256(t *testing.T) {
	want := uint256.NewInt(0x0102)
	b := Uint256Bytes(want)
	diff.Test(t, t.Errorf, len(b), 32)
	diff.Test(t, t.Errorf, b[:3], []byte{0x02, 0x01, 0x00})

	got, err := Uint256(b)
	tc.NoErr(t, err)
	tc.WantGot(t, *want, got)

	_, err = Uint256(make([]byte, 31))
	tc.ErrKind(t, err, werr.InvalidLength)
}
