package limb

import (
	"math"
	"testing"

	"github.com/indexsupply/wire/bint"
	"github.com/indexsupply/wire/tc"
	"github.com/indexsupply/wire/werr"
	"kr.dev/diff"
)

func FuzzSplit(f *testing.F) {
	f.Add(uint64(0))
	f.Add(MaxSafe)
	f.Add(uint64(math.MaxUint64))
	f.Fuzz(func(t *testing.T, v uint64) {
		p := Split(v)
		diff.Test(t, t.Errorf, p.Uint64(), v)
		n, ok := Compact(p)
		diff.Test(t, t.Errorf, ok, Safe(v))
		if ok {
			diff.Test(t, t.Errorf, n, v)
		}
		got, err := FromBytes(p.Bytes())
		tc.NoErr(t, err)
		diff.Test(t, t.Errorf, got, p)
	})
}

func TestCompact(t *testing.T) {
	cases := []struct {
		input Pair
		want  uint64
		ok    bool
	}{
		{Pair{5, 0}, 5, true},
		{Pair{0, 1}, 1 << 32, true},
		{Pair{math.MaxUint32, 0x001fffff}, MaxSafe, true},
		{Pair{0, 0x00200000}, 0, false},
		{Pair{math.MaxUint32, math.MaxUint32}, 0, false},
	}
	for _, c := range cases {
		got, ok := Compact(c.input)
		diff.Test(t, t.Errorf, ok, c.ok)
		diff.Test(t, t.Errorf, got, c.want)
	}
}

func TestCompact_Float64(t *testing.T) {
	n, ok := Compact(Split(MaxSafe))
	if !ok {
		t.Fatal("expected MaxSafe to compact")
	}
	diff.Test(t, t.Errorf, uint64(float64(n)), n)
	_, ok = Compact(Split(MaxSafe + 1))
	diff.Test(t, t.Errorf, ok, false)
}

func TestSplit(t *testing.T) {
	diff.Test(t, t.Errorf, Split(5), Pair{5, 0})
	diff.Test(t, t.Errorf, Split(1<<32+7), Pair{7, 1})
	p := Split(0x0000000a_00000003)
	diff.Test(t, t.Errorf, p.Low(), uint32(3))
	diff.Test(t, t.Errorf, p.High(), uint32(10))
}

func TestBytes(t *testing.T) {
	p := Pair{0x04030201, 0x08070605}
	diff.Test(t, t.Errorf, p.Bytes(), []byte{1, 2, 3, 4, 5, 6, 7, 8})

	// limb wire form agrees with the 8 byte big integer path
	i, err := bint.BigInt(p.Bytes())
	tc.NoErr(t, err)
	diff.Test(t, t.Errorf, i.Uint64(), p.Uint64())

	_, err = FromBytes([]byte{1, 2, 3})
	tc.ErrKind(t, err, werr.InvalidLength)
}
