package main

import (
	"context"
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/big"
	"os"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/indexsupply/wire/bint"
	"github.com/indexsupply/wire/limb"
	"github.com/indexsupply/wire/wbuf"
	"github.com/indexsupply/wire/wctx"
	"github.com/indexsupply/wire/werr"
	"github.com/indexsupply/wire/wos"
	"github.com/indexsupply/wire/wslog"
	"golang.org/x/text/message"
)

func check(err error) {
	if err != nil {
		fmt.Printf("%s\n", err)
		os.Exit(1)
	}
}

type opts struct {
	width  int
	offset int
	size   int
	align  int
	asJSON bool
}

type result struct {
	Op    string   `json:"op"`
	Input []string `json:"input"`
	Hex   string   `json:"hex,omitempty"`
	Num   string   `json:"num,omitempty"`
	Safe  *bool    `json:"safe,omitempty"`
	Limbs []uint32 `json:"limbs,omitempty"`
}

func main() {
	var (
		ctx     = context.Background()
		op      string
		o       opts
		verbose bool
	)
	flag.StringVar(&op, "op", "", "operation: "+strings.Join(opNames(), ", "))
	flag.IntVar(&o.width, "w", 4, "byte width for bytes op (1, 2, or 4)")
	flag.IntVar(&o.offset, "off", 0, "byte offset for u32le op")
	flag.IntVar(&o.size, "n", 0, "prefix size for prefix op")
	flag.IntVar(&o.align, "align", 8, "alignment for padsize op")
	flag.BoolVar(&o.asJSON, "json", false, "print result as json")
	flag.BoolVar(&verbose, "v", false, "debug logging")
	flag.Parse()

	lh := wslog.NewWithContext(os.Stderr, slog.LevelInfo)
	if verbose {
		lh = wslog.NewWithContext(os.Stderr, slog.LevelDebug)
	}
	slog.SetDefault(slog.New(lh))

	args, err := wos.Getenvs(flag.Args())
	check(err)
	ctx = wctx.WithOp(ctx, op)
	ctx = wctx.WithInput(ctx, strings.Join(args, " "))
	slog.DebugContext(ctx, "start")
	if err := run(ctx, os.Stdout, op, o, args); err != nil {
		slog.ErrorContext(ctx, "convert", "kind", werr.KindOf(err), "error", err)
		os.Exit(1)
	}
}

var ops = map[string]func([]string, opts) (result, error){
	"bigint":   bigIntOp,
	"bigbytes": bigBytesOp,
	"u32le":    u32leOp,
	"bytes":    bytesOp,
	"uint":     uintOp,
	"int8":     int8Op,
	"concat":   concatOp,
	"prefix":   prefixOp,
	"padsize":  padSizeOp,
	"compact":  compactOp,
	"split":    splitOp,
	"u256":     u256Op,
}

func opNames() []string {
	return []string{
		"bigint", "bigbytes", "u32le", "bytes", "uint", "int8",
		"concat", "prefix", "padsize", "compact", "split", "u256",
	}
}

func run(ctx context.Context, w io.Writer, op string, o opts, args []string) error {
	f, ok := ops[op]
	if !ok {
		return fmt.Errorf("unknown op %q. want one of: %s", op, strings.Join(opNames(), ", "))
	}
	res, err := f(args, o)
	if err != nil {
		return werr.Errorf("%s: %w", op, err)
	}
	res.Op, res.Input = op, args
	slog.DebugContext(ctx, "converted", "hex", res.Hex, "num", res.Num)
	if o.asJSON {
		b, err := json.Marshal(res)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", b)
		return err
	}
	return printText(w, res)
}

var printer = message.NewPrinter(message.MatchLanguage("en"))

func printText(w io.Writer, res result) error {
	var lines []string
	if res.Num != "" {
		lines = append(lines, res.Num)
	}
	if res.Hex != "" {
		lines = append(lines, res.Hex)
	}
	if len(res.Limbs) == 2 {
		lines = append(lines, fmt.Sprintf("[%d, %d]", res.Limbs[0], res.Limbs[1]))
	}
	_, err := fmt.Fprintln(w, strings.Join(lines, "\n"))
	return err
}

func nargs(args []string, n int) error {
	if len(args) != n {
		return fmt.Errorf("expected %d argument(s) got %d", n, len(args))
	}
	return nil
}

func decodeHex(s string) ([]byte, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("unable to hex decode %q: %w", s, err)
	}
	return b, nil
}

func hexOf(b []byte) string { return "0x" + hex.EncodeToString(b) }

func grouped[N int | int8 | uint32 | uint64](n N) string {
	return printer.Sprintf("%d", n)
}

// i must be non-negative
func groupedBig(i *big.Int) string {
	var (
		s = i.String()
		b strings.Builder
	)
	for j := range s {
		if j > 0 && (len(s)-j)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteByte(s[j])
	}
	return b.String()
}

func bigIntOp(args []string, _ opts) (result, error) {
	if err := nargs(args, 1); err != nil {
		return result{}, err
	}
	b, err := decodeHex(args[0])
	if err != nil {
		return result{}, err
	}
	i, err := bint.BigInt(b)
	if err != nil {
		return result{}, err
	}
	return result{Num: groupedBig(i)}, nil
}

func bigBytesOp(args []string, _ opts) (result, error) {
	if err := nargs(args, 1); err != nil {
		return result{}, err
	}
	i, ok := new(big.Int).SetString(args[0], 0)
	if !ok {
		return result{}, fmt.Errorf("unable to parse integer %q", args[0])
	}
	b, err := bint.BigBytes(i)
	if err != nil {
		return result{}, err
	}
	return result{Hex: hexOf(b)}, nil
}

func u32leOp(args []string, o opts) (result, error) {
	if err := nargs(args, 1); err != nil {
		return result{}, err
	}
	b, err := decodeHex(args[0])
	if err != nil {
		return result{}, err
	}
	n, err := bint.Uint32LE(b, o.offset)
	if err != nil {
		return result{}, err
	}
	return result{Num: grouped(n)}, nil
}

func bytesOp(args []string, o opts) (result, error) {
	if err := nargs(args, 1); err != nil {
		return result{}, err
	}
	v, err := strconv.ParseUint(args[0], 0, 64)
	if err != nil {
		return result{}, err
	}
	b, err := bint.Bytes(v, o.width)
	if err != nil {
		return result{}, err
	}
	return result{Hex: hexOf(b)}, nil
}

func uintOp(args []string, _ opts) (result, error) {
	if err := nargs(args, 1); err != nil {
		return result{}, err
	}
	b, err := decodeHex(args[0])
	if err != nil {
		return result{}, err
	}
	n, err := bint.Uint(b)
	if err != nil {
		return result{}, err
	}
	return result{Num: grouped(n)}, nil
}

func int8Op(args []string, _ opts) (result, error) {
	if err := nargs(args, 1); err != nil {
		return result{}, err
	}
	v, err := strconv.ParseInt(args[0], 0, 64)
	if err != nil {
		return result{}, err
	}
	n, err := bint.Int8(int(v))
	if err != nil {
		return result{}, err
	}
	return result{Num: grouped(n)}, nil
}

func concatOp(args []string, _ opts) (result, error) {
	if err := nargs(args, 2); err != nil {
		return result{}, err
	}
	a, err := decodeHex(args[0])
	if err != nil {
		return result{}, err
	}
	b, err := decodeHex(args[1])
	if err != nil {
		return result{}, err
	}
	return result{Hex: hexOf(wbuf.Concat(a, b))}, nil
}

func prefixOp(args []string, o opts) (result, error) {
	if err := nargs(args, 1); err != nil {
		return result{}, err
	}
	b, err := decodeHex(args[0])
	if err != nil {
		return result{}, err
	}
	p, err := wbuf.Prefix(b, o.size)
	if err != nil {
		return result{}, err
	}
	return result{Hex: hexOf(p)}, nil
}

func padSizeOp(args []string, o opts) (result, error) {
	if err := nargs(args, 1); err != nil {
		return result{}, err
	}
	size, err := strconv.Atoi(args[0])
	if err != nil {
		return result{}, err
	}
	p, err := wbuf.PadSize(size, o.align)
	if err != nil {
		return result{}, err
	}
	return result{Num: grouped(p)}, nil
}

func compactOp(args []string, _ opts) (result, error) {
	if err := nargs(args, 2); err != nil {
		return result{}, err
	}
	var p limb.Pair
	for i := range p {
		v, err := strconv.ParseUint(args[i], 0, 32)
		if err != nil {
			return result{}, err
		}
		p[i] = uint32(v)
	}
	n, ok := limb.Compact(p)
	if !ok {
		return result{Safe: &ok, Limbs: p[:]}, nil
	}
	return result{Num: grouped(n), Safe: &ok}, nil
}

func splitOp(args []string, _ opts) (result, error) {
	if err := nargs(args, 1); err != nil {
		return result{}, err
	}
	v, err := strconv.ParseUint(args[0], 0, 64)
	if err != nil {
		return result{}, err
	}
	p := limb.Split(v)
	safe := limb.Safe(v)
	return result{Hex: hexOf(p.Bytes()), Limbs: p[:], Safe: &safe}, nil
}

func u256Op(args []string, _ opts) (result, error) {
	if err := nargs(args, 1); err != nil {
		return result{}, err
	}
	b, err := decodeHex(args[0])
	if err != nil {
		return result{}, err
	}
	i, err := bint.Uint256(b)
	if err != nil {
		return result{}, err
	}
	return result{Num: groupedBig(i.ToBig())}, nil
}
