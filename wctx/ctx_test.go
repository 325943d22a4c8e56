package wctx

import (
	"context"
	"testing"

	"github.com/indexsupply/wire/tc"
)

func TestValues(t *testing.T) {
	ctx := context.Background()
	tc.WantGot(t, "", Op(ctx))
	ctx = WithOp(ctx, "u32le")
	ctx = WithInput(ctx, "0x01000000")
	tc.WantGot(t, "u32le", Op(ctx))
	tc.WantGot(t, "0x01000000", Input(ctx))
}
