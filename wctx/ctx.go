// index for context values
package wctx

import "context"

type key int

const (
	opKey    key = 1
	inputKey key = 2
)

func WithOp(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, opKey, name)
}

func Op(ctx context.Context) string {
	name, _ := ctx.Value(opKey).(string)
	return name
}

func WithInput(ctx context.Context, in string) context.Context {
	return context.WithValue(ctx, inputKey, in)
}

func Input(ctx context.Context) string {
	in, _ := ctx.Value(inputKey).(string)
	return in
}
