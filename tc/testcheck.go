package tc

import (
	"errors"
	"reflect"
	"testing"

	"github.com/indexsupply/wire/werr"
	"github.com/kr/pretty"
)

func NoErr(t testing.TB, err error) {
	t.Helper()
	if err != nil {
		t.Errorf("expected no error. got: %s", err)
	}
}

func WantGot(tb testing.TB, want, got any) {
	tb.Helper()
	if !reflect.DeepEqual(want, got) {
		tb.Error(pretty.Sprintf("want: %v got: %v", want, got))
	}
}

// Fails unless err wraps the error kind k
func ErrKind(tb testing.TB, err error, k werr.Kind) {
	tb.Helper()
	if !errors.Is(err, k) {
		tb.Error(pretty.Sprintf("want kind: %s got: %# v", k, err))
	}
}
