package modkit

import (
	"context"
	"testing"

	"tzdetect/internal/platform/config"
	"tzdetect/internal/platform/store"
)

type nopTx struct{ store.RowQuerier }

func (nopTx) Tx(ctx context.Context, fn func(q store.RowQuerier) error) error { return fn(nil) }

func TestDeps_HasPG(t *testing.T) {
	t.Parallel()

	var d Deps
	if d.HasPG() {
		t.Fatal("zero Deps should report no PG")
	}

	d = Deps{Cfg: config.New(), PG: nopTx{}}
	if !d.HasPG() {
		t.Fatal("Deps with a TxRunner should report PG")
	}
}
