package db

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
)

// fakeTx satisfies pgx.Tx through embedding; its methods are never called.
type fakeTx struct{ pgx.Tx }

func TestConnFromContextEmpty(t *testing.T) {
	if c := ConnFromContext(context.Background()); c != nil {
		t.Errorf("ConnFromContext on bare context = %v", c)
	}
}

func TestTxFromContextEmpty(t *testing.T) {
	if tx := TxFromContext(context.Background()); tx != nil {
		t.Errorf("TxFromContext on bare context = %v", tx)
	}
}

func TestTxFromContextIgnoresWrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), DBTxKey, "not a tx")
	if tx := TxFromContext(ctx); tx != nil {
		t.Errorf("TxFromContext with wrong type = %v", tx)
	}
}

func TestInTxJoinsExistingTransaction(t *testing.T) {
	// A context already carrying a transaction must be passed through
	// untouched; commit belongs to the outermost caller. A nil pool proves
	// no new transaction is begun.
	ctx := context.WithValue(context.Background(), DBTxKey, pgx.Tx(fakeTx{}))

	called := false
	err := InTx(ctx, nil, func(inner context.Context) error {
		called = true
		if inner.Value(DBTxKey) == nil {
			t.Error("joined transaction missing from inner context")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("InTx: %v", err)
	}
	if !called {
		t.Fatal("fn never ran")
	}
}
