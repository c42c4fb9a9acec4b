package repokit

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// BeginHook runs at the start of a transaction with the tx bound Queryer
type BeginHook func(ctx context.Context, q Queryer) error

// WithBeginHooks wraps a TxRunner and runs hooks before fn inside the same tx
func WithBeginHooks(inner TxRunner, hooks ...BeginHook) TxRunner {
	return hookedTx{inner: inner, hooks: hooks}
}

// StatementTimeout bounds every statement of the tx via SET LOCAL
func StatementTimeout(d time.Duration) BeginHook {
	sql := fmt.Sprintf("SET LOCAL statement_timeout = %d", d.Milliseconds())
	return func(ctx context.Context, q Queryer) error {
		_, err := q.Exec(ctx, sql)
		return err
	}
}

type hookedTx struct {
	inner TxRunner
	hooks []BeginHook
}

// Tx starts a tx on inner then runs all hooks before fn
func (h hookedTx) Tx(ctx context.Context, fn func(q Queryer) error) error {
	return h.inner.Tx(ctx, func(q Queryer) error {
		for _, hk := range h.hooks {
			if err := hk(ctx, q); err != nil {
				return err
			}
		}
		return fn(q)
	})
}

// delegate so hookedTx satisfies TxRunner
func (h hookedTx) Exec(ctx context.Context, sql string, args ...any) (CommandTag, error) {
	return h.inner.Exec(ctx, sql, args...)
}

func (h hookedTx) Query(ctx context.Context, sql string, args ...any) (Rows, error) {
	return h.inner.Query(ctx, sql, args...)
}

func (h hookedTx) QueryRow(ctx context.Context, sql string, args ...any) Row {
	return h.inner.QueryRow(ctx, sql, args...)
}

// SaveHook runs against a record before it is written
type SaveHook[T any] func(ctx context.Context, rec T) error

// SaveHooks holds callbacks fired before a record is inserted or updated.
// Save hooks run on every write; create hooks run after them on inserts only.
// The zero value is ready to use
type SaveHooks[T any] struct {
	mu     sync.RWMutex
	save   []SaveHook[T]
	create []SaveHook[T]
}

// OnSave registers fn to run before every insert and update
func (h *SaveHooks[T]) OnSave(fn SaveHook[T]) {
	if fn == nil {
		return
	}
	h.mu.Lock()
	h.save = append(h.save, fn)
	h.mu.Unlock()
}

// OnCreate registers fn to run before inserts
func (h *SaveHooks[T]) OnCreate(fn SaveHook[T]) {
	if fn == nil {
		return
	}
	h.mu.Lock()
	h.create = append(h.create, fn)
	h.mu.Unlock()
}

// Len returns the number of registered save and create hooks
func (h *SaveHooks[T]) Len() (save, create int) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.save), len(h.create)
}

// Run fires the hooks in registration order and stops at the first error
func (h *SaveHooks[T]) Run(ctx context.Context, rec T, creating bool) error {
	h.mu.RLock()
	hooks := append([]SaveHook[T](nil), h.save...)
	if creating {
		hooks = append(hooks, h.create...)
	}
	h.mu.RUnlock()

	for _, fn := range hooks {
		if err := fn(ctx, rec); err != nil {
			return err
		}
	}
	return nil
}
