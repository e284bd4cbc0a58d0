package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// call records one statement issued against the fake connection.
type call struct {
	sql  string
	args []any
}

type fakeRow struct {
	scan func(dest ...any) error
}

func (r fakeRow) Scan(dest ...any) error {
	return r.scan(dest...)
}

// fakeTx satisfies pgx.Tx through embedding; only the methods the
// repositories use are implemented.
type fakeTx struct {
	pgx.Tx
	calls      []call
	committed  bool
	rolledBack bool
	commitErr  error

	queryRowFn func(sql string, args []any) pgx.Row
	execFn     func(sql string, args []any) (pgconn.CommandTag, error)
}

func (t *fakeTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	t.calls = append(t.calls, call{sql: sql, args: args})
	return t.queryRowFn(sql, args)
}

func (t *fakeTx) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	t.calls = append(t.calls, call{sql: sql, args: args})
	return t.execFn(sql, args)
}

func (t *fakeTx) Commit(ctx context.Context) error {
	if t.commitErr != nil {
		return t.commitErr
	}
	t.committed = true
	return nil
}

func (t *fakeTx) Rollback(ctx context.Context) error {
	if t.committed {
		return pgx.ErrTxClosed
	}
	t.rolledBack = true
	return nil
}

// fakeRows is an empty result set; Scan is never reached.
type fakeRows struct {
	pgx.Rows
}

func (fakeRows) Next() bool { return false }
func (fakeRows) Close()     {}
func (fakeRows) Err() error { return nil }

// fakeDB satisfies database.PgxIface for repositories under test.
type fakeDB struct {
	tx       *fakeTx
	beginErr error
	queries  []call

	queryFn    func(sql string, args []any) (pgx.Rows, error)
	queryRowFn func(sql string, args []any) pgx.Row
	execFn     func(sql string, args []any) (pgconn.CommandTag, error)
}

func (d *fakeDB) Begin(ctx context.Context) (pgx.Tx, error) {
	if d.beginErr != nil {
		return nil, d.beginErr
	}
	return d.tx, nil
}

func (d *fakeDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	d.queries = append(d.queries, call{sql: sql, args: args})
	if d.queryFn != nil {
		return d.queryFn(sql, args)
	}
	return nil, errors.New("query not supported by fake")
}

func (d *fakeDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return d.queryRowFn(sql, args)
}

func (d *fakeDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return d.execFn(sql, args)
}

func (d *fakeDB) Ping(ctx context.Context) error { return nil }

func (d *fakeDB) Close() {}

func scanID(id int64) func(dest ...any) error {
	return func(dest ...any) error {
		*(dest[0].(*int64)) = id
		return nil
	}
}
