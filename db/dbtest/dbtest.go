// Package dbtest provides a db.Querier fake for statement-level tests.
package dbtest

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// FakeQuerier records every statement it is handed and plays back canned
// results, so statement construction and error mapping are testable
// without a database.
type FakeQuerier struct {
	SQL  []string
	Args [][]any

	ExecTag pgconn.CommandTag
	ExecErr error

	QueryRows *StringRows
	QueryErr  error

	RowScan func(dest ...any) error
}

func (f *FakeQuerier) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.SQL = append(f.SQL, sql)
	f.Args = append(f.Args, args)
	return f.ExecTag, f.ExecErr
}

func (f *FakeQuerier) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	f.SQL = append(f.SQL, sql)
	f.Args = append(f.Args, args)
	if f.QueryErr != nil {
		return nil, f.QueryErr
	}
	if f.QueryRows == nil {
		return &StringRows{}, nil
	}
	return f.QueryRows, nil
}

func (f *FakeQuerier) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	f.SQL = append(f.SQL, sql)
	f.Args = append(f.Args, args)
	return fakeRow{scan: f.RowScan}
}

type fakeRow struct {
	scan func(dest ...any) error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.scan == nil {
		return errors.New("no row")
	}
	return r.scan(dest...)
}

// StringRows plays back a single text column.
type StringRows struct {
	Data   []string
	pos    int
	RowErr error
}

func (r *StringRows) Close()                                       {}
func (r *StringRows) Err() error                                   { return r.RowErr }
func (r *StringRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *StringRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *StringRows) Values() ([]any, error)                       { return nil, nil }
func (r *StringRows) RawValues() [][]byte                          { return nil }
func (r *StringRows) Conn() *pgx.Conn                              { return nil }

func (r *StringRows) Next() bool {
	return r.pos < len(r.Data)
}

func (r *StringRows) Scan(dest ...any) error {
	p, ok := dest[0].(*string)
	if !ok {
		return errors.New("dest is not *string")
	}
	*p = r.Data[r.pos]
	r.pos++
	return nil
}
