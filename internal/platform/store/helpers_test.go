package store

import (
	"context"
	"errors"
	"reflect"
	"strconv"
	"strings"
	"testing"
	"time"

	perr "tzdetect/internal/platform/errors"
)

type cmdTag string

func (c cmdTag) String() string { return string(c) }
func (c cmdTag) RowsAffected() int64 {
	s := string(c)
	i := strings.LastIndexByte(s, ' ')
	if i < 0 {
		return 0
	}
	n, err := strconv.ParseInt(s[i+1:], 10, 64)
	if err != nil {
		return 0
	}
	return n
}

type fakeRowQuerier struct {
	lastExecSQL string
	lastExecArg []any
	execTag     CommandTag
	execErr     error

	queryRows Rows
	queryErr  error

	qrRow   Row
	qrErr   error
	qrCalls int
}

func (f *fakeRowQuerier) Exec(ctx context.Context, sql string, args ...any) (CommandTag, error) {
	f.lastExecSQL = sql
	f.lastExecArg = args
	return f.execTag, f.execErr
}

func (f *fakeRowQuerier) Query(ctx context.Context, sql string, args ...any) (Rows, error) {
	return f.queryRows, f.queryErr
}

func (f *fakeRowQuerier) QueryRow(ctx context.Context, sql string, args ...any) Row {
	f.qrCalls++
	return &fakeRow{err: f.qrErr, val: f.qrRow}
}

type fakeRow struct {
	// if val != nil and is *fakeRow, delegate; else Scan first arg
	val Row
	err error
}

func (r *fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if r.val != nil {
		return r.val.Scan(dest...)
	}
	// default: put a constant into first dest if it's *T
	if len(dest) > 0 {
		switch p := dest[0].(type) {
		case *int:
			*p = 42
		case *string:
			*p = "ok"
		default:
			// try reflection
			rv := reflect.ValueOf(dest[0])
			if rv.Kind() == reflect.Pointer && rv.Elem().CanSet() {
				zero := reflect.Zero(rv.Elem().Type())
				rv.Elem().Set(zero)
			}
		}
	}
	return nil
}

type fakeRows struct {
	cols   []string
	data   [][]any // each row is len(cols)
	idx    int     // -1 before first
	err    error
	closed bool
}

func newRows(cols []string, data [][]any) *fakeRows {
	return &fakeRows{cols: cols, data: data, idx: -1}
}
func (r *fakeRows) Columns() []string { return r.cols }
func (r *fakeRows) Next() bool {
	if r.err != nil {
		return false
	}
	r.idx++
	return r.idx >= 0 && r.idx < len(r.data)
}

func (r *fakeRows) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if r.idx < 0 || r.idx >= len(r.data) {
		return errors.New("scan out of bounds")
	}
	row := r.data[r.idx]
	if len(dest) != len(row) {
		return errors.New("dest len mismatch")
	}
	for i := range dest {
		// dest[i] is pointer; set underlying to row[i]
		dv := reflect.ValueOf(dest[i])
		if dv.Kind() != reflect.Pointer || !dv.Elem().CanSet() {
			return errors.New("dest not settable")
		}
		val := reflect.ValueOf(row[i])
		// if types don't match, try conversion for common cases
		if val.IsValid() && val.Type().AssignableTo(dv.Elem().Type()) {
			dv.Elem().Set(val)
			continue
		}
		// []byte -> string
		if b, ok := row[i].([]byte); ok && dv.Elem().Kind() == reflect.String {
			dv.Elem().SetString(string(b))
			continue
		}
		// string -> []byte
		if s, ok := row[i].(string); ok && dv.Elem().Kind() == reflect.Slice &&
			dv.Elem().Type().Elem().Kind() == reflect.Uint8 {
			dv.Elem().SetBytes([]byte(s))
			continue
		}
		if val.IsValid() && val.Type().ConvertibleTo(dv.Elem().Type()) {
			dv.Elem().Set(val.Convert(dv.Elem().Type()))
			continue
		}
		dv.Elem().Set(reflect.Zero(dv.Elem().Type()))
	}
	return nil
}
func (r *fakeRows) Err() error { return r.err }
func (r *fakeRows) Close()     { r.closed = true }

/*
	tests
*/

func TestExec_Passthrough(t *testing.T) {
	t.Parallel()

	f := &fakeRowQuerier{execTag: cmdTag("INSERT 0 3")}
	tag, err := Exec(context.Background(), f, "insert x", 1, "a")
	if err != nil {
		t.Fatalf("Exec err: %v", err)
	}
	if tag.String() != "INSERT 0 3" {
		t.Fatalf("tag mismatch: %q", tag.String())
	}
	if f.lastExecSQL != "insert x" || len(f.lastExecArg) != 2 {
		t.Fatalf("exec call not recorded properly")
	}
}

func TestExecOne(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		tag      cmdTag
		execErr  error
		wantErr  bool
		notFound bool
	}{
		{"insert one", "INSERT 0 1", nil, false, false},
		{"update one", "UPDATE 1", nil, false, false},
		{"update ten", "UPDATE 10", nil, true, false},
		{"none", "DELETE 0", nil, true, true},
		{"exec error", "", errors.New("boom"), true, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f := &fakeRowQuerier{execTag: c.tag, execErr: c.execErr}
			err := ExecOne(context.Background(), f, "q")
			if (err != nil) != c.wantErr {
				t.Fatalf("ExecOne err=%v wantErr=%v", err, c.wantErr)
			}
			if got := perr.IsCode(err, perr.ErrorCodeNotFound); got != c.notFound {
				t.Fatalf("ExecOne notFound=%v want %v (err=%v)", got, c.notFound, err)
			}
		})
	}
}

func TestStructByName(t *testing.T) {
	t.Parallel()

	type account struct {
		ID        string    `db:"id"`
		City      string    `db:"city"`
		Timezone  *string   `db:"timezone"`
		Raw       []byte    // string -> []byte conversion path
		Note      string    // []byte -> string conversion path
		UpdatedAt time.Time `db:"updated_at"`
	}

	tm := time.Date(2025, 8, 26, 12, 0, 0, 0, time.UTC)
	tz := "America/Chicago"
	cols := []string{"id", "city", "timezone", "raw", "note", "updated_at"}
	data := [][]any{
		{"a1", "Austin", &tz, "hello", []byte("bytes"), &tm},
		{"a2", "Toronto", nil, "x", []byte("y"), &tm},
	}

	a, err := StructByName[account](context.Background(), &fakeRowQuerier{queryRows: newRows(cols, data[:1])}, "q")
	if err != nil {
		t.Fatalf("StructByName err: %v", err)
	}
	if a.ID != "a1" || a.City != "Austin" || a.Timezone == nil || *a.Timezone != tz ||
		string(a.Raw) != "hello" || a.Note != "bytes" || !a.UpdatedAt.Equal(tm) {
		t.Fatalf("StructByName mismatch: %#v", a)
	}

	// nil column leaves pointer field nil
	a2, err := StructByName[account](context.Background(), &fakeRowQuerier{queryRows: newRows(cols, data[1:])}, "q")
	if err != nil || a2.Timezone != nil {
		t.Fatalf("nil column: %#v %v", a2, err)
	}

	// drivers hand back plain values for nullable columns
	a3, err := StructByName[account](context.Background(), &fakeRowQuerier{queryRows: newRows(cols, [][]any{
		{"a3", "Ottawa", "America/Toronto", "x", []byte("y"), tm},
	})}, "q")
	if err != nil || a3.Timezone == nil || *a3.Timezone != "America/Toronto" || !a3.UpdatedAt.Equal(tm) {
		t.Fatalf("value into pointer: %#v %v", a3, err)
	}

	_, err = StructByName[account](context.Background(), &fakeRowQuerier{queryRows: newRows(cols, nil)}, "q")
	if !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	_, err = StructByName[account](context.Background(), &fakeRowQuerier{queryRows: newRows(cols, data)}, "q")
	if err == nil {
		t.Fatalf("expected error on >1 row")
	}
}

func TestIndexStructFields_SkipsUnexported_AndCaseInsensitive(t *testing.T) {
	t.Parallel()

	type s struct {
		Name   string `db:"Full_Name"`
		hidden int
		Skip   int `db:"-"`
	}
	idx := indexStructFields(reflect.TypeOf(s{}))
	if _, ok := idx["full_name"]; !ok {
		t.Fatalf("expected lowercased tag key, got %v", idx)
	}
	if _, ok := idx["hidden"]; ok {
		t.Fatalf("unexported field indexed")
	}
	if _, ok := idx["skip"]; !ok {
		t.Fatalf("db:\"-\" falls back to field name")
	}
}
