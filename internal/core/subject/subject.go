// Package subject adapts host records to named field reads and writes
package subject

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"unicode"

	perr "tzdetect/internal/platform/errors"
)

// FieldReadable reads a named field; ok is false when the field is absent or unset
type FieldReadable interface {
	Field(name string) (value string, ok bool)
}

// FieldWritable can also assign a named field; nil clears it
type FieldWritable interface {
	FieldReadable
	SetField(name string, value *string) error
}

// Map is a key/value subject
type Map map[string]string

// Field implements FieldReadable
func (m Map) Field(name string) (string, bool) {
	v, ok := m[name]
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// SetField implements FieldWritable; nil deletes the key
func (m Map) SetField(name string, value *string) error {
	if m == nil {
		return perr.Newf(perr.ErrorCodeSubjectAccess, "set %q on nil map subject", name)
	}
	if value == nil {
		delete(m, name)
		return nil
	}
	m[name] = *value
	return nil
}

// Func adapts a plain lookup function
type Func func(name string) (string, bool)

// Field implements FieldReadable
func (f Func) Field(name string) (string, bool) { return f(name) }

// Struct exposes the exported fields of a struct (through a pointer when writes are needed).
// A field answers to its tz tag, then its json tag, then its snake_case name.
// Supported kinds: string, *string, fmt.Stringer, and integer/float kinds for reads
type Struct struct {
	v     reflect.Value
	index map[string][]int
}

// NewStruct wraps rec, which must be a struct or a non-nil pointer to one
func NewStruct(rec any) (*Struct, error) {
	v := reflect.ValueOf(rec)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil, perr.New(perr.ErrorCodeSubjectAccess, "nil subject")
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil, perr.Newf(perr.ErrorCodeSubjectAccess, "subject must be a struct, got %s", v.Kind())
	}
	return &Struct{v: v, index: fieldIndex(v.Type())}, nil
}

// MustStruct is NewStruct that panics; for wiring with known types
func MustStruct(rec any) *Struct {
	s, err := NewStruct(rec)
	if err != nil {
		panic(err)
	}
	return s
}

// Field implements FieldReadable; a nil *Struct has no fields
func (s *Struct) Field(name string) (string, bool) {
	if s == nil {
		return "", false
	}
	fv, ok := s.lookup(name)
	if !ok {
		return "", false
	}
	return render(fv)
}

// SetField implements FieldWritable; only string and *string fields of addressable structs can be set
func (s *Struct) SetField(name string, value *string) error {
	if s == nil {
		return perr.Newf(perr.ErrorCodeSubjectAccess, "set %q on nil struct subject", name)
	}
	fv, ok := s.lookup(name)
	if !ok {
		return perr.Newf(perr.ErrorCodeSubjectAccess, "subject has no field %q", name)
	}
	if !fv.CanSet() {
		return perr.Newf(perr.ErrorCodeSubjectAccess, "field %q is not settable; pass a pointer", name)
	}
	switch {
	case fv.Kind() == reflect.String:
		if value == nil {
			fv.SetString("")
		} else {
			fv.SetString(*value)
		}
	case fv.Kind() == reflect.Pointer && fv.Type().Elem().Kind() == reflect.String:
		if value == nil {
			fv.Set(reflect.Zero(fv.Type()))
		} else {
			p := reflect.New(fv.Type().Elem())
			p.Elem().SetString(*value)
			fv.Set(p)
		}
	default:
		return perr.Newf(perr.ErrorCodeSubjectAccess, "field %q has unsupported type %s", name, fv.Type())
	}
	return nil
}

func (s *Struct) lookup(name string) (reflect.Value, bool) {
	idx, ok := s.index[name]
	if !ok {
		return reflect.Value{}, false
	}
	fv, err := s.v.FieldByIndexErr(idx)
	if err != nil {
		// nil embedded pointer on the path
		return reflect.Value{}, false
	}
	return fv, true
}

var stringerType = reflect.TypeFor[fmt.Stringer]()

func render(fv reflect.Value) (string, bool) {
	if fv.Kind() == reflect.Pointer {
		if fv.IsNil() {
			return "", false
		}
		if fv.Type().Implements(stringerType) {
			return nonEmpty(fv.Interface().(fmt.Stringer).String())
		}
		fv = fv.Elem()
	}
	if fv.CanInterface() && fv.Type().Implements(stringerType) {
		return nonEmpty(fv.Interface().(fmt.Stringer).String())
	}
	switch fv.Kind() {
	case reflect.String:
		return nonEmpty(fv.String())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(fv.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(fv.Uint(), 10), true
	case reflect.Float32, reflect.Float64:
		// plain decimal, never exponent form
		return strconv.FormatFloat(fv.Float(), 'f', -1, fv.Type().Bits()), true
	default:
		return "", false
	}
}

func nonEmpty(s string) (string, bool) { return s, s != "" }

var indexCache sync.Map // reflect.Type -> map[string][]int

func fieldIndex(t reflect.Type) map[string][]int {
	if m, ok := indexCache.Load(t); ok {
		return m.(map[string][]int)
	}
	m := map[string][]int{}
	for _, f := range reflect.VisibleFields(t) {
		if !f.IsExported() || f.Anonymous {
			continue
		}
		for _, name := range namesOf(f) {
			if _, taken := m[name]; !taken {
				m[name] = f.Index
			}
		}
	}
	indexCache.Store(t, m)
	return m
}

func namesOf(f reflect.StructField) []string {
	var out []string
	for _, key := range []string{"tz", "json"} {
		tag := f.Tag.Get(key)
		if i := strings.Index(tag, ","); i >= 0 {
			tag = tag[:i]
		}
		if tag == "-" {
			return nil
		}
		if tag != "" {
			out = append(out, tag)
		}
	}
	return append(out, snake(f.Name), f.Name)
}

// snake converts PostalCode to postal_code and ZIP to zip
func snake(s string) string {
	var b strings.Builder
	rs := []rune(s)
	for i, r := range rs {
		if unicode.IsUpper(r) {
			prevLower := i > 0 && unicode.IsLower(rs[i-1])
			nextLower := i+1 < len(rs) && unicode.IsLower(rs[i+1]) && i > 0 && unicode.IsUpper(rs[i-1])
			if prevLower || nextLower {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
