package strings

import (
	"testing"

	kit "tzdetect/internal/platform/testkit"
)

func TestIfEmpty(t *testing.T) {
	t.Parallel()

	in := []int{1, 2, 3}
	if got := IfEmpty(in, []int{9}); len(got) != 3 || got[0] != 1 {
		t.Fatalf("IfEmpty returned wrong slice: %#v", got)
	}

	var empty []string
	if got := IfEmpty(empty, []string{"x"}); len(got) != 1 || got[0] != "x" {
		t.Fatalf("IfEmpty did not return default: %#v", got)
	}
}

func TestMustPrefix(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"v1":         "/v1",
		"/v1/":       "/v1",
		" /accounts": "/accounts",
	}
	for in, want := range cases {
		if got := MustPrefix(in); got != want {
			t.Errorf("MustPrefix(%q)=%q want %q", in, got, want)
		}
	}
	kit.MustPanic(t, func() { MustPrefix(" / ") })
}

func TestDeref(t *testing.T) {
	t.Parallel()

	v := "Austin"
	if Deref(nil) != "" || Deref(&v) != "Austin" {
		t.Fatal("Deref mismatch")
	}
}

func TestSQLNullPtr(t *testing.T) {
	t.Parallel()

	blank := " "
	val := "America/Chicago"
	if SQLNullPtr(nil) != nil || SQLNullPtr(&blank) != nil {
		t.Fatal("nil or blank should map to NULL")
	}
	if got := SQLNullPtr(&val); got != "America/Chicago" {
		t.Fatalf("SQLNullPtr=%v", got)
	}
}
