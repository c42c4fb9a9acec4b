package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	kit "tzdetect/internal/platform/testkit"
)

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code := run(context.Background(), args, &out, &errOut)
	return code, strings.TrimSpace(out.String()), errOut.String()
}

func TestRun(t *testing.T) {
	stub := kit.NewLookupStub(t,
		kit.Fixture{
			Match: map[string]string{"city": "Austin", "state": "TX", "country": "US"},
			Body:  `[{"timezone":"America/Chicago","utc_offset":-18000,"abbreviation":"CDT"}]`,
		},
		kit.Fixture{
			Match:  map[string]string{"country": "DE"},
			Status: 503,
			Body:   `down`,
		},
	)
	base := "-base-url=" + stub.URL()

	cases := []struct {
		name string
		args []string
		code int
		out  string
		err  string
	}{
		{"detect", []string{base, "-city", "Austin", "-state", "TX", "-country", "US"}, 0, "America/Chicago", ""},
		{"field", []string{base, "-city", "Austin", "-state", "TX", "-country", "US", "-field", "abbreviation"}, 0, "CDT", ""},
		{"offset", []string{base, "-city", "Austin", "-state", "TX", "-country", "US", "-mode", "offset"}, 0, "-05:00", ""},
		{"no match", []string{base, "-city", "Atlantis"}, 1, "", "no match"},
		{"absorbed failure", []string{base, "-country", "DE"}, 1, "", "no match"},
		{"raised failure", []string{base, "-country", "DE", "-raise"}, 1, "", "tzdetect:"},
		{"bad mode", []string{base, "-mode", "later"}, 2, "", "unknown -mode"},
		{"bad flag", []string{"-nope"}, 2, "", "flag provided but not defined"},
		{"bad attr", []string{base, "-attr", "province"}, 2, "", "want name=value"},
		{"bad base url", []string{"-base-url", "not a url", "-city", "x"}, 2, "", "tzdetect:"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, out, errOut := runCLI(t, tc.args...)
			if code != tc.code {
				t.Fatalf("code = %d, want %d (stderr=%s)", code, tc.code, errOut)
			}
			if out != tc.out {
				t.Fatalf("stdout = %q, want %q", out, tc.out)
			}
			if tc.err != "" {
				kit.MustContain(t, errOut, tc.err)
			}
		})
	}
}

func TestRun_Now(t *testing.T) {
	stub := kit.NewLookupStub(t, kit.Fixture{
		Match: map[string]string{"country": "GB"},
		Body:  `[{"timezone":"Europe/London","utc_offset":3600}]`,
	})
	code, out, errOut := runCLI(t, "-base-url", stub.URL(), "-country", "GB", "-mode", "now")
	if code != 0 {
		t.Fatalf("code = %d stderr=%s", code, errOut)
	}
	if !strings.HasSuffix(out, "+01:00") {
		t.Fatalf("now = %q, want +01:00 suffix", out)
	}
}

func TestRun_Version(t *testing.T) {
	code, out, _ := runCLI(t, "-version")
	if code != 0 || !strings.HasPrefix(out, "tzdetect dev") {
		t.Fatalf("version = (%d, %q)", code, out)
	}
}

func TestRun_Using(t *testing.T) {
	stub := kit.NewLookupStub(t, kit.Fixture{
		Match: map[string]string{"province": "ON"},
		Body:  `[{"timezone":"America/Toronto"}]`,
	})
	code, out, errOut := runCLI(t, "-base-url", stub.URL(), "-using", "state:province", "-state", "ON", "-city", "Toronto")
	if code != 0 || out != "America/Toronto" {
		t.Fatalf("got (%d, %q) stderr=%s", code, out, errOut)
	}
	if q := stub.LastRawQuery(); q != "province=ON" {
		t.Fatalf("query = %q", q)
	}
}

func TestRun_UsingLocalAttr(t *testing.T) {
	stub := kit.NewLookupStub(t, kit.Fixture{
		Match: map[string]string{"state": "ON", "country": "CA"},
		Body:  `[{"timezone":"America/Toronto"}]`,
	})
	code, out, errOut := runCLI(t, "-base-url", stub.URL(), "-using", "province:state,country",
		"-attr", "province=ON", "-country", "CA")
	if code != 0 || out != "America/Toronto" {
		t.Fatalf("got (%d, %q) stderr=%s", code, out, errOut)
	}
	if q := stub.LastRawQuery(); q != "state=ON&country=CA" {
		t.Fatalf("query = %q", q)
	}
}
