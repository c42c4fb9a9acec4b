package config

import (
	"reflect"
	"testing"
	"time"
)

func TestPrefixAndKey(t *testing.T) {
	c := New().Prefix("TZDETECT_").Prefix("PGSQL_")
	if got := c.key("DBURL"); got != "TZDETECT_PGSQL_DBURL" {
		t.Fatalf("key() = %q", got)
	}
}

func TestMayValues(t *testing.T) {
	c := New().Prefix("TZ_")
	t.Setenv("TZ_RPS", "2.5")
	t.Setenv("TZ_BURST", "oops")
	t.Setenv("TZ_LOG", "true")
	t.Setenv("TZ_TIMEOUT", "250ms")
	t.Setenv("TZ_BAD_TIMEOUT", "soon")

	if got := c.MayFloat64("RPS", 0); got != 2.5 {
		t.Fatalf("MayFloat64 = %v", got)
	}
	if got := c.MayInt("BURST", 4); got != 4 {
		t.Fatalf("MayInt invalid should fall back, got %d", got)
	}
	if !c.MayBool("LOG", false) {
		t.Fatalf("MayBool = false, want true")
	}
	if got := c.MayDuration("TIMEOUT", time.Second); got != 250*time.Millisecond {
		t.Fatalf("MayDuration = %v", got)
	}
	if got := c.MayDuration("BAD_TIMEOUT", time.Second); got != time.Second {
		t.Fatalf("MayDuration invalid = %v", got)
	}
	if got := c.MayString("AS", "timezone"); got != "timezone" {
		t.Fatalf("MayString default = %q", got)
	}
	if c.Has("AS") {
		t.Fatalf("Has(AS) = true for unset key")
	}
}

func TestMayCSV(t *testing.T) {
	c := New()
	t.Setenv("USING", " city, ,province:state ,country")
	want := []string{"city", "province:state", "country"}
	if got := c.MayCSV("USING", nil); !reflect.DeepEqual(got, want) {
		t.Fatalf("MayCSV = %v, want %v", got, want)
	}
	t.Setenv("USING", " , ")
	if got := c.MayCSV("USING", []string{"zip"}); !reflect.DeepEqual(got, []string{"zip"}) {
		t.Fatalf("MayCSV blank = %v", got)
	}
}
