package time

import (
	"testing"
	"time"
)

func TestClocks(t *testing.T) {
	at := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	if got := Fixed(at)(); !got.Equal(at) {
		t.Fatalf("Fixed()=%v want %v", got, at)
	}
	if System().Location() != time.UTC {
		t.Fatal("System should report UTC")
	}
}
