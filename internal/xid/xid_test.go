package xid

import (
	"strings"
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	a := New("rep")
	b := New("rep")
	if !strings.HasPrefix(a, "rep-") {
		t.Fatalf("id %q missing prefix", a)
	}
	if a == b {
		t.Fatalf("ids collide: %q", a)
	}
}

func TestNewTicketNo(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)
	got := NewTicketNo(now)
	if !strings.HasPrefix(got, "TS-260315-") {
		t.Fatalf("ticket %q missing date prefix", got)
	}
	if len(got) != len("TS-260315-0000") {
		t.Fatalf("ticket %q has wrong sequence width", got)
	}
}
