package service

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"teknikservis/backend/internal/domain"
	"teknikservis/backend/internal/persist"
	"teknikservis/backend/internal/state"
)

var testNow = time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)

func newTestService(t *testing.T) *Service {
	t.Helper()
	st := state.Open(context.Background(), persist.NewMemory(), zap.NewNop())
	svc := New(st, zap.NewNop())
	svc.now = func() time.Time { return testNow }
	return svc
}

func TestLogin(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	staff, ok := svc.Login(ctx, "1234")
	if !ok {
		t.Fatal("default admin PIN should log in")
	}
	if staff.Name != "Patron" {
		t.Fatalf("logged in as %q, want Patron", staff.Name)
	}
	if got := svc.State().CurrentUserID; got != staff.ID {
		t.Fatalf("currentUserId = %q, want %q", got, staff.ID)
	}

	if _, ok := svc.Login(ctx, "0000"); ok {
		t.Fatal("unknown PIN should not log in")
	}

	svc.Logout(ctx)
	if got := svc.State().CurrentUserID; got != "" {
		t.Fatalf("currentUserId after logout = %q, want empty", got)
	}
}

func TestLoginInactiveStaff(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	m := svc.AddStaff(ctx, domain.StaffMember{Name: "Ayşe", Role: domain.RoleTechnician, PIN: "5678", IsActive: true})
	if m.ID == "" {
		t.Fatal("AddStaff should assign an id")
	}
	inactive := false
	if _, ok := svc.UpdateStaff(ctx, m.ID, StaffUpdate{IsActive: &inactive}); !ok {
		t.Fatal("UpdateStaff should find the member")
	}

	if _, ok := svc.Login(ctx, "5678"); ok {
		t.Fatal("inactive staff PIN must not log in")
	}
}

func TestUpdateStaffPartial(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	m := svc.AddStaff(ctx, domain.StaffMember{Name: "Mehmet", Role: domain.RoleReceptionist, PIN: "9999", IsActive: true})

	name := "Mehmet Y."
	got, ok := svc.UpdateStaff(ctx, m.ID, StaffUpdate{Name: &name})
	if !ok {
		t.Fatal("member not found")
	}
	if got.Name != "Mehmet Y." || got.Role != domain.RoleReceptionist || got.PIN != "9999" || !got.IsActive {
		t.Fatalf("partial update touched unrelated fields: %+v", got)
	}

	if _, ok := svc.UpdateStaff(ctx, "missing", StaffUpdate{Name: &name}); ok {
		t.Fatal("missing id should report not found")
	}
}

func TestTogglePrivacy(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if !svc.TogglePrivacy(ctx) {
		t.Fatal("first toggle should enable privacy mode")
	}
	if svc.TogglePrivacy(ctx) {
		t.Fatal("second toggle should disable privacy mode")
	}
}
