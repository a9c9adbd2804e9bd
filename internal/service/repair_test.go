package service

import (
	"context"
	"reflect"
	"strings"
	"testing"
	"time"

	"teknikservis/backend/internal/domain"
)

func sampleRepair() domain.RepairRecord {
	return domain.RepairRecord{
		Customer:         domain.Customer{FullName: "Ali Veli", Phone: "05551112233"},
		Device:           domain.Device{Brand: "Apple", Model: "iPhone 13", PasswordType: domain.PasswordTypeNone},
		IssueDescription: "Ekran kırık",
	}
}

func TestAddRepairFillsDefaults(t *testing.T) {
	svc := newTestService(t)

	r := svc.AddRepair(context.Background(), sampleRepair())

	if r.ID == "" || r.TicketNo == "" {
		t.Fatalf("id and ticket number must be assigned, got %+v", r)
	}
	if !strings.HasPrefix(r.TicketNo, "TS-260315-") {
		t.Fatalf("ticket number %q should embed the date", r.TicketNo)
	}
	if r.Status != domain.RepairStatusPending {
		t.Fatalf("status = %q, want pending", r.Status)
	}
	if r.CreatedAt != "2026-03-15T10:30:00Z" || r.UpdatedAt != r.CreatedAt {
		t.Fatalf("timestamps wrong: created=%q updated=%q", r.CreatedAt, r.UpdatedAt)
	}
	if r.DiagnosticMarks == nil || r.Photos == nil || r.UsedParts == nil {
		t.Fatal("slice fields must be non-nil after add")
	}

	repairs := svc.State().Repairs
	if len(repairs) != 1 || repairs[0].ID != r.ID {
		t.Fatalf("repair not at head of list: %+v", repairs)
	}
}

func TestAddRepairPrependsNewestFirst(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	first := svc.AddRepair(ctx, sampleRepair())
	second := svc.AddRepair(ctx, sampleRepair())

	repairs := svc.State().Repairs
	if repairs[0].ID != second.ID || repairs[1].ID != first.ID {
		t.Fatalf("expected newest-first order, got %v then %v", repairs[0].ID, repairs[1].ID)
	}
}

func TestUpdateRepairAlwaysStampsUpdatedAt(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	r := svc.AddRepair(ctx, sampleRepair())
	svc.now = func() time.Time { return testNow.Add(time.Hour) }

	got, ok := svc.UpdateRepair(ctx, r.ID, RepairUpdate{}, false)
	if !ok {
		t.Fatal("repair not found")
	}
	if got.UpdatedAt == r.UpdatedAt {
		t.Fatal("empty update must still stamp UpdatedAt")
	}

	if _, ok := svc.UpdateRepair(ctx, "missing", RepairUpdate{}, false); ok {
		t.Fatal("missing id should report not found")
	}
}

func TestUpdateRepairPostsServiceIncome(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	rec := sampleRepair()
	rec.FinalCost = 750
	r := svc.AddRepair(ctx, rec)

	delivered := domain.RepairStatusDelivered
	paid := domain.PaymentStatusPaid
	if _, ok := svc.UpdateRepair(ctx, r.ID, RepairUpdate{Status: &delivered, PaymentStatus: &paid}, true); !ok {
		t.Fatal("repair not found")
	}

	incomes := svc.State().Incomes
	if len(incomes) != 1 {
		t.Fatalf("expected one income, got %d", len(incomes))
	}
	in := incomes[0]
	if in.Category != domain.IncomeCategoryService || in.Amount != 750 {
		t.Fatalf("income = %+v", in)
	}
	if !strings.HasPrefix(in.Description, "Tamir Ödemesi: "+r.TicketNo) {
		t.Fatalf("income description %q should reference the ticket", in.Description)
	}

	// Updating an already paid ticket must not double-post.
	note := "teslim edildi"
	if _, ok := svc.UpdateRepair(ctx, r.ID, RepairUpdate{TechnicianNotes: &note}, true); !ok {
		t.Fatal("repair not found")
	}
	if got := len(svc.State().Incomes); got != 1 {
		t.Fatalf("income double-posted, have %d", got)
	}
}

func TestUpdateRepairIncomeOptOut(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	rec := sampleRepair()
	rec.EstimatedCost = 400
	r := svc.AddRepair(ctx, rec)

	delivered := domain.RepairStatusDelivered
	paid := domain.PaymentStatusPaid
	svc.UpdateRepair(ctx, r.ID, RepairUpdate{Status: &delivered, PaymentStatus: &paid}, false)

	if got := len(svc.State().Incomes); got != 0 {
		t.Fatalf("opted-out update posted %d incomes", got)
	}
}

func TestRecordUsedPartsDeductsStock(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	item := svc.AddStockItem(ctx, domain.StockItem{Name: "iPhone 13 Ekran", Quantity: 5, CriticalLevel: 3})
	r := svc.AddRepair(ctx, sampleRepair())

	part := domain.UsedPart{StockItemID: item.ID, Name: item.Name, Quantity: 2, Cost: 1500}
	got, ok := svc.RecordUsedParts(ctx, r.ID, []domain.UsedPart{part})
	if !ok {
		t.Fatal("repair not found")
	}
	if len(got.UsedParts) != 1 || got.UsedParts[0] != part {
		t.Fatalf("used parts = %+v", got.UsedParts)
	}
	if q := svc.State().StockItems[0].Quantity; q != 3 {
		t.Fatalf("stock quantity = %d, want 3", q)
	}

	// Deduction floors at zero.
	svc.RecordUsedParts(ctx, r.ID, []domain.UsedPart{{StockItemID: item.ID, Name: item.Name, Quantity: 10}})
	if q := svc.State().StockItems[0].Quantity; q != 0 {
		t.Fatalf("stock quantity = %d, want 0", q)
	}

	if _, ok := svc.RecordUsedParts(ctx, r.ID, nil); ok {
		t.Fatal("empty part list should be a no-op")
	}
}

func TestDeleteAndRestoreRepair(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	rec := sampleRepair()
	rec.UsedParts = []domain.UsedPart{{StockItemID: "stk_x", Name: "Batarya", Quantity: 1, Cost: 300}}
	rec.DiagnosticMarks = []domain.DiagnosticMark{{ID: "m1", X: 0.4, Y: 0.6, Face: domain.FaceBack, Type: "crack"}}
	r := svc.AddRepair(ctx, rec)

	if !svc.DeleteRepair(ctx, r.ID) {
		t.Fatal("delete should find the repair")
	}
	if len(svc.State().Repairs) != 0 {
		t.Fatal("repair still in live list after delete")
	}

	bin := svc.State().DeletedItems
	if len(bin) != 1 {
		t.Fatalf("expected one envelope, got %d", len(bin))
	}
	if bin[0].Type != domain.DeletedTypeRepair {
		t.Fatalf("envelope type = %q", bin[0].Type)
	}
	if want := r.TicketNo + " - Ali Veli"; bin[0].Description != want {
		t.Fatalf("envelope description = %q, want %q", bin[0].Description, want)
	}

	if !svc.RestoreItem(ctx, bin[0].ID) {
		t.Fatal("restore should find the envelope")
	}
	repairs := svc.State().Repairs
	if len(repairs) != 1 || !reflect.DeepEqual(repairs[0], r) {
		t.Fatalf("restored repair differs:\n got %+v\nwant %+v", repairs[0], r)
	}
	if len(svc.State().DeletedItems) != 0 {
		t.Fatal("envelope should be gone after restore")
	}
}

func TestSetBlacklist(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	svc.AddRepair(ctx, sampleRepair())
	svc.AddRepair(ctx, sampleRepair())
	other := sampleRepair()
	other.Customer.Phone = "05559998877"
	svc.AddRepair(ctx, other)

	if n := svc.SetBlacklist(ctx, "05551112233", true, "Ödeme yapmadı"); n != 2 {
		t.Fatalf("touched %d repairs, want 2", n)
	}
	for _, r := range svc.State().Repairs {
		want := r.Customer.Phone == "05551112233"
		if r.Customer.IsBlacklisted != want {
			t.Fatalf("blacklist flag wrong on %+v", r.Customer)
		}
	}

	// Clearing the flag also clears the reason.
	svc.SetBlacklist(ctx, "05551112233", false, "ignored")
	for _, r := range svc.State().Repairs {
		if r.Customer.IsBlacklisted || r.Customer.BlacklistReason != "" {
			t.Fatalf("blacklist not cleared: %+v", r.Customer)
		}
	}
}
