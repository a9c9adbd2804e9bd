package report

import (
	"testing"
	"time"

	"teknikservis/backend/internal/domain"
)

var now = time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)

func TestBalance(t *testing.T) {
	st := domain.AppState{
		AccountTransactions: []domain.AccountTransaction{
			{EntityID: "sup_1", Type: domain.TransactionTypeDebt, Amount: 600},
			{EntityID: "sup_1", Type: domain.TransactionTypeDebt, Amount: 400},
			{EntityID: "sup_1", Type: domain.TransactionTypePayment, Amount: 600},
			{EntityID: "sup_2", Type: domain.TransactionTypeDebt, Amount: 9999},
		},
	}

	got := Balance(st, "sup_1")
	if got.TotalDebt != 1000 || got.TotalPaid != 600 || got.Balance != 400 {
		t.Fatalf("balance = %+v", got)
	}

	// Ledger order must not matter.
	st.AccountTransactions[0], st.AccountTransactions[2] = st.AccountTransactions[2], st.AccountTransactions[0]
	if again := Balance(st, "sup_1"); again != got {
		t.Fatalf("balance changed with ledger order: %+v vs %+v", again, got)
	}

	if empty := Balance(st, "missing"); empty != (BalanceSummary{}) {
		t.Fatalf("unknown entity should be all zero, got %+v", empty)
	}
}

func TestDashboard(t *testing.T) {
	st := domain.AppState{
		Repairs: []domain.RepairRecord{
			{Status: domain.RepairStatusPending, CreatedAt: "2026-03-15T09:00:00Z"},
			{Status: domain.RepairStatusDiagnosing, CreatedAt: "2026-03-01T09:00:00Z"},
			{Status: domain.RepairStatusRepairing, CreatedAt: "2026-02-20T09:00:00Z"},
			{Status: domain.RepairStatusReady, CreatedAt: "2026-03-14T09:00:00Z"},
			{Status: domain.RepairStatusDelivered, CreatedAt: "2026-03-10T09:00:00Z"},
			{Status: domain.RepairStatusCancelled, CreatedAt: "2026-03-11T09:00:00Z"},
		},
		Incomes: []domain.Income{
			{Amount: 1000, Date: "2026-03-02"},
			{Amount: 500, Date: "2026-02-28"},
		},
		Expenses: []domain.Expense{
			{Amount: 300, Date: "2026-03-05"},
			{Amount: 900, Date: "2025-03-05"},
		},
		StockItems: []domain.StockItem{
			{Name: "Ekran", Quantity: 2, CriticalLevel: 3},
			{Name: "Batarya", Quantity: 10, CriticalLevel: 3},
		},
		Appointments: []domain.Appointment{
			{Date: "2026-03-15", Status: domain.AppointmentStatusScheduled},
			{Date: "2026-03-15", Status: domain.AppointmentStatusCompleted},
			{Date: "2026-03-16", Status: domain.AppointmentStatusScheduled},
		},
	}

	got := Dashboard(st, now)

	if got.Pending != 1 || got.Diagnosing != 2 || got.Ready != 1 {
		t.Fatalf("status counts wrong: %+v", got)
	}
	if got.TodayCount != 1 {
		t.Fatalf("todayCount = %d, want 1", got.TodayCount)
	}
	if got.TotalActive != 4 {
		t.Fatalf("totalActive = %d, want 4", got.TotalActive)
	}
	if got.MonthRevenue != 1000 || got.MonthExpenses != 300 || got.NetProfit != 700 {
		t.Fatalf("month figures wrong: revenue=%v expenses=%v profit=%v",
			got.MonthRevenue, got.MonthExpenses, got.NetProfit)
	}
	if got.LowStockCount != 1 || got.LowStock[0].Name != "Ekran" {
		t.Fatalf("low stock = %+v", got.LowStock)
	}
	if got.TodayAppointmentCount != 1 {
		t.Fatalf("todayAppointmentCount = %d, want 1", got.TodayAppointmentCount)
	}
}

func TestLowStockBoundary(t *testing.T) {
	st := domain.AppState{StockItems: []domain.StockItem{
		{Name: "At level", Quantity: 3, CriticalLevel: 3},
		{Name: "Above", Quantity: 4, CriticalLevel: 3},
	}}
	got := LowStock(st)
	if len(got) != 1 || got[0].Name != "At level" {
		t.Fatalf("low stock = %+v", got)
	}
}

func TestMonthlySeries(t *testing.T) {
	st := domain.AppState{Repairs: []domain.RepairRecord{
		{Status: domain.RepairStatusDelivered, FinalCost: 800,
			CreatedAt: "2026-01-20T09:00:00Z", UpdatedAt: "2026-02-02T09:00:00Z"},
		{Status: domain.RepairStatusPending,
			CreatedAt: "2026-03-01T09:00:00Z", UpdatedAt: "2026-03-01T09:00:00Z"},
		{Status: domain.RepairStatusDelivered, FinalCost: 100,
			CreatedAt: "2025-08-01T09:00:00Z", UpdatedAt: "2025-08-10T09:00:00Z"},
	}}

	buckets := MonthlySeries(st, now)
	if len(buckets) != 6 {
		t.Fatalf("got %d buckets", len(buckets))
	}
	wantKeys := []string{"2025-10", "2025-11", "2025-12", "2026-01", "2026-02", "2026-03"}
	for i, b := range buckets {
		if b.Key != wantKeys[i] {
			t.Fatalf("bucket %d key = %q, want %q", i, b.Key, wantKeys[i])
		}
	}

	// Revenue lands in the delivery month, the count in the intake month.
	if buckets[3].RepairCount != 1 || buckets[3].Revenue != 0 {
		t.Fatalf("2026-01 = %+v", buckets[3])
	}
	if buckets[4].Revenue != 800 || buckets[4].RepairCount != 0 {
		t.Fatalf("2026-02 = %+v", buckets[4])
	}
	if buckets[5].RepairCount != 1 {
		t.Fatalf("2026-03 = %+v", buckets[5])
	}
}

func TestTopModelsTiebreak(t *testing.T) {
	st := domain.AppState{Repairs: []domain.RepairRecord{
		{Device: domain.Device{Brand: "Samsung", Model: "S24"}},
		{Device: domain.Device{Brand: "Apple", Model: "iPhone 13"}},
		{Device: domain.Device{Brand: "Apple", Model: "iPhone 13"}},
		{Device: domain.Device{Brand: "Apple", Model: "iPhone 15"}},
	}}

	got := TopModels(st)
	if len(got) != 3 {
		t.Fatalf("got %d entries", len(got))
	}
	if got[0].Model != "Apple iPhone 13" || got[0].Count != 2 {
		t.Fatalf("top entry = %+v", got[0])
	}
	// Equal counts sort by name.
	if got[1].Model != "Apple iPhone 15" || got[2].Model != "Samsung S24" {
		t.Fatalf("tiebreak order wrong: %+v", got)
	}
}

func TestTopPartsRevenue(t *testing.T) {
	st := domain.AppState{Repairs: []domain.RepairRecord{
		{UsedParts: []domain.UsedPart{{Name: "Ekran", Quantity: 2, Cost: 500}}},
		{UsedParts: []domain.UsedPart{{Name: "Ekran", Quantity: 1, Cost: 500}, {Name: "Batarya", Quantity: 1, Cost: 300}}},
	}}

	got := TopParts(st)
	if got[0].Name != "Ekran" || got[0].Qty != 3 || got[0].Revenue != 1500 {
		t.Fatalf("top part = %+v", got[0])
	}
	if got[1].Name != "Batarya" || got[1].Revenue != 300 {
		t.Fatalf("second part = %+v", got[1])
	}
}

func TestStatusDistribution(t *testing.T) {
	st := domain.AppState{Repairs: []domain.RepairRecord{
		{Status: domain.RepairStatusPending},
		{Status: domain.RepairStatusPending},
		{Status: domain.RepairStatusReady},
	}}

	got := StatusDistribution(st)
	if len(got) != 2 {
		t.Fatalf("got %d slices", len(got))
	}
	if got[0].Status != domain.RepairStatusPending || got[0].Pct != 67 {
		t.Fatalf("first slice = %+v", got[0])
	}
	if got[1].Pct != 33 {
		t.Fatalf("second slice = %+v", got[1])
	}

	if empty := StatusDistribution(domain.AppState{}); len(empty) != 0 {
		t.Fatalf("empty state should have no slices, got %+v", empty)
	}
}

func TestWarrantyFor(t *testing.T) {
	base := domain.RepairRecord{
		Status:       domain.RepairStatusDelivered,
		WarrantyDays: 30,
		UpdatedAt:    "2026-03-01T10:30:00Z",
	}

	w, ok := WarrantyFor(base, now)
	if !ok {
		t.Fatal("delivered ticket with warranty days should report coverage")
	}
	// 30 days from Mar 1 10:30 is Mar 31 10:30; 16 full days remain.
	if w.RemainingDays != 16 || w.IsExpired {
		t.Fatalf("warranty = %+v", w)
	}

	// A fraction of a day left still counts as one day.
	w, _ = WarrantyFor(base, time.Date(2026, 3, 31, 9, 0, 0, 0, time.UTC))
	if w.RemainingDays != 1 || w.IsExpired || !w.IsExpiringSoon {
		t.Fatalf("warranty on last day = %+v", w)
	}

	// Exactly at expiry the warranty is over.
	w, _ = WarrantyFor(base, time.Date(2026, 3, 31, 10, 30, 0, 0, time.UTC))
	if w.RemainingDays != 0 || !w.IsExpired {
		t.Fatalf("warranty at expiry = %+v", w)
	}

	undelivered := base
	undelivered.Status = domain.RepairStatusReady
	if _, ok := WarrantyFor(undelivered, now); ok {
		t.Fatal("undelivered ticket must not report a warranty")
	}

	noDays := base
	noDays.WarrantyDays = 0
	if _, ok := WarrantyFor(noDays, now); ok {
		t.Fatal("zero warranty days must not report a warranty")
	}
}

func TestCustomersProjection(t *testing.T) {
	st := domain.AppState{Repairs: []domain.RepairRecord{
		{Customer: domain.Customer{FullName: "Ali Veli", Phone: "0555"}, FinalCost: 500,
			CreatedAt: "2026-03-10T09:00:00Z"},
		{Customer: domain.Customer{FullName: "Ali Veli", Phone: "0555"}, EstimatedCost: 200,
			CreatedAt: "2026-01-05T09:00:00Z"},
		{Customer: domain.Customer{FullName: "Zeynep", Phone: "0777"}, FinalCost: 900,
			CreatedAt: "2026-03-12T09:00:00Z"},
	}}

	got := Customers(st)
	if len(got) != 2 {
		t.Fatalf("got %d customers", len(got))
	}
	// Sorted by most recent visit.
	if got[0].Name != "Zeynep" {
		t.Fatalf("first customer = %+v", got[0])
	}
	ali := got[1]
	if ali.RepairCount != 2 || ali.TotalSpent != 700 {
		t.Fatalf("aggregate wrong: %+v", ali)
	}
	if ali.FirstVisit != "2026-01-05T09:00:00Z" || ali.LastVisit != "2026-03-10T09:00:00Z" {
		t.Fatalf("visit range wrong: %+v", ali)
	}
}

func TestStaffMonthlyPerformance(t *testing.T) {
	st := domain.AppState{
		Staff: []domain.StaffMember{
			{ID: "1", Name: "Patron", IsActive: true},
			{ID: "2", Name: "Eski", IsActive: false},
		},
		Repairs: []domain.RepairRecord{
			{AssignedTo: "Patron", Status: domain.RepairStatusDelivered, UpdatedAt: "2026-03-02T09:00:00Z"},
			{AssignedTo: "Patron", Status: domain.RepairStatusDelivered, UpdatedAt: "2026-02-02T09:00:00Z"},
			{AssignedTo: "Patron", Status: domain.RepairStatusReady, UpdatedAt: "2026-03-05T09:00:00Z"},
			{AssignedTo: "Eski", Status: domain.RepairStatusDelivered, UpdatedAt: "2026-03-05T09:00:00Z"},
		},
	}

	got := StaffMonthlyPerformance(st, now)
	if len(got) != 1 {
		t.Fatalf("inactive staff should be excluded, got %+v", got)
	}
	if got[0].Name != "Patron" || got[0].Delivered != 1 {
		t.Fatalf("performance = %+v", got[0])
	}
}

func TestCostInTRY(t *testing.T) {
	st := domain.AppState{ExchangeRates: []domain.ExchangeRate{
		{Currency: domain.CurrencyUSD, Rate: 32.50},
	}}

	if got := CostInTRY(st, 10, domain.CurrencyUSD); got != 325 {
		t.Fatalf("USD conversion = %v", got)
	}
	if got := CostInTRY(st, 10, domain.CurrencyTRY); got != 10 {
		t.Fatalf("TRY should pass through, got %v", got)
	}
	if got := CostInTRY(st, 10, "GBP"); got != 10 {
		t.Fatalf("unknown currency should pass through, got %v", got)
	}
}

func TestMaskPhone(t *testing.T) {
	if got := MaskPhone("05551112233"); got != "0555*****33" {
		t.Fatalf("masked = %q", got)
	}
	if got := MaskPhone("1234"); got != "****" {
		t.Fatalf("short number = %q", got)
	}
}
