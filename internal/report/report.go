// Package report derives read-time views over the application state. Nothing
// here is cached; every call recomputes from the live collections so derived
// numbers can never drift from the ledgers they summarize.
package report

import (
	"sort"
	"time"

	"teknikservis/backend/internal/domain"
)

// BalanceSummary is the running position of one supplier or company,
// derived from the transaction ledger on every call.
type BalanceSummary struct {
	Balance   float64 `json:"balance"`
	TotalDebt float64 `json:"totalDebt"`
	TotalPaid float64 `json:"totalPaid"`
}

// Balance sums the ledger for one counterparty: debt minus payment. The sign
// convention reads differently for suppliers (shop owes) and companies
// (shop is owed) but the arithmetic is the same.
func Balance(st domain.AppState, entityID string) BalanceSummary {
	var out BalanceSummary
	for _, tx := range st.AccountTransactions {
		if tx.EntityID != entityID {
			continue
		}
		switch tx.Type {
		case domain.TransactionTypeDebt:
			out.TotalDebt += tx.Amount
		case domain.TransactionTypePayment:
			out.TotalPaid += tx.Amount
		}
	}
	out.Balance = out.TotalDebt - out.TotalPaid
	return out
}

// monthKey is the 7-character ISO prefix monthly buckets match on. Bucketing
// is by string prefix, deliberately not timezone-aware month arithmetic.
func monthKey(t time.Time) string {
	return t.UTC().Format("2006-01")
}

func dayKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

type DashboardStats struct {
	Pending               int                  `json:"pending"`
	Diagnosing            int                  `json:"diagnosing"`
	Ready                 int                  `json:"ready"`
	TodayCount            int                  `json:"todayCount"`
	MonthRevenue          float64              `json:"monthRevenue"`
	MonthExpenses         float64              `json:"monthExpenses"`
	NetProfit             float64              `json:"netProfit"`
	LowStock              []domain.StockItem   `json:"lowStock"`
	LowStockCount         int                  `json:"lowStockCount"`
	TodayAppointments     []domain.Appointment `json:"todayAppointments"`
	TodayAppointmentCount int                  `json:"todayAppointmentCount"`
	TotalActive           int                  `json:"totalActive"`
}

func Dashboard(st domain.AppState, now time.Time) DashboardStats {
	today := dayKey(now)
	thisMonth := monthKey(now)

	var out DashboardStats
	for _, r := range st.Repairs {
		switch r.Status {
		case domain.RepairStatusPending:
			out.Pending++
		case domain.RepairStatusDiagnosing, domain.RepairStatusRepairing:
			out.Diagnosing++
		case domain.RepairStatusReady:
			out.Ready++
		}
		if len(r.CreatedAt) >= 10 && r.CreatedAt[:10] == today {
			out.TodayCount++
		}
		if r.Status != domain.RepairStatusDelivered && r.Status != domain.RepairStatusCancelled {
			out.TotalActive++
		}
	}
	for _, in := range st.Incomes {
		if len(in.Date) >= 7 && in.Date[:7] == thisMonth {
			out.MonthRevenue += in.Amount
		}
	}
	for _, e := range st.Expenses {
		if len(e.Date) >= 7 && e.Date[:7] == thisMonth {
			out.MonthExpenses += e.Amount
		}
	}
	out.NetProfit = out.MonthRevenue - out.MonthExpenses
	out.LowStock = LowStock(st)
	out.LowStockCount = len(out.LowStock)
	for _, a := range st.Appointments {
		if a.Date == today && a.Status == domain.AppointmentStatusScheduled {
			out.TodayAppointments = append(out.TodayAppointments, a)
		}
	}
	out.TodayAppointmentCount = len(out.TodayAppointments)
	return out
}

// LowStock is exactly the set of items at or below their critical level.
func LowStock(st domain.AppState) []domain.StockItem {
	var out []domain.StockItem
	for _, item := range st.StockItems {
		if item.Quantity <= item.CriticalLevel {
			out = append(out, item)
		}
	}
	return out
}

type MonthBucket struct {
	Key         string  `json:"key"`
	Revenue     float64 `json:"revenue"`
	RepairCount int     `json:"repairCount"`
}

// MonthlySeries builds the last six month buckets, oldest first. Revenue is
// the delivered repairs' final cost bucketed by UpdatedAt prefix; the count
// buckets every repair by CreatedAt prefix.
func MonthlySeries(st domain.AppState, now time.Time) []MonthBucket {
	now = now.UTC()
	buckets := make([]MonthBucket, 0, 6)
	for i := 5; i >= 0; i-- {
		m := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -i, 0)
		buckets = append(buckets, MonthBucket{Key: monthKey(m)})
	}
	for _, r := range st.Repairs {
		for bi := range buckets {
			key := buckets[bi].Key
			if r.Status == domain.RepairStatusDelivered && len(r.UpdatedAt) >= 7 && r.UpdatedAt[:7] == key {
				buckets[bi].Revenue += r.FinalCost
			}
			if len(r.CreatedAt) >= 7 && r.CreatedAt[:7] == key {
				buckets[bi].RepairCount++
			}
		}
	}
	return buckets
}

type ModelCount struct {
	Model string `json:"model"`
	Count int    `json:"count"`
}

// TopModels is the five most repaired brand+model pairs over the full
// history, ties broken by name for stable output.
func TopModels(st domain.AppState) []ModelCount {
	counts := map[string]int{}
	for _, r := range st.Repairs {
		counts[r.Device.Brand+" "+r.Device.Model]++
	}
	out := make([]ModelCount, 0, len(counts))
	for model, n := range counts {
		out = append(out, ModelCount{Model: model, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Model < out[j].Model
	})
	if len(out) > 5 {
		out = out[:5]
	}
	return out
}

type PartUsage struct {
	Name    string  `json:"name"`
	Qty     int     `json:"qty"`
	Revenue float64 `json:"revenue"`
}

// TopParts ranks the five most consumed part names across all tickets.
func TopParts(st domain.AppState) []PartUsage {
	counts := map[string]*PartUsage{}
	for _, r := range st.Repairs {
		for _, p := range r.UsedParts {
			u := counts[p.Name]
			if u == nil {
				u = &PartUsage{Name: p.Name}
				counts[p.Name] = u
			}
			u.Qty += p.Quantity
			u.Revenue += p.Cost * float64(p.Quantity)
		}
	}
	out := make([]PartUsage, 0, len(counts))
	for _, u := range counts {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Qty != out[j].Qty {
			return out[i].Qty > out[j].Qty
		}
		return out[i].Name < out[j].Name
	})
	if len(out) > 5 {
		out = out[:5]
	}
	return out
}

type StatusSlice struct {
	Status domain.RepairStatus `json:"status"`
	Count  int                 `json:"count"`
	Pct    int                 `json:"pct"`
}

// StatusDistribution counts tickets per status with rounded percentages.
func StatusDistribution(st domain.AppState) []StatusSlice {
	counts := map[domain.RepairStatus]int{}
	for _, r := range st.Repairs {
		counts[r.Status]++
	}
	total := len(st.Repairs)
	if total == 0 {
		total = 1
	}
	out := make([]StatusSlice, 0, len(counts))
	for status, n := range counts {
		pct := int(float64(n)/float64(total)*100 + 0.5)
		out = append(out, StatusSlice{Status: status, Count: n, Pct: pct})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Status < out[j].Status
	})
	return out
}

type Warranty struct {
	ExpiresAt      time.Time `json:"expiresAt"`
	RemainingDays  int       `json:"remainingDays"`
	IsExpired      bool      `json:"isExpired"`
	IsExpiringSoon bool      `json:"isExpiringSoon"`
}

// WarrantyFor is only meaningful for delivered tickets with warranty days;
// anything else reports no warranty. The window starts at the delivery
// stamp (UpdatedAt) and runs warrantyDays calendar days.
func WarrantyFor(r domain.RepairRecord, now time.Time) (Warranty, bool) {
	if r.Status != domain.RepairStatusDelivered || r.WarrantyDays <= 0 {
		return Warranty{}, false
	}
	delivered, err := time.Parse(time.RFC3339, r.UpdatedAt)
	if err != nil {
		return Warranty{}, false
	}
	expires := delivered.Add(time.Duration(r.WarrantyDays) * 24 * time.Hour)
	// ceil(diff / day): truncation already rounds negatives toward zero
	diff := expires.Sub(now)
	day := 24 * time.Hour
	remaining := int(diff / day)
	if diff%day > 0 {
		remaining++
	}
	return Warranty{
		ExpiresAt:      expires,
		RemainingDays:  remaining,
		IsExpired:      remaining <= 0,
		IsExpiringSoon: remaining > 0 && remaining <= 14,
	}, true
}

type CustomerSummary struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Phone           string  `json:"phone"`
	Email           string  `json:"email,omitempty"`
	IsBlacklisted   bool    `json:"isBlacklisted"`
	BlacklistReason string  `json:"blacklistReason,omitempty"`
	RepairCount     int     `json:"repairCount"`
	TotalSpent      float64 `json:"totalSpent"`
	FirstVisit      string  `json:"firstVisit"`
	LastVisit       string  `json:"lastVisit"`
}

// Customers projects the customer list out of the repair history, unique by
// phone number and sorted by most recent visit. There is no customer table;
// the tickets are the source of truth.
func Customers(st domain.AppState) []CustomerSummary {
	byPhone := map[string]*CustomerSummary{}
	order := make([]string, 0)
	for _, r := range st.Repairs {
		spent := r.FinalCost
		if spent == 0 {
			spent = r.EstimatedCost
		}
		c := byPhone[r.Customer.Phone]
		if c == nil {
			id := r.Customer.ID
			if id == "" {
				id = r.Customer.Phone
			}
			byPhone[r.Customer.Phone] = &CustomerSummary{
				ID:              id,
				Name:            r.Customer.FullName,
				Phone:           r.Customer.Phone,
				Email:           r.Customer.Email,
				IsBlacklisted:   r.Customer.IsBlacklisted,
				BlacklistReason: r.Customer.BlacklistReason,
				RepairCount:     1,
				TotalSpent:      spent,
				FirstVisit:      r.CreatedAt,
				LastVisit:       r.CreatedAt,
			}
			order = append(order, r.Customer.Phone)
			continue
		}
		c.RepairCount++
		c.TotalSpent += spent
		if r.CreatedAt < c.FirstVisit {
			c.FirstVisit = r.CreatedAt
		}
		if r.CreatedAt > c.LastVisit {
			c.LastVisit = r.CreatedAt
		}
	}
	out := make([]CustomerSummary, 0, len(order))
	for _, phone := range order {
		out = append(out, *byPhone[phone])
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LastVisit > out[j].LastVisit })
	return out
}

type StaffPerformance struct {
	StaffID   string `json:"staffId"`
	Name      string `json:"name"`
	Delivered int    `json:"delivered"`
}

// StaffMonthlyPerformance counts delivered repairs this month per active
// staff member, matched by assigned technician name.
func StaffMonthlyPerformance(st domain.AppState, now time.Time) []StaffPerformance {
	thisMonth := monthKey(now)
	out := make([]StaffPerformance, 0, len(st.Staff))
	for _, m := range st.Staff {
		if !m.IsActive {
			continue
		}
		perf := StaffPerformance{StaffID: m.ID, Name: m.Name}
		for _, r := range st.Repairs {
			if r.AssignedTo == m.Name && r.Status == domain.RepairStatusDelivered &&
				len(r.UpdatedAt) >= 7 && r.UpdatedAt[:7] == thisMonth {
				perf.Delivered++
			}
		}
		out = append(out, perf)
	}
	return out
}

// SecondHandProfit is computed, never stored.
func SecondHandProfit(d domain.SecondHandDevice) float64 {
	return d.SellPrice - d.BuyPrice
}

// CostInTRY converts a foreign-currency buy price using the stored manual
// rates. TRY and unknown currencies pass through unchanged.
func CostInTRY(st domain.AppState, price float64, currency string) float64 {
	if currency == domain.CurrencyTRY {
		return price
	}
	for _, r := range st.ExchangeRates {
		if r.Currency == currency {
			return price * r.Rate
		}
	}
	return price
}
