package report

import (
	"fmt"
	"testing"

	"teknikservis/backend/internal/domain"
)

func TestSearchMinimumLength(t *testing.T) {
	st := domain.AppState{Repairs: []domain.RepairRecord{
		{TicketNo: "TS-1", Customer: domain.Customer{FullName: "Ali"}},
	}}
	if got := Search(st, "a"); got != nil {
		t.Fatalf("one-character query should return nothing, got %+v", got)
	}
}

func TestSearchAcrossCollections(t *testing.T) {
	st := domain.AppState{
		Repairs: []domain.RepairRecord{
			{TicketNo: "TS-260301-0001", Customer: domain.Customer{FullName: "Ayşe Kaya", Phone: "0555"},
				Device: domain.Device{Brand: "Apple", Model: "iPhone 13"}, Status: domain.RepairStatusReady},
		},
		StockItems: []domain.StockItem{
			{Name: "iPhone 13 Ekran", Quantity: 4, SellPrice: 1500},
			{Name: "Pil", Barcode: "869001", CompatibleModels: []string{"iPhone 13"}},
		},
		Companies: []domain.Company{{Name: "Kaya Lojistik", ContactPerson: "Murat"}},
		Quotes:    []domain.Quote{{CustomerName: "Ayşe Kaya", Total: 1200, Status: domain.QuoteStatusDraft}},
	}

	got := Search(st, "iphone")
	var repairs, stock int
	for _, res := range got {
		switch res.Type {
		case SearchTypeRepair:
			repairs++
		case SearchTypeStock:
			stock++
		}
	}
	if repairs != 1 {
		t.Fatalf("repair matches = %d, want 1", repairs)
	}
	// Name match plus a compatible-model match.
	if stock != 2 {
		t.Fatalf("stock matches = %d, want 2", stock)
	}

	// Barcode matches against the raw query.
	got = Search(st, "869001")
	if len(got) != 1 || got[0].Type != SearchTypeStock || got[0].Title != "Pil" {
		t.Fatalf("barcode search = %+v", got)
	}

	// Company and quote matches.
	got = Search(st, "kaya")
	var types []string
	for _, res := range got {
		types = append(types, res.Type)
	}
	want := []string{SearchTypeRepair, SearchTypeCustomer, SearchTypeCompany, SearchTypeQuote}
	if len(types) != len(want) {
		t.Fatalf("result types = %v, want %v", types, want)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Fatalf("result order = %v, want %v", types, want)
		}
	}
}

func TestSearchDeduplicatesCustomers(t *testing.T) {
	st := domain.AppState{Repairs: []domain.RepairRecord{
		{TicketNo: "TS-1", Customer: domain.Customer{FullName: "Ali Veli", Phone: "0555"}},
		{TicketNo: "TS-2", Customer: domain.Customer{FullName: "Ali Veli", Phone: "0555"}},
	}}

	var customers int
	for _, res := range Search(st, "veli") {
		if res.Type == SearchTypeCustomer {
			customers++
		}
	}
	if customers != 1 {
		t.Fatalf("customer results = %d, want 1", customers)
	}
}

func TestSearchCap(t *testing.T) {
	st := domain.AppState{}
	for i := 0; i < 30; i++ {
		st.Repairs = append(st.Repairs, domain.RepairRecord{
			TicketNo: fmt.Sprintf("TS-%04d", i),
			Customer: domain.Customer{FullName: "Kalabalık Müşteri", Phone: fmt.Sprintf("05%09d", i)},
		})
	}
	if got := Search(st, "kalabalık"); len(got) != 20 {
		t.Fatalf("got %d results, want the 20 cap", len(got))
	}
}
