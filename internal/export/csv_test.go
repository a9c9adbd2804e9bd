package export

import (
	"bytes"
	"encoding/csv"
	"testing"

	"teknikservis/backend/internal/domain"
)

func TestRepairsCSV(t *testing.T) {
	st := domain.AppState{Repairs: []domain.RepairRecord{{
		TicketNo:         "TS-260315-0001",
		Customer:         domain.Customer{FullName: "Ali Veli", Phone: "0555"},
		Device:           domain.Device{Brand: "Apple", Model: "iPhone 13", IMEI: "356789"},
		IssueDescription: "Ekran kırık",
		Status:           domain.RepairStatusReady,
		EstimatedCost:    500.5,
		FinalCost:        750,
		WarrantyDays:     90,
		CreatedAt:        "2026-03-15T10:30:00Z",
	}}}

	data, err := RepairsCSV(st)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}) {
		t.Fatal("export should start with a UTF-8 BOM")
	}

	records, err := csv.NewReader(bytes.NewReader(data[3:])).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d rows, want header plus one", len(records))
	}
	if records[0][0] != "Fiş No" || records[0][1] != "Müşteri" {
		t.Fatalf("header = %v", records[0])
	}
	row := records[1]
	if row[0] != "TS-260315-0001" || row[8] != "500.5" || row[9] != "750" {
		t.Fatalf("row = %v", row)
	}
	if row[len(row)-1] != "15.03.2026" {
		t.Fatalf("date column = %q, want DD.MM.YYYY", row[len(row)-1])
	}
}

func TestStockCSV(t *testing.T) {
	st := domain.AppState{StockItems: []domain.StockItem{{
		Name:          "iPhone 13 Ekran",
		Category:      domain.StockCategoryScreen,
		Quantity:      4,
		CriticalLevel: 2,
		BuyPrice:      1200,
		BuyCurrency:   domain.CurrencyUSD,
		SellPrice:     1800,
		Barcode:       "869001",
	}}}

	data, err := StockCSV(st)
	if err != nil {
		t.Fatal(err)
	}
	records, err := csv.NewReader(bytes.NewReader(data[3:])).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	row := records[1]
	if row[0] != "iPhone 13 Ekran" || row[3] != "4" || row[6] != "USD" || row[8] != "869001" {
		t.Fatalf("row = %v", row)
	}
}

func TestExpensesCSVEmpty(t *testing.T) {
	data, err := ExpensesCSV(domain.AppState{})
	if err != nil {
		t.Fatal(err)
	}
	records, err := csv.NewReader(bytes.NewReader(data[3:])).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 {
		t.Fatalf("empty export should only carry the header, got %d rows", len(records))
	}
}
