package state

import (
	"time"

	"teknikservis/backend/internal/domain"
)

// Default returns a fresh initial state: empty collections, manual exchange
// rates for USD and EUR, the stock quick messages and a single active admin
// account with the factory PIN.
func Default() domain.AppState {
	now := time.Now().UTC().Format(time.RFC3339)
	return domain.AppState{
		Repairs:           []domain.RepairRecord{},
		Customers:         []domain.Customer{},
		StockItems:        []domain.StockItem{},
		Suppliers:         []domain.Supplier{},
		RMARecords:        []domain.RMARecord{},
		Wishlist:          []domain.WishlistItem{},
		SecondHandDevices: []domain.SecondHandDevice{},
		Expenses:          []domain.Expense{},
		Incomes:           []domain.Income{},
		ExchangeRates: []domain.ExchangeRate{
			{Currency: domain.CurrencyUSD, Rate: 32.50, Bank: "Manuel", LastUpdated: now, Source: domain.RateSourceManual},
			{Currency: domain.CurrencyEUR, Rate: 35.00, Bank: "Manuel", LastUpdated: now, Source: domain.RateSourceManual},
		},
		Companies:     []domain.Company{},
		Quotes:        []domain.Quote{},
		LoanerDevices: []domain.LoanerDevice{},
		Appointments:  []domain.Appointment{},
		QuickMessages: []domain.QuickMessage{
			{ID: "1", Label: "IBAN Gönder", Text: "IBAN: TR00 0000 0000 0000 0000 0000 00\nAlıcı: [İşletme Adı]"},
			{ID: "2", Label: "Konum Gönder", Text: "Dükkan Konumu: https://maps.google.com/?q=..."},
			{ID: "3", Label: "Mesai Saatleri", Text: "Mesai Saatlerimiz:\nHafta içi: 09:00 - 19:00\nCumartesi: 10:00 - 17:00\nPazar: Kapalı"},
			{ID: "4", Label: "Cihaz Hazır", Text: "Sayın müşterimiz, cihazınızın tamiri tamamlanmıştır. Mesai saatlerimiz içinde teslim alabilirsiniz."},
		},
		StickyNotes:  []domain.StickyNote{},
		DeletedItems: []domain.DeletedItem{},
		Staff: []domain.StaffMember{
			{ID: "1", Name: "Patron", Role: domain.RoleAdmin, PIN: "1234", IsActive: true},
		},
		AccountTransactions: []domain.AccountTransaction{},
		Products:            []domain.Product{},
		Sales:               []domain.Sale{},
		PrivacyMode:         false,
	}
}
