// Package export renders store snapshots into backup and spreadsheet
// formats. Everything here is a pure consumer of the state; nothing mutates.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"teknikservis/backend/internal/domain"
)

// utf8BOM keeps Turkish characters intact when the file is opened in Excel.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

func writeCSV(headers []string, rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	buf.Write(utf8BOM)
	w := csv.NewWriter(&buf)
	if err := w.Write(headers); err != nil {
		return nil, err
	}
	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// RepairsCSV exports the full ticket list.
func RepairsCSV(st domain.AppState) ([]byte, error) {
	headers := []string{"Fiş No", "Müşteri", "Telefon", "Marka", "Model", "IMEI", "Arıza", "Durum", "Tahmini", "Nihai", "Garanti Gün", "Teknisyen", "Notlar", "Tarih"}
	rows := make([][]string, 0, len(st.Repairs))
	for _, r := range st.Repairs {
		rows = append(rows, []string{
			r.TicketNo,
			r.Customer.FullName,
			r.Customer.Phone,
			r.Device.Brand,
			r.Device.Model,
			r.Device.IMEI,
			r.IssueDescription,
			string(r.Status),
			money(r.EstimatedCost),
			money(r.FinalCost),
			strconv.Itoa(r.WarrantyDays),
			r.AssignedTo,
			r.TechnicianNotes,
			displayDate(r.CreatedAt),
		})
	}
	return writeCSV(headers, rows)
}

// StockCSV exports the parts inventory.
func StockCSV(st domain.AppState) ([]byte, error) {
	headers := []string{"Parça", "Kategori", "Marka", "Adet", "Kritik", "Alış", "Döviz", "Satış", "Barkod"}
	rows := make([][]string, 0, len(st.StockItems))
	for _, item := range st.StockItems {
		rows = append(rows, []string{
			item.Name,
			string(item.Category),
			item.Brand,
			strconv.Itoa(item.Quantity),
			strconv.Itoa(item.CriticalLevel),
			money(item.BuyPrice),
			item.BuyCurrency,
			money(item.SellPrice),
			item.Barcode,
		})
	}
	return writeCSV(headers, rows)
}

// ExpensesCSV exports the expense ledger.
func ExpensesCSV(st domain.AppState) ([]byte, error) {
	headers := []string{"Tarih", "Kategori", "Açıklama", "Tutar", "Ödeyen"}
	rows := make([][]string, 0, len(st.Expenses))
	for _, e := range st.Expenses {
		rows = append(rows, []string{
			e.Date,
			e.Category,
			e.Description,
			money(e.Amount),
			e.PaidBy,
		})
	}
	return writeCSV(headers, rows)
}

// displayDate formats an ISO timestamp as DD.MM.YYYY, falling back to the
// raw value when unparsable.
func displayDate(iso string) string {
	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		return iso
	}
	return fmt.Sprintf("%02d.%02d.%d", t.Day(), int(t.Month()), t.Year())
}
