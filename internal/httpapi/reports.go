package httpapi

import (
	"net/http"

	"teknikservis/backend/internal/domain"
	"teknikservis/backend/internal/export"
	"teknikservis/backend/internal/message"
	"teknikservis/backend/internal/report"
	"teknikservis/backend/internal/templates"
)

func (a *API) handleDashboard(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, report.Dashboard(a.svc.State(), a.now()))
}

func (a *API) handleMonthlySeries(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, report.MonthlySeries(a.svc.State(), a.now()))
}

func (a *API) handleTopModels(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, report.TopModels(a.svc.State()))
}

func (a *API) handleTopParts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, report.TopParts(a.svc.State()))
}

func (a *API) handleStatusDistribution(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, report.StatusDistribution(a.svc.State()))
}

func (a *API) handleStaffPerformance(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, report.StaffMonthlyPerformance(a.svc.State(), a.now()))
}

func (a *API) handleLowStock(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, report.LowStock(a.svc.State()))
}

func (a *API) handleBalance(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, report.Balance(a.svc.State(), r.PathValue("entityId")))
}

// handleListCustomers projects customers from repair history. Phones
// are masked while privacy mode is on.
func (a *API) handleListCustomers(w http.ResponseWriter, r *http.Request) {
	st := a.svc.State()
	customers := report.Customers(st)
	if st.PrivacyMode {
		for i := range customers {
			customers[i].Phone = report.MaskPhone(customers[i].Phone)
		}
	}
	writeJSON(w, http.StatusOK, customers)
}

func (a *API) handleSearch(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, report.Search(a.svc.State(), r.URL.Query().Get("q")))
}

func (a *API) findRepair(id string) (domain.RepairRecord, bool) {
	for _, rec := range a.svc.State().Repairs {
		if rec.ID == id {
			return rec, true
		}
	}
	return domain.RepairRecord{}, false
}

func (a *API) handleWarranty(w http.ResponseWriter, r *http.Request) {
	rec, ok := a.findRepair(r.PathValue("id"))
	if !ok {
		notFound(w)
		return
	}
	warranty, active := report.WarrantyFor(rec, a.now())
	if !active {
		writeJSON(w, http.StatusOK, map[string]bool{"active": false})
		return
	}
	writeJSON(w, http.StatusOK, warranty)
}

type repairMessage struct {
	Text         string `json:"text"`
	WhatsAppLink string `json:"whatsappLink"`
}

func (a *API) handleRepairMessage(w http.ResponseWriter, r *http.Request) {
	rec, ok := a.findRepair(r.PathValue("id"))
	if !ok {
		notFound(w)
		return
	}
	text := message.StatusText(rec)
	writeJSON(w, http.StatusOK, repairMessage{
		Text:         text,
		WhatsAppLink: message.WhatsAppLink(rec.Customer.Phone, text),
	})
}

func (a *API) handleTemplates(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	brand, model := q.Get("brand"), q.Get("model")
	switch {
	case brand != "" && model != "":
		writeJSON(w, http.StatusOK, templates.CommonIssues(brand, model))
	case brand != "":
		writeJSON(w, http.StatusOK, templates.ModelsForBrand(brand))
	default:
		writeJSON(w, http.StatusOK, templates.All())
	}
}

func (a *API) handleExportBackup(w http.ResponseWriter, r *http.Request) {
	data, err := a.svc.ExportBackup()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="teknikservis-backup.json"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// handleImportBackup replaces the whole state. Manager PIN required on
// top of the admin role.
func (a *API) handleImportBackup(w http.ResponseWriter, r *http.Request) {
	if err := a.auth.ValidateManagerPIN(r.Header.Get("X-Manager-PIN")); err != nil {
		writeError(w, http.StatusForbidden, "manager PIN required")
		return
	}
	raw, err := readBody(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "read request body")
		return
	}
	if err := a.svc.ImportBackup(r.Context(), raw); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "imported"})
}

func (a *API) handleExportRepairsCSV(w http.ResponseWriter, r *http.Request) {
	data, err := export.RepairsCSV(a.svc.State())
	writeCSV(w, "tamirler.csv", data, err)
}

func (a *API) handleExportStockCSV(w http.ResponseWriter, r *http.Request) {
	data, err := export.StockCSV(a.svc.State())
	writeCSV(w, "stok.csv", data, err)
}

func (a *API) handleExportExpensesCSV(w http.ResponseWriter, r *http.Request) {
	data, err := export.ExpensesCSV(a.svc.State())
	writeCSV(w, "giderler.csv", data, err)
}
