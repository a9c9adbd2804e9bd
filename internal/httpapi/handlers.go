package httpapi

import (
	"net/http"
	"strconv"
	"time"

	"teknikservis/backend/internal/domain"
	"teknikservis/backend/internal/service"
)

func (a *API) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type loginRequest struct {
	PIN string `json:"pin"`
}

type loginResponse struct {
	AccessToken string      `json:"accessToken"`
	ExpiresAt   string      `json:"expiresAt"`
	Staff       staffPublic `json:"staff"`
}

// staffPublic is the staff shape safe to put on the wire. The PIN
// never leaves the server.
type staffPublic struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	IsActive bool   `json:"isActive"`
}

func publicStaff(m domain.StaffMember) staffPublic {
	return staffPublic{ID: m.ID, Name: m.Name, Role: m.Role, IsActive: m.IsActive}
}

func (a *API) handleLogin(w http.ResponseWriter, r *http.Request) {
	if !a.loginLimiter.Allow(clientKey(r)) {
		writeError(w, http.StatusTooManyRequests, "too many login attempts")
		return
	}
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	staff, ok := a.svc.Login(r.Context(), req.PIN)
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}
	token, expiresAt, err := a.auth.Sign(staff, a.now())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, loginResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt.UTC().Format(time.RFC3339),
		Staff:       publicStaff(staff),
	})
}

func (a *API) handleLogout(w http.ResponseWriter, r *http.Request) {
	a.svc.Logout(r.Context())
	writeJSON(w, http.StatusOK, map[string]string{"status": "logged out"})
}

func (a *API) handleCSRFToken(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"csrfToken": a.generateCSRFToken()})
}

func (a *API) handleState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.svc.State())
}

func (a *API) handleTogglePrivacy(w http.ResponseWriter, r *http.Request) {
	enabled := a.svc.TogglePrivacy(r.Context())
	writeJSON(w, http.StatusOK, map[string]bool{"privacyMode": enabled})
}

func queryBool(r *http.Request, name string) bool {
	v, err := strconv.ParseBool(r.URL.Query().Get(name))
	return err == nil && v
}

// notFound is the uniform reply for mutations aimed at a missing id.
func notFound(w http.ResponseWriter) {
	writeError(w, http.StatusNotFound, "not found")
}

func (a *API) handleListRepairs(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.svc.State().Repairs)
}

func (a *API) handleAddRepair(w http.ResponseWriter, r *http.Request) {
	var rec domain.RepairRecord
	if err := decodeJSON(r, &rec); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, a.svc.AddRepair(r.Context(), rec))
}

func (a *API) handleUpdateRepair(w http.ResponseWriter, r *http.Request) {
	var upd service.RepairUpdate
	if err := decodeJSON(r, &upd); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	rec, ok := a.svc.UpdateRepair(r.Context(), r.PathValue("id"), upd, queryBool(r, "postIncome"))
	if !ok {
		notFound(w)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (a *API) handleDeleteRepair(w http.ResponseWriter, r *http.Request) {
	if !a.svc.DeleteRepair(r.Context(), r.PathValue("id")) {
		notFound(w)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *API) handleRecordUsedParts(w http.ResponseWriter, r *http.Request) {
	var parts []domain.UsedPart
	if err := decodeJSON(r, &parts); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	rec, ok := a.svc.RecordUsedParts(r.Context(), r.PathValue("id"), parts)
	if !ok {
		notFound(w)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

type blacklistRequest struct {
	Phone       string `json:"phone"`
	Blacklisted bool   `json:"blacklisted"`
	Reason      string `json:"reason"`
}

func (a *API) handleSetBlacklist(w http.ResponseWriter, r *http.Request) {
	var req blacklistRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Phone == "" {
		writeError(w, http.StatusBadRequest, "phone is required")
		return
	}
	updated := a.svc.SetBlacklist(r.Context(), req.Phone, req.Blacklisted, req.Reason)
	writeJSON(w, http.StatusOK, map[string]int{"updatedRepairs": updated})
}

func (a *API) handleListStock(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.svc.State().StockItems)
}

func (a *API) handleAddStock(w http.ResponseWriter, r *http.Request) {
	var item domain.StockItem
	if err := decodeJSON(r, &item); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, a.svc.AddStockItem(r.Context(), item))
}

func (a *API) handleUpdateStock(w http.ResponseWriter, r *http.Request) {
	var upd service.StockUpdate
	if err := decodeJSON(r, &upd); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	item, ok := a.svc.UpdateStockItem(r.Context(), r.PathValue("id"), upd)
	if !ok {
		notFound(w)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (a *API) handleDeleteStock(w http.ResponseWriter, r *http.Request) {
	if !a.svc.DeleteStockItem(r.Context(), r.PathValue("id")) {
		notFound(w)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type adjustStockRequest struct {
	Delta int `json:"delta"`
}

func (a *API) handleAdjustStock(w http.ResponseWriter, r *http.Request) {
	var req adjustStockRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	item, ok := a.svc.AdjustStockQuantity(r.Context(), r.PathValue("id"), req.Delta)
	if !ok {
		notFound(w)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (a *API) handleListSuppliers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.svc.State().Suppliers)
}

func (a *API) handleAddSupplier(w http.ResponseWriter, r *http.Request) {
	var sup domain.Supplier
	if err := decodeJSON(r, &sup); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, a.svc.AddSupplier(r.Context(), sup))
}

func (a *API) handleUpdateSupplier(w http.ResponseWriter, r *http.Request) {
	var upd service.SupplierUpdate
	if err := decodeJSON(r, &upd); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	sup, ok := a.svc.UpdateSupplier(r.Context(), r.PathValue("id"), upd)
	if !ok {
		notFound(w)
		return
	}
	writeJSON(w, http.StatusOK, sup)
}

func (a *API) handleDeleteSupplier(w http.ResponseWriter, r *http.Request) {
	if !a.svc.DeleteSupplier(r.Context(), r.PathValue("id")) {
		notFound(w)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *API) handleListCompanies(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.svc.State().Companies)
}

func (a *API) handleAddCompany(w http.ResponseWriter, r *http.Request) {
	var c domain.Company
	if err := decodeJSON(r, &c); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, a.svc.AddCompany(r.Context(), c))
}

func (a *API) handleUpdateCompany(w http.ResponseWriter, r *http.Request) {
	var upd service.CompanyUpdate
	if err := decodeJSON(r, &upd); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	c, ok := a.svc.UpdateCompany(r.Context(), r.PathValue("id"), upd)
	if !ok {
		notFound(w)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (a *API) handleDeleteCompany(w http.ResponseWriter, r *http.Request) {
	if !a.svc.DeleteCompany(r.Context(), r.PathValue("id")) {
		notFound(w)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *API) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.svc.State().AccountTransactions)
}

func (a *API) handleAddTransaction(w http.ResponseWriter, r *http.Request) {
	var tx domain.AccountTransaction
	if err := decodeJSON(r, &tx); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, a.svc.AddTransaction(r.Context(), tx, queryBool(r, "postToLedger")))
}

func (a *API) handleDeleteTransaction(w http.ResponseWriter, r *http.Request) {
	if !a.svc.DeleteTransaction(r.Context(), r.PathValue("id")) {
		notFound(w)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *API) handleListExpenses(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.svc.State().Expenses)
}

func (a *API) handleAddExpense(w http.ResponseWriter, r *http.Request) {
	var e domain.Expense
	if err := decodeJSON(r, &e); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, a.svc.AddExpense(r.Context(), e))
}

func (a *API) handleDeleteExpense(w http.ResponseWriter, r *http.Request) {
	if !a.svc.DeleteExpense(r.Context(), r.PathValue("id")) {
		notFound(w)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *API) handleListIncomes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.svc.State().Incomes)
}

func (a *API) handleAddIncome(w http.ResponseWriter, r *http.Request) {
	var in domain.Income
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, a.svc.AddIncome(r.Context(), in))
}

func (a *API) handleDeleteIncome(w http.ResponseWriter, r *http.Request) {
	if !a.svc.DeleteIncome(r.Context(), r.PathValue("id")) {
		notFound(w)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *API) handleListExchangeRates(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.svc.State().ExchangeRates)
}

type exchangeRateRequest struct {
	Rate   float64 `json:"rate"`
	Bank   string  `json:"bank"`
	Source string  `json:"source"`
}

func (a *API) handleUpdateExchangeRate(w http.ResponseWriter, r *http.Request) {
	var req exchangeRateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Rate <= 0 {
		writeError(w, http.StatusBadRequest, "rate must be positive")
		return
	}
	rate, ok := a.svc.UpdateExchangeRate(r.Context(), r.PathValue("currency"), req.Rate, req.Bank, req.Source)
	if !ok {
		notFound(w)
		return
	}
	writeJSON(w, http.StatusOK, rate)
}

func (a *API) handleListRMA(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.svc.State().RMARecords)
}

func (a *API) handleAddRMA(w http.ResponseWriter, r *http.Request) {
	var rec domain.RMARecord
	if err := decodeJSON(r, &rec); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, a.svc.AddRMA(r.Context(), rec))
}

func (a *API) handleUpdateRMA(w http.ResponseWriter, r *http.Request) {
	var upd service.RMAUpdate
	if err := decodeJSON(r, &upd); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	rec, ok := a.svc.UpdateRMA(r.Context(), r.PathValue("id"), upd)
	if !ok {
		notFound(w)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (a *API) handleDeleteRMA(w http.ResponseWriter, r *http.Request) {
	if !a.svc.DeleteRMA(r.Context(), r.PathValue("id")) {
		notFound(w)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *API) handleListQuotes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.svc.State().Quotes)
}

func (a *API) handleAddQuote(w http.ResponseWriter, r *http.Request) {
	var q domain.Quote
	if err := decodeJSON(r, &q); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, a.svc.AddQuote(r.Context(), q))
}

func (a *API) handleUpdateQuote(w http.ResponseWriter, r *http.Request) {
	var upd service.QuoteUpdate
	if err := decodeJSON(r, &upd); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	q, ok := a.svc.UpdateQuote(r.Context(), r.PathValue("id"), upd)
	if !ok {
		notFound(w)
		return
	}
	writeJSON(w, http.StatusOK, q)
}

func (a *API) handleDeleteQuote(w http.ResponseWriter, r *http.Request) {
	if !a.svc.DeleteQuote(r.Context(), r.PathValue("id")) {
		notFound(w)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *API) handleListWishlist(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.svc.State().Wishlist)
}

func (a *API) handleAddWishlist(w http.ResponseWriter, r *http.Request) {
	var item domain.WishlistItem
	if err := decodeJSON(r, &item); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, a.svc.AddWishlistItem(r.Context(), item))
}

func (a *API) handleUpdateWishlist(w http.ResponseWriter, r *http.Request) {
	var upd service.WishlistUpdate
	if err := decodeJSON(r, &upd); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	item, ok := a.svc.UpdateWishlistItem(r.Context(), r.PathValue("id"), upd)
	if !ok {
		notFound(w)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (a *API) handleDeleteWishlist(w http.ResponseWriter, r *http.Request) {
	if !a.svc.DeleteWishlistItem(r.Context(), r.PathValue("id")) {
		notFound(w)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *API) handleListSecondHand(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.svc.State().SecondHandDevices)
}

func (a *API) handleAddSecondHand(w http.ResponseWriter, r *http.Request) {
	var d domain.SecondHandDevice
	if err := decodeJSON(r, &d); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, a.svc.AddSecondHand(r.Context(), d))
}

func (a *API) handleUpdateSecondHand(w http.ResponseWriter, r *http.Request) {
	var upd service.SecondHandUpdate
	if err := decodeJSON(r, &upd); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	d, ok := a.svc.UpdateSecondHand(r.Context(), r.PathValue("id"), upd)
	if !ok {
		notFound(w)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (a *API) handleDeleteSecondHand(w http.ResponseWriter, r *http.Request) {
	if !a.svc.DeleteSecondHand(r.Context(), r.PathValue("id")) {
		notFound(w)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *API) handleListLoaners(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.svc.State().LoanerDevices)
}

func (a *API) handleAddLoaner(w http.ResponseWriter, r *http.Request) {
	var l domain.LoanerDevice
	if err := decodeJSON(r, &l); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, a.svc.AddLoanerDevice(r.Context(), l))
}

func (a *API) handleUpdateLoaner(w http.ResponseWriter, r *http.Request) {
	var upd service.LoanerUpdate
	if err := decodeJSON(r, &upd); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	l, ok := a.svc.UpdateLoanerDevice(r.Context(), r.PathValue("id"), upd)
	if !ok {
		notFound(w)
		return
	}
	writeJSON(w, http.StatusOK, l)
}

func (a *API) handleDeleteLoaner(w http.ResponseWriter, r *http.Request) {
	if !a.svc.DeleteLoanerDevice(r.Context(), r.PathValue("id")) {
		notFound(w)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *API) handleListAppointments(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.svc.State().Appointments)
}

func (a *API) handleAddAppointment(w http.ResponseWriter, r *http.Request) {
	var app domain.Appointment
	if err := decodeJSON(r, &app); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, a.svc.AddAppointment(r.Context(), app))
}

func (a *API) handleUpdateAppointment(w http.ResponseWriter, r *http.Request) {
	var upd service.AppointmentUpdate
	if err := decodeJSON(r, &upd); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	app, ok := a.svc.UpdateAppointment(r.Context(), r.PathValue("id"), upd)
	if !ok {
		notFound(w)
		return
	}
	writeJSON(w, http.StatusOK, app)
}

func (a *API) handleDeleteAppointment(w http.ResponseWriter, r *http.Request) {
	if !a.svc.DeleteAppointment(r.Context(), r.PathValue("id")) {
		notFound(w)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *API) handleListNotes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.svc.State().StickyNotes)
}

func (a *API) handleAddNote(w http.ResponseWriter, r *http.Request) {
	var n domain.StickyNote
	if err := decodeJSON(r, &n); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, a.svc.AddStickyNote(r.Context(), n))
}

func (a *API) handleUpdateNote(w http.ResponseWriter, r *http.Request) {
	var upd service.StickyNoteUpdate
	if err := decodeJSON(r, &upd); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	n, ok := a.svc.UpdateStickyNote(r.Context(), r.PathValue("id"), upd)
	if !ok {
		notFound(w)
		return
	}
	writeJSON(w, http.StatusOK, n)
}

func (a *API) handleDeleteNote(w http.ResponseWriter, r *http.Request) {
	if !a.svc.DeleteStickyNote(r.Context(), r.PathValue("id")) {
		notFound(w)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *API) handleListQuickMessages(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.svc.State().QuickMessages)
}

func (a *API) handleUpdateQuickMessage(w http.ResponseWriter, r *http.Request) {
	var upd service.QuickMessageUpdate
	if err := decodeJSON(r, &upd); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	qm, ok := a.svc.UpdateQuickMessage(r.Context(), r.PathValue("id"), upd)
	if !ok {
		notFound(w)
		return
	}
	writeJSON(w, http.StatusOK, qm)
}

func (a *API) handleListProducts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.svc.State().Products)
}

func (a *API) handleAddProduct(w http.ResponseWriter, r *http.Request) {
	var p domain.Product
	if err := decodeJSON(r, &p); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, a.svc.AddProduct(r.Context(), p))
}

func (a *API) handleUpdateProduct(w http.ResponseWriter, r *http.Request) {
	var upd service.ProductUpdate
	if err := decodeJSON(r, &upd); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	p, ok := a.svc.UpdateProduct(r.Context(), r.PathValue("id"), upd)
	if !ok {
		notFound(w)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (a *API) handleDeleteProduct(w http.ResponseWriter, r *http.Request) {
	if !a.svc.DeleteProduct(r.Context(), r.PathValue("id")) {
		notFound(w)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *API) handleListSales(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.svc.State().Sales)
}

func (a *API) handleAddSale(w http.ResponseWriter, r *http.Request) {
	var sale domain.Sale
	if err := decodeJSON(r, &sale); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if len(sale.Items) == 0 {
		writeError(w, http.StatusBadRequest, "sale needs at least one item")
		return
	}
	writeJSON(w, http.StatusCreated, a.svc.AddSale(r.Context(), sale))
}

func (a *API) handleListStaff(w http.ResponseWriter, r *http.Request) {
	members := a.svc.State().Staff
	out := make([]staffPublic, 0, len(members))
	for _, m := range members {
		out = append(out, publicStaff(m))
	}
	writeJSON(w, http.StatusOK, out)
}

func (a *API) handleAddStaff(w http.ResponseWriter, r *http.Request) {
	var m domain.StaffMember
	if err := decodeJSON(r, &m); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if m.Name == "" || m.PIN == "" {
		writeError(w, http.StatusBadRequest, "name and pin are required")
		return
	}
	writeJSON(w, http.StatusCreated, publicStaff(a.svc.AddStaff(r.Context(), m)))
}

func (a *API) handleUpdateStaff(w http.ResponseWriter, r *http.Request) {
	var upd service.StaffUpdate
	if err := decodeJSON(r, &upd); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	m, ok := a.svc.UpdateStaff(r.Context(), r.PathValue("id"), upd)
	if !ok {
		notFound(w)
		return
	}
	writeJSON(w, http.StatusOK, publicStaff(m))
}

func (a *API) handleListRecycleBin(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.svc.State().DeletedItems)
}

func (a *API) handleRestoreItem(w http.ResponseWriter, r *http.Request) {
	if !a.svc.RestoreItem(r.Context(), r.PathValue("id")) {
		notFound(w)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "restored"})
}

func (a *API) handlePermanentDelete(w http.ResponseWriter, r *http.Request) {
	if err := a.auth.ValidateManagerPIN(r.Header.Get("X-Manager-PIN")); err != nil {
		writeError(w, http.StatusForbidden, "manager PIN required")
		return
	}
	if !a.svc.PermanentDelete(r.Context(), r.PathValue("id")) {
		notFound(w)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
