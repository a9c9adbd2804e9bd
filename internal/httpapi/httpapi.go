// Package httpapi exposes the service over a JSON HTTP API.
package httpapi

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/netip"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"teknikservis/backend/internal/service"
)

const maxBodyBytes = 1 << 20

// API wires HTTP routes to the service layer.
type API struct {
	svc           *service.Service
	auth          *AuthManager
	log           *zap.Logger
	allowedOrigin string
	loginLimiter  *attemptLimiter
	csrfSecret    []byte
	now           func() time.Time
}

func New(svc *service.Service, auth *AuthManager, allowedOrigin string, log *zap.Logger) (*API, error) {
	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		return nil, fmt.Errorf("generate csrf secret: %w", err)
	}
	return &API{
		svc:           svc,
		auth:          auth,
		log:           log,
		allowedOrigin: allowedOrigin,
		loginLimiter:  newAttemptLimiter(10, time.Minute),
		csrfSecret:    secret,
		now:           time.Now,
	}, nil
}

// Handler builds the route table. All /api/v1 routes except login
// require a bearer token.
func (a *API) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", a.handleHealth)

	mux.HandleFunc("POST /api/v1/auth/login", a.handleLogin)
	mux.HandleFunc("POST /api/v1/auth/logout", a.requireAuth(a.handleLogout))
	mux.HandleFunc("GET /api/v1/auth/csrf-token", a.requireAuth(a.handleCSRFToken))

	mux.HandleFunc("GET /api/v1/state", a.requireAuth(a.handleState, "admin"))
	mux.HandleFunc("POST /api/v1/privacy/toggle", a.requireAuth(a.handleTogglePrivacy))

	mux.HandleFunc("GET /api/v1/repairs", a.requireAuth(a.handleListRepairs))
	mux.HandleFunc("POST /api/v1/repairs", a.requireAuth(a.handleAddRepair))
	mux.HandleFunc("PATCH /api/v1/repairs/{id}", a.requireAuth(a.handleUpdateRepair))
	mux.HandleFunc("DELETE /api/v1/repairs/{id}", a.requireAuth(a.handleDeleteRepair))
	mux.HandleFunc("POST /api/v1/repairs/{id}/parts", a.requireAuth(a.handleRecordUsedParts))
	mux.HandleFunc("GET /api/v1/repairs/{id}/warranty", a.requireAuth(a.handleWarranty))
	mux.HandleFunc("GET /api/v1/repairs/{id}/message", a.requireAuth(a.handleRepairMessage))

	mux.HandleFunc("GET /api/v1/customers", a.requireAuth(a.handleListCustomers))
	mux.HandleFunc("POST /api/v1/customers/blacklist", a.requireAuth(a.handleSetBlacklist))

	mux.HandleFunc("GET /api/v1/stock", a.requireAuth(a.handleListStock))
	mux.HandleFunc("POST /api/v1/stock", a.requireAuth(a.handleAddStock))
	mux.HandleFunc("PATCH /api/v1/stock/{id}", a.requireAuth(a.handleUpdateStock))
	mux.HandleFunc("DELETE /api/v1/stock/{id}", a.requireAuth(a.handleDeleteStock))
	mux.HandleFunc("POST /api/v1/stock/{id}/adjust", a.requireAuth(a.handleAdjustStock))
	mux.HandleFunc("GET /api/v1/stock/low", a.requireAuth(a.handleLowStock))

	mux.HandleFunc("GET /api/v1/suppliers", a.requireAuth(a.handleListSuppliers))
	mux.HandleFunc("POST /api/v1/suppliers", a.requireAuth(a.handleAddSupplier))
	mux.HandleFunc("PATCH /api/v1/suppliers/{id}", a.requireAuth(a.handleUpdateSupplier))
	mux.HandleFunc("DELETE /api/v1/suppliers/{id}", a.requireAuth(a.handleDeleteSupplier))

	mux.HandleFunc("GET /api/v1/companies", a.requireAuth(a.handleListCompanies))
	mux.HandleFunc("POST /api/v1/companies", a.requireAuth(a.handleAddCompany))
	mux.HandleFunc("PATCH /api/v1/companies/{id}", a.requireAuth(a.handleUpdateCompany))
	mux.HandleFunc("DELETE /api/v1/companies/{id}", a.requireAuth(a.handleDeleteCompany))

	mux.HandleFunc("GET /api/v1/transactions", a.requireAuth(a.handleListTransactions))
	mux.HandleFunc("POST /api/v1/transactions", a.requireAuth(a.handleAddTransaction))
	mux.HandleFunc("DELETE /api/v1/transactions/{id}", a.requireAuth(a.handleDeleteTransaction))
	mux.HandleFunc("GET /api/v1/balances/{entityId}", a.requireAuth(a.handleBalance))

	mux.HandleFunc("GET /api/v1/expenses", a.requireAuth(a.handleListExpenses))
	mux.HandleFunc("POST /api/v1/expenses", a.requireAuth(a.handleAddExpense))
	mux.HandleFunc("DELETE /api/v1/expenses/{id}", a.requireAuth(a.handleDeleteExpense))

	mux.HandleFunc("GET /api/v1/incomes", a.requireAuth(a.handleListIncomes))
	mux.HandleFunc("POST /api/v1/incomes", a.requireAuth(a.handleAddIncome))
	mux.HandleFunc("DELETE /api/v1/incomes/{id}", a.requireAuth(a.handleDeleteIncome))

	mux.HandleFunc("GET /api/v1/exchange-rates", a.requireAuth(a.handleListExchangeRates))
	mux.HandleFunc("PATCH /api/v1/exchange-rates/{currency}", a.requireAuth(a.handleUpdateExchangeRate))

	mux.HandleFunc("GET /api/v1/rma", a.requireAuth(a.handleListRMA))
	mux.HandleFunc("POST /api/v1/rma", a.requireAuth(a.handleAddRMA))
	mux.HandleFunc("PATCH /api/v1/rma/{id}", a.requireAuth(a.handleUpdateRMA))
	mux.HandleFunc("DELETE /api/v1/rma/{id}", a.requireAuth(a.handleDeleteRMA))

	mux.HandleFunc("GET /api/v1/quotes", a.requireAuth(a.handleListQuotes))
	mux.HandleFunc("POST /api/v1/quotes", a.requireAuth(a.handleAddQuote))
	mux.HandleFunc("PATCH /api/v1/quotes/{id}", a.requireAuth(a.handleUpdateQuote))
	mux.HandleFunc("DELETE /api/v1/quotes/{id}", a.requireAuth(a.handleDeleteQuote))

	mux.HandleFunc("GET /api/v1/wishlist", a.requireAuth(a.handleListWishlist))
	mux.HandleFunc("POST /api/v1/wishlist", a.requireAuth(a.handleAddWishlist))
	mux.HandleFunc("PATCH /api/v1/wishlist/{id}", a.requireAuth(a.handleUpdateWishlist))
	mux.HandleFunc("DELETE /api/v1/wishlist/{id}", a.requireAuth(a.handleDeleteWishlist))

	mux.HandleFunc("GET /api/v1/second-hand", a.requireAuth(a.handleListSecondHand))
	mux.HandleFunc("POST /api/v1/second-hand", a.requireAuth(a.handleAddSecondHand))
	mux.HandleFunc("PATCH /api/v1/second-hand/{id}", a.requireAuth(a.handleUpdateSecondHand))
	mux.HandleFunc("DELETE /api/v1/second-hand/{id}", a.requireAuth(a.handleDeleteSecondHand))

	mux.HandleFunc("GET /api/v1/loaners", a.requireAuth(a.handleListLoaners))
	mux.HandleFunc("POST /api/v1/loaners", a.requireAuth(a.handleAddLoaner))
	mux.HandleFunc("PATCH /api/v1/loaners/{id}", a.requireAuth(a.handleUpdateLoaner))
	mux.HandleFunc("DELETE /api/v1/loaners/{id}", a.requireAuth(a.handleDeleteLoaner))

	mux.HandleFunc("GET /api/v1/appointments", a.requireAuth(a.handleListAppointments))
	mux.HandleFunc("POST /api/v1/appointments", a.requireAuth(a.handleAddAppointment))
	mux.HandleFunc("PATCH /api/v1/appointments/{id}", a.requireAuth(a.handleUpdateAppointment))
	mux.HandleFunc("DELETE /api/v1/appointments/{id}", a.requireAuth(a.handleDeleteAppointment))

	mux.HandleFunc("GET /api/v1/notes", a.requireAuth(a.handleListNotes))
	mux.HandleFunc("POST /api/v1/notes", a.requireAuth(a.handleAddNote))
	mux.HandleFunc("PATCH /api/v1/notes/{id}", a.requireAuth(a.handleUpdateNote))
	mux.HandleFunc("DELETE /api/v1/notes/{id}", a.requireAuth(a.handleDeleteNote))

	mux.HandleFunc("GET /api/v1/quick-messages", a.requireAuth(a.handleListQuickMessages))
	mux.HandleFunc("PATCH /api/v1/quick-messages/{id}", a.requireAuth(a.handleUpdateQuickMessage))

	mux.HandleFunc("GET /api/v1/products", a.requireAuth(a.handleListProducts))
	mux.HandleFunc("POST /api/v1/products", a.requireAuth(a.handleAddProduct))
	mux.HandleFunc("PATCH /api/v1/products/{id}", a.requireAuth(a.handleUpdateProduct))
	mux.HandleFunc("DELETE /api/v1/products/{id}", a.requireAuth(a.handleDeleteProduct))
	mux.HandleFunc("GET /api/v1/sales", a.requireAuth(a.handleListSales))
	mux.HandleFunc("POST /api/v1/sales", a.requireAuth(a.handleAddSale))

	mux.HandleFunc("GET /api/v1/staff", a.requireAuth(a.handleListStaff, "admin"))
	mux.HandleFunc("POST /api/v1/staff", a.requireAuth(a.handleAddStaff, "admin"))
	mux.HandleFunc("PATCH /api/v1/staff/{id}", a.requireAuth(a.handleUpdateStaff, "admin"))

	mux.HandleFunc("GET /api/v1/recycle-bin", a.requireAuth(a.handleListRecycleBin))
	mux.HandleFunc("POST /api/v1/recycle-bin/{id}/restore", a.requireAuth(a.handleRestoreItem))
	mux.HandleFunc("DELETE /api/v1/recycle-bin/{id}", a.requireAuth(a.handlePermanentDelete, "admin"))

	mux.HandleFunc("GET /api/v1/reports/dashboard", a.requireAuth(a.handleDashboard))
	mux.HandleFunc("GET /api/v1/reports/monthly-series", a.requireAuth(a.handleMonthlySeries))
	mux.HandleFunc("GET /api/v1/reports/top-models", a.requireAuth(a.handleTopModels))
	mux.HandleFunc("GET /api/v1/reports/top-parts", a.requireAuth(a.handleTopParts))
	mux.HandleFunc("GET /api/v1/reports/status-distribution", a.requireAuth(a.handleStatusDistribution))
	mux.HandleFunc("GET /api/v1/reports/staff-performance", a.requireAuth(a.handleStaffPerformance))
	mux.HandleFunc("GET /api/v1/search", a.requireAuth(a.handleSearch))

	mux.HandleFunc("GET /api/v1/templates", a.requireAuth(a.handleTemplates))

	mux.HandleFunc("GET /api/v1/export/backup", a.requireAuth(a.handleExportBackup))
	mux.HandleFunc("POST /api/v1/import/backup", a.requireAuth(a.handleImportBackup, "admin"))
	mux.HandleFunc("GET /api/v1/export/repairs.csv", a.requireAuth(a.handleExportRepairsCSV))
	mux.HandleFunc("GET /api/v1/export/stock.csv", a.requireAuth(a.handleExportStockCSV))
	mux.HandleFunc("GET /api/v1/export/expenses.csv", a.requireAuth(a.handleExportExpensesCSV))

	return a.withMiddleware(mux)
}

// requireAuth validates the bearer token and, when roles are given,
// requires the actor to hold one of them. The actor is attached to the
// request context for the service layer.
func (a *API) requireAuth(next http.HandlerFunc, roles ...string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		const prefix = "Bearer "
		if !strings.HasPrefix(header, prefix) {
			writeError(w, http.StatusUnauthorized, "missing bearer token")
			return
		}
		actor, err := a.auth.ParseToken(strings.TrimSpace(header[len(prefix):]))
		if err != nil {
			writeError(w, http.StatusUnauthorized, "invalid token")
			return
		}
		if len(roles) > 0 {
			allowed := false
			for _, role := range roles {
				if actor.Role == role {
					allowed = true
					break
				}
			}
			if !allowed {
				writeError(w, http.StatusForbidden, "insufficient role")
				return
			}
		}
		next(w, r.WithContext(service.WithActor(r.Context(), actor)))
	}
}

func (a *API) withMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "no-referrer")

		if a.allowedOrigin != "" && r.Header.Get("Origin") == a.allowedOrigin {
			w.Header().Set("Access-Control-Allow-Origin", a.allowedOrigin)
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-CSRF-Token")
		}
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

		if !a.checkCSRF(w, r) {
			return
		}

		next.ServeHTTP(w, r)

		a.log.Debug("http request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("latency", time.Since(start)))
	})
}

// csrfExempt lists mutating paths that cannot carry a token yet.
func csrfExempt(path string) bool {
	return path == "/api/v1/auth/login"
}

func (a *API) checkCSRF(w http.ResponseWriter, r *http.Request) bool {
	switch r.Method {
	case http.MethodPost, http.MethodPatch, http.MethodPut, http.MethodDelete:
	default:
		return true
	}
	if csrfExempt(r.URL.Path) {
		return true
	}
	if !a.validateCSRFToken(r.Header.Get("X-CSRF-Token")) {
		writeError(w, http.StatusForbidden, "missing or invalid CSRF token")
		return false
	}
	return true
}

func (a *API) csrfTokenForHour(hour int64) string {
	mac := hmac.New(sha256.New, a.csrfSecret)
	fmt.Fprintf(mac, "%d", hour)
	return hex.EncodeToString(mac.Sum(nil))
}

func (a *API) generateCSRFToken() string {
	return a.csrfTokenForHour(a.now().Unix() / 3600)
}

// validateCSRFToken accepts the current and previous hour bucket so a
// token never expires mid-request.
func (a *API) validateCSRFToken(token string) bool {
	if token == "" {
		return false
	}
	hour := a.now().Unix() / 3600
	for _, h := range []int64{hour, hour - 1} {
		if hmac.Equal([]byte(token), []byte(a.csrfTokenForHour(h))) {
			return true
		}
	}
	return false
}

// attemptLimiter throttles repeated failures per client key.
type attemptLimiter struct {
	mu      sync.Mutex
	max     int
	window  time.Duration
	entries map[string][]time.Time
}

func newAttemptLimiter(max int, window time.Duration) *attemptLimiter {
	return &attemptLimiter{
		max:     max,
		window:  window,
		entries: make(map[string][]time.Time),
	}
}

func (l *attemptLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	now := time.Now()
	kept := l.entries[key][:0]
	for _, t := range l.entries[key] {
		if now.Sub(t) < l.window {
			kept = append(kept, t)
		}
	}
	if len(kept) >= l.max {
		l.entries[key] = kept
		return false
	}
	l.entries[key] = append(kept, now)
	return true
}

func clientKey(r *http.Request) string {
	if ap, err := netip.ParseAddrPort(r.RemoteAddr); err == nil {
		return ap.Addr().String()
	}
	return r.RemoteAddr
}

func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("decode request body: %w", err)
	}
	if dec.More() {
		return errors.New("unexpected trailing data")
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError never leaks internal detail on 5xx.
func writeError(w http.ResponseWriter, status int, msg string) {
	if status >= 500 {
		msg = "internal server error"
	}
	writeJSON(w, status, map[string]string{"error": msg})
}

func writeCSV(w http.ResponseWriter, filename string, data []byte, err error) {
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func readBody(r *http.Request) ([]byte, error) {
	defer r.Body.Close()
	return io.ReadAll(r.Body)
}
