package httpapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	"teknikservis/backend/internal/domain"
	"teknikservis/backend/internal/persist"
	"teknikservis/backend/internal/service"
	"teknikservis/backend/internal/state"
)

type testAPI struct {
	handler http.Handler
	token   string
	csrf    string
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	svc := service.New(state.Open(t.Context(), persist.NewMemory(), zap.NewNop()), zap.NewNop())
	auth, err := NewAuthManager(testSecret, time.Hour, "739264")
	if err != nil {
		t.Fatal(err)
	}
	api, err := New(svc, auth, "http://127.0.0.1:3000", zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	ta := &testAPI{handler: api.Handler()}

	// Log in with the seeded admin PIN.
	rec := ta.do(t, http.MethodPost, "/api/v1/auth/login", `{"pin":"1234"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("login status = %d: %s", rec.Code, rec.Body)
	}
	var login loginResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &login); err != nil {
		t.Fatal(err)
	}
	ta.token = login.AccessToken

	rec = ta.do(t, http.MethodGet, "/api/v1/auth/csrf-token", "")
	var csrfResp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &csrfResp); err != nil {
		t.Fatal(err)
	}
	ta.csrf = csrfResp["csrfToken"]
	return ta
}

func (ta *testAPI) do(t *testing.T, method string, path string, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, reader)
	if ta.token != "" {
		req.Header.Set("Authorization", "Bearer "+ta.token)
	}
	if ta.csrf != "" {
		req.Header.Set("X-CSRF-Token", ta.csrf)
	}
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	ta.handler.ServeHTTP(rec, req)
	return rec
}

func TestUnauthenticatedRequestsRejected(t *testing.T) {
	ta := newTestAPI(t)

	anon := &testAPI{handler: ta.handler}
	if rec := anon.do(t, http.MethodGet, "/api/v1/repairs", ""); rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}

	forged := &testAPI{handler: ta.handler, token: "bogus", csrf: ta.csrf}
	if rec := forged.do(t, http.MethodGet, "/api/v1/repairs", ""); rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestLoginRejectsBadPIN(t *testing.T) {
	ta := newTestAPI(t)
	anon := &testAPI{handler: ta.handler}
	if rec := anon.do(t, http.MethodPost, "/api/v1/auth/login", `{"pin":"9999"}`); rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestMutationsRequireCSRFToken(t *testing.T) {
	ta := newTestAPI(t)

	noCSRF := &testAPI{handler: ta.handler, token: ta.token}
	rec := noCSRF.do(t, http.MethodPost, "/api/v1/repairs", `{"customer":{"fullName":"Ali","phone":"0555"}}`)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403 without CSRF token", rec.Code)
	}
}

func TestRepairLifecycleOverHTTP(t *testing.T) {
	ta := newTestAPI(t)

	body := `{"customer":{"fullName":"Ali Veli","phone":"05551112233"},"device":{"brand":"Apple","model":"iPhone 13","passwordType":"none","passwordValue":""},"issueDescription":"Ekran kırık"}`
	rec := ta.do(t, http.MethodPost, "/api/v1/repairs", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d: %s", rec.Code, rec.Body)
	}
	var created domain.RepairRecord
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatal(err)
	}
	if created.ID == "" || created.Status != domain.RepairStatusPending {
		t.Fatalf("created = %+v", created)
	}

	rec = ta.do(t, http.MethodPatch, "/api/v1/repairs/"+created.ID, `{"status":"ready","finalCost":750}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("update status = %d: %s", rec.Code, rec.Body)
	}

	rec = ta.do(t, http.MethodGet, "/api/v1/repairs/"+created.ID+"/message", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("message status = %d", rec.Code)
	}
	var msg repairMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &msg); err != nil {
		t.Fatal(err)
	}
	if msg.WhatsAppLink == "" || msg.Text == "" {
		t.Fatalf("message = %+v", msg)
	}

	rec = ta.do(t, http.MethodDelete, "/api/v1/repairs/"+created.ID, "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d", rec.Code)
	}
	if rec = ta.do(t, http.MethodDelete, "/api/v1/repairs/"+created.ID, ""); rec.Code != http.StatusNotFound {
		t.Fatalf("second delete status = %d, want 404", rec.Code)
	}

	// The ticket is recoverable from the recycle bin.
	rec = ta.do(t, http.MethodGet, "/api/v1/recycle-bin", "")
	var bin []domain.DeletedItem
	if err := json.Unmarshal(rec.Body.Bytes(), &bin); err != nil {
		t.Fatal(err)
	}
	if len(bin) != 1 {
		t.Fatalf("recycle bin has %d items", len(bin))
	}
	rec = ta.do(t, http.MethodPost, fmt.Sprintf("/api/v1/recycle-bin/%s/restore", bin[0].ID), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("restore status = %d", rec.Code)
	}
}

func TestStaffRoutesRequireAdmin(t *testing.T) {
	ta := newTestAPI(t)

	// Seed a technician and log in as them.
	rec := ta.do(t, http.MethodPost, "/api/v1/staff", `{"name":"Ayşe","role":"technician","pin":"4321","isActive":true}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("add staff status = %d: %s", rec.Code, rec.Body)
	}

	tech := &testAPI{handler: ta.handler, csrf: ta.csrf}
	login := tech.do(t, http.MethodPost, "/api/v1/auth/login", `{"pin":"4321"}`)
	if login.Code != http.StatusOK {
		t.Fatalf("technician login status = %d", login.Code)
	}
	var resp loginResponse
	if err := json.Unmarshal(login.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	tech.token = resp.AccessToken

	if rec := tech.do(t, http.MethodGet, "/api/v1/staff", ""); rec.Code != http.StatusForbidden {
		t.Fatalf("technician staff access = %d, want 403", rec.Code)
	}
	// Non-privileged routes still work.
	if rec := tech.do(t, http.MethodGet, "/api/v1/repairs", ""); rec.Code != http.StatusOK {
		t.Fatalf("technician repairs access = %d, want 200", rec.Code)
	}
}

func TestPermanentDeleteNeedsManagerPIN(t *testing.T) {
	ta := newTestAPI(t)

	ta.do(t, http.MethodPost, "/api/v1/stock", `{"name":"Ekran","category":"screen","quantity":1,"criticalLevel":1}`)
	var items []domain.StockItem
	rec := ta.do(t, http.MethodGet, "/api/v1/stock", "")
	if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil {
		t.Fatal(err)
	}
	ta.do(t, http.MethodDelete, "/api/v1/stock/"+items[0].ID, "")

	rec = ta.do(t, http.MethodGet, "/api/v1/recycle-bin", "")
	var bin []domain.DeletedItem
	if err := json.Unmarshal(rec.Body.Bytes(), &bin); err != nil {
		t.Fatal(err)
	}

	// Without the manager PIN header the purge is refused.
	if rec := ta.do(t, http.MethodDelete, "/api/v1/recycle-bin/"+bin[0].ID, ""); rec.Code != http.StatusForbidden {
		t.Fatalf("purge without PIN = %d, want 403", rec.Code)
	}

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/recycle-bin/"+bin[0].ID, nil)
	req.Header.Set("Authorization", "Bearer "+ta.token)
	req.Header.Set("X-CSRF-Token", ta.csrf)
	req.Header.Set("X-Manager-PIN", "739264")
	w := httptest.NewRecorder()
	ta.handler.ServeHTTP(w, req)
	if w.Code != http.StatusNoContent {
		t.Fatalf("purge with PIN = %d, want 204: %s", w.Code, w.Body)
	}
}

func TestDashboardEndpoint(t *testing.T) {
	ta := newTestAPI(t)
	ta.do(t, http.MethodPost, "/api/v1/repairs", `{"customer":{"fullName":"Ali","phone":"0555"},"device":{"brand":"Apple","model":"iPhone 13","passwordType":"none","passwordValue":""}}`)

	rec := ta.do(t, http.MethodGet, "/api/v1/reports/dashboard", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("dashboard status = %d", rec.Code)
	}
	var stats map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &stats); err != nil {
		t.Fatal(err)
	}
	if stats["pending"].(float64) != 1 {
		t.Fatalf("pending = %v", stats["pending"])
	}
}

func TestRejectsUnknownJSONFields(t *testing.T) {
	ta := newTestAPI(t)
	rec := ta.do(t, http.MethodPost, "/api/v1/expenses", `{"amount":10,"bogusField":true}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 for unknown field", rec.Code)
	}
}
