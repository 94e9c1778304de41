package routes

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"bill_ledger/internal/adapter/http/middleware"
	"bill_ledger/internal/adapter/persistence/worldstate"
	"bill_ledger/internal/config"

	"github.com/gin-gonic/gin"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := config.Config{Payments: config.PaymentsConfig{MockMode: true}}
	return NewRouter(buildHandlers(cfg, worldstate.NewMemoryWorldState()))
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPing(t *testing.T) {
	w := do(newTestRouter(), http.MethodGet, "/v1/ping", "")
	if w.Code != http.StatusOK || w.Body.String() != `{"message":"pong"}` {
		t.Fatalf("unexpected ping response: %d %s", w.Code, w.Body.String())
	}
	if w.Header().Get(middleware.HeaderRequestID) == "" {
		t.Fatalf("expected request id header")
	}
}

func TestBillRoutes_EndToEnd(t *testing.T) {
	r := newTestRouter()

	steps := []struct {
		method, path, body string
		want               int
	}{
		{http.MethodPost, "/v1/bills", `{"id":"b1","website":"x.com","domain":"shop","transaction_amnt":"10"}`, http.StatusCreated},
		{http.MethodPost, "/v1/bills", `{"id":"b2","website":"x.com","domain":"shop","transaction_amnt":"5"}`, http.StatusCreated},
		{http.MethodPost, "/v1/bills", `{"id":"b1","website":"y.com","domain":"shop","transaction_amnt":"1"}`, http.StatusConflict},
		{http.MethodGet, "/v1/bills/b1/exists", "", http.StatusOK},
		{http.MethodPatch, "/v1/bills/b1/pay", "", http.StatusNoContent},
		{http.MethodPatch, "/v1/bills/b1/pay", "", http.StatusConflict},
		{http.MethodGet, "/v1/websites/x.com/bills?paid=true", "", http.StatusOK},
		{http.MethodPost, "/v1/bills/b2/settle", "", http.StatusOK},
		{http.MethodPost, "/v1/bills/b2/settle", "", http.StatusConflict},
		{http.MethodPost, "/v1/invoke", `{"function":"GetAllBillsByWebsiteUnpaid","args":["x.com"]}`, http.StatusOK},
		{http.MethodDelete, "/v1/bills/b1", "", http.StatusNoContent},
		{http.MethodGet, "/v1/bills/b1", "", http.StatusNotFound},
	}
	for _, s := range steps {
		w := do(r, s.method, s.path, s.body)
		if w.Code != s.want {
			t.Fatalf("%s %s: expected %d, got %d %s", s.method, s.path, s.want, w.Code, w.Body.String())
		}
	}

	w := do(r, http.MethodPost, "/v1/invoke", `{"function":"GetAllBillsByWebsiteUnpaid","args":["x.com"]}`)
	if w.Body.String() != "[]" {
		t.Fatalf("expected no unpaid bills after settlement, got %s", w.Body.String())
	}
}
