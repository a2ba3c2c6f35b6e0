package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func loginHandler(t *testing.T, next http.HandlerFunc) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/login" {
			if r.FormValue("client_id") == "" || r.FormValue("client_secret") == "" {
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(map[string]any{"message": "invalid credentials"})
				return
			}
			_ = json.NewEncoder(w).Encode(map[string]any{"access_token": "tok123"})
			return
		}
		if r.Header.Get("Authorization") != "Bearer tok123" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]any{"message": "missing token"})
			return
		}
		next(w, r)
	}
}

func newTestClient(srvURL string) *Client {
	return NewClient(srvURL, "id", "secret", 2*time.Second, 2, time.Millisecond, 2*time.Millisecond)
}

func TestRunInlineQuerySuccess(t *testing.T) {
	var got InlineQuery
	srv := httptest.NewServer(loginHandler(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/queries/run/json_detail" {
			http.NotFound(w, r)
			return
		}
		if r.URL.Query().Get("client_request_id") == "" {
			t.Errorf("expected a client request id")
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			http.Error(w, "bad body", http.StatusBadRequest)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{
				{"orders.status": map[string]any{"value": "Shipped"}, "orders.count": map[string]any{"value": 120}},
			},
			"totals_data": map[string]any{"orders.count": map[string]any{"value": 165}},
		})
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	res, err := c.RunInlineQuery(context.Background(), InlineQuery{
		Model:  "ecommerce",
		View:   "order_items",
		Fields: []string{"orders.status", "orders.count"},
		Limit:  10,
		Total:  true,
	})
	if err != nil {
		t.Fatalf("RunInlineQuery: %v", err)
	}
	if got.Model != "ecommerce" || got.Limit != 10 || !got.Total {
		t.Errorf("server saw query %+v", got)
	}
	if len(res.Rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(res.Rows))
	}
	if res.Rows[0]["orders.status"].Value != "Shipped" {
		t.Errorf("row cell = %+v", res.Rows[0]["orders.status"])
	}
	if res.Totals["orders.count"].Value != float64(165) {
		t.Errorf("totals cell = %+v", res.Totals["orders.count"])
	}
}

func TestRunInlineQueryValidation(t *testing.T) {
	c := newTestClient("http://127.0.0.1:0")
	if _, err := c.RunInlineQuery(context.Background(), InlineQuery{View: "v", Fields: []string{"f"}}); err == nil {
		t.Errorf("expected error for missing model")
	}
	if _, err := c.RunInlineQuery(context.Background(), InlineQuery{Model: "m", View: "v"}); err == nil {
		t.Errorf("expected error for empty fields")
	}
}

func TestBadRequestIsTyped(t *testing.T) {
	srv := httptest.NewServer(loginHandler(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]any{"message": "unknown field bogus"})
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	_, err := c.RunInlineQuery(context.Background(), InlineQuery{Model: "m", View: "v", Fields: []string{"bogus"}})
	var badReq *BadRequestError
	if !errors.As(err, &badReq) {
		t.Fatalf("expected BadRequestError, got %v", err)
	}
	if badReq.StatusCode != http.StatusBadRequest || badReq.Message != "unknown field bogus" {
		t.Errorf("error detail = %+v", badReq.APIError)
	}
}

func TestRetryOnServerError(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(loginHandler(t, func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"data": []map[string]any{}})
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	if _, err := c.RunInlineQuery(context.Background(), InlineQuery{Model: "m", View: "v", Fields: []string{"f"}}); err != nil {
		t.Fatalf("expected retry to recover, got %v", err)
	}
	if attempts != 2 {
		t.Errorf("attempts = %d, want 2", attempts)
	}
}

func TestAuthErrorOnBadCredentials(t *testing.T) {
	srv := httptest.NewServer(loginHandler(t, func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	c := NewClient(srv.URL, "", "", time.Second, 1, time.Millisecond, time.Millisecond)
	_, err := c.RunInlineQuery(context.Background(), InlineQuery{Model: "m", View: "v", Fields: []string{"f"}})
	if err == nil {
		t.Fatalf("expected credential error")
	}
}

func TestGetExplore(t *testing.T) {
	srv := httptest.NewServer(loginHandler(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/lookml_models/ecommerce/explores/order_items" {
			http.NotFound(w, r)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"name": "order_items",
			"fields": map[string]any{
				"dimensions": []map[string]any{
					{"name": "orders.status", "category": "dimension", "type": "string", "view_label": "Orders", "label_short": "Status"},
				},
				"measures": []map[string]any{
					{"name": "orders.count", "category": "measure", "type": "count", "view_label": "Orders", "label_short": "Count"},
				},
			},
		})
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	explore, err := c.GetExplore(context.Background(), "ecommerce", "order_items")
	if err != nil {
		t.Fatalf("GetExplore: %v", err)
	}
	if explore.Name != "order_items" {
		t.Errorf("name = %q", explore.Name)
	}
	if len(explore.Fields.Dimensions) != 1 || len(explore.Fields.Measures) != 1 {
		t.Fatalf("fields = %+v", explore.Fields)
	}
	if explore.Fields.Measures[0].LabelShort != "Count" {
		t.Errorf("measure = %+v", explore.Fields.Measures[0])
	}
}

func TestGetExploreNotFound(t *testing.T) {
	srv := httptest.NewServer(loginHandler(t, func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	_, err := c.GetExplore(context.Background(), "ecommerce", "nope")
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}
