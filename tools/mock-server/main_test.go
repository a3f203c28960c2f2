package main

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func loadTestFixture(t *testing.T) *fixture {
	t.Helper()
	path := filepath.Join("testdata", "products.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading fixture: %v", err)
	}
	var fx fixture
	if err := json.Unmarshal(data, &fx); err != nil {
		t.Fatalf("parsing fixture: %v", err)
	}
	return &fx
}

func testServer(t *testing.T) *echo.Echo {
	t.Helper()
	return newServer(testLogger(), loadTestFixture(t))
}

func TestLoadFixture(t *testing.T) {
	fx := loadTestFixture(t)
	if len(fx.Products) == 0 {
		t.Fatal("expected products in fixture")
	}
}

func TestVersionHandler(t *testing.T) {
	e := testServer(t)
	req := httptest.NewRequest(http.MethodGet, "/version.txt", http.NoBody)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d, want %d", rec.Code, http.StatusOK)
	}
	if strings.TrimSpace(rec.Body.String()) == "" {
		t.Error("expected non-empty version body")
	}
}

func TestProductsHandler_MissingAPIKey(t *testing.T) {
	e := testServer(t)
	req := httptest.NewRequest(http.MethodGet, "/v1/products?format=json", http.NoBody)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("status=%d, want %d", rec.Code, http.StatusForbidden)
	}
}

func TestProductsHandler_FirstPage(t *testing.T) {
	fx := loadTestFixture(t)
	e := newServer(testLogger(), fx)
	req := httptest.NewRequest(http.MethodGet, "/v1/products?apiKey=test&page=1&pageSize=10", http.NoBody)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d, want %d", rec.Code, http.StatusOK)
	}

	var resp productsResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Total != len(fx.Products) {
		t.Errorf("total=%d, want %d", resp.Total, len(fx.Products))
	}
	if len(resp.Products) != 10 {
		t.Errorf("products=%d, want 10", len(resp.Products))
	}
	if resp.From != 1 || resp.To != 10 {
		t.Errorf("from=%d to=%d, want 1..10", resp.From, resp.To)
	}
	if resp.CurrentPage != 1 {
		t.Errorf("currentPage=%d, want 1", resp.CurrentPage)
	}
}

func TestProductsHandler_LastPage(t *testing.T) {
	fx := loadTestFixture(t)
	e := newServer(testLogger(), fx)
	total := len(fx.Products)
	lastPage := (total + 9) / 10

	req := httptest.NewRequest(http.MethodGet,
		"/v1/products?apiKey=test&page="+strconv.Itoa(lastPage)+"&pageSize=10", http.NoBody)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var resp productsResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	want := total - (lastPage-1)*10
	if len(resp.Products) != want {
		t.Errorf("products=%d, want %d", len(resp.Products), want)
	}
	if resp.TotalPages != lastPage {
		t.Errorf("totalPages=%d, want %d", resp.TotalPages, lastPage)
	}
	if resp.To != total {
		t.Errorf("to=%d, want %d", resp.To, total)
	}
}

func TestProductsHandler_PageOutOfRange(t *testing.T) {
	e := testServer(t)
	req := httptest.NewRequest(http.MethodGet, "/v1/products?apiKey=test&page=99&pageSize=10", http.NoBody)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	var resp productsResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Products == nil {
		t.Error("expected empty array, got nil")
	}
	if len(resp.Products) != 0 {
		t.Errorf("products=%d, want 0", len(resp.Products))
	}
}

func TestProductsHandler_QueryPath(t *testing.T) {
	// Paths carrying an embedded query still route to the handler.
	e := testServer(t)
	req := httptest.NewRequest(http.MethodGet,
		"/v1/products(sku%20in(6354884,6428997))?apiKey=test&format=json", http.NoBody)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d, want %d", rec.Code, http.StatusOK)
	}
}

func TestProductsHandler_BetaPrefix(t *testing.T) {
	e := testServer(t)
	req := httptest.NewRequest(http.MethodGet,
		"/beta/products/trendingViewed?apiKey=test&format=json", http.NoBody)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d, want %d", rec.Code, http.StatusOK)
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}
