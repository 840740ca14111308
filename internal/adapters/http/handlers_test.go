package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/marketplace/core/internal/adapters/repository"
	"github.com/marketplace/core/internal/application/services"
	"github.com/marketplace/core/internal/infrastructure/logger"
)

func newTestRouter(t *testing.T) *echo.Echo {
	t.Helper()

	store := repository.NewFileDocumentStore(filepath.Join(t.TempDir(), "db.json"), logger.NewNop())
	if err := store.Open(); err != nil {
		t.Fatalf("open store: %v", err)
	}
	appLogger := logger.NewNop()

	productHandler := NewProductHandler(services.NewProductService(repository.NewProductRepository(store), appLogger), appLogger)
	orderHandler := NewOrderHandler(services.NewOrderService(repository.NewOrderRepository(store), appLogger), appLogger)

	e := echo.New()
	api := e.Group("/api")
	api.GET("/products", productHandler.ListProducts)
	api.POST("/products", productHandler.CreateProduct)
	api.GET("/products/seller/:sellerId", productHandler.ListBySeller)
	api.GET("/products/:id", productHandler.GetProduct)
	api.PUT("/products/:id", productHandler.UpdateProduct)
	api.DELETE("/products/:id", productHandler.DeleteProduct)
	api.POST("/orders", orderHandler.CreateOrder)
	api.GET("/orders/:userId", orderHandler.ListByUser)
	return e
}

func doJSON(t *testing.T, e *echo.Echo, method, path, body string, header map[string]string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for k, v := range header {
		req.Header.Set(k, v)
	}

	rr := httptest.NewRecorder()
	e.ServeHTTP(rr, req)

	var decoded map[string]any
	if rr.Body.Len() > 0 && strings.HasPrefix(rr.Body.String(), "{") {
		if err := json.Unmarshal(rr.Body.Bytes(), &decoded); err != nil {
			t.Fatalf("decode response %q: %v", rr.Body.String(), err)
		}
	}
	return rr, decoded
}

func TestCreateProductReturnsCreated(t *testing.T) {
	e := newTestRouter(t)

	rr, p := doJSON(t, e, http.MethodPost, "/api/products", `{"name":"Widget","sellerId":"S1","price":10}`, nil)
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rr.Code, rr.Body.String())
	}
	if p["sellerId"] != "S1" || p["name"] != "Widget" || p["price"] != 10.0 {
		t.Fatalf("unexpected product: %v", p)
	}
	if p["id"] == nil || p["id"] == "" {
		t.Fatalf("expected generated id")
	}
	if p["rating"] != 5.0 {
		t.Fatalf("expected rating 5, got %v", p["rating"])
	}
	if p["createdAt"] == nil {
		t.Fatalf("expected createdAt timestamp")
	}

	// Round-trip: the created product is retrievable by id and matches
	// field-for-field.
	id := p["id"].(string)
	rr, got := doJSON(t, e, http.MethodGet, "/api/products/"+id, "", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	for _, key := range []string{"id", "sellerId", "name", "price", "rating", "createdAt"} {
		if got[key] != p[key] {
			t.Fatalf("field %q mismatch: created %v, fetched %v", key, p[key], got[key])
		}
	}
}

func TestCreateProductIgnoresCallerRating(t *testing.T) {
	e := newTestRouter(t)

	rr, p := doJSON(t, e, http.MethodPost, "/api/products", `{"sellerId":"S1","rating":1}`, nil)
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rr.Code)
	}
	if p["rating"] != 5.0 {
		t.Fatalf("caller rating must be overridden, got %v", p["rating"])
	}
}

func TestGetProductNotFound(t *testing.T) {
	e := newTestRouter(t)

	rr, body := doJSON(t, e, http.MethodGet, "/api/products/nope", "", nil)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
	if body["error"] == nil || body["error"] == "" {
		t.Fatalf("expected error field, got %v", body)
	}
}

func TestListProductsEmpty(t *testing.T) {
	e := newTestRouter(t)

	rr, _ := doJSON(t, e, http.MethodGet, "/api/products", "", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if strings.TrimSpace(rr.Body.String()) != "[]" {
		t.Fatalf("expected empty array, got %s", rr.Body.String())
	}
}

func TestListBySellerEmptyIsOK(t *testing.T) {
	e := newTestRouter(t)

	rr, _ := doJSON(t, e, http.MethodGet, "/api/products/seller/no-such-seller", "", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if strings.TrimSpace(rr.Body.String()) != "[]" {
		t.Fatalf("expected empty array, got %s", rr.Body.String())
	}
}

func TestUpdateProductSellerMismatchIsForbidden(t *testing.T) {
	e := newTestRouter(t)

	_, created := doJSON(t, e, http.MethodPost, "/api/products", `{"name":"Widget","sellerId":"S1"}`, nil)
	id := created["id"].(string)

	rr, body := doJSON(t, e, http.MethodPut, "/api/products/"+id, `{"sellerId":"S2","name":"Hacked"}`, nil)
	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d: %s", rr.Code, rr.Body.String())
	}
	if body["error"] == nil {
		t.Fatalf("expected error field, got %v", body)
	}

	// Stored record is unchanged.
	_, got := doJSON(t, e, http.MethodGet, "/api/products/"+id, "", nil)
	if got["name"] != "Widget" {
		t.Fatalf("rejected update must not change the record: %v", got)
	}
	if _, ok := got["updatedAt"]; ok {
		t.Fatalf("rejected update must not stamp updatedAt: %v", got)
	}
}

func TestUpdateProductMergesFields(t *testing.T) {
	e := newTestRouter(t)

	_, created := doJSON(t, e, http.MethodPost, "/api/products", `{"name":"Widget","sellerId":"S1","price":10}`, nil)
	id := created["id"].(string)

	rr, updated := doJSON(t, e, http.MethodPut, "/api/products/"+id, `{"sellerId":"S1","price":12.5,"id":"spoofed"}`, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	if updated["id"] != id {
		t.Fatalf("id must stay the path id, got %v", updated["id"])
	}
	if updated["price"] != 12.5 || updated["name"] != "Widget" {
		t.Fatalf("merge incorrect: %v", updated)
	}
	if updated["updatedAt"] == nil {
		t.Fatalf("expected updatedAt stamp")
	}
}

func TestUpdateProductNotFound(t *testing.T) {
	e := newTestRouter(t)

	rr, _ := doJSON(t, e, http.MethodPut, "/api/products/ghost", `{"sellerId":"S1"}`, nil)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
}

func TestDeleteProductWithHeaderSeller(t *testing.T) {
	e := newTestRouter(t)

	_, created := doJSON(t, e, http.MethodPost, "/api/products", `{"name":"Widget","sellerId":"S1"}`, nil)
	id := created["id"].(string)

	// No body: the claimed seller comes from the x-seller-id header.
	rr, body := doJSON(t, e, http.MethodDelete, "/api/products/"+id, "", map[string]string{SellerIDHeader: "S1"})
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	if body["message"] == nil {
		t.Fatalf("expected confirmation message, got %v", body)
	}

	rr, _ = doJSON(t, e, http.MethodGet, "/api/products/"+id, "", nil)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("deleted product must be gone, got %d", rr.Code)
	}
	rr, _ = doJSON(t, e, http.MethodGet, "/api/products", "", nil)
	if strings.Contains(rr.Body.String(), id) {
		t.Fatalf("deleted product still listed")
	}
}

func TestDeleteProductBodyTakesPrecedenceOverHeader(t *testing.T) {
	e := newTestRouter(t)

	_, created := doJSON(t, e, http.MethodPost, "/api/products", `{"name":"Widget","sellerId":"S1"}`, nil)
	id := created["id"].(string)

	// Correct header, wrong body seller: body wins, so the delete is refused.
	rr, _ := doJSON(t, e, http.MethodDelete, "/api/products/"+id, `{"sellerId":"S2"}`, map[string]string{SellerIDHeader: "S1"})
	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rr.Code)
	}
}

func TestDeleteProductWrongSellerIsForbidden(t *testing.T) {
	e := newTestRouter(t)

	_, created := doJSON(t, e, http.MethodPost, "/api/products", `{"name":"Widget","sellerId":"S1"}`, nil)
	id := created["id"].(string)

	rr, _ := doJSON(t, e, http.MethodDelete, "/api/products/"+id, "", map[string]string{SellerIDHeader: "S2"})
	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rr.Code)
	}
}

func TestCreateProductInvalidJSON(t *testing.T) {
	e := newTestRouter(t)

	rr, _ := doJSON(t, e, http.MethodPost, "/api/products", `{not json`, nil)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestUnreadableStoreIsInternalError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "db.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	store := repository.NewFileDocumentStore(path, logger.NewNop())
	appLogger := logger.NewNop()
	productHandler := NewProductHandler(services.NewProductService(repository.NewProductRepository(store), appLogger), appLogger)

	e := echo.New()
	e.GET("/api/products", productHandler.ListProducts)

	rr, body := doJSON(t, e, http.MethodGet, "/api/products", "", nil)
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("unreadable storage must be a 500, not an empty list: got %d %s", rr.Code, rr.Body.String())
	}
	if body["error"] == nil {
		t.Fatalf("expected error field, got %v", body)
	}
}

func TestCreateOrderAndListByUser(t *testing.T) {
	e := newTestRouter(t)

	rr, o := doJSON(t, e, http.MethodPost, "/api/orders", `{"userId":"U1","items":[{"productId":"p1","qty":2}]}`, nil)
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rr.Code, rr.Body.String())
	}
	id, _ := o["id"].(string)
	if !strings.HasPrefix(id, "ORD-") {
		t.Fatalf("expected ORD- prefix, got %q", id)
	}
	if o["createdAt"] == nil {
		t.Fatalf("expected createdAt timestamp")
	}

	rr, _ = doJSON(t, e, http.MethodGet, "/api/orders/U1", "", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), id) {
		t.Fatalf("expected created order in list, got %s", rr.Body.String())
	}

	rr, _ = doJSON(t, e, http.MethodGet, "/api/orders/U999", "", nil)
	if rr.Code != http.StatusOK || strings.TrimSpace(rr.Body.String()) != "[]" {
		t.Fatalf("expected 200 empty array, got %d %s", rr.Code, rr.Body.String())
	}
}
