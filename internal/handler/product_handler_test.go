package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MyeongsupWorkSpace/sepnp/internal/model/entity"
	"github.com/MyeongsupWorkSpace/sepnp/internal/repository"
	"github.com/MyeongsupWorkSpace/sepnp/internal/service"
	"github.com/MyeongsupWorkSpace/sepnp/internal/testutil"
	"github.com/gin-contrib/gzip"
)

func setupProductTest(t *testing.T) *testutil.TestEnv {
	t.Helper()
	db := testutil.SetupTestDB(t)

	repos := repository.NewRepositories(db)
	svc := service.NewProductService(db, repos.Catalog, repos.Product, repos.AuditLog, nil)
	handler := NewProductHandler(svc)

	router := testutil.SetupRouter()
	api := testutil.AuthGroup(router, "/api")
	api.POST("/products", handler.Register)
	api.GET("/products", handler.List)
	api.GET("/products/:id", handler.Get)

	return &testutil.TestEnv{DB: db, Router: router, T: t}
}

// TestProductRegisterEndpoint exercises the full registration flow
// over HTTP: one request creating the product, its supplier, paper and
// material references.
func TestProductRegisterEndpoint(t *testing.T) {
	env := setupProductTest(t)
	token := testutil.DefaultTestToken()

	body := map[string]interface{}{
		"code":        "PRD-100",
		"name":        "고급 리플렛",
		"description": "3단 접지",
		"price":       32000,
		"supplier": map[string]interface{}{
			"name":  "대한지업",
			"phone": "02-555-1234",
		},
		"paper": map[string]interface{}{
			"name":   "스노우지 180g",
			"weight": "180g",
		},
		"materials": []map[string]interface{}{
			{"name": "접지 가공", "unit": "ea", "quantity": 1},
		},
	}

	w := testutil.DoRequest(env.Router, http.MethodPost, "/api/products", body, token)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	resp := testutil.ParseResponse(w)
	if resp["ok"] != true {
		t.Fatalf("expected ok=true, got %v", resp)
	}
	productID, _ := resp["productId"].(string)
	if productID == "" {
		t.Fatal("expected non-empty productId in response")
	}

	// Detail endpoint must return the linked references
	w = testutil.DoRequest(env.Router, http.MethodGet, "/api/products/"+productID, nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	detail := testutil.ParseResponse(w)
	supplier, _ := detail["supplier"].(map[string]interface{})
	if supplier == nil || supplier["name"] != "대한지업" {
		t.Errorf("expected supplier 대한지업 in detail, got %v", detail["supplier"])
	}
	materials, _ := detail["materials"].([]interface{})
	if len(materials) != 1 {
		t.Errorf("expected 1 material link in detail, got %d", len(materials))
	}

	// The audit trail records the registration
	var auditCount int64
	env.DB.Model(&entity.AuditLog{}).
		Where("entity_id = ?", productID).Count(&auditCount)
	if auditCount != 1 {
		t.Errorf("expected 1 audit row, got %d", auditCount)
	}
}

// TestProductRegisterMissingName returns 400 with an error message
// when the name is absent.
func TestProductRegisterMissingName(t *testing.T) {
	env := setupProductTest(t)
	token := testutil.DefaultTestToken()

	body := map[string]interface{}{"price": 1000}
	w := testutil.DoRequest(env.Router, http.MethodPost, "/api/products", body, token)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}

	resp := testutil.ParseResponse(w)
	if resp["error"] == nil || resp["error"] == "" {
		t.Errorf("expected error message in response, got %v", resp)
	}
}

// TestProductRegisterUnauthorized rejects requests without a token.
func TestProductRegisterUnauthorized(t *testing.T) {
	env := setupProductTest(t)

	body := map[string]interface{}{"name": "무단 등록"}
	w := testutil.DoRequest(env.Router, http.MethodPost, "/api/products", body, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d: %s", w.Code, w.Body.String())
	}
}

// TestProductGetUnknownID returns 404 for an id that does not exist.
func TestProductGetUnknownID(t *testing.T) {
	env := setupProductTest(t)
	token := testutil.DefaultTestToken()

	w := testutil.DoRequest(env.Router, http.MethodGet, "/api/products/no-such-id", nil, token)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
	}

	resp := testutil.ParseResponse(w)
	if resp["error"] == nil {
		t.Errorf("expected error message in response, got %v", resp)
	}
}

// TestProductListGzipEncoding verifies responses are compressed when
// the client accepts gzip, as the server router configures.
func TestProductListGzipEncoding(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repos := repository.NewRepositories(db)
	svc := service.NewProductService(db, repos.Catalog, repos.Product, repos.AuditLog, nil)
	handler := NewProductHandler(svc)

	router := testutil.SetupRouter()
	router.Use(gzip.Gzip(gzip.DefaultCompression))
	api := testutil.AuthGroup(router, "/api")
	api.GET("/products", handler.List)

	req, _ := http.NewRequest(http.MethodGet, "/api/products", nil)
	req.Header.Set("Authorization", "Bearer "+testutil.DefaultTestToken())
	req.Header.Set("Accept-Encoding", "gzip")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Header().Get("Content-Encoding") != "gzip" {
		t.Errorf("expected gzip content encoding, got %q", w.Header().Get("Content-Encoding"))
	}
}

// TestProductListEndpoint returns registered products newest first.
func TestProductListEndpoint(t *testing.T) {
	env := setupProductTest(t)
	token := testutil.DefaultTestToken()

	for _, name := range []string{"포스터 A2", "포스터 A1"} {
		body := map[string]interface{}{"name": name}
		w := testutil.DoRequest(env.Router, http.MethodPost, "/api/products", body, token)
		if w.Code != http.StatusCreated {
			t.Fatalf("seed register failed: %d %s", w.Code, w.Body.String())
		}
	}

	w := testutil.DoRequest(env.Router, http.MethodGet, "/api/products", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var products []entity.Product
	if err := env.DB.Find(&products).Error; err != nil {
		t.Fatalf("query products: %v", err)
	}
	if len(products) != 2 {
		t.Errorf("expected 2 products, got %d", len(products))
	}
}
