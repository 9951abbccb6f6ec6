package router

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/shopworks/storefront/internal/cache"
	"github.com/shopworks/storefront/internal/config"
	"github.com/shopworks/storefront/internal/domain/model"
	"github.com/shopworks/storefront/internal/metrics"
	"github.com/shopworks/storefront/internal/server/http/handlers"
	testhelpers "github.com/shopworks/storefront/internal/test"
)

func TestSetupRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	facade := &testhelpers.CommerceFacadeStub{
		ProductsFn: func(context.Context) ([]model.Product, error) {
			return []model.Product{{Name: "keyboard", Price: decimal.New(4999, -2), Stock: 3}}, nil
		},
	}
	cfg := &config.Config{CacheTTL: time.Minute}
	engine := Setup(facade, logger, metrics.New(), cache.NoopStore{}, cfg)

	body, _ := json.Marshal(map[string]string{
		"email":    "user@example.com",
		"password": "password",
		"name":     "User",
		"type":     "CLIENT",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201 for register, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/products", nil)
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for products, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	req.Header.Set("Authorization", "Bearer token")
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for cart, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/reports", nil)
	req.Header.Set("Authorization", "Bearer token")
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected status 403 for reports as client, got %d", resp.Code)
	}

	body, _ = json.Marshal(map[string]string{
		"userId":   "2f0c54a1-0000-4000-8000-000000000001",
		"fullName": "User",
		"contact":  "555-0100",
		"address":  "Main st 1",
	})
	req = httptest.NewRequest(http.MethodPost, "/api/clients", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer token")
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected status 403 for client profile creation as client, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/metrics", nil)
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for metrics, got %d", resp.Code)
	}
}

var _ handlers.CommerceFacade = (*testhelpers.CommerceFacadeStub)(nil)
