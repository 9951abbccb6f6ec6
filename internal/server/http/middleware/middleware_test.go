package middleware

import (
	"bytes"
	"compress/gzip"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/shopworks/storefront/internal/domain/model"
	"github.com/shopworks/storefront/internal/metrics"
	pkgAuth "github.com/shopworks/storefront/internal/pkg/auth"
	testhelpers "github.com/shopworks/storefront/internal/test"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestAuthRequiredMissingToken(t *testing.T) {
	router := gin.New()
	router.GET("/protected", AuthRequired(testhelpers.TokenParserStub{}), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", w.Code)
	}
}

func TestAuthRequiredInvalidToken(t *testing.T) {
	router := gin.New()
	router.GET("/protected", AuthRequired(testhelpers.TokenParserStub{Err: pkgAuth.ErrInvalidToken}), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for invalid token, got %d", w.Code)
	}
}

func TestAuthRequiredStoresClaims(t *testing.T) {
	claims := &pkgAuth.Claims{UserID: uuid.New(), UserType: model.UserTypeClient}
	router := gin.New()
	router.GET("/protected", AuthRequired(testhelpers.TokenParserStub{Claims: claims}), func(c *gin.Context) {
		val, ok := c.Get(ClaimsContextKey)
		if !ok {
			t.Fatalf("claims not stored in context")
		}
		if got := val.(*pkgAuth.Claims); got.UserID != claims.UserID {
			t.Fatalf("unexpected claims %+v", got)
		}
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestAdminRequired(t *testing.T) {
	cases := []struct {
		name   string
		claims *pkgAuth.Claims
		want   int
	}{
		{"admin", &pkgAuth.Claims{UserID: uuid.New(), UserType: model.UserTypeAdmin}, http.StatusOK},
		{"client", &pkgAuth.Claims{UserID: uuid.New(), UserType: model.UserTypeClient}, http.StatusForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router := gin.New()
			router.GET("/admin", func(c *gin.Context) {
				c.Set(ClaimsContextKey, tc.claims)
			}, AdminRequired(), func(c *gin.Context) {
				c.Status(http.StatusOK)
			})

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))
			if w.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, w.Code)
			}
		})
	}
}

func TestAdminRequiredWithoutClaims(t *testing.T) {
	router := gin.New()
	router.GET("/admin", AdminRequired(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without claims, got %d", w.Code)
	}
}

func TestDecompressRequest(t *testing.T) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write([]byte(`{"ok":true}`)); err != nil {
		t.Fatalf("gzip write: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("gzip close: %v", err)
	}

	router := gin.New()
	router.Use(DecompressRequest())
	router.POST("/data", func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			t.Fatalf("read body: %v", err)
		}
		if string(body) != `{"ok":true}` {
			t.Fatalf("body not decompressed: %q", body)
		}
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/data", &buf)
	req.Header.Set("Content-Encoding", "gzip")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestDecompressRequestBadPayload(t *testing.T) {
	router := gin.New()
	router.Use(DecompressRequest())
	router.POST("/data", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/data", bytes.NewReader([]byte("not gzip")))
	req.Header.Set("Content-Encoding", "gzip")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for broken gzip, got %d", w.Code)
	}
}

type memoryStore struct {
	data map[string][]byte
}

func (s *memoryStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, ok := s.data[key]
	return value, ok, nil
}

func (s *memoryStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	s.data[key] = value
	return nil
}

func (s *memoryStore) InvalidatePrefix(ctx context.Context, prefix string) error {
	for key := range s.data {
		delete(s.data, key)
	}
	return nil
}

func TestCacheResponse(t *testing.T) {
	store := &memoryStore{data: make(map[string][]byte)}
	m := metrics.New()
	calls := 0

	router := gin.New()
	router.GET("/items", CacheResponse(store, time.Minute, m), func(c *gin.Context) {
		calls++
		c.JSON(http.StatusOK, gin.H{"calls": calls})
	})

	first := httptest.NewRecorder()
	router.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/items", nil))
	second := httptest.NewRecorder()
	router.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/items", nil))

	if calls != 1 {
		t.Fatalf("expected handler to run once, ran %d times", calls)
	}
	if first.Body.String() != second.Body.String() {
		t.Fatalf("cached response differs: %q vs %q", first.Body.String(), second.Body.String())
	}
}

func TestCacheResponseSkipsNonGet(t *testing.T) {
	store := &memoryStore{data: make(map[string][]byte)}
	m := metrics.New()
	calls := 0

	router := gin.New()
	router.POST("/items", CacheResponse(store, time.Minute, m), func(c *gin.Context) {
		calls++
		c.Status(http.StatusCreated)
	})

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/items", nil))
	}
	if calls != 2 {
		t.Fatalf("POST must not be cached, handler ran %d times", calls)
	}
	if len(store.data) != 0 {
		t.Fatalf("POST responses must not be stored")
	}
}

func TestCollectMetrics(t *testing.T) {
	m := metrics.New()
	router := gin.New()
	router.Use(CollectMetrics(m))
	router.GET("/ping", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	families, err := m.Registry.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}
	found := false
	for _, fam := range families {
		if fam.GetName() == "storefront_http_requests_total" {
			found = true
		}
	}
	if !found {
		t.Fatalf("request counter not registered")
	}
}
