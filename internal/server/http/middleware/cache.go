package middleware

import (
	"bytes"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shopworks/storefront/internal/cache"
	"github.com/shopworks/storefront/internal/metrics"
)

type cachingWriter struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *cachingWriter) Write(p []byte) (int, error) {
	w.body.Write(p)
	return w.ResponseWriter.Write(p)
}

// CacheResponse serves GET responses from the cache store and fills it on
// miss. Only 200 responses are stored; cache failures fall through to the
// handler.
func CacheResponse(store cache.Store, ttl time.Duration, m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		key := "http:" + c.Request.URL.RequestURI()
		if cached, ok, err := store.Get(c.Request.Context(), key); err == nil && ok {
			m.CacheHits.WithLabelValues("hit").Inc()
			c.Data(http.StatusOK, "application/json; charset=utf-8", cached)
			c.Abort()
			return
		}
		m.CacheHits.WithLabelValues("miss").Inc()

		writer := &cachingWriter{ResponseWriter: c.Writer}
		c.Writer = writer
		c.Next()

		if c.Writer.Status() == http.StatusOK {
			_ = store.Set(c.Request.Context(), key, writer.body.Bytes(), ttl)
		}
	}
}
