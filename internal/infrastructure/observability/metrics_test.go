package observability

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRegisterMetricsAndRecordersAreSafe(t *testing.T) {
	RegisterMetrics()
	RegisterMetrics()

	RecordHTTPRequest("GET", "/v1/ping", 200, 12*time.Millisecond)

	before := testutil.ToFloat64(transitions.WithLabelValues("enlace", "activate", "ok"))
	RecordTransition("enlace", "activate", "ok")
	after := testutil.ToFloat64(transitions.WithLabelValues("enlace", "activate", "ok"))
	assert.Equal(t, before+1, after)
}

func TestMiddlewares(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zap.InfoLevel)

	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("request_id", "rid-1"); c.Next() })
	r.Use(RequestLogger(zap.New(core)), RequestMetricsMiddleware())
	r.GET("/v1/enlaces/:id", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	before := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/v1/enlaces/:id", "404"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/enlaces/7", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/v1/enlaces/:id", "404")))

	entries := logs.FilterMessage("http_request").All()
	if assert.Len(t, entries, 1) {
		assert.Equal(t, zap.WarnLevel, entries[0].Level)
		assert.Equal(t, "rid-1", entries[0].ContextMap()["request_id"])
		assert.Equal(t, "/v1/enlaces/:id", entries[0].ContextMap()["path"])
	}
}
