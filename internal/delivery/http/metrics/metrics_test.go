package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveOperation(t *testing.T) {
	before := testutil.ToFloat64(UserOperationsTotal.WithLabelValues("create", OutcomeSuccess))
	failBefore := testutil.ToFloat64(UserOperationsTotal.WithLabelValues("create", OutcomeFailure))

	ObserveOperation("create", true)
	ObserveOperation("create", true)
	ObserveOperation("create", false)

	assert.InDelta(t, before+2, testutil.ToFloat64(UserOperationsTotal.WithLabelValues("create", OutcomeSuccess)), 0)
	assert.InDelta(t, failBefore+1, testutil.ToFloat64(UserOperationsTotal.WithLabelValues("create", OutcomeFailure)), 0)
}

func TestMiddleware_RecordsRoutePattern(t *testing.T) {
	e := echo.New()
	e.Use(Middleware)
	e.GET("/users/:id", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users/42", nil))
	require.Equal(t, http.StatusNoContent, rec.Code)

	count := testutil.CollectAndCount(HTTPRequestDuration, "usermgr_http_request_duration_seconds")
	assert.GreaterOrEqual(t, count, 1)
}
