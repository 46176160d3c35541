package server_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/goliatone/go-cv-backend/internal/graphql"
	"github.com/goliatone/go-cv-backend/internal/queries"
	"github.com/goliatone/go-cv-backend/internal/server"
	"github.com/goliatone/go-cv-backend/internal/storage"
	"github.com/goliatone/go-cv-backend/pkg/testsupport"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp(t *testing.T, cfg server.Config) (*fiber.App, *storage.DB) {
	t.Helper()

	db := testsupport.OpenTestDB(t)
	testsupport.SeedFixtures(t, db.DB)

	exec, err := graphql.New(queries.New(queries.Deps{DB: db.DB}), graphql.DefaultPageConfig(), nil)
	require.NoError(t, err)

	app := server.New(cfg, server.Deps{
		GraphQL:  graphql.NewHandler(exec, server.PathGraphQL, true, nil),
		Database: db,
		Registry: prometheus.NewRegistry(),
	})
	return app, db
}

func postQuery(t *testing.T, app *fiber.App, body string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, server.PathGraphQL, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func readJSON(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dest))
}

func TestGraphQL_Post(t *testing.T) {
	app, _ := newApp(t, server.Config{})

	resp := postQuery(t, app, `{"query":"{ companies { name } }"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))

	var body struct {
		Data struct {
			Companies []struct {
				Name string `json:"name"`
			} `json:"companies"`
		} `json:"data"`
	}
	readJSON(t, resp, &body)
	require.Len(t, body.Data.Companies, 3)
	assert.Equal(t, "Alpha Corp", body.Data.Companies[0].Name)
}

func TestGraphQL_GetWithQueryString(t *testing.T) {
	app, _ := newApp(t, server.Config{})

	req := httptest.NewRequest(http.MethodGet, server.PathGraphQL+"?query=%7B+skills+%7B+name+%7D+%7D", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]any
	readJSON(t, resp, &body)
	assert.Contains(t, body, "data")
}

func TestGraphQL_Playground(t *testing.T) {
	app, _ := newApp(t, server.Config{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, server.PathGraphQL, nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
}

func TestGraphQL_RequestErrors(t *testing.T) {
	app, _ := newApp(t, server.Config{})

	t.Run("validation error is a 200 with errors", func(t *testing.T) {
		resp := postQuery(t, app, `{"query":"{ companies { salary } }"}`)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]any
		readJSON(t, resp, &body)
		assert.Nil(t, body["data"])
		assert.NotEmpty(t, body["errors"])
	})

	t.Run("malformed body is a 400", func(t *testing.T) {
		resp := postQuery(t, app, `not json`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body server.ErrorBody
		readJSON(t, resp, &body)
		assert.Equal(t, http.StatusBadRequest, body.StatusCode)
	})

	t.Run("missing query is a 400", func(t *testing.T) {
		resp := postQuery(t, app, `{}`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestGraphQL_StorageFailureIsGeneric500(t *testing.T) {
	app, db := newApp(t, server.Config{})
	require.NoError(t, db.Close())

	resp := postQuery(t, app, `{"query":"{ companies { name } }"}`)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()

	assert.JSONEq(t, `{"error":"An unexpected error occurred. Please try again later.","statusCode":500}`, string(raw))
	assert.NotContains(t, string(raw), "sql")
}

func TestHealth(t *testing.T) {
	app, db := newApp(t, server.Config{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, server.PathHealth, nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var report server.HealthReport
	readJSON(t, resp, &report)
	assert.Equal(t, "Healthy", report.Status)
	assert.Equal(t, "Healthy", report.Checks["database"])

	require.NoError(t, db.Close())

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, server.PathHealth, nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	readJSON(t, resp, &report)
	assert.Equal(t, "Unhealthy", report.Status)
}

func TestRateLimit(t *testing.T) {
	app, _ := newApp(t, server.Config{
		RateLimit: server.RateLimitConfig{Enabled: true, PermitLimit: 2, Window: time.Minute},
	})

	for i := 0; i < 2; i++ {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, server.PathHealth, nil))
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	}

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, server.PathHealth, nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)

	var body server.ErrorBody
	readJSON(t, resp, &body)
	assert.Equal(t, http.StatusTooManyRequests, body.StatusCode)
	assert.Equal(t, server.MessageTooManyRequests, body.Error)

	// another host has its own window
	req := httptest.NewRequest(http.MethodGet, server.PathHealth, nil)
	req.Host = "other.example.com"
	resp, err = app.Test(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestCORS_AnyOriginByDefault(t *testing.T) {
	app, _ := newApp(t, server.Config{})

	req := httptest.NewRequest(http.MethodOptions, server.PathGraphQL, nil)
	req.Header.Set("Origin", "https://cv.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	resp, err := app.Test(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestCORS_ConfiguredOrigins(t *testing.T) {
	app, _ := newApp(t, server.Config{AllowedOrigins: []string{"https://cv.example.com"}})

	req := httptest.NewRequest(http.MethodGet, server.PathHealth, nil)
	req.Header.Set("Origin", "https://cv.example.com")
	resp, err := app.Test(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "https://cv.example.com", resp.Header.Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, server.PathHealth, nil)
	req.Header.Set("Origin", "https://evil.example.com")
	resp, err = app.Test(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Empty(t, resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestMetricsEndpoint(t *testing.T) {
	app, _ := newApp(t, server.Config{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, server.PathHealth, nil))
	require.NoError(t, err)
	resp.Body.Close()

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, server.PathMetrics, nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(raw), "cv_http_request_duration_seconds")
}

func TestRequestIDIsPropagated(t *testing.T) {
	app, _ := newApp(t, server.Config{})

	req := httptest.NewRequest(http.MethodGet, server.PathHealth, nil)
	req.Header.Set("X-Request-ID", "abc-123")
	resp, err := app.Test(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "abc-123", resp.Header.Get("X-Request-ID"))
}

func TestUnknownRouteIs404(t *testing.T) {
	app, _ := newApp(t, server.Config{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/nope", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var body server.ErrorBody
	readJSON(t, resp, &body)
	assert.Equal(t, http.StatusNotFound, body.StatusCode)
}
