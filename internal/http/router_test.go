package http

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitformal.com/app/internal/upstream"
)

func newTestShell(t *testing.T, upstreamHandler http.Handler) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	up := httptest.NewServer(upstreamHandler)
	t.Cleanup(up.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := sessions.NewCookieStore([]byte("test-secret"))
	api := upstream.New(up.URL, logger, upstream.StaticToken(""))

	srv := httptest.NewServer(NewRouter(logger, api, store, upstream.StaticToken("")))
	t.Cleanup(srv.Close)
	return srv
}

func shellClient(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &http.Client{Jar: jar}
}

func TestHealthz(t *testing.T) {
	srv := newTestShell(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestSessionTokenFlowsToUpstream(t *testing.T) {
	var gotAuth string
	srv := newTestShell(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"success":true,"data":{"businessName":"Fit Formal","businessId":12,"totalOrders":0,"orders":[]}}`))
	}))
	client := shellClient(t)

	// Persist the fallback token in the session cookie.
	resp, err := client.Post(srv.URL+"/session/token", "application/json",
		strings.NewReader(`{"token":"tok-shell","businessId":"12"}`))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// The list screen fetch now carries it.
	resp, err = client.Get(srv.URL + "/screens/orders")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Bearer tok-shell", gotAuth)
	assert.Contains(t, string(body), `"screen":"orderList"`)
	assert.Contains(t, string(body), "Fit Formal")
}

func TestSummaryComputeIsPure(t *testing.T) {
	srv := newTestShell(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("summary must not call upstream")
	}))

	resp, err := http.Post(srv.URL+"/screens/summary", "application/json", strings.NewReader(`{
		"items":[{"name":"Shirt","quantity":2}],
		"priceList":[{"Name":"Shirt","FullPrice":500,"DiscountPrice":450}]
	}`))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "₹909.00")
	assert.Contains(t, string(body), "₹9.00")
}

func TestPanicRendersErrorEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := sessions.NewCookieStore([]byte("test-secret"))
	api := upstream.New("http://127.0.0.1:0", logger, upstream.StaticToken(""))

	r := NewRouter(logger, api, store, upstream.StaticToken(""))
	r.GET("/boom", func(c *gin.Context) { panic("boom") })

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	resp, err := http.Get(srv.URL + "/boom")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Contains(t, string(body), "Something went wrong.")
	assert.Contains(t, string(body), `"request_id"`)
}

func TestToggleValidation(t *testing.T) {
	srv := newTestShell(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[]}`))
	}))

	resp, err := http.Post(srv.URL+"/screens/availability/toggle", "application/json",
		strings.NewReader(`{"date":"08-12-2025"}`))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(body), "Invalid toggle request.")
	assert.Contains(t, string(body), `"date"`)
}
