package upstream

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestChainTokenResolution(t *testing.T) {
	assert.Equal(t, "", Chain{}.Token())
	assert.Equal(t, "", Chain{StaticToken(""), nil}.Token())
	assert.Equal(t, "fallback", Chain{StaticToken(""), StaticToken("fallback")}.Token())
	assert.Equal(t, "primary", Chain{StaticToken("primary"), StaticToken("fallback")}.Token())
}

func TestMyOrdersSendsAuthAndFilter(t *testing.T) {
	var gotAuth, gotDate string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotDate = r.URL.Query().Get("date")
		w.Write([]byte(`{"success":true,"data":{"businessName":"Fit Formal","businessId":12,"userRoles":["owner","tailor"],"totalOrders":1,"orders":[{"id":41,"status":"Delivered"}]}}`))
	}))
	defer srv.Close()

	c := New(srv.URL, testLogger(), StaticToken("tok-1"))
	data, err := c.MyOrders(context.Background(), "2025-12-08")
	require.NoError(t, err)

	assert.Equal(t, "Bearer tok-1", gotAuth)
	assert.Equal(t, "2025-12-08", gotDate)
	assert.Equal(t, "Fit Formal", data.BusinessName)
	assert.Equal(t, ID("12"), data.BusinessID)
	assert.Equal(t, []string{"owner", "tailor"}, data.UserRoles)
	require.Len(t, data.Orders, 1)
	assert.Equal(t, ID("41"), data.Orders[0].ID)
}

func TestMyOrdersWithoutSuccessFlagFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"orders":[]}}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL, testLogger(), StaticToken("")).MyOrders(context.Background(), "")
	assert.Error(t, err)
}

func TestOrderMissingDataIsInvalidFormat(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL, testLogger(), StaticToken("")).Order(context.Background(), "41")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing success flag or data")
}

func TestDayAvailabilityEnvelopeVariants(t *testing.T) {
	bodies := []string{
		`{"data":[{"Date":"2025-12-08T00:00:00Z","IsClosed":true}]}`,
		`{"availability":[{"date":"2025-12-08T00:00:00Z","isClosed":true}]}`,
	}
	for _, body := range bodies {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(body))
		}))
		c := New(srv.URL, testLogger(), StaticToken(""))
		entries, err := c.DayAvailability(context.Background(), "12")
		srv.Close()

		require.NoError(t, err, "body=%s", body)
		require.Len(t, entries, 1)
		assert.Equal(t, "2025-12-08T00:00:00Z", entries[0].Date)
		assert.True(t, entries[0].IsClosed)
	}
}

func TestOrdersInRangeQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "2025-12-08", q.Get("startDate"))
		assert.Equal(t, "2025-12-14", q.Get("endDate"))
		assert.Equal(t, "12", q.Get("tailorId"))
		w.Write([]byte(`{"orders":[{"date":"2025-12-09","totalOrders":3}]}`))
	}))
	defer srv.Close()

	days, err := New(srv.URL, testLogger(), StaticToken("")).OrdersInRange(context.Background(), "2025-12-08", "2025-12-14", "12")
	require.NoError(t, err)
	require.Len(t, days, 1)
	assert.Equal(t, 3, days[0].TotalOrders)
}

func TestSetDayAvailabilityBodyAndFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"businessId":12,"date":"2025-12-08","isClosed":true}`, string(body))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := New(srv.URL, testLogger(), StaticToken(""))
	assert.NoError(t, c.SetDayAvailability(context.Background(), 12, "2025-12-08", true))

	bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer bad.Close()
	assert.Error(t, New(bad.URL, testLogger(), StaticToken("")).SetDayAvailability(context.Background(), 12, "2025-12-08", true))
}

func TestIDUnmarshalVariants(t *testing.T) {
	var o Order
	assert.NoError(t, o.ID.UnmarshalJSON([]byte(`"abc"`)))
	assert.Equal(t, ID("abc"), o.ID)
	assert.NoError(t, o.ID.UnmarshalJSON([]byte(`42`)))
	assert.Equal(t, ID("42"), o.ID)
	assert.NoError(t, o.ID.UnmarshalJSON([]byte(`null`)))
	assert.Equal(t, ID(""), o.ID)
}
