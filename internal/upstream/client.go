// Package upstream implements the client for the order service's REST
// contract. The contract is fixed; this package only moves bytes and maps
// failures onto apperr kinds, all display shaping happens in the screen
// controllers.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"fitformal.com/app/internal/shared/apperr"
)

type Client struct {
	baseURL string
	http    *http.Client
	creds   TokenSource
	log     *slog.Logger
}

func New(baseURL string, log *slog.Logger, creds TokenSource) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
		creds:   creds,
		log:     log,
	}
}

// WithCredentials returns a shallow copy scoped to another token source.
// Handlers use it to bind a request's identity to the shared client.
func (c *Client) WithCredentials(creds TokenSource) *Client {
	cp := *c
	cp.creds = creds
	return &cp
}

// Token reports the currently resolvable bearer token ("" when none).
func (c *Client) Token() string {
	if c.creds == nil {
		return ""
	}
	return c.creds.Token()
}

// MyOrders fetches the account's business summary and order list,
// optionally filtered to a single calendar date (YYYY-MM-DD).
func (c *Client) MyOrders(ctx context.Context, date string) (MyOrdersData, error) {
	q := url.Values{}
	if date != "" {
		q.Set("date", date)
	}

	var env struct {
		Success bool          `json:"success"`
		Data    *MyOrdersData `json:"data"`
	}
	if err := c.get(ctx, "/api/my-orders", q, &env); err != nil {
		return MyOrdersData{}, err
	}
	if !env.Success {
		return MyOrdersData{}, apperr.UnavailableErr("Could not load your orders.", fmt.Errorf("my-orders: success flag not set"))
	}
	if env.Data == nil {
		// Tolerated: success without data renders as an empty list.
		return MyOrdersData{}, nil
	}
	return *env.Data, nil
}

// Order fetches one order with its items and delivery address.
func (c *Client) Order(ctx context.Context, orderID string) (OrderPayload, error) {
	var env struct {
		Success bool          `json:"success"`
		Data    *OrderPayload `json:"data"`
	}
	if err := c.get(ctx, "/api/orders/"+url.PathEscape(orderID), nil, &env); err != nil {
		return OrderPayload{}, err
	}
	if !env.Success || env.Data == nil {
		return OrderPayload{}, apperr.UnavailableErr("Invalid response format", fmt.Errorf("order %s: missing success flag or data", orderID))
	}
	return *env.Data, nil
}

// DayAvailability fetches the per-day closed flags for a business. The
// entry array sits under "data" or "availability" depending on the
// upstream version.
func (c *Client) DayAvailability(ctx context.Context, businessID string) ([]AvailabilityEntry, error) {
	var env struct {
		Data         []AvailabilityEntry `json:"data"`
		Availability []AvailabilityEntry `json:"availability"`
	}
	if err := c.get(ctx, "/api/tailor-date-availability/"+url.PathEscape(businessID), nil, &env); err != nil {
		return nil, err
	}
	if env.Data != nil {
		return env.Data, nil
	}
	return env.Availability, nil
}

// OrdersInRange fetches per-day order counts for [start, end]. Callers
// treat failures as best-effort; the error is still reported.
func (c *Client) OrdersInRange(ctx context.Context, start, end, tailorID string) ([]DayOrders, error) {
	q := url.Values{}
	q.Set("startDate", start)
	q.Set("endDate", end)
	q.Set("tailorId", tailorID)

	var env struct {
		Data   []DayOrders `json:"data"`
		Orders []DayOrders `json:"orders"`
	}
	if err := c.get(ctx, "/api/orders/range", q, &env); err != nil {
		return nil, err
	}
	if env.Data != nil {
		return env.Data, nil
	}
	return env.Orders, nil
}

// SetDayAvailability persists one day's closed flag. Only the response
// status matters; the body is ignored.
func (c *Client) SetDayAvailability(ctx context.Context, businessID int, date string, isClosed bool) error {
	body := struct {
		BusinessID int    `json:"businessId"`
		Date       string `json:"date"`
		IsClosed   bool   `json:"isClosed"`
	}{businessID, date, isClosed}
	return c.post(ctx, "/api/tailor-date-availability", body, nil)
}

func (c *Client) get(ctx context.Context, path string, q url.Values, out any) error {
	u := c.baseURL + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return apperr.Wrap(err)
	}
	return c.do(req, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return apperr.Wrap(err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(b))
	if err != nil {
		return apperr.Wrap(err)
	}
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	req.Header.Set("Content-Type", "application/json")
	if tok := c.Token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return apperr.UnavailableErr("Could not reach the order service.", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.log.LogAttrs(req.Context(), slog.LevelWarn, "upstream_error",
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path),
			slog.Int("status", resp.StatusCode),
		)
		return apperr.UnavailableErr(
			fmt.Sprintf("Request failed with status %d.", resp.StatusCode),
			fmt.Errorf("%s %s: status %d: %s", req.Method, req.URL.Path, resp.StatusCode, snippet),
		)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperr.UnavailableErr("Invalid response format", err)
	}
	return nil
}
