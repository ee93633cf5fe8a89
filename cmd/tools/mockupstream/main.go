// mockupstream is a fake order-service API for local development. It
// serves the five endpoints the BFF consumes with a small seeded dataset,
// and can simulate write failures.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"
)

type orderItem struct {
	ID              int     `json:"id"`
	ItemType        string  `json:"itemType"`
	ProductCode     string  `json:"productCode,omitempty"`
	Quantity        int     `json:"quantity"`
	UnitPrice       float64 `json:"unitPrice"`
	LineTotal       float64 `json:"lineTotal"`
	Status          string  `json:"status"`
	MeasurementSlot string  `json:"measurementSlot,omitempty"`
	MeasurementDone any     `json:"isMeasurementDone,omitempty"`
	Measurements    any     `json:"measurements,omitempty"`
}

type order struct {
	ID          int         `json:"id"`
	OrderDate   string      `json:"orderDate"`
	OrderType   string      `json:"orderType"`
	TotalAmount float64     `json:"totalAmount"`
	AdvancePaid float64     `json:"advancePaid,omitempty"`
	Status      string      `json:"status"`
	Items       []orderItem `json:"orderItems"`
}

type server struct {
	mu     sync.Mutex
	closed map[string]bool // date -> isClosed
	orders []order

	failWrites bool
}

func newServer(failWrites bool) *server {
	today := time.Now().Format("2006-01-02")
	return &server{
		closed:     map[string]bool{today: false},
		failWrites: failWrites,
		orders: []order{
			{
				ID: 41, OrderDate: today, OrderType: "Stitching",
				TotalAmount: 1500, AdvancePaid: 500, Status: "processing",
				Items: []orderItem{{
					ID: 7, ItemType: "Shirt", ProductCode: "SH-100",
					Quantity: 2, UnitPrice: 500, LineTotal: 1000,
					Status: "inprogress", MeasurementSlot: "Morning",
					MeasurementDone: 1,
					// String-encoded on purpose: exercises both payload shapes.
					Measurements: `[{"measurementKey":"Chest","measurementValue":"40","unit":"in","notes":"loose fit"}]`,
				}},
			},
			{
				ID: 42, OrderDate: today, OrderType: "Alteration",
				TotalAmount: 300, Status: "Completed",
			},
		},
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func (s *server) myOrders(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := s.orders
	if date := r.URL.Query().Get("date"); date != "" {
		out = nil
		for _, o := range s.orders {
			if o.OrderDate == date {
				out = append(out, o)
			}
		}
	}
	writeJSON(w, map[string]any{
		"success": true,
		"data": map[string]any{
			"businessName": "Fit Formal Tailors",
			"businessId":   12,
			"userRoles":    []string{"owner", "tailor"},
			"totalOrders":  len(s.orders),
			"orders":       out,
		},
	})
}

func (s *server) orderDetail(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/orders/")
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.orders {
		if fmt.Sprint(o.ID) == id {
			writeJSON(w, map[string]any{
				"success": true,
				"data": map[string]any{
					"order":      o,
					"orderItems": o.Items,
					"deliveryAddress": map[string]any{
						"fullName": "Asha Rao", "phone": "9999999999",
						"addressLine1": "14 MG Road", "city": "Bengaluru",
						"state": "KA", "pincode": "560001",
					},
				},
			})
			return
		}
	}
	writeJSON(w, map[string]any{"success": true, "data": map[string]any{"order": map[string]any{}}})
}

func (s *server) availability(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entries := make([]map[string]any, 0, len(s.closed))
	for date, closed := range s.closed {
		entries = append(entries, map[string]any{"Date": date + "T00:00:00Z", "IsClosed": closed})
	}
	writeJSON(w, map[string]any{"data": entries})
}

func (s *server) ordersRange(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	byDate := map[string][]order{}
	for _, o := range s.orders {
		byDate[o.OrderDate] = append(byDate[o.OrderDate], o)
	}
	days := make([]map[string]any, 0, len(byDate))
	for date, os := range byDate {
		days = append(days, map[string]any{"date": date, "totalOrders": len(os), "orders": os})
	}
	writeJSON(w, map[string]any{"data": days})
}

func (s *server) setAvailability(w http.ResponseWriter, r *http.Request) {
	if s.failWrites {
		http.Error(w, `{"error":"simulated write failure"}`, http.StatusInternalServerError)
		return
	}
	var req struct {
		BusinessID int    `json:"businessId"`
		Date       string `json:"date"`
		IsClosed   bool   `json:"isClosed"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Date == "" {
		http.Error(w, `{"error":"bad request"}`, http.StatusBadRequest)
		return
	}
	s.mu.Lock()
	s.closed[req.Date] = req.IsClosed
	s.mu.Unlock()
	log.Printf("availability: business=%d date=%s isClosed=%v", req.BusinessID, req.Date, req.IsClosed)
	writeJSON(w, map[string]any{"success": true})
}

func main() {
	addr := flag.String("addr", ":9090", "Listen address")
	failWrites := flag.Bool("fail-writes", false, "Reject availability writes with a 500")
	flag.Parse()

	s := newServer(*failWrites)

	mux := http.NewServeMux()
	mux.HandleFunc("/api/my-orders", s.myOrders)
	mux.HandleFunc("/api/orders/range", s.ordersRange)
	mux.HandleFunc("/api/orders/", s.orderDetail)
	mux.HandleFunc("/api/tailor-date-availability/", s.availability)
	mux.HandleFunc("/api/tailor-date-availability", s.setAvailability)

	log.Printf("mock upstream listening on %s (fail-writes=%v)", *addr, *failWrites)
	log.Fatal(http.ListenAndServe(*addr, mux))
}
