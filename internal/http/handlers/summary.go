package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"fitformal.com/app/internal/http/middleware"
	"fitformal.com/app/internal/http/render"
	"fitformal.com/app/internal/http/validation"
	"fitformal.com/app/internal/modules/summary"
	"fitformal.com/app/internal/shared/apperr"
	"fitformal.com/app/internal/upstream"
)

type SummaryHandler struct {
	log *slog.Logger
}

func NewSummaryHandler(log *slog.Logger) *SummaryHandler {
	return &SummaryHandler{log: log}
}

type summaryRequest struct {
	BookingDate     string `json:"bookingDate" binding:"omitempty,datetime=2006-01-02"`
	MeasurementDate string `json:"measurementDate" binding:"omitempty,datetime=2006-01-02"`
	DeliveryDate    string `json:"deliveryDate" binding:"omitempty,datetime=2006-01-02"`

	PickupAddress   *upstream.Address `json:"pickupAddress"`
	DeliveryAddress *upstream.Address `json:"deliveryAddress"`

	Items []summary.SelectedItem `json:"items" binding:"omitempty,dive"`
	// Native array or an HTML-entity-encoded JSON string.
	PriceList json.RawMessage `json:"priceList"`

	Creating bool `json:"creating"`
}

// Compute derives the order-confirmation screen. Pure: no fetch, no
// session state; the draft comes in, the page model goes out.
func (h *SummaryHandler) Compute(c *gin.Context) {
	var req summaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Invalid order draft.", validation.FromBindError(err, &req)))
		return
	}

	priceList, err := summary.DecodePriceList(req.PriceList)
	if err != nil {
		// Fail soft: an unreadable price list just drops the price section.
		h.log.Warn("price list decode failed", "err", err)
		priceList = nil
	}

	page := summary.BuildPage(summary.PageInput{
		BookingDate:     req.BookingDate,
		MeasurementDate: req.MeasurementDate,
		DeliveryDate:    req.DeliveryDate,
		Pickup:          req.PickupAddress,
		Delivery:        req.DeliveryAddress,
		Items:           req.Items,
		PriceList:       priceList,
		Creating:        req.Creating,
	})

	render.Screen(c, http.StatusOK, "orderSummary", page)
}
