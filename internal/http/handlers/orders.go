package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"fitformal.com/app/internal/http/middleware"
	"fitformal.com/app/internal/http/render"
	"fitformal.com/app/internal/http/validation"
	"fitformal.com/app/internal/shared/apperr"
	"fitformal.com/app/internal/upstream"
)

type OrdersHandler struct {
	api      *upstream.Client
	log      *slog.Logger
	screens  *Screens
	fallback upstream.TokenSource
}

func NewOrdersHandler(api *upstream.Client, log *slog.Logger, screens *Screens, fallback upstream.TokenSource) *OrdersHandler {
	return &OrdersHandler{api: api, log: log, screens: screens, fallback: fallback}
}

// session resolves the request's screen group and refreshes its token.
func (h *OrdersHandler) session(c *gin.Context) *sessionScreens {
	ident, _ := middleware.CurrentIdentity(c)
	ss := h.screens.forSession(ident.SessionID)
	ss.setToken(upstream.Chain{ident.Credentials(), h.fallback}.Token())
	return ss
}

// List serves the order-list screen. A date query param filters to one
// calendar day; changing it supersedes the previous fetch.
func (h *OrdersHandler) List(c *gin.Context) {
	var q struct {
		Date string `form:"date" binding:"omitempty,datetime=2006-01-02"`
	}
	if err := c.ShouldBindQuery(&q); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Invalid filter.", validation.FromBindError(err, &q)))
		return
	}

	ss := h.session(c)
	screen := ss.listScreen(h.api, h.log)

	snap := screen.Snapshot()
	if q.Date != snap.DateFilter {
		screen.SetDateFilter(c.Request.Context(), q.Date)
	} else {
		screen.Load(c.Request.Context())
	}

	render.Screen(c, http.StatusOK, "orderList", screen.Snapshot())
}

// ToggleItem flips one order item's measurement expand state.
func (h *OrdersHandler) ToggleItem(c *gin.Context) {
	itemID := c.Param("itemId")
	if itemID == "" {
		middleware.Fail(c, apperr.InvalidErr("Missing item id.", nil))
		return
	}

	ss := h.session(c)
	screen := ss.listScreen(h.api, h.log)
	screen.ToggleMeasurements(itemID)

	render.Screen(c, http.StatusOK, "orderList", screen.Snapshot())
}

// Detail serves the order-detail screen.
func (h *OrdersHandler) Detail(c *gin.Context) {
	orderID := c.Param("orderId")

	ss := h.session(c)
	screen := ss.detailScreen(h.api, h.log, orderID)
	screen.Load(c.Request.Context())

	render.Screen(c, http.StatusOK, "orderDetail", screen.Snapshot())
}
