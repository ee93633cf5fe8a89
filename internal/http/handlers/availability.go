package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"fitformal.com/app/internal/http/middleware"
	"fitformal.com/app/internal/http/render"
	"fitformal.com/app/internal/http/validation"
	"fitformal.com/app/internal/modules/availability"
	"fitformal.com/app/internal/shared/apperr"
	"fitformal.com/app/internal/upstream"
)

type AvailabilityHandler struct {
	api      *upstream.Client
	log      *slog.Logger
	screens  *Screens
	fallback upstream.TokenSource
}

func NewAvailabilityHandler(api *upstream.Client, log *slog.Logger, screens *Screens, fallback upstream.TokenSource) *AvailabilityHandler {
	return &AvailabilityHandler{api: api, log: log, screens: screens, fallback: fallback}
}

func (h *AvailabilityHandler) session(c *gin.Context) (*sessionScreens, middleware.Identity) {
	ident, _ := middleware.CurrentIdentity(c)
	ss := h.screens.forSession(ident.SessionID)
	ss.setToken(upstream.Chain{ident.Credentials(), h.fallback}.Token())
	return ss, ident
}

// businessID prefers an explicit query param over the identity's stored
// business.
func businessID(c *gin.Context, ident middleware.Identity) string {
	if b := c.Query("businessId"); b != "" {
		return b
	}
	return ident.BusinessID
}

// Table serves the day-availability table.
func (h *AvailabilityHandler) Table(c *gin.Context) {
	var q struct {
		Days int `form:"days" binding:"omitempty,oneof=7 14 30 60"`
	}
	if err := c.ShouldBindQuery(&q); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Invalid window size.", validation.FromBindError(err, &q)))
		return
	}
	if q.Days == 0 {
		q.Days = availability.DefaultWindow
	}

	ss, ident := h.session(c)
	screen := ss.availabilityScreen(h.api, h.log, businessID(c, ident))

	if q.Days != screen.Snapshot().Days {
		screen.SetDays(c.Request.Context(), q.Days)
	} else {
		screen.Load(c.Request.Context())
	}

	render.Screen(c, http.StatusOK, "dayAvailability", screen.Snapshot())
}

type dateRequest struct {
	Date string `json:"date" binding:"required,datetime=2006-01-02"`
}

// Toggle flips one day's taking-orders switch and persists it. The
// snapshot carries any blocking alert from the write path.
func (h *AvailabilityHandler) Toggle(c *gin.Context) {
	var req dateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Invalid toggle request.", validation.FromBindError(err, &req)))
		return
	}

	ss, ident := h.session(c)
	screen := ss.availabilityScreen(h.api, h.log, businessID(c, ident))
	screen.ToggleDay(c.Request.Context(), req.Date)

	render.Screen(c, http.StatusOK, "dayAvailability", screen.Snapshot())
}

// Select shows one date's orders inline below the table.
func (h *AvailabilityHandler) Select(c *gin.Context) {
	var req dateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Invalid selection.", validation.FromBindError(err, &req)))
		return
	}

	ss, ident := h.session(c)
	screen := ss.availabilityScreen(h.api, h.log, businessID(c, ident))
	screen.SelectDate(req.Date)

	render.Screen(c, http.StatusOK, "dayAvailability", screen.Snapshot())
}
