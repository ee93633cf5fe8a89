package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"

	"fitformal.com/app/internal/http/handlers"
	"fitformal.com/app/internal/http/middleware"
	"fitformal.com/app/internal/upstream"
)

// NewRouter wires the screen endpoints. api is the shared upstream
// client; fallback is the env-level token used when neither the request
// nor the session carries one.
func NewRouter(logger *slog.Logger, api *upstream.Client, store sessions.Store, fallback upstream.TokenSource) *gin.Engine {
	r := gin.New()
	// ErrorHandler sits outside Recovery so a recovered panic still
	// renders through the error envelope.
	r.Use(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.ErrorHandler(logger),
		middleware.Recovery(logger),
		middleware.Session(store),
	)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	screens := handlers.NewScreens()
	oh := handlers.NewOrdersHandler(api, logger, screens, fallback)
	ah := handlers.NewAvailabilityHandler(api, logger, screens, fallback)
	sh := handlers.NewSummaryHandler(logger)
	sess := handlers.NewSessionHandler()

	s := r.Group("/screens")
	{
		s.GET("/orders", oh.List)
		s.POST("/orders/items/:itemId/toggle", oh.ToggleItem)
		s.GET("/orders/:orderId", oh.Detail)

		s.GET("/availability", ah.Table)
		s.POST("/availability/toggle", ah.Toggle)
		s.POST("/availability/select", ah.Select)

		s.POST("/summary", sh.Compute)
	}

	r.POST("/session/token", sess.SaveToken)

	return r
}
