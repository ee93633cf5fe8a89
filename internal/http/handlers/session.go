package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fitformal.com/app/internal/http/middleware"
	"fitformal.com/app/internal/http/render"
	"fitformal.com/app/internal/http/validation"
	"fitformal.com/app/internal/shared/apperr"
)

type SessionHandler struct{}

func NewSessionHandler() *SessionHandler { return &SessionHandler{} }

type tokenRequest struct {
	Token      string `json:"token" binding:"required"`
	BusinessID string `json:"businessId"`
}

// SaveToken persists the shell's auth token (and business id) into the
// session cookie as the per-request fallback credential.
func (h *SessionHandler) SaveToken(c *gin.Context) {
	var req tokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Invalid token payload.", validation.FromBindError(err, &req)))
		return
	}

	if err := middleware.SaveCredentials(c, req.Token, req.BusinessID); err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	render.OK(c, http.StatusOK)
}
