package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"dog-ocean/internal/service"
)

// AuthHandler emite tokens de acceso para clientes del API.
type AuthHandler struct {
	logger   *zap.Logger
	tokenSvc *service.TokenService
}

func NewAuthHandler(logger *zap.Logger, tokenSvc *service.TokenService) *AuthHandler {
	return &AuthHandler{logger: logger, tokenSvc: tokenSvc}
}

// IssueToken maneja POST /auth/token.
func (h *AuthHandler) IssueToken(c *gin.Context) {
	var req struct {
		ClientID     string `json:"client_id" binding:"required"`
		ClientSecret string `json:"client_secret" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid token request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	pair, err := h.tokenSvc.IssueToken(req.ClientID, req.ClientSecret)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		h.logger.Error("issue token failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not issue token"})
		return
	}

	c.JSON(http.StatusOK, pair)
}
