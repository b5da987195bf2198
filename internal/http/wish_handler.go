package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Aellun/exam-wishes-app/internal/repository"
	"github.com/Aellun/exam-wishes-app/internal/service"
)

// WishHandler mantiene dependencias para los endpoints de deseos.
type WishHandler struct {
	logger  *zap.Logger
	wishes  *service.WishService
	limiter service.SubmitRateLimiter
}

// NewWishHandler crea una instancia de WishHandler; limiter puede ser nil.
func NewWishHandler(logger *zap.Logger, wishes *service.WishService, limiter service.SubmitRateLimiter) *WishHandler {
	return &WishHandler{logger: logger, wishes: wishes, limiter: limiter}
}

// SubmitWish maneja POST /api/v1/wishes.
func (h *WishHandler) SubmitWish(c *gin.Context) {
	var req struct {
		Text   string `json:"text"`
		Author string `json:"author"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid submit wish request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if h.limiter != nil && !h.limiter.Allow(c.ClientIP()) {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many wishes, try again later"})
		return
	}

	wish, err := h.wishes.Submit(c.Request.Context(), req.Text, req.Author)
	if err != nil {
		writeServiceError(c, h.logger, "submit wish failed", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"wish": wish})
}

// ListWishes maneja GET /api/v1/wishes, con filtro opcional por autor.
func (h *WishHandler) ListWishes(c *gin.Context) {
	wishes, err := h.wishes.ListByAuthor(c.Request.Context(), c.Query("author"))
	if err != nil {
		writeServiceError(c, h.logger, "list wishes failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"wishes": wishes, "count": len(wishes)})
}

// writeServiceError traduce errores de validación y de almacenamiento a
// respuestas HTTP. Los fallos del almacén remoto se reportan sin reintentos.
func writeServiceError(c *gin.Context, logger *zap.Logger, msg string, err error) {
	switch {
	case errors.Is(err, service.ErrTextEmpty),
		errors.Is(err, service.ErrTextTooLong),
		errors.Is(err, service.ErrAuthorTooLong):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, repository.ErrStoreTimeout):
		logger.Error(msg, zap.Error(err))
		c.JSON(http.StatusGatewayTimeout, gin.H{"error": "message store timeout"})
	default:
		logger.Error(msg, zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "message store unavailable"})
	}
}
