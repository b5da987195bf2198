package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Aellun/exam-wishes-app/internal/service"
)

// BoardHandler mantiene dependencias para los endpoints del tablón.
type BoardHandler struct {
	logger *zap.Logger
	board  *service.BoardService
}

func NewBoardHandler(logger *zap.Logger, board *service.BoardService) *BoardHandler {
	return &BoardHandler{logger: logger, board: board}
}

// GetBoard maneja GET /api/v1/board.
func (h *BoardHandler) GetBoard(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"board": h.board.Info()})
}

// ListTemplates maneja GET /api/v1/templates.
func (h *BoardHandler) ListTemplates(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"templates": h.board.Templates(),
		"tones":     h.board.Tones(),
	})
}

// GetStats maneja GET /api/v1/wishes/stats.
func (h *BoardHandler) GetStats(c *gin.Context) {
	stats, err := h.board.Stats(c.Request.Context())
	if err != nil {
		writeServiceError(c, h.logger, "board stats failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stats": stats})
}
