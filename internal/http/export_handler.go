package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Aellun/exam-wishes-app/internal/service"
)

// ExportHandler mantiene dependencias para exportar el tablón.
type ExportHandler struct {
	logger *zap.Logger
	wishes *service.WishService
	export *service.ExportService
}

func NewExportHandler(logger *zap.Logger, wishes *service.WishService, export *service.ExportService) *ExportHandler {
	return &ExportHandler{logger: logger, wishes: wishes, export: export}
}

// ExportWishes maneja GET /api/v1/wishes/export?format=json|pdf.
func (h *ExportHandler) ExportWishes(c *gin.Context) {
	format := strings.ToLower(strings.TrimSpace(c.Query("format")))
	if format == "" {
		format = "json"
	}
	if format != "json" && format != "pdf" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown export format"})
		return
	}

	wishes, err := h.wishes.ListAll(c.Request.Context())
	if err != nil {
		writeServiceError(c, h.logger, "export wishes failed", err)
		return
	}

	switch format {
	case "json":
		data, err := h.export.ExportJSON(wishes)
		if err != nil {
			h.logger.Error("render json export failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not render export"})
			return
		}
		c.Header("Content-Disposition", `attachment; filename="good_luck_messages.json"`)
		c.Data(http.StatusOK, "application/json; charset=utf-8", data)
	case "pdf":
		data, err := h.export.ExportPDF(wishes)
		if err != nil {
			h.logger.Error("render pdf export failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not render export"})
			return
		}
		c.Header("Content-Disposition", `attachment; filename="good_luck_messages.pdf"`)
		c.Data(http.StatusOK, "application/pdf", data)
	}
}
