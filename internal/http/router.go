package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter configura el router de Gin con middlewares y rutas base.
func NewRouter(
	logger *zap.Logger,
	wishH *WishHandler,
	boardH *BoardHandler,
	exportH *ExportHandler,
) *gin.Engine {
	r := gin.New()

	// Middlewares basicos: request id, logging y recovery.
	r.Use(requestIDMiddleware(), zapLoggerMiddleware(logger), gin.Recovery())

	v1 := r.Group("/api/v1")

	wishes := v1.Group("/wishes")
	wishes.POST("", wishH.SubmitWish)
	wishes.GET("", wishH.ListWishes)
	wishes.GET("/export", exportH.ExportWishes)
	wishes.GET("/stats", boardH.GetStats)

	v1.GET("/board", boardH.GetBoard)
	v1.GET("/templates", boardH.ListTemplates)

	return r
}

// zapLoggerMiddleware crea un middleware simple de logging con zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
			zap.String("request_id", RequestID(c)),
		)
	}
}
