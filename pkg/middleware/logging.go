package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/toko-digital/internal/adapter/api/dto"
	"github.com/hugohenrick/toko-digital/pkg/logger"
)

// RequestLogger registra cada requisição HTTP com status e latência
func RequestLogger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		status := c.Writer.Status()
		fields := []interface{}{
			"status", status,
			"method", c.Request.Method,
			"path", path,
			"ip", c.ClientIP(),
			"latency", time.Since(start).String(),
			"user_id", c.GetString("user_id"),
			"store_id", c.GetString("store_id"),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, "errors", c.Errors.String())
		}

		switch {
		case status >= http.StatusInternalServerError:
			log.Error("Erro no servidor", fields...)
		case status >= http.StatusBadRequest:
			log.Warn("Erro do cliente", fields...)
		default:
			log.Info("Requisição concluída", fields...)
		}
	}
}

// Recovery converte panics em 500 com o corpo de erro padrão
func Recovery(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error("Panic recuperado", "error", err, "path", c.Request.URL.Path)
				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse(
					http.StatusInternalServerError,
					"Erro interno do servidor",
					"",
				))
			}
		}()
		c.Next()
	}
}
