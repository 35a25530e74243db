// Package middleware はすべてのルートに共通するginミドルウェアを提供します。
package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader はリクエストIDを受け渡すヘッダーです。
	RequestIDHeader = "X-Request-ID"
	// RequestIDKey はgin.Contextに保存するリクエストIDのキーです。
	RequestIDKey = "request_id"
	// リクエストIDとして受け入れる最大長
	maxRequestIDLength = 128
)

// RequestID は受信したX-Request-IDを引き継ぎ、なければUUIDを採番します。
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" || len(id) > maxRequestIDLength {
			id = uuid.NewString()
		}
		c.Set(RequestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// AccessLog はリクエストごとに1行の構造化ログを出力します。
func AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		attrs := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"latency", time.Since(start),
			"client_ip", c.ClientIP(),
			"request_id", c.GetString(RequestIDKey),
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, "errors", c.Errors.String())
		}
		if status >= http.StatusInternalServerError {
			slog.Error("http request", attrs...)
			return
		}
		slog.Info("http request", attrs...)
	}
}

// Recovery はpanicを500 {"error": ...} に変換します。
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		msg := fmt.Sprint(recovered)
		slog.Error("panic recovered", "error", msg, "path", c.Request.URL.Path, "request_id", c.GetString(RequestIDKey))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": msg})
	})
}
