// Package handler はプラットフォームレベルのエンドポイント用HTTPハンドラーを提供します。
package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// 依存先チェック1件あたりの制限時間
const checkTimeout = 2 * time.Second

// Check は依存先（DB、Redisなど）の疎通確認です。
type Check struct {
	Name  string
	Probe func(ctx context.Context) error
}

// Health はサービスヘルスチェック用の /healthz エンドポイントを処理します。
// HTTPメソッドに応じて適切にレスポンスし、キャッシュを防止します。
// checksのいずれかが失敗した場合は503を返します。
func Health(checks ...Check) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 明示的にキャッシュを防止
		c.Header("Cache-Control", "no-store")

		if c.Request.Method == http.MethodOptions {
			c.Status(http.StatusNoContent)
			return
		}

		status := http.StatusOK
		results := make(map[string]string, len(checks))
		for _, chk := range checks {
			ctx, cancel := context.WithTimeout(c.Request.Context(), checkTimeout)
			err := chk.Probe(ctx)
			cancel()
			if err != nil {
				status = http.StatusServiceUnavailable
				results[chk.Name] = err.Error()
				continue
			}
			results[chk.Name] = "ok"
		}

		if c.Request.Method == http.MethodHead {
			c.Status(status)
			return
		}

		body := gin.H{"status": "ok"}
		if status != http.StatusOK {
			body["status"] = "degraded"
		}
		if len(checks) > 0 {
			body["checks"] = results
		}
		c.JSON(status, body)
	}
}
