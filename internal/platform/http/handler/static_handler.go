package handler

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

// Static はビルド済みフロントエンドを配信するNoRouteハンドラーを返します。
// 存在しないパスはSPAのルーティングのためindex.htmlにフォールバックします。
// apiPrefix配下のパスとdir未設定時はJSONの404を返します。
func Static(dir, apiPrefix string) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqPath := c.Request.URL.Path
		if dir == "" || (apiPrefix != "" && strings.HasPrefix(reqPath, apiPrefix)) ||
			(c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}

		// 先頭に/を付けてCleanすることでdirの外に出られないようにする
		name := filepath.Join(dir, filepath.FromSlash(path.Clean("/"+reqPath)))
		if fi, err := os.Stat(name); err == nil && !fi.IsDir() {
			c.File(name)
			return
		}

		index := filepath.Join(dir, "index.html")
		if _, err := os.Stat(index); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.File(index)
	}
}
