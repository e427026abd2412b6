package requestid

import (
	"github.com/gin-gonic/gin"
	ulid "github.com/oklog/ulid/v2"
)

const Header = "X-Request-ID"

// クライアントが X-Request-ID を付けてこなければULIDを採番する。
// ログとレスポンスの突き合わせ用。
func New() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(Header)
		if id == "" {
			id = ulid.Make().String()
		}
		c.Set("request_id", id)
		c.Writer.Header().Set(Header, id)
		c.Next()
	}
}
