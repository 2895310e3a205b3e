package middleware

import (
	"net/http"
	"strings"

	"freenotice/internal/constants"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// AdminAuth 변경 API용 관리자 토큰 검사 미들웨어.
// tokenHash가 비어 있으면 검사를 하지 않는다(원 시스템은 별도 인증이 없음).
func AdminAuth(tokenHash string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenHash == "" {
			c.Next()
			return
		}

		token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		if token == "" || bcrypt.CompareHashAndPassword([]byte(tokenHash), []byte(token)) != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": constants.ErrAdminUnauthorized,
			})
			return
		}

		c.Next()
	}
}
