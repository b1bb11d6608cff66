package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"car-rental-backend/internal/core/auth"
	"car-rental-backend/internal/domain"
)

// gin context 键
const (
	KeyClaims = "claims"
	KeyUserID = "userId"
	KeyRole   = "role"
)

// AuthJWT 角色门。allowed 为空表示任意已登录角色。
// 缺 token、token 非法、角色不符一律 401 —— 对外不区分
// “没登录”和“登录了但没权限”，这是既有契约
func AuthJWT(j *auth.JWTer, allowed ...domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		ah := c.GetHeader("Authorization")
		if !strings.HasPrefix(ah, "Bearer ") || strings.TrimSpace(strings.TrimPrefix(ah, "Bearer ")) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}
		claims, err := j.Parse(strings.TrimSpace(strings.TrimPrefix(ah, "Bearer ")))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}
		if len(allowed) > 0 && !claims.Role.In(allowed...) {
			// 内部可区分（这里能打日志），对外仍是 401
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}
		c.Set(KeyClaims, claims)
		c.Set(KeyUserID, claims.UserID)
		c.Set(KeyRole, string(claims.Role))
		c.Next()
	}
}

// ClaimsFrom handler 里取解码后的载荷
func ClaimsFrom(c *gin.Context) (*auth.Claims, bool) {
	v, ok := c.Get(KeyClaims)
	if !ok {
		return nil, false
	}
	cl, ok := v.(*auth.Claims)
	return cl, ok
}
