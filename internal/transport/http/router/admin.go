package router

import (
	"net/http"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"car-rental-backend/internal/core/auth"
	"car-rental-backend/internal/domain"
	mdw "car-rental-backend/internal/transport/http/middleware"
)

// NewAdminEngine 后台引擎，/admin/v1 下全部要求 admin 角色
func NewAdminEngine(l *zap.Logger, db *gorm.DB, jwter *auth.JWTer) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		mdw.RateLimitPerIP(50, 100),
		mdw.MaxBodyBytes(4<<20),
		mdw.Timeout(10*time.Second),
		ginzap.RecoveryWithZap(l, true),
		mdw.AccessLog(l),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })

	admin := r.Group("/admin/v1", mdw.AuthJWT(jwter, domain.RoleAdmin))

	Reset()
	Register(&adminCustomerModule{db: db})
	MountAllAdmin(admin)

	return r
}
