package router

import (
	"github.com/gin-gonic/gin"

	"car-rental-backend/internal/core/auth"
	"car-rental-backend/internal/domain"
	"car-rental-backend/internal/transport/http/handler"
	mdw "car-rental-backend/internal/transport/http/middleware"
)

// customerModule 认证 + 客户资源。注册/验证/登录公开，
// 列表要求登录（任意角色），关联报表仅 admin
type customerModule struct {
	h     *handler.AuthHandler
	jwter *auth.JWTer
}

func (m *customerModule) Priority() int { return 10 } // 先于资源模块挂载

func (m *customerModule) MountAPI(g *gin.RouterGroup) {
	g.POST("/auth/register", m.h.Register)
	g.POST("/auth/verify", m.h.Verify)
	g.POST("/auth/login", m.h.Login)

	g.GET("/customers", mdw.AuthJWT(m.jwter), m.h.List)
	g.GET("/customers/bookings", mdw.AuthJWT(m.jwter, domain.RoleAdmin), m.h.ListWithBookings)
	g.GET("/customer/:id", m.h.GetByID)
	g.GET("/customer/:id/bookings", mdw.AuthJWT(m.jwter, domain.RoleAdmin), m.h.GetWithBookings)
	g.PUT("/customer/:id", m.h.Update)
	g.DELETE("/customer/:id", m.h.Delete)
}
