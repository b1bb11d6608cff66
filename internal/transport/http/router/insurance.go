package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"car-rental-backend/internal/core/auth"
	"car-rental-backend/internal/domain"
	"car-rental-backend/internal/transport/http/crud"
	mdw "car-rental-backend/internal/transport/http/middleware"
)

// insuranceModule 保险单管理，全部仅 admin
type insuranceModule struct {
	db    *gorm.DB
	jwter *auth.JWTer
}

func (m *insuranceModule) MountAPI(g *gin.RouterGroup) {
	adminOnly := []gin.HandlerFunc{mdw.AuthJWT(m.jwter, domain.RoleAdmin)}

	crud.Mount(g, crud.Resource[domain.Insurance]{
		DB:       m.db,
		Name:     "Insurance",
		Plural:   "insurances",
		PKColumn: "insurance_id",
		BasePath: "/insurance",
		ListPath: "/insurances",
		Gates: crud.Gates{
			Create: adminOnly,
			List:   adminOnly,
			Get:    adminOnly,
			Update: adminOnly,
			Delete: adminOnly,
		},
	})
}
