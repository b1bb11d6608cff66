package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"car-rental-backend/internal/core/auth"
	"car-rental-backend/internal/domain"
	"car-rental-backend/internal/transport/http/crud"
	mdw "car-rental-backend/internal/transport/http/middleware"
)

// maintenanceModule 维保记录管理，全部仅 admin
type maintenanceModule struct {
	db    *gorm.DB
	jwter *auth.JWTer
}

func (m *maintenanceModule) MountAPI(g *gin.RouterGroup) {
	adminOnly := []gin.HandlerFunc{mdw.AuthJWT(m.jwter, domain.RoleAdmin)}

	crud.Mount(g, crud.Resource[domain.Maintenance]{
		DB:       m.db,
		Name:     "Maintenance",
		Plural:   "maintenance records",
		PKColumn: "maintenance_id",
		BasePath: "/maintenance",
		ListPath: "/maintenances",
		Gates: crud.Gates{
			Create: adminOnly,
			List:   adminOnly,
			Get:    adminOnly,
			Update: adminOnly,
			Delete: adminOnly,
		},
	})
}
