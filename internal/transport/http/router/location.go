package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"car-rental-backend/internal/core/auth"
	"car-rental-backend/internal/domain"
	"car-rental-backend/internal/service"
	"car-rental-backend/internal/transport/http/crud"
	mdw "car-rental-backend/internal/transport/http/middleware"
	resp "car-rental-backend/internal/transport/http/response"
)

// locationModule 门店：读公开，写仅 admin
type locationModule struct {
	db     *gorm.DB
	rental *service.RentalService
	jwter  *auth.JWTer
}

func (m *locationModule) MountAPI(g *gin.RouterGroup) {
	adminOnly := mdw.AuthJWT(m.jwter, domain.RoleAdmin)

	crud.Mount(g, crud.Resource[domain.Location]{
		DB:       m.db,
		Name:     "Location",
		Plural:   "locations",
		PKColumn: "location_id",
		BasePath: "/location",
		ListPath: "/locations",
		Gates: crud.Gates{
			Create: []gin.HandlerFunc{adminOnly},
			Update: []gin.HandlerFunc{adminOnly},
			Delete: []gin.HandlerFunc{adminOnly},
		},
	})

	g.GET("/location/:id/cars", func(c *gin.Context) {
		id, ok := paramID(c, "id")
		if !ok {
			return
		}
		loc, err := m.rental.LocationWithCars(c, id)
		if err != nil {
			resp.Err(c, http.StatusInternalServerError, err)
			return
		}
		if loc == nil {
			resp.Message(c, http.StatusNotFound, "Location not found")
			return
		}
		resp.Data(c, http.StatusOK, loc)
	})
}
