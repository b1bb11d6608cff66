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

type reservationModule struct {
	db     *gorm.DB
	rental *service.RentalService
	jwter  *auth.JWTer
}

func (m *reservationModule) MountAPI(g *gin.RouterGroup) {
	userOnly := mdw.AuthJWT(m.jwter, domain.RoleUser)
	adminOnly := mdw.AuthJWT(m.jwter, domain.RoleAdmin)
	bothRoles := mdw.AuthJWT(m.jwter, domain.RoleAdmin, domain.RoleUser)

	crud.Mount(g, crud.Resource[domain.Reservation]{
		DB:       m.db,
		Name:     "Reservation",
		Plural:   "reservations",
		PKColumn: "reservation_id",
		BasePath: "/reservation",
		ListPath: "/reservations",
		Gates: crud.Gates{
			Create: []gin.HandlerFunc{userOnly},
			List:   []gin.HandlerFunc{adminOnly},
			Get:    []gin.HandlerFunc{adminOnly},
			Update: []gin.HandlerFunc{bothRoles},
			Delete: []gin.HandlerFunc{adminOnly},
		},
	})

	g.GET("/reservations/customer/:customerID", userOnly, func(c *gin.Context) {
		id, ok := paramID(c, "customerID")
		if !ok {
			return
		}
		rs, err := m.rental.ReservationsByCustomer(c, id)
		if err != nil {
			resp.Err(c, http.StatusInternalServerError, err)
			return
		}
		if len(rs) == 0 {
			resp.Message(c, http.StatusNotFound, "No reservations found")
			return
		}
		resp.Data(c, http.StatusOK, rs)
	})
}
