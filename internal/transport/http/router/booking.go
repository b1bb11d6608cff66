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

// bookingModule 订单：下单是 user，全量列表/删除是 admin，
// 查单与改单两种角色都行
type bookingModule struct {
	db     *gorm.DB
	rental *service.RentalService
	jwter  *auth.JWTer
}

func (m *bookingModule) MountAPI(g *gin.RouterGroup) {
	userOnly := mdw.AuthJWT(m.jwter, domain.RoleUser)
	adminOnly := mdw.AuthJWT(m.jwter, domain.RoleAdmin)
	bothRoles := mdw.AuthJWT(m.jwter, domain.RoleAdmin, domain.RoleUser)

	crud.Mount(g, crud.Resource[domain.Booking]{
		DB:       m.db,
		Name:     "Booking",
		Plural:   "bookings",
		PKColumn: "booking_id",
		BasePath: "/booking",
		ListPath: "/bookings",
		Gates: crud.Gates{
			Create: []gin.HandlerFunc{userOnly},
			List:   []gin.HandlerFunc{adminOnly},
			Get:    []gin.HandlerFunc{bothRoles},
			Update: []gin.HandlerFunc{bothRoles},
			Delete: []gin.HandlerFunc{adminOnly},
		},
	})

	g.GET("/bookings/customer/:customerID", userOnly, func(c *gin.Context) {
		id, ok := paramID(c, "customerID")
		if !ok {
			return
		}
		bs, err := m.rental.BookingsByCustomer(c, id)
		if err != nil {
			resp.Err(c, http.StatusInternalServerError, err)
			return
		}
		if len(bs) == 0 {
			resp.Message(c, http.StatusNotFound, "No bookings found")
			return
		}
		resp.Data(c, http.StatusOK, bs)
	})
}
