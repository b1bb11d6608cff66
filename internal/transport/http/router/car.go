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

// carModule 车辆：浏览公开，增删改仅 admin。
// 列表走 redis 读穿缓存，写路径失效
type carModule struct {
	db     *gorm.DB
	rental *service.RentalService
	jwter  *auth.JWTer
}

func (m *carModule) MountAPI(g *gin.RouterGroup) {
	adminOnly := mdw.AuthJWT(m.jwter, domain.RoleAdmin)

	crud.Mount(g, crud.Resource[domain.Car]{
		DB:       m.db,
		Name:     "Car",
		Plural:   "cars",
		PKColumn: "car_id",
		BasePath: "/car",
		ListPath: "/cars",
		Gates: crud.Gates{
			Create: []gin.HandlerFunc{adminOnly},
			Update: []gin.HandlerFunc{adminOnly},
			Delete: []gin.HandlerFunc{adminOnly},
		},
		AllowCreate: true,
		AllowGet:    true,
		AllowUpdate: true,
		AllowDelete: true,
		// 列表单独挂（带缓存），这里不开 AllowList
		OnChange: func(c *gin.Context) { m.rental.InvalidateCars(c) },
	})

	g.GET("/cars", func(c *gin.Context) {
		cars, err := m.rental.Cars(c)
		if err != nil {
			resp.Err(c, http.StatusInternalServerError, err)
			return
		}
		if len(cars) == 0 {
			resp.Message(c, http.StatusNotFound, "No cars found")
			return
		}
		resp.Data(c, http.StatusOK, cars)
	})

	g.GET("/car/:id/bookings", adminOnly, func(c *gin.Context) {
		id, ok := paramID(c, "id")
		if !ok {
			return
		}
		car, err := m.rental.CarWithBookings(c, id)
		if err != nil {
			resp.Err(c, http.StatusInternalServerError, err)
			return
		}
		if car == nil {
			resp.Message(c, http.StatusNotFound, "Car not found")
			return
		}
		resp.Data(c, http.StatusOK, car)
	})
}
