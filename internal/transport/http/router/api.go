package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"car-rental-backend/internal/core/auth"
	"car-rental-backend/internal/core/cache"
	"car-rental-backend/internal/repo"
	"car-rental-backend/internal/service"
	"car-rental-backend/internal/transport/http/handler"
	mdw "car-rental-backend/internal/transport/http/middleware"
)

// Deps 引擎装配入参。Cache 可为 nil（未配置 redis 时直查库）
type Deps struct {
	Log      *zap.Logger
	DB       *gorm.DB
	JWTer    *auth.JWTer
	Cache    *cache.Cache
	Notifier service.Notifier
}

func NewAPIEngine(d Deps) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(16<<20),
		mdw.Timeout(10*time.Second),
		ginzap.RecoveryWithZap(d.Log, true),
		mdw.Metrics(),
		mdw.AccessLog(d.Log),
		cors.Default(),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 服务装配
	customerRepo := repo.NewCustomerRepo(d.DB)
	authSvc := service.NewAuthService(customerRepo, d.Notifier, d.Log)
	rentalSvc := service.NewRentalService(d.DB, d.Cache)
	authH := handler.NewAuthHandler(&handler.AuthDeps{Auth: authSvc, Rental: rentalSvc}, d.JWTer)

	// 模块注册后统一挂载（路由都在根路径，与既有客户端兼容）
	Reset()
	Register(&customerModule{h: authH, jwter: d.JWTer})
	Register(&carModule{db: d.DB, rental: rentalSvc, jwter: d.JWTer})
	Register(&locationModule{db: d.DB, rental: rentalSvc, jwter: d.JWTer})
	Register(&bookingModule{db: d.DB, rental: rentalSvc, jwter: d.JWTer})
	Register(&reservationModule{db: d.DB, rental: rentalSvc, jwter: d.JWTer})
	Register(&paymentModule{db: d.DB, rental: rentalSvc, jwter: d.JWTer})
	Register(&insuranceModule{db: d.DB, jwter: d.JWTer})
	Register(&maintenanceModule{db: d.DB, jwter: d.JWTer})

	root := r.Group("")
	MountAllAPI(root)

	return r
}
