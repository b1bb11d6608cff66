package crud

import (
	"errors"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"

	resp "car-rental-backend/internal/transport/http/response"
)

// 八个资源模块里除 customer 外都长一个样：
// POST /<x>/register、GET /<xs>、GET|PUT|DELETE /<x>/:id。
// 在这里一次注册，省掉七份雷同的 handler。

// Gates 每个操作各自的前置中间件（角色门）
type Gates struct {
	Create []gin.HandlerFunc
	List   []gin.HandlerFunc
	Get    []gin.HandlerFunc
	Update []gin.HandlerFunc
	Delete []gin.HandlerFunc
}

type Resource[T any] struct {
	DB       *gorm.DB
	Name     string // 报文里的实体名，如 "Car" → "Car not found"
	Plural   string // 列表空时的 "No cars found"
	PKColumn string // 主键列名，如 "car_id"
	BasePath string // "/car"
	ListPath string // "/cars"
	Gates    Gates

	AllowCreate bool
	AllowList   bool
	AllowGet    bool
	AllowUpdate bool
	AllowDelete bool

	// OnChange 写路径成功后调用（缓存失效等）
	OnChange func(c *gin.Context)
}

// Mount 注册资源路由。Allow* 全 false 视为全放开
func Mount[T any](g *gin.RouterGroup, cfg Resource[T]) {
	if !cfg.AllowCreate && !cfg.AllowList && !cfg.AllowGet && !cfg.AllowUpdate && !cfg.AllowDelete {
		cfg.AllowCreate, cfg.AllowList, cfg.AllowGet, cfg.AllowUpdate, cfg.AllowDelete = true, true, true, true, true
	}

	changed := func(c *gin.Context) {
		if cfg.OnChange != nil {
			cfg.OnChange(c)
		}
	}

	cols := jsonColumns[T](cfg.PKColumn)

	if cfg.AllowCreate {
		g.POST(cfg.BasePath+"/register", append(cfg.Gates.Create, func(c *gin.Context) {
			m := new(T)
			if err := c.ShouldBindJSON(m); err != nil {
				// 畸形报文与库错误同级：未捕获异常 → 500 {error}
				resp.Err(c, http.StatusInternalServerError, err)
				return
			}
			if err := cfg.DB.WithContext(c).Create(m).Error; err != nil {
				resp.Err(c, http.StatusInternalServerError, err)
				return
			}
			changed(c)
			c.JSON(http.StatusCreated, gin.H{
				"message": cfg.Name + " added successfully",
				"data":    m,
			})
		})...)
	}

	if cfg.AllowList {
		g.GET(cfg.ListPath, append(cfg.Gates.List, func(c *gin.Context) {
			var items []T
			if err := cfg.DB.WithContext(c).Order(cfg.PKColumn).Find(&items).Error; err != nil {
				resp.Err(c, http.StatusInternalServerError, err)
				return
			}
			if len(items) == 0 {
				resp.Message(c, http.StatusNotFound, "No "+strings.ToLower(cfg.Plural)+" found")
				return
			}
			resp.Data(c, http.StatusOK, items)
		})...)
	}

	if cfg.AllowGet {
		g.GET(cfg.BasePath+"/:id", append(cfg.Gates.Get, func(c *gin.Context) {
			id, ok := parseID(c)
			if !ok {
				return
			}
			m := new(T)
			err := cfg.DB.WithContext(c).First(m, cfg.PKColumn+" = ?", id).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				resp.Message(c, http.StatusNotFound, cfg.Name+" not found")
				return
			}
			if err != nil {
				resp.Err(c, http.StatusInternalServerError, err)
				return
			}
			resp.Data(c, http.StatusOK, m)
		})...)
	}

	if cfg.AllowUpdate {
		g.PUT(cfg.BasePath+"/:id", append(cfg.Gates.Update, func(c *gin.Context) {
			id, ok := parseID(c)
			if !ok {
				return
			}
			// 先确认存在，404 优先于其他错误
			if !exists[T](c, cfg, id) {
				return
			}
			var body map[string]any
			if err := c.ShouldBindJSON(&body); err != nil {
				resp.Err(c, http.StatusInternalServerError, err)
				return
			}
			// 报文里有什么列就写什么列，零值（false、""、0）照写。
			// 结构体版 Updates 会跳过零值，这里必须走 map
			values := map[string]any{}
			for k, v := range body {
				if col, ok := cols[k]; ok {
					values[col] = v
				}
			}
			if len(values) > 0 {
				err := cfg.DB.WithContext(c).
					Model(new(T)).
					Where(cfg.PKColumn+" = ?", id).
					Updates(values).Error
				if err != nil {
					resp.Err(c, http.StatusInternalServerError, err)
					return
				}
			}
			changed(c)
			resp.Message(c, http.StatusOK, cfg.Name+" updated successfully")
		})...)
	}

	if cfg.AllowDelete {
		g.DELETE(cfg.BasePath+"/:id", append(cfg.Gates.Delete, func(c *gin.Context) {
			id, ok := parseID(c)
			if !ok {
				return
			}
			if !exists[T](c, cfg, id) {
				return
			}
			if err := cfg.DB.WithContext(c).Delete(new(T), cfg.PKColumn+" = ?", id).Error; err != nil {
				resp.Err(c, http.StatusInternalServerError, err)
				return
			}
			changed(c)
			c.Status(http.StatusNoContent)
		})...)
	}
}

// jsonColumns json 字段名到表列名的映射。主键不可改，
// 关联字段（切片）不是列，json:"-" 的字段不从外部进
func jsonColumns[T any](pk string) map[string]string {
	ns := schema.NamingStrategy{}
	t := reflect.TypeOf(*new(T))
	out := make(map[string]string, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Type.Kind() == reflect.Slice {
			continue
		}
		tag, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if tag == "" || tag == "-" {
			continue
		}
		col := ns.ColumnName("", f.Name)
		if col == pk {
			continue
		}
		out[tag] = col
	}
	return out
}

func exists[T any](c *gin.Context, cfg Resource[T], id int) bool {
	err := cfg.DB.WithContext(c).First(new(T), cfg.PKColumn+" = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp.Message(c, http.StatusNotFound, cfg.Name+" not found")
		return false
	}
	if err != nil {
		resp.Err(c, http.StatusInternalServerError, err)
		return false
	}
	return true
}

func parseID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		resp.Message(c, http.StatusBadRequest, "Invalid ID")
		return 0, false
	}
	return id, true
}
