package router

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"car-rental-backend/internal/domain"
	resp "car-rental-backend/internal/transport/http/response"
)

// adminCustomerModule 后台账号管理：检索、提权、删号
type adminCustomerModule struct {
	db *gorm.DB
}

func (m *adminCustomerModule) MountAdmin(g *gin.RouterGroup) {
	g.GET("/customers", m.search)
	g.POST("/customers/:id/promote", m.promote)
	g.DELETE("/customers/:id", m.remove)
}

// search 按邮箱/姓名模糊检索，offset/limit 翻页
func (m *adminCustomerModule) search(c *gin.Context) {
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	q := m.db.WithContext(c.Request.Context()).Model(&domain.Customer{})
	if kw := c.Query("q"); kw != "" {
		like := "%" + kw + "%"
		q = q.Where("email LIKE ? OR first_name LIKE ? OR last_name LIKE ?", like, like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		resp.Err(c, http.StatusInternalServerError, err)
		return
	}

	var list []domain.Customer
	if err := q.Order("customer_id DESC").Offset(offset).Limit(limit).Find(&list).Error; err != nil {
		resp.Err(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"total": total, "data": list})
}

// promote 把普通账号提为 admin
func (m *adminCustomerModule) promote(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	res := m.db.WithContext(c.Request.Context()).
		Model(&domain.Customer{}).
		Where("customer_id = ?", id).
		Update("role", domain.RoleAdmin)
	if res.Error != nil {
		resp.Err(c, http.StatusInternalServerError, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		resp.Message(c, http.StatusNotFound, "Customer not found")
		return
	}
	resp.Message(c, http.StatusOK, "Customer updated successfully")
}

func (m *adminCustomerModule) remove(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	res := m.db.WithContext(c.Request.Context()).
		Where("customer_id = ?", id).
		Delete(&domain.Customer{})
	if res.Error != nil {
		resp.Err(c, http.StatusInternalServerError, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		resp.Message(c, http.StatusNotFound, "Customer not found")
		return
	}
	c.Status(http.StatusNoContent)
}
