package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"car-rental-backend/internal/core/auth"
	"car-rental-backend/internal/domain"
	"car-rental-backend/internal/service"
	resp "car-rental-backend/internal/transport/http/response"
)

type AuthHandler struct {
	svc   *AuthDeps
	jwter *auth.JWTer
}

// AuthDeps 拆出来方便测试时只注入用到的部分
type AuthDeps struct {
	Auth   *service.AuthService
	Rental *service.RentalService
}

func NewAuthHandler(deps *AuthDeps, jwter *auth.JWTer) *AuthHandler {
	return &AuthHandler{svc: deps, jwter: jwter}
}

// publicUser 响应里的账号投影，密码哈希绝不出现在 body 里
type publicUser struct {
	UserID    int         `json:"user_id"`
	FirstName string      `json:"first_name"`
	LastName  string      `json:"last_name"`
	Email     string      `json:"email"`
	Role      domain.Role `json:"role"`
}

// Register POST /auth/register
// 邮箱重复等一切服务层错误统一 500 {error}，不在这层细分——既有契约
func (h *AuthHandler) Register(c *gin.Context) {
	var in service.RegisterInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Err(c, http.StatusInternalServerError, err)
		return
	}
	if err := h.svc.Auth.Register(c, in); err != nil {
		resp.Err(c, http.StatusInternalServerError, err)
		return
	}
	resp.Message(c, http.StatusCreated, "Customer added successfully")
}

// Verify POST /auth/verify
func (h *AuthHandler) Verify(c *gin.Context) {
	var in struct {
		Email string `json:"email"`
		Code  string `json:"verificationCode"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Err(c, http.StatusInternalServerError, err)
		return
	}
	switch err := h.svc.Auth.Verify(c, in.Email, in.Code); {
	case errors.Is(err, service.ErrNotFound):
		resp.Message(c, http.StatusNotFound, "Customer not found")
	case errors.Is(err, service.ErrInvalidCode):
		resp.Message(c, http.StatusBadRequest, "Invalid verification code")
	case err != nil:
		resp.Err(c, http.StatusInternalServerError, err)
	default:
		resp.Message(c, http.StatusOK, "Account verified successfully")
	}
}

// Login POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var in struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Err(c, http.StatusInternalServerError, err)
		return
	}
	cust, err := h.svc.Auth.Login(c, in.Email, in.Password)
	switch {
	case errors.Is(err, service.ErrNotFound):
		resp.Message(c, http.StatusNotFound, "Customer not found")
		return
	case errors.Is(err, service.ErrPasswordRequired):
		resp.Message(c, http.StatusBadRequest, "Password is required.")
		return
	case errors.Is(err, service.ErrInvalidCredentials):
		resp.Message(c, http.StatusUnauthorized, "Invalid credentials")
		return
	case err != nil:
		resp.Err(c, http.StatusInternalServerError, err)
		return
	}
	token, err := h.jwter.Issue(cust)
	if err != nil {
		resp.Err(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
		"user": publicUser{
			UserID:    cust.CustomerID,
			FirstName: cust.FirstName,
			LastName:  cust.LastName,
			Email:     cust.Email,
			Role:      cust.Role,
		},
	})
}

// List GET /customers
func (h *AuthHandler) List(c *gin.Context) {
	customers, err := h.svc.Auth.GetAll(c)
	if err != nil {
		resp.Err(c, http.StatusInternalServerError, err)
		return
	}
	if len(customers) == 0 {
		resp.Message(c, http.StatusNotFound, "No customers found")
		return
	}
	resp.Data(c, http.StatusOK, customers)
}

// GetByID GET /customer/:id
func (h *AuthHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	cust, err := h.svc.Auth.GetByID(c, id)
	if err != nil {
		resp.Err(c, http.StatusInternalServerError, err)
		return
	}
	if cust == nil {
		resp.Message(c, http.StatusNotFound, "Customer not found")
		return
	}
	resp.Data(c, http.StatusOK, cust)
}

// Update PUT /customer/:id
// 存在性预检在这层做，service 不重复查
func (h *AuthHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	existing, err := h.svc.Auth.GetByID(c, id)
	if err != nil {
		resp.Err(c, http.StatusInternalServerError, err)
		return
	}
	if existing == nil {
		resp.Message(c, http.StatusNotFound, "Customer not found")
		return
	}
	var in service.UpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Err(c, http.StatusInternalServerError, err)
		return
	}
	if err := h.svc.Auth.Update(c, id, in); err != nil {
		resp.Err(c, http.StatusInternalServerError, err)
		return
	}
	resp.Message(c, http.StatusOK, "Customer updated successfully")
}

// Delete DELETE /customer/:id
// 重复删除返回 404 而不是第二次成功
func (h *AuthHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	existing, err := h.svc.Auth.GetByID(c, id)
	if err != nil {
		resp.Err(c, http.StatusInternalServerError, err)
		return
	}
	if existing == nil {
		resp.Message(c, http.StatusNotFound, "Customer not found")
		return
	}
	if _, err := h.svc.Auth.Delete(c, id); err != nil {
		resp.Err(c, http.StatusInternalServerError, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListWithBookings GET /customers/bookings
func (h *AuthHandler) ListWithBookings(c *gin.Context) {
	customers, err := h.svc.Rental.CustomersWithBookings(c)
	if err != nil {
		resp.Err(c, http.StatusInternalServerError, err)
		return
	}
	if len(customers) == 0 {
		resp.Message(c, http.StatusNotFound, "No customers found")
		return
	}
	resp.Data(c, http.StatusOK, customers)
}

// GetWithBookings GET /customer/:id/bookings
func (h *AuthHandler) GetWithBookings(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	cust, err := h.svc.Rental.CustomerWithBookings(c, id)
	if err != nil {
		resp.Err(c, http.StatusInternalServerError, err)
		return
	}
	if cust == nil {
		resp.Message(c, http.StatusNotFound, "Customer not found")
		return
	}
	resp.Data(c, http.StatusOK, cust)
}

func parseID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		resp.Message(c, http.StatusBadRequest, "Invalid ID")
		return 0, false
	}
	return id, true
}
