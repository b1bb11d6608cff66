package router

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	resp "car-rental-backend/internal/transport/http/response"
)

// paramID 路径参数转正整数，失败直接写 400
func paramID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		resp.Message(c, http.StatusBadRequest, "Invalid ID")
		return 0, false
	}
	return id, true
}
