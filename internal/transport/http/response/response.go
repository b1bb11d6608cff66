package response

import "github.com/gin-gonic/gin"

// 对外只有三种 body 形态，与既有客户端约定一致：
//   {"message": "..."}  校验失败 / 未找到 / 操作结果
//   {"error":   "..."}  未捕获异常，原样透出底层错误文本
//   {"data":    ...}    查询结果
// message / error 两个字段并存是历史契约，客户端两个都会处理。

func Message(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"message": msg})
}

func Err(c *gin.Context, status int, err error) {
	c.JSON(status, gin.H{"error": err.Error()})
}

func Data(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{"data": data})
}
