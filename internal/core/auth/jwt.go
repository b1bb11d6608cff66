package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"car-rental-backend/internal/domain"
)

// Claims 会话令牌载荷：客户 id、姓名、角色。服务端不落库
type Claims struct {
	UserID    int         `json:"user_id"`
	FirstName string      `json:"first_name"`
	LastName  string      `json:"last_name"`
	Role      domain.Role `json:"role"`
	jwt.RegisteredClaims
}

type JWTer struct {
	Secret []byte
	Issuer string
	TTL    time.Duration // 固定 3 天，见配置默认值
}

func (j *JWTer) Issue(c *domain.Customer) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:    c.CustomerID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Role:      c.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(c.CustomerID),
			Issuer:    j.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.TTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.Secret)
}

// Parse 校验签名与过期时间；任何失败都不返回部分载荷
func (j *JWTer) Parse(tokenStr string) (*Claims, error) {
	t, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected alg")
		}
		return j.Secret, nil
	}, jwt.WithIssuer(j.Issuer), jwt.WithLeeway(60*time.Second))

	if err != nil {
		return nil, err
	}
	if c, ok := t.Claims.(*Claims); ok && t.Valid {
		return c, nil
	}
	return nil, errors.New("invalid token")
}
