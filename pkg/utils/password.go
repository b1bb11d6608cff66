package utils

import "golang.org/x/crypto/bcrypt"

// bcrypt cost 固定 10，和存量摘要保持可比
const passwordCost = 10

func HashPassword(pw string) string {
	b, _ := bcrypt.GenerateFromPassword([]byte(pw), passwordCost)
	return string(b)
}

// CheckPassword 摘要非法同样返回 false，不向调用方抛错
func CheckPassword(pw, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(pw)) == nil
}
