package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPassword(t *testing.T) {
	h := HashPassword("s3cret")

	assert.NotEqual(t, "s3cret", h)
	assert.True(t, strings.HasPrefix(h, "$2a$10$"), "cost 应为 10: %s", h)

	// 同一明文两次哈希盐不同，摘要必然不同
	assert.NotEqual(t, h, HashPassword("s3cret"))
}

func TestCheckPassword(t *testing.T) {
	h := HashPassword("s3cret")

	assert.True(t, CheckPassword("s3cret", h))
	assert.False(t, CheckPassword("wrong", h))
	assert.False(t, CheckPassword("", h))
}

func TestCheckPassword_MalformedDigest(t *testing.T) {
	// 摘要非法时不 panic，按校验失败处理
	assert.False(t, CheckPassword("s3cret", "plaintext-not-a-digest"))
	assert.False(t, CheckPassword("s3cret", ""))
}
