package domain

import "context"

// Role 账号角色，闭集：只有 admin / user 两种
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

func (r Role) Valid() bool { return r == RoleAdmin || r == RoleUser }

// In 判断角色是否在允许集合内
func (r Role) In(allowed ...Role) bool {
	for _, a := range allowed {
		if r == a {
			return true
		}
	}
	return false
}

// Customer 客户账号（列名/JSON 字段沿用既有表结构）
// 密码只存 bcrypt 摘要，验证码仅在待验证期间非空
type Customer struct {
	CustomerID       int     `gorm:"primaryKey;autoIncrement" json:"customerID"`
	FirstName        string  `gorm:"size:64;not null" json:"firstName"`
	LastName         string  `gorm:"size:64;not null" json:"lastName"`
	Email            string  `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Password         string  `gorm:"size:100;not null" json:"-"`
	PhoneNumber      string  `gorm:"size:20" json:"phoneNumber"`
	Address          string  `gorm:"size:255" json:"address"`
	Role             Role    `gorm:"size:16;not null;default:user" json:"role"`
	IsVerified       bool    `gorm:"not null;default:false" json:"isVerified"`
	VerificationCode *string `gorm:"size:6" json:"-"`

	// 关联（仅 Preload 时填充，列表接口不带）
	Bookings []Booking `gorm:"foreignKey:CustomerID" json:"bookings,omitempty"`
}

func (Customer) TableName() string { return "customers" }

// CustomerRepository 凭证存储。找不到记录时返回 (nil, nil)
type CustomerRepository interface {
	Create(ctx context.Context, c *Customer) error
	FindByID(ctx context.Context, id int) (*Customer, error)
	FindByEmail(ctx context.Context, email string) (*Customer, error)
	List(ctx context.Context) ([]Customer, error)
	// Update 按列部分更新，不校验存在性（由调用方先查再改）
	Update(ctx context.Context, id int, values map[string]any) error
	// MarkVerified 置 isVerified=true 并清空验证码
	MarkVerified(ctx context.Context, email string) error
	// Delete 硬删，返回受影响行数（0 表示目标不存在）
	Delete(ctx context.Context, id int) (int64, error)
}
