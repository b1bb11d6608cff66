package service

import (
	"context"
	"crypto/rand"
	"errors"
	"math/big"
	"strconv"

	"go.uber.org/zap"

	"car-rental-backend/internal/domain"
	"car-rental-backend/pkg/utils"
)

var (
	ErrNotFound           = errors.New("customer not found")
	ErrInvalidCode        = errors.New("invalid verification code")
	ErrPasswordRequired   = errors.New("password is required")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Notifier 验证码通知，尽力而为：发送失败记日志吞掉，不影响主流程
type Notifier interface {
	SendVerificationCode(email, firstName, code string) error
	SendVerified(email, firstName string) error
}

type AuthService struct {
	repo     domain.CustomerRepository
	notifier Notifier
	log      *zap.Logger
}

func NewAuthService(repo domain.CustomerRepository, notifier Notifier, log *zap.Logger) *AuthService {
	return &AuthService{repo: repo, notifier: notifier, log: log}
}

type RegisterInput struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
	Role        string `json:"role"`
}

// Register 注册：密码入库前哈希，生成 6 位验证码，isVerified=false。
// 邮箱重复不预检，唯一约束冲突原样抛给调用方
func (s *AuthService) Register(ctx context.Context, in RegisterInput) error {
	role := domain.Role(in.Role)
	if !role.Valid() {
		role = domain.RoleUser
	}
	code := newVerificationCode()
	c := &domain.Customer{
		FirstName:        in.FirstName,
		LastName:         in.LastName,
		Email:            in.Email,
		Password:         utils.HashPassword(in.Password),
		PhoneNumber:      in.PhoneNumber,
		Address:          in.Address,
		Role:             role,
		IsVerified:       false,
		VerificationCode: &code,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return err
	}
	if err := s.notifier.SendVerificationCode(c.Email, c.FirstName, code); err != nil {
		s.log.Warn("send verification code failed", zap.String("email", c.Email), zap.Error(err))
	}
	return nil
}

// Verify 精确匹配验证码；命中则置 isVerified=true 并清码
func (s *AuthService) Verify(ctx context.Context, email, code string) error {
	c, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if c == nil {
		return ErrNotFound
	}
	if c.VerificationCode == nil || *c.VerificationCode != code {
		return ErrInvalidCode
	}
	if err := s.repo.MarkVerified(ctx, email); err != nil {
		return err
	}
	if err := s.notifier.SendVerified(c.Email, c.FirstName); err != nil {
		s.log.Warn("send verified mail failed", zap.String("email", c.Email), zap.Error(err))
	}
	return nil
}

// Login 返回完整账号记录（含哈希），调用方负责不把哈希透给客户端。
// 注意：未验证的账号也允许登录，验证不是登录前置条件
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.Customer, error) {
	c, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrNotFound
	}
	if password == "" {
		return nil, ErrPasswordRequired
	}
	if !utils.CheckPassword(password, c.Password) {
		return nil, ErrInvalidCredentials
	}
	return c, nil
}

func (s *AuthService) GetAll(ctx context.Context) ([]domain.Customer, error) {
	return s.repo.List(ctx)
}

func (s *AuthService) GetByID(ctx context.Context, id int) (*domain.Customer, error) {
	return s.repo.FindByID(ctx, id)
}

type UpdateInput struct {
	FirstName   *string `json:"firstName"`
	LastName    *string `json:"lastName"`
	Email       *string `json:"email"`
	Password    *string `json:"password"`
	PhoneNumber *string `json:"phoneNumber"`
	Address     *string `json:"address"`
	Role        *string `json:"role"`
}

// Update 部分更新，不做存在性校验（调用方先查出 404）。
// 传了密码就重新哈希，明文不落库
func (s *AuthService) Update(ctx context.Context, id int, in UpdateInput) error {
	values := map[string]any{}
	if in.FirstName != nil {
		values["first_name"] = *in.FirstName
	}
	if in.LastName != nil {
		values["last_name"] = *in.LastName
	}
	if in.Email != nil {
		values["email"] = *in.Email
	}
	if in.Password != nil {
		values["password"] = utils.HashPassword(*in.Password)
	}
	if in.PhoneNumber != nil {
		values["phone_number"] = *in.PhoneNumber
	}
	if in.Address != nil {
		values["address"] = *in.Address
	}
	if in.Role != nil {
		role := domain.Role(*in.Role)
		if !role.Valid() {
			return errors.New("invalid role")
		}
		values["role"] = *in.Role
	}
	if len(values) == 0 {
		return nil
	}
	return s.repo.Update(ctx, id, values)
}

// Delete 返回是否真的删了（false = 目标不存在）
func (s *AuthService) Delete(ctx context.Context, id int) (bool, error) {
	n, err := s.repo.Delete(ctx, id)
	return n > 0, err
}

// newVerificationCode [100000, 999999] 的随机 6 位数字
func newVerificationCode() string {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		// crypto/rand 不可用基本等于机器坏了
		panic(err)
	}
	return strconv.FormatInt(n.Int64()+100000, 10)
}
