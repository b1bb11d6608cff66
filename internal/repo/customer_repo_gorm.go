package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"car-rental-backend/internal/domain"
)

type CustomerRepo struct{ db *gorm.DB }

func NewCustomerRepo(db *gorm.DB) *CustomerRepo { return &CustomerRepo{db: db} }

func (r *CustomerRepo) Create(ctx context.Context, c *domain.Customer) error {
	// 唯一约束冲突原样向上抛，由调用方决定怎么映射
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CustomerRepo) FindByID(ctx context.Context, id int) (*domain.Customer, error) {
	var c domain.Customer
	err := r.db.WithContext(ctx).First(&c, "customer_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CustomerRepo) FindByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	var c domain.Customer
	err := r.db.WithContext(ctx).First(&c, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CustomerRepo) List(ctx context.Context) ([]domain.Customer, error) {
	var cs []domain.Customer
	err := r.db.WithContext(ctx).Order("customer_id").Find(&cs).Error
	return cs, err
}

func (r *CustomerRepo) Update(ctx context.Context, id int, values map[string]any) error {
	return r.db.WithContext(ctx).
		Model(&domain.Customer{}).
		Where("customer_id = ?", id).
		Updates(values).Error
}

func (r *CustomerRepo) MarkVerified(ctx context.Context, email string) error {
	return r.db.WithContext(ctx).
		Model(&domain.Customer{}).
		Where("email = ?", email).
		Updates(map[string]any{"is_verified": true, "verification_code": nil}).Error
}

func (r *CustomerRepo) Delete(ctx context.Context, id int) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&domain.Customer{}, "customer_id = ?", id)
	return res.RowsAffected, res.Error
}
