package service

import (
	"context"
	"errors"
	"strconv"
	"time"

	"gorm.io/gorm"

	"car-rental-backend/internal/core/cache"
	"car-rental-backend/internal/domain"
)

const (
	carsCacheKey     = "cars:all"
	locationCacheKey = "location:cars:"
	cacheTTL         = 60 * time.Second
)

// RentalService 关联查询与带缓存的读路径。
// 普通单表 CRUD 走 transport/http/crud，不经过这里
type RentalService struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewRentalService(db *gorm.DB, c *cache.Cache) *RentalService {
	return &RentalService{db: db, cache: c}
}

// Cars 车辆列表，60s 读穿缓存；未配置 redis 时直查
func (s *RentalService) Cars(ctx context.Context) ([]domain.Car, error) {
	if s.cache == nil {
		return s.carsFromDB(ctx)
	}
	out, err := cache.GetOrLoadJSON(s.cache, ctx, carsCacheKey, cacheTTL, func(ctx context.Context) (*[]domain.Car, error) {
		cars, e := s.carsFromDB(ctx)
		if e != nil {
			return nil, e
		}
		return &cars, nil
	})
	if err != nil {
		return nil, err
	}
	if out == nil {
		return nil, nil
	}
	return *out, nil
}

func (s *RentalService) carsFromDB(ctx context.Context) ([]domain.Car, error) {
	var cars []domain.Car
	err := s.db.WithContext(ctx).Order("car_id").Find(&cars).Error
	return cars, err
}

// InvalidateCars 车辆写路径后调用
func (s *RentalService) InvalidateCars(ctx context.Context) {
	if s.cache != nil {
		s.cache.Invalidate(ctx, carsCacheKey)
	}
}

// CarWithBookings 单车 + 名下订单
func (s *RentalService) CarWithBookings(ctx context.Context, carID int) (*domain.Car, error) {
	var car domain.Car
	err := s.db.WithContext(ctx).
		Preload("Bookings").
		First(&car, "car_id = ?", carID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &car, nil
}

// LocationWithCars 门店 + 在店车辆，读穿缓存
func (s *RentalService) LocationWithCars(ctx context.Context, locationID int) (*domain.Location, error) {
	load := func(ctx context.Context) (*domain.Location, error) {
		var loc domain.Location
		err := s.db.WithContext(ctx).
			Preload("Cars").
			First(&loc, "location_id = ?", locationID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		return &loc, nil
	}
	if s.cache == nil {
		return load(ctx)
	}
	key := locationCacheKey + strconv.Itoa(locationID)
	return cache.GetOrLoadJSON(s.cache, ctx, key, cacheTTL, load)
}

// CustomersWithBookings 全量客户 + 订单 + 每单支付
func (s *RentalService) CustomersWithBookings(ctx context.Context) ([]domain.Customer, error) {
	var cs []domain.Customer
	err := s.db.WithContext(ctx).
		Preload("Bookings.Payments").
		Order("customer_id").
		Find(&cs).Error
	return cs, err
}

func (s *RentalService) CustomerWithBookings(ctx context.Context, customerID int) (*domain.Customer, error) {
	var c domain.Customer
	err := s.db.WithContext(ctx).
		Preload("Bookings.Payments").
		First(&c, "customer_id = ?", customerID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *RentalService) BookingsByCustomer(ctx context.Context, customerID int) ([]domain.Booking, error) {
	var bs []domain.Booking
	err := s.db.WithContext(ctx).Find(&bs, "customer_id = ?", customerID).Error
	return bs, err
}

func (s *RentalService) ReservationsByCustomer(ctx context.Context, customerID int) ([]domain.Reservation, error) {
	var rs []domain.Reservation
	err := s.db.WithContext(ctx).Find(&rs, "customer_id = ?", customerID).Error
	return rs, err
}

func (s *RentalService) PaymentsByBooking(ctx context.Context, bookingID int) ([]domain.Payment, error) {
	var ps []domain.Payment
	err := s.db.WithContext(ctx).Find(&ps, "booking_id = ?", bookingID).Error
	return ps, err
}
