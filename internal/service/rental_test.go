package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"car-rental-backend/internal/domain"
)

func newRentalService(t *testing.T) (*RentalService, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(domain.AllModels()...))
	return NewRentalService(db, nil), db
}

func seedRentalData(t *testing.T, db *gorm.DB) {
	t.Helper()
	require.NoError(t, db.Create(&domain.Location{LocationName: "Downtown", Address: "1 Main St"}).Error)
	require.NoError(t, db.Create(&domain.Car{CarModel: "Model 3", Year: "2022-01-01", RentalRate: "89.99", Availability: true, LocationID: 1}).Error)
	require.NoError(t, db.Create(&domain.Car{CarModel: "Civic", Year: "2020-01-01", RentalRate: "49.99", Availability: true, LocationID: 1}).Error)
	require.NoError(t, db.Create(&domain.Customer{FirstName: "Jane", LastName: "Doe", Email: "jane@example.com", Password: "x", Role: domain.RoleUser}).Error)
	require.NoError(t, db.Create(&domain.Booking{CarID: 1, CustomerID: 1, RentalStartDate: "2026-09-01", RentalEndDate: "2026-09-05", TotalAmount: "359.96"}).Error)
	require.NoError(t, db.Create(&domain.Payment{BookingID: 1, PaymentDate: "2026-09-01", Amount: "359.96", PaymentMethod: "card"}).Error)
	require.NoError(t, db.Create(&domain.Reservation{CustomerID: 1, CarID: 2, ReservationDate: "2026-08-30", PickupDate: "2026-09-10", ReturnDate: "2026-09-12"}).Error)
}

func TestCars_NoCache(t *testing.T) {
	s, db := newRentalService(t)
	seedRentalData(t, db)

	cars, err := s.Cars(context.Background())
	require.NoError(t, err)
	require.Len(t, cars, 2)
	assert.Equal(t, "Model 3", cars[0].CarModel)
}

func TestCarWithBookings(t *testing.T) {
	s, db := newRentalService(t)
	seedRentalData(t, db)

	car, err := s.CarWithBookings(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, car)
	require.Len(t, car.Bookings, 1)
	assert.Equal(t, "359.96", car.Bookings[0].TotalAmount)

	// 不存在回 (nil, nil)
	car, err = s.CarWithBookings(context.Background(), 99)
	require.NoError(t, err)
	assert.Nil(t, car)
}

func TestLocationWithCars(t *testing.T) {
	s, db := newRentalService(t)
	seedRentalData(t, db)

	loc, err := s.LocationWithCars(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, loc)
	assert.Len(t, loc.Cars, 2)
}

func TestCustomerWithBookings_NestedPayments(t *testing.T) {
	s, db := newRentalService(t)
	seedRentalData(t, db)

	c, err := s.CustomerWithBookings(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, c)
	require.Len(t, c.Bookings, 1)
	require.Len(t, c.Bookings[0].Payments, 1)
	assert.Equal(t, "card", c.Bookings[0].Payments[0].PaymentMethod)
}

func TestByCustomerAndByBooking(t *testing.T) {
	s, db := newRentalService(t)
	seedRentalData(t, db)
	ctx := context.Background()

	bs, err := s.BookingsByCustomer(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, bs, 1)

	rs, err := s.ReservationsByCustomer(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, rs, 1)

	ps, err := s.PaymentsByBooking(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, ps, 1)

	// 无数据时是空切片不是错误
	bs, err = s.BookingsByCustomer(ctx, 42)
	require.NoError(t, err)
	assert.Empty(t, bs)
}
