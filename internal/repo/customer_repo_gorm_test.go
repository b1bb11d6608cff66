package repo

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

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Customer{}, &domain.Booking{}, &domain.Payment{}))
	return db
}

func seedCustomer(t *testing.T, r *CustomerRepo, email string) *domain.Customer {
	t.Helper()
	code := "123456"
	c := &domain.Customer{
		FirstName:        "Jane",
		LastName:         "Doe",
		Email:            email,
		Password:         "$2a$10$fakefakefakefakefakefakefakefakefakefakefakefakefake",
		Role:             domain.RoleUser,
		VerificationCode: &code,
	}
	require.NoError(t, r.Create(context.Background(), c))
	return c
}

func TestCustomerRepo_CreateAndFind(t *testing.T) {
	r := NewCustomerRepo(newTestDB(t))
	ctx := context.Background()

	c := seedCustomer(t, r, "jane@example.com")
	assert.NotZero(t, c.CustomerID)

	byID, err := r.FindByID(ctx, c.CustomerID)
	require.NoError(t, err)
	require.NotNil(t, byID)
	assert.Equal(t, "jane@example.com", byID.Email)

	byEmail, err := r.FindByEmail(ctx, "jane@example.com")
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, c.CustomerID, byEmail.CustomerID)
}

func TestCustomerRepo_NotFoundIsNilNil(t *testing.T) {
	r := NewCustomerRepo(newTestDB(t))
	ctx := context.Background()

	c, err := r.FindByID(ctx, 9999)
	require.NoError(t, err)
	assert.Nil(t, c)

	c, err = r.FindByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, c)
}

func TestCustomerRepo_DuplicateEmail(t *testing.T) {
	r := NewCustomerRepo(newTestDB(t))

	seedCustomer(t, r, "dup@example.com")
	err := r.Create(context.Background(), &domain.Customer{
		FirstName: "Other", LastName: "One",
		Email: "dup@example.com", Password: "x", Role: domain.RoleUser,
	})
	assert.Error(t, err)
}

func TestCustomerRepo_Update(t *testing.T) {
	r := NewCustomerRepo(newTestDB(t))
	ctx := context.Background()
	c := seedCustomer(t, r, "jane@example.com")

	err := r.Update(ctx, c.CustomerID, map[string]any{
		"first_name": "Janet",
		"role":       "admin",
	})
	require.NoError(t, err)

	got, _ := r.FindByID(ctx, c.CustomerID)
	assert.Equal(t, "Janet", got.FirstName)
	assert.Equal(t, domain.RoleAdmin, got.Role)
}

func TestCustomerRepo_MarkVerified(t *testing.T) {
	r := NewCustomerRepo(newTestDB(t))
	ctx := context.Background()
	c := seedCustomer(t, r, "jane@example.com")

	require.NoError(t, r.MarkVerified(ctx, "jane@example.com"))

	got, _ := r.FindByID(ctx, c.CustomerID)
	assert.True(t, got.IsVerified)
	assert.Nil(t, got.VerificationCode)
}

func TestCustomerRepo_Delete(t *testing.T) {
	r := NewCustomerRepo(newTestDB(t))
	ctx := context.Background()
	c := seedCustomer(t, r, "jane@example.com")

	n, err := r.Delete(ctx, c.CustomerID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	// 已删目标再删影响 0 行
	n, err = r.Delete(ctx, c.CustomerID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, n)
}

func TestCustomerRepo_List(t *testing.T) {
	r := NewCustomerRepo(newTestDB(t))
	ctx := context.Background()

	list, err := r.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	seedCustomer(t, r, "a@example.com")
	seedCustomer(t, r, "b@example.com")

	list, err = r.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "a@example.com", list[0].Email)
}
