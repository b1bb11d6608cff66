package crud

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"car-rental-backend/internal/domain"
)

func newCarRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Car{}, &domain.Booking{}, &domain.Payment{}))

	r := gin.New()
	Mount(r.Group(""), Resource[domain.Car]{
		DB:       db,
		Name:     "Car",
		Plural:   "cars",
		PKColumn: "car_id",
		BasePath: "/car",
		ListPath: "/cars",
	})
	return r, db
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

const carBody = `{"carModel":"Model 3","year":"2022-01-01","color":"white","rentalRate":"89.99","availability":true,"locationID":1}`

func TestCreate(t *testing.T) {
	r, _ := newCarRouter(t)

	w := do(r, http.MethodPost, "/car/register", carBody)
	assert.Equal(t, http.StatusCreated, w.Code)

	var got struct {
		Message string     `json:"message"`
		Data    domain.Car `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Car added successfully", got.Message)
	assert.Equal(t, 1, got.Data.CarID)
	assert.Equal(t, "Model 3", got.Data.CarModel)
}

func TestCreate_MalformedBody(t *testing.T) {
	r, _ := newCarRouter(t)

	w := do(r, http.MethodPost, "/car/register", `{"carModel":`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), `"error"`)
}

func TestList_EmptyIs404(t *testing.T) {
	r, _ := newCarRouter(t)

	w := do(r, http.MethodGet, "/cars", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"No cars found"}`, w.Body.String())
}

func TestListAndGet(t *testing.T) {
	r, _ := newCarRouter(t)
	require.Equal(t, http.StatusCreated, do(r, http.MethodPost, "/car/register", carBody).Code)

	w := do(r, http.MethodGet, "/cars", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"carModel":"Model 3"`)

	w = do(r, http.MethodGet, "/car/1", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"carID":1`)
}

func TestGet_InvalidID(t *testing.T) {
	r, _ := newCarRouter(t)

	for _, path := range []string{"/car/abc", "/car/0", "/car/-3"} {
		w := do(r, http.MethodGet, path, "")
		assert.Equal(t, http.StatusBadRequest, w.Code, path)
		assert.JSONEq(t, `{"message":"Invalid ID"}`, w.Body.String(), path)
	}
}

func TestGet_NotFound(t *testing.T) {
	r, _ := newCarRouter(t)

	w := do(r, http.MethodGet, "/car/999", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Car not found"}`, w.Body.String())
}

func TestUpdate(t *testing.T) {
	r, db := newCarRouter(t)
	require.Equal(t, http.StatusCreated, do(r, http.MethodPost, "/car/register", carBody).Code)

	w := do(r, http.MethodPut, "/car/1", `{"color":"black"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Car updated successfully"}`, w.Body.String())

	var c domain.Car
	require.NoError(t, db.First(&c, "car_id = ?", 1).Error)
	assert.Equal(t, "black", c.Color)
	// 没传的列保持原值
	assert.Equal(t, "Model 3", c.CarModel)
}

// 显式传的零值（false、空串、0）也必须落库
func TestUpdate_ZeroValuesPersist(t *testing.T) {
	r, db := newCarRouter(t)
	require.Equal(t, http.StatusCreated, do(r, http.MethodPost, "/car/register", carBody).Code)

	w := do(r, http.MethodPut, "/car/1", `{"availability":false,"color":"","locationID":0}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Car updated successfully"}`, w.Body.String())

	var c domain.Car
	require.NoError(t, db.First(&c, "car_id = ?", 1).Error)
	assert.False(t, c.Availability)
	assert.Empty(t, c.Color)
	assert.Zero(t, c.LocationID)
	// 没传的列不动
	assert.Equal(t, "Model 3", c.CarModel)
}

// body 里带回来的主键既不改主键也不掺进 WHERE
func TestUpdate_IgnoresEchoedPrimaryKey(t *testing.T) {
	r, db := newCarRouter(t)
	require.Equal(t, http.StatusCreated, do(r, http.MethodPost, "/car/register", carBody).Code)

	w := do(r, http.MethodPut, "/car/1", `{"carID":42,"availability":false}`)
	assert.Equal(t, http.StatusOK, w.Code)

	var c domain.Car
	require.NoError(t, db.First(&c, "car_id = ?", 1).Error)
	assert.False(t, c.Availability)

	var n int64
	require.NoError(t, db.Model(&domain.Car{}).Where("car_id = ?", 42).Count(&n).Error)
	assert.Zero(t, n)
}

// 不在实体上的字段直接丢弃，不报错也不落库
func TestUpdate_UnknownFieldsDropped(t *testing.T) {
	r, db := newCarRouter(t)
	require.Equal(t, http.StatusCreated, do(r, http.MethodPost, "/car/register", carBody).Code)

	w := do(r, http.MethodPut, "/car/1", `{"nonsense":"x","color":"red"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	var c domain.Car
	require.NoError(t, db.First(&c, "car_id = ?", 1).Error)
	assert.Equal(t, "red", c.Color)
}

func TestUpdate_NotFound(t *testing.T) {
	r, _ := newCarRouter(t)

	w := do(r, http.MethodPut, "/car/5", `{"color":"black"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Car not found"}`, w.Body.String())
}

func TestDelete(t *testing.T) {
	r, _ := newCarRouter(t)
	require.Equal(t, http.StatusCreated, do(r, http.MethodPost, "/car/register", carBody).Code)

	w := do(r, http.MethodDelete, "/car/1", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	// 重复删除走 404，不会第二次成功
	w = do(r, http.MethodDelete, "/car/1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Car not found"}`, w.Body.String())
}

func TestOnChangeFiresOnWritesOnly(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Car{}, &domain.Booking{}, &domain.Payment{}))

	var fired int
	r := gin.New()
	Mount(r.Group(""), Resource[domain.Car]{
		DB:       db,
		Name:     "Car",
		Plural:   "cars",
		PKColumn: "car_id",
		BasePath: "/car",
		ListPath: "/cars",
		OnChange: func(*gin.Context) { fired++ },
	})

	require.Equal(t, http.StatusCreated, do(r, http.MethodPost, "/car/register", carBody).Code)
	require.Equal(t, http.StatusOK, do(r, http.MethodGet, "/cars", "").Code)
	require.Equal(t, http.StatusOK, do(r, http.MethodPut, "/car/1", `{"color":"red"}`).Code)
	require.Equal(t, http.StatusNoContent, do(r, http.MethodDelete, "/car/1", "").Code)

	assert.Equal(t, 3, fired)
}
