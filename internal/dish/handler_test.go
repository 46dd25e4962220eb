package dish

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pos-backend/internal/models"
	"pos-backend/internal/testutil"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newApp(t *testing.T) *fiber.App {
	t.Helper()
	app := testutil.NewApp()
	app.Post("/api/dish", CreateHandler())
	app.Get("/api/dish", ListHandler())
	app.Put("/api/dish/:id", UpdateHandler())
	app.Delete("/api/dish/:id", DeleteHandler())
	return app
}

func seedCategory(t *testing.T, db *gorm.DB) models.Category {
	t.Helper()
	cat := models.Category{Name: "Mains", Image: "🍛"}
	require.NoError(t, db.Create(&cat).Error)
	return cat
}

func seedDish(t *testing.T, db *gorm.DB, catID uint, name string, price float64) models.Dish {
	t.Helper()
	d := models.Dish{
		Name:        name,
		Price:       price,
		Description: "test dish",
		Image:       "https://cdn.example.com/dish.png",
		CategoryID:  catID,
		Available:   true,
	}
	require.NoError(t, db.Create(&d).Error)
	return d
}

func TestCreateDishValidatesCategoryReference(t *testing.T) {
	db := testutil.SetupDB(t)
	app := newApp(t)

	body := `{"name":"Jollof Rice","price":2500,"description":"x","image":"y","category":42}`
	req := httptest.NewRequest(http.MethodPost, "/api/dish", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var count int64
	require.NoError(t, db.Model(&models.Dish{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestCreateDishDuplicateNameConflict(t *testing.T) {
	db := testutil.SetupDB(t)
	cat := seedCategory(t, db)
	seedDish(t, db, cat.ID, "Jollof Rice", 2500)
	app := newApp(t)

	body := fmt.Sprintf(`{"name":"Jollof Rice","price":3000,"description":"x","image":"y","category":%d}`, cat.ID)
	req := httptest.NewRequest(http.MethodPost, "/api/dish", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var count int64
	require.NoError(t, db.Model(&models.Dish{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestUpdateDishPartialMerge(t *testing.T) {
	db := testutil.SetupDB(t)
	cat := seedCategory(t, db)
	d := seedDish(t, db, cat.ID, "Jollof Rice", 2500)
	app := newApp(t)

	req := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/api/dish/%d", d.ID),
		strings.NewReader(`{"price":2800,"available":false}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var stored models.Dish
	require.NoError(t, db.First(&stored, d.ID).Error)
	assert.Equal(t, float64(2800), stored.Price)
	assert.False(t, stored.Available)
	// everything omitted from the payload is untouched
	assert.Equal(t, "Jollof Rice", stored.Name)
	assert.Equal(t, d.Description, stored.Description)
	assert.Equal(t, d.Image, stored.Image)
	assert.Equal(t, cat.ID, stored.CategoryID)
}

func TestListDishesSearchAndPagination(t *testing.T) {
	db := testutil.SetupDB(t)
	cat := seedCategory(t, db)
	seedDish(t, db, cat.ID, "Jollof Rice", 2500)
	seedDish(t, db, cat.ID, "Fried Rice", 2200)
	seedDish(t, db, cat.ID, "Chapman", 1200)
	app := newApp(t)

	// case-insensitive substring search
	req := httptest.NewRequest(http.MethodGet, "/api/dish?search=rice", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var listBody struct {
		Data []models.Dish `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&listBody))
	assert.Len(t, listBody.Data, 2)

	// pagination metadata only when requested
	req = httptest.NewRequest(http.MethodGet, "/api/dish?page=1&limit=2", nil)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var pagedBody struct {
		Data       []models.Dish `json:"data"`
		Pagination *Pagination   `json:"pagination"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&pagedBody))
	assert.Len(t, pagedBody.Data, 2)
	require.NotNil(t, pagedBody.Pagination)
	assert.Equal(t, int64(3), pagedBody.Pagination.Total)
	assert.Equal(t, 2, pagedBody.Pagination.Pages)
}

func TestListDishesJoinsCategory(t *testing.T) {
	db := testutil.SetupDB(t)
	cat := seedCategory(t, db)
	seedDish(t, db, cat.ID, "Jollof Rice", 2500)
	app := newApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/dish", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Data []models.Dish `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Data, 1)
	require.NotNil(t, body.Data[0].Category)
	assert.Equal(t, "Mains", body.Data[0].Category.Name)
}
