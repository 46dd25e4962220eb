package inventory

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

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
	app.Get("/api/inventory", ListHandler())
	app.Post("/api/inventory", CreateHandler())
	app.Put("/api/inventory/:id", UpdateHandler())
	app.Delete("/api/inventory/:id", DeleteHandler())
	return app
}

func seedItem(t *testing.T, db *gorm.DB, name, category string) models.InventoryItem {
	t.Helper()
	item := models.InventoryItem{
		Name:         name,
		Category:     category,
		CurrentStock: 10,
		MinStock:     2,
		Unit:         "kg",
		LastUpdated:  time.Now().Add(-time.Hour),
	}
	require.NoError(t, db.Create(&item).Error)
	return item
}

func TestListInventoryFilters(t *testing.T) {
	db := testutil.SetupDB(t)
	seedItem(t, db, "Basmati Rice", "Grains")
	seedItem(t, db, "Tomatoes", "Produce")
	seedItem(t, db, "Rice Flour", "Grains")
	app := newApp(t)

	get := func(path string) []models.InventoryItem {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil), -1)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var body struct {
			Data []models.InventoryItem `json:"data"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		return body.Data
	}

	assert.Len(t, get("/api/inventory"), 3)
	assert.Len(t, get("/api/inventory?search=RICE"), 2)
	assert.Len(t, get("/api/inventory?category=Grains"), 2)
	// "All" disables the category filter
	assert.Len(t, get("/api/inventory?category=All"), 3)
	assert.Len(t, get("/api/inventory?search=rice&category=Produce"), 0)
}

func TestCreateInventoryRequiresFields(t *testing.T) {
	testutil.SetupDB(t)
	app := newApp(t)

	req := httptest.NewRequest(http.MethodPost, "/api/inventory",
		strings.NewReader(`{"name":"Rice","currentStock":5}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUpdateInventoryPartialMergeBumpsTimestamp(t *testing.T) {
	db := testutil.SetupDB(t)
	item := seedItem(t, db, "Basmati Rice", "Grains")
	app := newApp(t)

	req := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/api/inventory/%d", item.ID),
		strings.NewReader(`{"currentStock":4}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var stored models.InventoryItem
	require.NoError(t, db.First(&stored, item.ID).Error)
	assert.Equal(t, float64(4), stored.CurrentStock)
	assert.Equal(t, "Basmati Rice", stored.Name)
	assert.Equal(t, float64(2), stored.MinStock)
	assert.True(t, stored.LastUpdated.After(item.LastUpdated))
}
