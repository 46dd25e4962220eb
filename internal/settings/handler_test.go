package settings

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pos-backend/internal/models"
	"pos-backend/internal/testutil"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp(t *testing.T) *fiber.App {
	t.Helper()
	app := testutil.NewApp()
	app.Get("/api/settings", GetHandler())
	app.Put("/api/settings", UpdateHandler())
	return app
}

func TestSettingsLazilyCreatedWithDefaults(t *testing.T) {
	db := testutil.SetupDB(t)
	app := newApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/settings", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Data models.Settings `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Restaurant Name", body.Data.BusinessName)
	assert.Equal(t, 7.5, body.Data.VATRate)

	// the singleton was persisted, not just rendered
	var count int64
	require.NoError(t, db.Model(&models.Settings{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	// a second read does not create another row
	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/settings", nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, db.Model(&models.Settings{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestUpdateSettingsStrictMerge(t *testing.T) {
	db := testutil.SetupDB(t)
	app := newApp(t)

	req := httptest.NewRequest(http.MethodPut, "/api/settings",
		strings.NewReader(`{"businessName":"Mama Put","vatRate":10}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var stored models.Settings
	require.NoError(t, db.First(&stored).Error)
	assert.Equal(t, "Mama Put", stored.BusinessName)
	assert.Equal(t, float64(10), stored.VATRate)
	// defaults not named in the payload survive
	assert.Equal(t, "Epson TM-T88V", stored.ReceiptPrinter)
	assert.True(t, stored.PrintCustomerReceipt)
}

func TestUpdateSettingsRejectsBadVATRate(t *testing.T) {
	testutil.SetupDB(t)
	app := newApp(t)

	req := httptest.NewRequest(http.MethodPut, "/api/settings",
		strings.NewReader(`{"vatRate":150}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
