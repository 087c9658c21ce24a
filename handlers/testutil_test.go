package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"restaurant-management-api/config"
	"restaurant-management-api/models"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// setupTestDB points the global DB at a fresh in-memory sqlite database.
// cache=shared keeps gorm's pooled connections on the same database; the
// name is derived from the test so databases never leak across tests.
func setupTestDB(t *testing.T) {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	config.DB = db
}

func seedSampleOrders(t *testing.T) []models.Order {
	t.Helper()
	orders := models.SampleOrders()
	require.NoError(t, config.DB.Create(&orders).Error)
	return orders
}

func seedSampleCatalog(t *testing.T) {
	t.Helper()
	menus := models.SampleMenus()
	dishes := models.SampleDishes()
	drinks := models.SampleDrinks()
	require.NoError(t, config.DB.Create(&menus).Error)
	require.NoError(t, config.DB.Create(&dishes).Error)
	require.NoError(t, config.DB.Create(&drinks).Error)
}

// perform runs a request against the router and records the response
func perform(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Buffer
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewBuffer(raw)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// authedRequest is perform with a Bearer token attached
func authedRequest(r *gin.Engine, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBuffer(nil))
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func newRouter(register func(r *gin.Engine)) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	register(r)
	return r
}
