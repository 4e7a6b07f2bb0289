package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"bistro-api/config"
	"bistro-api/handlers"
	"bistro-api/middleware"
	"bistro-api/models"
	"bistro-api/routes"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// setupRouter wires a fresh in-memory database and the full route
// table for one test.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	config.App = &config.Config{
		Env:           "test",
		JWTSecret:     "test-secret",
		AdminMobile:   "9999999999",
		AdminPassword: "admin-pass",
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// the in-memory database only exists on a single connection
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.MenuItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Review{},
	))
	config.DB = db

	handlers.RegisterValidators()

	r := gin.New()
	routes.SetupRoutes(r)
	return r
}

func createUser(t *testing.T, name, mobile string, role models.UserRole) (*models.User, string) {
	t.Helper()
	user := &models.User{
		FullName:     name,
		MobileNumber: mobile,
		Password:     "not-a-real-hash",
		Role:         role,
	}
	require.NoError(t, config.DB.Create(user).Error)

	token, err := middleware.GenerateToken(user)
	require.NoError(t, err)
	return user, token
}

func seedMenuItem(t *testing.T, name string, price float64, available bool) *models.MenuItem {
	t.Helper()
	item := &models.MenuItem{
		Name:        name,
		Description: name + " description",
		Category:    "Fast Food",
		Type:        models.TypeVeg,
		Price:       price,
		IsAvailable: available,
	}
	require.NoError(t, config.DB.Create(item).Error)
	return item
}

func doRequest(t *testing.T, r *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.AddCookie(&http.Cookie{Name: middleware.TokenCookie, Value: token})
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Count   int             `json:"count"`
	Data    json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder, out interface{}) envelope {
	t.Helper()
	env := decodeEnvelope(t, w)
	require.NotNil(t, env.Data)
	require.NoError(t, json.Unmarshal(env.Data, out))
	return env
}
