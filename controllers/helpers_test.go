package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/south-indian-kitchen/backend/database"
	"github.com/south-indian-kitchen/backend/models"
	"github.com/south-indian-kitchen/backend/router"
	"github.com/south-indian-kitchen/backend/storage"
	"github.com/south-indian-kitchen/backend/utils"
)

// setupApp wires a full router against a fresh seeded in-memory database.
// External call delays are zeroed so checkout runs instantly.
func setupApp(t *testing.T) (*gin.Engine, *gorm.DB, *storage.CartStore) {
	t.Helper()
	utils.InitLogger()
	gin.SetMode(gin.TestMode)
	t.Setenv("PAYMENT_DELAY_MS", "0")
	t.Setenv("ORDER_DELAY_MS", "0")

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Dish{}, &models.Order{}, &models.OrderItem{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	if err := database.Seed(db); err != nil {
		t.Fatalf("failed to seed: %v", err)
	}

	store := storage.NewCartStore()
	return router.SetupRouter(db, store), db, store
}

func doJSON(t *testing.T, r *gin.Engine, method, url string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		assert.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func parseData(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp struct {
		Status  bool            `json:"status"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	var data map[string]interface{}
	if len(resp.Data) > 0 {
		assert.NoError(t, json.Unmarshal(resp.Data, &data))
	}
	return data
}

func parseDataList(t *testing.T, w *httptest.ResponseRecorder) []interface{} {
	t.Helper()
	var resp struct {
		Data []interface{} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Data
}

func loginToken(t *testing.T, r *gin.Engine, email string) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/login", gin.H{"email": email, "password": "ignored"}, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	data := parseData(t, w)
	token, _ := data["token"].(string)
	assert.NotEmpty(t, token)
	return token
}

func authHeader(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}
