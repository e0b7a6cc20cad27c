package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"justeat-backend/configs"
	"justeat-backend/services"
)

func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, configs.SetupDatabase(db))

	cfg := &configs.Config{
		JWTSecret:    "test-secret",
		JWTTTL:       time.Hour,
		MenuCacheTTL: time.Minute,
	}
	r := gin.New()
	RegisterRoutes(r, db, cfg, services.NopNotifier{}, nil)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var out map[string]any
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	}
	return w, out
}

func registerAndLogin(t *testing.T, r *gin.Engine, email, role string) string {
	t.Helper()
	w, _ := doJSON(t, r, http.MethodPost, "/auth/register", "", gin.H{
		"email": email, "password": "secret123",
		"firstName": "Test", "lastName": "User", "role": role,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w, out := doJSON(t, r, http.MethodPost, "/auth/login", "", gin.H{
		"email": email, "password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	data := out["data"].(map[string]any)
	return data["token"].(string)
}

func TestCheckoutFlowOverHTTP(t *testing.T) {
	r := newTestServer(t)

	ownerTok := registerAndLogin(t, r, "owner@test.local", "owner")
	custTok := registerAndLogin(t, r, "cust@test.local", "customer")

	// owner sets up a restaurant and a dish
	w, out := doJSON(t, r, http.MethodPost, "/partner/restaurants", ownerTok, gin.H{
		"name": "Pizza Palace", "cuisineType": "Italian",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	restID := uint(out["data"].(map[string]any)["ID"].(float64))

	w, out = doJSON(t, r, http.MethodPost, fmt.Sprintf("/partner/restaurants/%d/menu", restID), ownerTok, gin.H{
		"name": "Margherita", "price": 1099, "category": "Pizza",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	itemID := uint(out["data"].(map[string]any)["ID"].(float64))

	// customer fills the cart and checks out
	w, _ = doJSON(t, r, http.MethodPost, "/cart/items", custTok, gin.H{"menuItemId": itemID, "qty": 2})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w, out = doJSON(t, r, http.MethodPost, "/orders", custTok, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	orders := out["data"].(map[string]any)["orders"].([]any)
	require.Len(t, orders, 1)
	placed := orders[0].(map[string]any)
	assert.Equal(t, float64(2*1099), placed["total"])
	orderID := uint(placed["id"].(float64))

	// cart is empty afterwards
	w, out = doJSON(t, r, http.MethodGet, "/cart", custTok, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, out["data"].(map[string]any)["items"])

	// checkout with an empty cart is rejected
	w, _ = doJSON(t, r, http.MethodPost, "/orders", custTok, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// owner advances the order; a skip is rejected
	w, _ = doJSON(t, r, http.MethodPatch, fmt.Sprintf("/partner/orders/%d/status", orderID), ownerTok, gin.H{"status": "preparing"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = doJSON(t, r, http.MethodPatch, fmt.Sprintf("/partner/orders/%d/status", orderID), ownerTok, gin.H{"status": "confirmed"})
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// popularity stays off at qty 2
	w, out = doJSON(t, r, http.MethodGet, fmt.Sprintf("/menu-items/%d/popularity", itemID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, out["data"].(map[string]any)["mostlyOrdered"])
}

func TestAuthAndRoleGuards(t *testing.T) {
	r := newTestServer(t)
	custTok := registerAndLogin(t, r, "cust@test.local", "customer")

	// bearer token required
	w, _ := doJSON(t, r, http.MethodGet, "/cart", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// customers cannot reach partner surface
	w, _ = doJSON(t, r, http.MethodGet, "/partner/restaurants", custTok, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// public catalog needs no token
	w, _ = doJSON(t, r, http.MethodGet, "/restaurants", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
