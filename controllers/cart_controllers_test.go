package controllers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func cartSession(session string) map[string]string {
	return map[string]string{"X-Cart-Session": session}
}

func TestGetCartStartsEmpty(t *testing.T) {
	r, _, _ := setupApp(t)

	w := doJSON(t, r, http.MethodGet, "/cart", nil, cartSession("s1"))
	assert.Equal(t, http.StatusOK, w.Code)

	data := parseData(t, w)
	assert.Equal(t, 0.0, data["total"])
	assert.Equal(t, 0.0, data["count"])
}

func TestAddItemToCart(t *testing.T) {
	r, _, _ := setupApp(t)

	w := doJSON(t, r, http.MethodPost, "/cart/items", gin.H{"dish_id": "1", "quantity": 2}, cartSession("s1"))
	assert.Equal(t, http.StatusOK, w.Code)

	data := parseData(t, w)
	assert.Equal(t, 240.0, data["total"])
	assert.Equal(t, 2.0, data["count"])
}

func TestAddSameDishTwiceMerges(t *testing.T) {
	r, _, _ := setupApp(t)

	doJSON(t, r, http.MethodPost, "/cart/items", gin.H{"dish_id": "1", "quantity": 2}, cartSession("s1"))
	w := doJSON(t, r, http.MethodPost, "/cart/items", gin.H{"dish_id": "1", "quantity": 3}, cartSession("s1"))

	data := parseData(t, w)
	items := data["items"].([]interface{})
	assert.Len(t, items, 1)
	assert.Equal(t, 5.0, data["count"])
	assert.Equal(t, 600.0, data["total"])
}

func TestAddUnknownDishFails(t *testing.T) {
	r, _, _ := setupApp(t)

	w := doJSON(t, r, http.MethodPost, "/cart/items", gin.H{"dish_id": "404", "quantity": 1}, cartSession("s1"))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateCartItemQuantity(t *testing.T) {
	r, _, _ := setupApp(t)

	doJSON(t, r, http.MethodPost, "/cart/items", gin.H{"dish_id": "3", "quantity": 1}, cartSession("s1"))
	w := doJSON(t, r, http.MethodPatch, "/cart/items/3", gin.H{"quantity": 5}, cartSession("s1"))
	assert.Equal(t, http.StatusOK, w.Code)

	data := parseData(t, w)
	assert.Equal(t, 300.0, data["total"])
	assert.Equal(t, 5.0, data["count"])
}

func TestUpdateQuantityToZeroRemovesLine(t *testing.T) {
	r, _, _ := setupApp(t)

	doJSON(t, r, http.MethodPost, "/cart/items", gin.H{"dish_id": "1", "quantity": 2}, cartSession("s1"))
	w := doJSON(t, r, http.MethodPatch, "/cart/items/1", gin.H{"quantity": 0}, cartSession("s1"))

	data := parseData(t, w)
	assert.Equal(t, 0.0, data["total"])
	assert.Empty(t, data["items"])
}

func TestRemoveCartItem(t *testing.T) {
	r, _, _ := setupApp(t)

	doJSON(t, r, http.MethodPost, "/cart/items", gin.H{"dish_id": "1", "quantity": 2}, cartSession("s1"))
	doJSON(t, r, http.MethodPost, "/cart/items", gin.H{"dish_id": "9", "quantity": 2}, cartSession("s1"))

	w := doJSON(t, r, http.MethodDelete, "/cart/items/9", nil, cartSession("s1"))
	data := parseData(t, w)
	assert.Equal(t, 240.0, data["total"])
}

func TestClearCart(t *testing.T) {
	r, _, _ := setupApp(t)

	doJSON(t, r, http.MethodPost, "/cart/items", gin.H{"dish_id": "1", "quantity": 2}, cartSession("s1"))
	w := doJSON(t, r, http.MethodDelete, "/cart", nil, cartSession("s1"))
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/cart", nil, cartSession("s1"))
	data := parseData(t, w)
	assert.Equal(t, 0.0, data["total"])
}

func TestCartsArePerSession(t *testing.T) {
	r, _, _ := setupApp(t)

	doJSON(t, r, http.MethodPost, "/cart/items", gin.H{"dish_id": "1", "quantity": 1}, cartSession("s1"))

	w := doJSON(t, r, http.MethodGet, "/cart", nil, cartSession("s2"))
	data := parseData(t, w)
	assert.Equal(t, 0.0, data["count"])
}

func TestCartSessionCookieMinted(t *testing.T) {
	r, _, _ := setupApp(t)

	// No session header or cookie: one is minted and set as a cookie.
	w := doJSON(t, r, http.MethodGet, "/cart", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	found := false
	for _, c := range cookies {
		if c.Name == "cart_session" && c.Value != "" {
			found = true
		}
	}
	assert.True(t, found, "expected a cart_session cookie")
}
