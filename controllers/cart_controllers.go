package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/south-indian-kitchen/backend/events"
	"github.com/south-indian-kitchen/backend/middlewares"
	"github.com/south-indian-kitchen/backend/models"
	"github.com/south-indian-kitchen/backend/services"
	"github.com/south-indian-kitchen/backend/storage"
	"github.com/south-indian-kitchen/backend/utils"
)

type CartController struct {
	DB    *gorm.DB
	Store *storage.CartStore
}

func NewCartController(db *gorm.DB, store *storage.CartStore) *CartController {
	return &CartController{DB: db, Store: store}
}

type cartPayload struct {
	Items []models.CartItem `json:"items"`
	Total float64           `json:"total"`
	Count int               `json:"count"`
}

func makeCartPayload(items []models.CartItem) cartPayload {
	return cartPayload{
		Items: items,
		Total: services.CartTotal(items),
		Count: services.CartCount(items),
	}
}

// persist saves the new cart state and notifies observers so any cached
// view (item-count badge, open tabs) resynchronizes.
func (cc *CartController) persist(session string, items []models.CartItem) cartPayload {
	cc.Store.Save(session, items)
	payload := makeCartPayload(items)
	events.BroadcastCartUpdate(session, items, payload.Total, payload.Count)
	return payload
}

// GetCart -> current cart for the session
func (cc *CartController) GetCart(c *gin.Context) {
	session := middlewares.SessionFromContext(c)
	items := cc.Store.Load(session)
	utils.RespondJSON(c, http.StatusOK, "Cart", makeCartPayload(items))
}

// AddItem -> POST /cart/items {dish_id, quantity}
func (cc *CartController) AddItem(c *gin.Context) {
	type request struct {
		DishID   string `json:"dish_id" binding:"required"`
		Quantity int    `json:"quantity"`
	}
	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var dish models.Dish
	if err := cc.DB.First(&dish, "id = ?", req.DishID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, models.ErrNotFound)
		return
	}

	session := middlewares.SessionFromContext(c)
	items := services.AddItem(cc.Store.Load(session), dish, req.Quantity)

	utils.RespondJSON(c, http.StatusOK, "Item added to cart", cc.persist(session, items))
}

// UpdateItem -> PATCH /cart/items/:dish_id {quantity}; quantity <= 0 removes
func (cc *CartController) UpdateItem(c *gin.Context) {
	type request struct {
		Quantity *int `json:"quantity" binding:"required"`
	}
	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	session := middlewares.SessionFromContext(c)
	items := services.UpdateQuantity(cc.Store.Load(session), c.Param("dish_id"), *req.Quantity)

	utils.RespondJSON(c, http.StatusOK, "Cart updated", cc.persist(session, items))
}

// RemoveItem -> DELETE /cart/items/:dish_id
func (cc *CartController) RemoveItem(c *gin.Context) {
	session := middlewares.SessionFromContext(c)
	items := services.RemoveItem(cc.Store.Load(session), c.Param("dish_id"))

	utils.RespondJSON(c, http.StatusOK, "Item removed from cart", cc.persist(session, items))
}

// ClearCart -> DELETE /cart
func (cc *CartController) ClearCart(c *gin.Context) {
	session := middlewares.SessionFromContext(c)
	cc.Store.Clear(session)
	items := []models.CartItem{}
	events.BroadcastCartUpdate(session, items, 0, 0)

	utils.RespondJSON(c, http.StatusOK, "Cart cleared", makeCartPayload(items))
}
