package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/south-indian-kitchen/backend/events"
	"github.com/south-indian-kitchen/backend/models"
	"github.com/south-indian-kitchen/backend/utils"
)

type MenuController struct {
	DB *gorm.DB
}

func NewMenuController(db *gorm.DB) *MenuController {
	return &MenuController{DB: db}
}

// GetAllMenus -> full dish list
func (mc *MenuController) GetAllMenus(c *gin.Context) {
	var dishes []models.Dish
	if err := mc.DB.Order("id").Find(&dishes).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of dishes", dishes)
}

// GetMenuByID -> single dish detail
func (mc *MenuController) GetMenuByID(c *gin.Context) {
	id := c.Param("dish_id")

	var dish models.Dish
	if err := mc.DB.First(&dish, "id = ?", id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, models.ErrNotFound)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Dish detail", dish)
}

// GetMenuByCategory -> GET /menus/by-category?category=<name>
func (mc *MenuController) GetMenuByCategory(c *gin.Context) {
	category := c.Query("category")
	if category == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("query parameter 'category' is required"))
		return
	}

	var dishes []models.Dish
	if err := mc.DB.Where("category = ?", category).Order("id").Find(&dishes).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, fmt.Sprintf("List of dishes for category: %s", category), dishes)
}

// GetAllCategories -> the fixed category set
func (mc *MenuController) GetAllCategories(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "List of categories", models.Categories)
}

// ReplaceDish -> PUT /admin/menus/:dish_id, overwrites all mutable fields
func (mc *MenuController) ReplaceDish(c *gin.Context) {
	id := c.Param("dish_id")

	type request struct {
		Name        string  `json:"name" binding:"required"`
		Description string  `json:"description"`
		Price       float64 `json:"price" binding:"min=0"`
		Image       string  `json:"image"`
		Category    string  `json:"category" binding:"required"`
		Available   *bool   `json:"available" binding:"required"`
	}
	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if !models.ValidCategory(req.Category) {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("unknown category: %s", req.Category))
		return
	}

	var dish models.Dish
	if err := mc.DB.First(&dish, "id = ?", id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, models.ErrNotFound)
		return
	}

	dish.Name = req.Name
	dish.Description = req.Description
	dish.Price = req.Price
	dish.Image = req.Image
	dish.Category = req.Category
	dish.Available = *req.Available

	if err := mc.DB.Save(&dish).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	events.BroadcastMenuUpdate(dish)
	utils.RespondJSON(c, http.StatusOK, "Dish updated", dish)
}

// SetAvailability -> PATCH /admin/menus/:dish_id/availability
func (mc *MenuController) SetAvailability(c *gin.Context) {
	id := c.Param("dish_id")

	type request struct {
		Available *bool `json:"available" binding:"required"`
	}
	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var dish models.Dish
	if err := mc.DB.First(&dish, "id = ?", id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, models.ErrNotFound)
		return
	}

	dish.Available = *req.Available
	if err := mc.DB.Save(&dish).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	events.BroadcastMenuUpdate(dish)
	utils.RespondJSON(c, http.StatusOK, "Availability updated", dish)
}
