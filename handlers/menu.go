package handlers

import (
	"net/http"
	"strings"

	"bistro-api/config"
	"bistro-api/models"

	"github.com/gin-gonic/gin"
)

type MenuItemRequest struct {
	Name            string   `json:"name" binding:"required,max=100"`
	Description     string   `json:"description" binding:"required,max=500"`
	Category        string   `json:"category" binding:"required,menucategory"`
	Type            string   `json:"type" binding:"required,foodtype"`
	Price           *float64 `json:"price" binding:"required,min=0"`
	Image           string   `json:"image"`
	PreparationTime int      `json:"preparationTime"`
	Tags            []string `json:"tags"`
}

// ListMenu returns menu items, optionally filtered by category, type
// or a case-insensitive name/description search (public)
func ListMenu(c *gin.Context) {
	query := config.DB.Order("created_at desc")

	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if foodType := c.Query("type"); foodType != "" {
		query = query.Where("type = ?", foodType)
	}
	if search := c.Query("search"); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}

	var items []models.MenuItem
	if err := query.Find(&items).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Error fetching menu items")
		return
	}
	respondList(c, len(items), items)
}

// GetMenuByType returns available items of one food type (public)
func GetMenuByType(c *gin.Context) {
	foodType := models.FoodType(c.Param("type"))
	if foodType != models.TypeVeg && foodType != models.TypeNonVeg {
		fail(c, http.StatusBadRequest, `Invalid type. Must be "veg" or "non-veg"`)
		return
	}

	var items []models.MenuItem
	if err := config.DB.
		Where("type = ? AND is_available = ?", foodType, true).
		Order("created_at desc").
		Find(&items).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Error fetching menu items")
		return
	}
	respondList(c, len(items), items)
}

// GetMenuItem returns a single menu item (public)
func GetMenuItem(c *gin.Context) {
	var item models.MenuItem
	if err := config.DB.First(&item, c.Param("id")).Error; err != nil {
		fail(c, http.StatusNotFound, "Menu item not found")
		return
	}
	respond(c, http.StatusOK, "", item)
}

// CreateMenuItem adds a new item to the catalog (admin only)
func CreateMenuItem(c *gin.Context) {
	var req MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	item := models.MenuItem{
		Name:            req.Name,
		Description:     req.Description,
		Category:        req.Category,
		Type:            models.FoodType(req.Type),
		Price:           *req.Price,
		Image:           req.Image,
		PreparationTime: req.PreparationTime,
		Tags:            req.Tags,
		IsAvailable:     true,
	}
	if item.Image == "" {
		item.Image = "default-food.jpg"
	}
	if item.PreparationTime == 0 {
		item.PreparationTime = 20
	}

	if err := config.DB.Create(&item).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Error creating menu item")
		return
	}
	respond(c, http.StatusCreated, "Menu item created successfully", item)
}

// MenuItemUpdateRequest is the partial-update form: only the fields
// present in the body are written. Rating and numReviews are derived
// and never writable here.
type MenuItemUpdateRequest struct {
	Name            *string  `json:"name" binding:"omitempty,max=100"`
	Description     *string  `json:"description" binding:"omitempty,max=500"`
	Category        *string  `json:"category" binding:"omitempty,menucategory"`
	Type            *string  `json:"type" binding:"omitempty,foodtype"`
	Price           *float64 `json:"price" binding:"omitempty,min=0"`
	Image           *string  `json:"image"`
	IsAvailable     *bool    `json:"isAvailable"`
	PreparationTime *int     `json:"preparationTime" binding:"omitempty,min=0"`
	Tags            []string `json:"tags"`
}

// UpdateMenuItem updates a menu item (admin only)
func UpdateMenuItem(c *gin.Context) {
	var item models.MenuItem
	if err := config.DB.First(&item, c.Param("id")).Error; err != nil {
		fail(c, http.StatusNotFound, "Menu item not found")
		return
	}

	var req MenuItemUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.Category != nil {
		item.Category = *req.Category
	}
	if req.Type != nil {
		item.Type = models.FoodType(*req.Type)
	}
	if req.Price != nil {
		item.Price = *req.Price
	}
	if req.Image != nil {
		item.Image = *req.Image
	}
	if req.IsAvailable != nil {
		item.IsAvailable = *req.IsAvailable
	}
	if req.PreparationTime != nil {
		item.PreparationTime = *req.PreparationTime
	}
	if req.Tags != nil {
		item.Tags = req.Tags
	}

	if err := config.DB.Save(&item).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Error updating menu item")
		return
	}
	respond(c, http.StatusOK, "Menu item updated successfully", item)
}

// DeleteMenuItem removes a menu item (admin only)
func DeleteMenuItem(c *gin.Context) {
	var item models.MenuItem
	if err := config.DB.First(&item, c.Param("id")).Error; err != nil {
		fail(c, http.StatusNotFound, "Menu item not found")
		return
	}
	if err := config.DB.Delete(&item).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Error deleting menu item")
		return
	}
	respond(c, http.StatusOK, "Menu item deleted successfully", nil)
}

// ToggleAvailability flips a menu item's availability flag (admin only)
func ToggleAvailability(c *gin.Context) {
	var item models.MenuItem
	if err := config.DB.First(&item, c.Param("id")).Error; err != nil {
		fail(c, http.StatusNotFound, "Menu item not found")
		return
	}

	item.IsAvailable = !item.IsAvailable
	if err := config.DB.Model(&item).Update("is_available", item.IsAvailable).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Error toggling availability")
		return
	}

	state := "disabled"
	if item.IsAvailable {
		state = "enabled"
	}
	respond(c, http.StatusOK, "Menu item "+state+" successfully", item)
}
