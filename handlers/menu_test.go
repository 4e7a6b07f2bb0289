package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"bistro-api/config"
	"bistro-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMenuWriteAuthorization(t *testing.T) {
	r := setupRouter(t)
	_, userToken := createUser(t, "Plain User", "7001112222", models.RoleUser)

	body := map[string]interface{}{
		"name":        "Margherita",
		"description": "Classic pizza",
		"category":    "Pizza",
		"type":        "veg",
		"price":       299.0,
	}

	t.Run("Anonymous", func(t *testing.T) {
		w := doRequest(t, r, http.MethodPost, "/api/menu", body, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("NonAdmin", func(t *testing.T) {
		w := doRequest(t, r, http.MethodPost, "/api/menu", body, userToken)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestMenuCRUD(t *testing.T) {
	r := setupRouter(t)
	_, adminToken := createUser(t, "Admin", "9999999999", models.RoleAdmin)

	var created models.MenuItem

	t.Run("Create", func(t *testing.T) {
		w := doRequest(t, r, http.MethodPost, "/api/menu", map[string]interface{}{
			"name":        "Margherita",
			"description": "Classic pizza",
			"category":    "Pizza",
			"type":        "veg",
			"price":       299.0,
		}, adminToken)
		require.Equal(t, http.StatusCreated, w.Code)
		decodeData(t, w, &created)
		assert.Equal(t, "Margherita", created.Name)
		assert.True(t, created.IsAvailable)
		assert.Equal(t, "default-food.jpg", created.Image)
		assert.Equal(t, 20, created.PreparationTime)
		assert.Zero(t, created.Rating)
	})

	t.Run("CreateInvalidCategory", func(t *testing.T) {
		w := doRequest(t, r, http.MethodPost, "/api/menu", map[string]interface{}{
			"name":        "Mystery Dish",
			"description": "Unknown cuisine",
			"category":    "Fusion",
			"type":        "veg",
			"price":       100.0,
		}, adminToken)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("GetByID", func(t *testing.T) {
		w := doRequest(t, r, http.MethodGet, fmt.Sprintf("/api/menu/%d", created.ID), nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		var item models.MenuItem
		decodeData(t, w, &item)
		assert.Equal(t, created.ID, item.ID)
	})

	t.Run("GetMissing", func(t *testing.T) {
		w := doRequest(t, r, http.MethodGet, "/api/menu/99999", nil, "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Update", func(t *testing.T) {
		w := doRequest(t, r, http.MethodPut, fmt.Sprintf("/api/menu/%d", created.ID), map[string]interface{}{
			"price":  349.0,
			"rating": 5.0, // derived field, must be ignored
		}, adminToken)
		require.Equal(t, http.StatusOK, w.Code)

		var item models.MenuItem
		require.NoError(t, config.DB.First(&item, created.ID).Error)
		assert.Equal(t, 349.0, item.Price)
		assert.Zero(t, item.Rating)
	})

	t.Run("UpdateRejectsInvalidValues", func(t *testing.T) {
		bodies := []map[string]interface{}{
			{"price": "-999"},          // wrong type must not slip past validation
			{"price": "free"},
			{"price": -5.0},
			{"type": 123},
			{"type": "vegan"},
			{"category": "Fusion"},
		}
		for _, body := range bodies {
			w := doRequest(t, r, http.MethodPut, fmt.Sprintf("/api/menu/%d", created.ID), body, adminToken)
			assert.Equal(t, http.StatusBadRequest, w.Code, "body %v", body)
		}

		// row untouched by any of the rejected updates
		var item models.MenuItem
		require.NoError(t, config.DB.First(&item, created.ID).Error)
		assert.Equal(t, 349.0, item.Price)
		assert.Equal(t, models.TypeVeg, item.Type)
		assert.Equal(t, "Pizza", item.Category)
	})

	t.Run("ToggleAvailability", func(t *testing.T) {
		w := doRequest(t, r, http.MethodPatch, fmt.Sprintf("/api/menu/%d/availability", created.ID), nil, adminToken)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, decodeEnvelope(t, w).Message, "disabled")

		var item models.MenuItem
		require.NoError(t, config.DB.First(&item, created.ID).Error)
		assert.False(t, item.IsAvailable)

		w = doRequest(t, r, http.MethodPatch, fmt.Sprintf("/api/menu/%d/availability", created.ID), nil, adminToken)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, decodeEnvelope(t, w).Message, "enabled")
	})

	t.Run("Delete", func(t *testing.T) {
		w := doRequest(t, r, http.MethodDelete, fmt.Sprintf("/api/menu/%d", created.ID), nil, adminToken)
		require.Equal(t, http.StatusOK, w.Code)

		w = doRequest(t, r, http.MethodGet, fmt.Sprintf("/api/menu/%d", created.ID), nil, "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestMenuFilters(t *testing.T) {
	r := setupRouter(t)

	burger := &models.MenuItem{
		Name: "Veggie Burger", Description: "Grilled patty",
		Category: "Burger", Type: models.TypeVeg, Price: 150, IsAvailable: true,
	}
	chicken := &models.MenuItem{
		Name: "Chicken Pizza", Description: "Loaded with chicken",
		Category: "Pizza", Type: models.TypeNonVeg, Price: 350, IsAvailable: true,
	}
	hidden := &models.MenuItem{
		Name: "Seasonal Salad", Description: "Currently off the menu",
		Category: "Fast Food", Type: models.TypeVeg, Price: 120, IsAvailable: false,
	}
	for _, item := range []*models.MenuItem{burger, chicken, hidden} {
		require.NoError(t, config.DB.Create(item).Error)
	}

	t.Run("All", func(t *testing.T) {
		w := doRequest(t, r, http.MethodGet, "/api/menu", nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 3, decodeEnvelope(t, w).Count)
	})

	t.Run("ByCategory", func(t *testing.T) {
		w := doRequest(t, r, http.MethodGet, "/api/menu?category=Pizza", nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		var items []models.MenuItem
		decodeData(t, w, &items)
		require.Len(t, items, 1)
		assert.Equal(t, "Chicken Pizza", items[0].Name)
	})

	t.Run("ByType", func(t *testing.T) {
		w := doRequest(t, r, http.MethodGet, "/api/menu?type=veg", nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 2, decodeEnvelope(t, w).Count)
	})

	t.Run("SearchCaseInsensitive", func(t *testing.T) {
		w := doRequest(t, r, http.MethodGet, "/api/menu?search=CHICKEN", nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 1, decodeEnvelope(t, w).Count)
	})

	t.Run("TypeRouteOnlyAvailable", func(t *testing.T) {
		w := doRequest(t, r, http.MethodGet, "/api/menu/type/veg", nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		var items []models.MenuItem
		decodeData(t, w, &items)
		require.Len(t, items, 1)
		assert.Equal(t, "Veggie Burger", items[0].Name)
	})

	t.Run("TypeRouteInvalid", func(t *testing.T) {
		w := doRequest(t, r, http.MethodGet, "/api/menu/type/vegan", nil, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
