package models

import "time"

// FoodType distinguishes vegetarian and non-vegetarian items
type FoodType string

const (
	TypeVeg    FoodType = "veg"
	TypeNonVeg FoodType = "non-veg"
)

// Categories is the closed set of menu categories
var Categories = []string{
	"Fast Food",
	"Pizza",
	"Burger",
	"Sandwich",
	"Italian",
	"Desserts",
	"Beverages",
}

// IsValidCategory reports whether c is one of the known categories
func IsValidCategory(c string) bool {
	for _, cat := range Categories {
		if c == cat {
			return true
		}
	}
	return false
}

type MenuItem struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	Name            string    `json:"name" gorm:"size:100;not null"`
	Description     string    `json:"description" gorm:"size:500;not null"`
	Category        string    `json:"category" gorm:"not null"`
	Type            FoodType  `json:"type" gorm:"not null"`
	Price           float64   `json:"price" gorm:"not null"`
	Image           string    `json:"image" gorm:"default:'default-food.jpg'"`
	IsAvailable     bool      `json:"isAvailable" gorm:"default:true"`
	PreparationTime int       `json:"preparationTime" gorm:"default:20"` // minutes
	Tags            []string  `json:"tags" gorm:"serializer:json"`
	Rating          float64   `json:"rating" gorm:"default:0"` // derived from approved reviews
	NumReviews      int       `json:"numReviews" gorm:"default:0"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
