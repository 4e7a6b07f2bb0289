package models

import "time"

type Review struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	UserID     uint      `json:"userId" gorm:"not null"`
	UserName   string    `json:"userName" gorm:"not null"` // denormalized snapshot of the reviewer's name
	Rating     int       `json:"rating" gorm:"not null"`
	Comment    string    `json:"comment" gorm:"size:500;not null"`
	MenuItemID *uint     `json:"menuItemId"`
	MenuItem   *MenuItem `json:"menuItem,omitempty" gorm:"foreignKey:MenuItemID"`
	IsApproved bool      `json:"isApproved" gorm:"default:false"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
