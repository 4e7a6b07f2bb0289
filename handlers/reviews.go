package handlers

import (
	"net/http"

	"bistro-api/config"
	"bistro-api/middleware"
	"bistro-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateReviewRequest struct {
	Rating   int    `json:"rating" binding:"required,min=1,max=5"`
	Comment  string `json:"comment" binding:"required,max=500"`
	MenuItem *uint  `json:"menuItem"`
}

// recomputeItemRating rewrites a menu item's aggregate from its
// currently-approved reviews. An empty approved set resets the
// aggregate to 0/0 rather than dividing by zero.
func recomputeItemRating(db *gorm.DB, menuItemID uint) error {
	var reviews []models.Review
	if err := db.Where("menu_item_id = ? AND is_approved = ?", menuItemID, true).
		Find(&reviews).Error; err != nil {
		return err
	}

	rating := 0.0
	if len(reviews) > 0 {
		sum := 0
		for _, r := range reviews {
			sum += r.Rating
		}
		rating = float64(sum) / float64(len(reviews))
	}

	return db.Model(&models.MenuItem{}).Where("id = ?", menuItemID).
		Updates(map[string]interface{}{
			"rating":      rating,
			"num_reviews": len(reviews),
		}).Error
}

// CreateReview submits a review. Reviews start unapproved, so a fresh
// submission does not move the item's average until an admin approves it.
func CreateReview(c *gin.Context) {
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Please provide rating and comment")
		return
	}

	var user models.User
	if err := config.DB.First(&user, middleware.GetUserID(c)).Error; err != nil {
		fail(c, http.StatusNotFound, "User not found")
		return
	}

	review := models.Review{
		UserID:     user.ID,
		UserName:   user.FullName,
		Rating:     req.Rating,
		Comment:    req.Comment,
		MenuItemID: req.MenuItem,
	}
	if err := config.DB.Create(&review).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Error creating review")
		return
	}

	if review.MenuItemID != nil {
		if err := recomputeItemRating(config.DB, *review.MenuItemID); err != nil {
			fail(c, http.StatusInternalServerError, "Error creating review")
			return
		}
	}

	respond(c, http.StatusCreated, "Review submitted successfully", review)
}

// ListReviews returns reviews, newest first. Admins may filter by menu
// item and approval state; everyone else only ever sees approved
// reviews, regardless of the filters they request.
func ListReviews(c *gin.Context) {
	query := config.DB.Preload("MenuItem").Order("created_at desc")

	if menuItem := c.Query("menuItem"); menuItem != "" {
		query = query.Where("menu_item_id = ?", menuItem)
	}
	if middleware.IsAdmin(c) {
		if approved := c.Query("approved"); approved != "" {
			query = query.Where("is_approved = ?", approved == "true")
		}
	} else {
		query = query.Where("is_approved = ?", true)
	}

	var reviews []models.Review
	if err := query.Find(&reviews).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Error fetching reviews")
		return
	}
	respondList(c, len(reviews), reviews)
}

// GetApprovedReviews returns the ten most recent approved reviews (public)
func GetApprovedReviews(c *gin.Context) {
	var reviews []models.Review
	if err := config.DB.Preload("MenuItem").
		Where("is_approved = ?", true).
		Order("created_at desc").
		Limit(10).
		Find(&reviews).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Error fetching reviews")
		return
	}
	respondList(c, len(reviews), reviews)
}

// ApproveReview marks a review approved and refreshes the item
// aggregate so the rating reflects it immediately (admin only)
func ApproveReview(c *gin.Context) {
	var review models.Review
	if err := config.DB.First(&review, c.Param("id")).Error; err != nil {
		fail(c, http.StatusNotFound, "Review not found")
		return
	}

	if err := config.DB.Model(&review).Update("is_approved", true).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Error approving review")
		return
	}
	if review.MenuItemID != nil {
		if err := recomputeItemRating(config.DB, *review.MenuItemID); err != nil {
			fail(c, http.StatusInternalServerError, "Error approving review")
			return
		}
	}
	respond(c, http.StatusOK, "Review approved successfully", review)
}

// DeleteReview removes a review and refreshes the item aggregate (admin only)
func DeleteReview(c *gin.Context) {
	var review models.Review
	if err := config.DB.First(&review, c.Param("id")).Error; err != nil {
		fail(c, http.StatusNotFound, "Review not found")
		return
	}

	if err := config.DB.Delete(&review).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Error deleting review")
		return
	}
	if review.MenuItemID != nil {
		if err := recomputeItemRating(config.DB, *review.MenuItemID); err != nil {
			fail(c, http.StatusInternalServerError, "Error deleting review")
			return
		}
	}
	respond(c, http.StatusOK, "Review deleted successfully", nil)
}
