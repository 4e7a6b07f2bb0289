package handlers

import (
	"net/http"

	"bistro-api/config"
	"bistro-api/middleware"
	"bistro-api/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type RegisterRequest struct {
	FullName     string `json:"fullName" binding:"required"`
	MobileNumber string `json:"mobileNumber" binding:"required"`
	Password     string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	MobileNumber string `json:"mobileNumber" binding:"required"`
	Password     string `json:"password" binding:"required"`
}

func userPayload(user *models.User) gin.H {
	return gin.H{
		"id":           user.ID,
		"fullName":     user.FullName,
		"mobileNumber": user.MobileNumber,
		"role":         user.Role,
	}
}

// setTokenCookie issues the httponly session cookie; the token is also
// echoed in the response body for non-browser clients
func setTokenCookie(c *gin.Context, token string) {
	c.SetCookie(middleware.TokenCookie, token,
		int(middleware.TokenLifetime.Seconds()), "/", "", config.App.IsProduction(), true)
}

func clearTokenCookie(c *gin.Context) {
	c.SetCookie(middleware.TokenCookie, "", -1, "/", "", config.App.IsProduction(), true)
}

// Register creates a new user account
func Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Please provide all required fields")
		return
	}

	var existing models.User
	if err := config.DB.Where("mobile_number = ?", req.MobileNumber).First(&existing).Error; err == nil {
		fail(c, http.StatusBadRequest, "User with this mobile number already exists")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		fail(c, http.StatusInternalServerError, "Error registering user")
		return
	}

	user := models.User{
		FullName:     req.FullName,
		MobileNumber: req.MobileNumber,
		Password:     string(hash),
		Role:         models.RoleUser,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Error registering user")
		return
	}

	token, err := middleware.GenerateToken(&user)
	if err != nil {
		fail(c, http.StatusInternalServerError, "Error registering user")
		return
	}
	setTokenCookie(c, token)

	respond(c, http.StatusCreated, "User registered successfully", gin.H{
		"user":  userPayload(&user),
		"token": token,
	})
}

// Login authenticates a user and issues the session credential
func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Please provide mobile number and password")
		return
	}

	var user models.User
	if err := config.DB.Where("mobile_number = ?", req.MobileNumber).First(&user).Error; err != nil {
		fail(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		fail(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := middleware.GenerateToken(&user)
	if err != nil {
		fail(c, http.StatusInternalServerError, "Error logging in")
		return
	}
	setTokenCookie(c, token)

	respond(c, http.StatusOK, "Login successful", gin.H{
		"user":  userPayload(&user),
		"token": token,
	})
}

// AdminLogin authenticates against the configured admin credentials.
// The admin account is provisioned lazily on first successful login.
func AdminLogin(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Please provide mobile number and password")
		return
	}

	if req.MobileNumber != config.App.AdminMobile || req.Password != config.App.AdminPassword {
		fail(c, http.StatusUnauthorized, "Invalid admin credentials")
		return
	}

	// Look up by mobile alone: if a regular user already registered the
	// configured admin number, reject rather than trip the unique index
	// on the lazy create below.
	var admin models.User
	err := config.DB.Where("mobile_number = ?", config.App.AdminMobile).First(&admin).Error
	if err == nil && admin.Role != models.RoleAdmin {
		fail(c, http.StatusBadRequest, "Admin mobile number is already registered to another account")
		return
	}
	if err != nil {
		hash, herr := bcrypt.GenerateFromPassword([]byte(config.App.AdminPassword), bcrypt.DefaultCost)
		if herr != nil {
			fail(c, http.StatusInternalServerError, "Error in admin login")
			return
		}
		admin = models.User{
			FullName:     "Admin",
			MobileNumber: config.App.AdminMobile,
			Password:     string(hash),
			Role:         models.RoleAdmin,
		}
		if err := config.DB.Create(&admin).Error; err != nil {
			fail(c, http.StatusInternalServerError, "Error in admin login")
			return
		}
	}

	token, err := middleware.GenerateToken(&admin)
	if err != nil {
		fail(c, http.StatusInternalServerError, "Error in admin login")
		return
	}
	setTokenCookie(c, token)

	respond(c, http.StatusOK, "Admin login successful", gin.H{
		"user":  userPayload(&admin),
		"token": token,
	})
}

// Logout clears the session cookie
func Logout(c *gin.Context) {
	clearTokenCookie(c)
	respond(c, http.StatusOK, "Logged out successfully", nil)
}

// Me returns the authenticated user's profile
func Me(c *gin.Context) {
	var user models.User
	if err := config.DB.First(&user, middleware.GetUserID(c)).Error; err != nil {
		fail(c, http.StatusNotFound, "User not found")
		return
	}
	respond(c, http.StatusOK, "", userPayload(&user))
}
