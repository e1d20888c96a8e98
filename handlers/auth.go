package handlers

import (
	"errors"
	"net/http"

	"quickscan/models"
	"quickscan/services/user"
	"quickscan/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler exposes credential sign-up, sign-in and sign-out.
type AuthHandler struct {
	Svc    user.UserService
	Logger *zap.Logger
}

func NewAuthHandler(svc user.UserService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var input models.UserRegistration
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONFailure(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	resp, err := h.Svc.Register(input)
	if err != nil {
		if errors.Is(err, user.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"success": false, "message": "Email already registered"})
			return
		}
		h.Logger.Error("registration failed", zap.Error(err))
		utils.JSONFailure(c, http.StatusInternalServerError, "Registration failed", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": resp})
}

// Login handles POST /api/auth/login. Unknown emails and wrong passwords
// produce the same response.
func (h *AuthHandler) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONFailure(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	resp, err := h.Svc.Authenticate(input.Email, input.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid email or password"})
			return
		}
		h.Logger.Error("authentication failed", zap.Error(err))
		utils.JSONFailure(c, http.StatusInternalServerError, "Authentication failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": resp})
}

// Me handles GET /api/auth/me.
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	u, err := h.Svc.GetByID(userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
			return
		}
		h.Logger.Error("failed to fetch profile", zap.Error(err))
		utils.JSONFailure(c, http.StatusInternalServerError, "Failed to fetch profile", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": u})
}

// UpdateProfile handles PUT /api/auth/me.
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var input models.ProfileUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONFailure(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	u, err := h.Svc.UpdateProfile(userID, input)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
			return
		}
		h.Logger.Error("profile update failed", zap.Error(err))
		utils.JSONFailure(c, http.StatusInternalServerError, "Profile update failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": u})
}

// Logout handles POST /api/auth/logout.
func (h *AuthHandler) Logout(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.Svc.SignOut(userID); err != nil {
		h.Logger.Error("sign-out failed", zap.Error(err))
		utils.JSONFailure(c, http.StatusInternalServerError, "Sign-out failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Signed out"})
}
