package handlers

import (
	"errors"
	"net/http"

	"docportal/models"
	"docportal/services/user"
	"docportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler serves user registration, role queries and token issuance.
type UserHandler struct {
	Service user.UserService
}

func NewUserHandler(service user.UserService) *UserHandler {
	return &UserHandler{Service: service}
}

type registerUserRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

// RegisterUser handles POST /user.
func (h *UserHandler) RegisterUser(c *gin.Context) {
	var req registerUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Service.Register(&models.User{Name: req.Name, Email: req.Email}); err != nil {
		utils.GetLogger().Error("failed to register user", zap.String("email", req.Email), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to register user", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"acknowledged": true})
}

// GetUsers handles GET /users (admin only, gated by middleware).
func (h *UserHandler) GetUsers(c *gin.Context) {
	users, err := h.Service.GetAll()
	if err != nil {
		utils.GetLogger().Error("failed to list users", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list users", err.Error())
		return
	}
	if users == nil {
		users = []models.User{}
	}
	c.JSON(http.StatusOK, users)
}

// PromoteUser handles PUT /users/admin/:id (admin only, gated by middleware).
func (h *UserHandler) PromoteUser(c *gin.Context) {
	id := c.Param("id")
	if err := h.Service.PromoteToAdmin(id); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		utils.GetLogger().Error("failed to promote user", zap.String("id", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to promote user", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"acknowledged": true})
}

// CheckAdmin handles GET /users/admin/:email, letting the client decide
// whether to show admin views.
func (h *UserHandler) CheckAdmin(c *gin.Context) {
	email := c.Param("email")
	isAdmin, err := h.Service.IsAdmin(email)
	if err != nil {
		utils.GetLogger().Error("failed to check admin role", zap.String("email", email), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to check admin role", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"isAdmin": isAdmin})
}

// IssueToken handles GET /jwt?email=. Tokens are only minted for registered
// emails; everyone else gets 403 with an empty token, matching the client's
// contract.
func (h *UserHandler) IssueToken(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email query parameter is required"})
		return
	}

	token, err := h.Service.IssueToken(email)
	if err != nil {
		if errors.Is(err, user.ErrUnknownEmail) {
			c.JSON(http.StatusForbidden, gin.H{"accessToken": ""})
			return
		}
		utils.GetLogger().Error("failed to issue token", zap.String("email", email), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to issue token", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"accessToken": token})
}
