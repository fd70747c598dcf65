package api

import (
	"net/http"

	"github.com/careerforge/jobboard/internal/services"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	auth *services.Auth
}

func NewAuthHandler(auth *services.Auth) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type updateProfileRequest struct {
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Password string   `json:"password"`
	Skills   []string `json:"skills"`
	Resume   string   `json:"resume"`
}

type authResponse struct {
	userResponse
	Token string `json:"token"`
}

func (h *AuthHandler) Register(c *gin.Context) {

	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	user, err := h.auth.Register(c.Request.Context(), services.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		respondError(c, err, http.StatusForbidden)
		return
	}

	token, err := h.auth.GenerateToken(user.ID)
	if err != nil {
		respondError(c, err, http.StatusForbidden)
		return
	}

	c.JSON(http.StatusCreated, authResponse{userResponse: toUserResponse(user), Token: token})
}

func (h *AuthHandler) Login(c *gin.Context) {

	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}

	user, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err, http.StatusForbidden)
		return
	}

	token, err := h.auth.GenerateToken(user.ID)
	if err != nil {
		respondError(c, err, http.StatusForbidden)
		return
	}

	c.JSON(http.StatusOK, authResponse{userResponse: toUserResponse(user), Token: token})
}

// Logout exists for client symmetry; tokens are stateless and simply expire.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "user logged out successfully"})
}

func (h *AuthHandler) GetProfile(c *gin.Context) {

	actor := currentIdentity(c)

	user, err := h.auth.GetProfile(c.Request.Context(), actor.UserID)
	if err != nil {
		respondError(c, err, http.StatusForbidden)
		return
	}

	c.JSON(http.StatusOK, toUserResponse(user))
}

func (h *AuthHandler) UpdateProfile(c *gin.Context) {

	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	actor := currentIdentity(c)

	user, err := h.auth.UpdateProfile(c.Request.Context(), actor.UserID, services.ProfileUpdate{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Skills:   req.Skills,
		Resume:   req.Resume,
	})
	if err != nil {
		respondError(c, err, http.StatusForbidden)
		return
	}

	token, err := h.auth.GenerateToken(user.ID)
	if err != nil {
		respondError(c, err, http.StatusForbidden)
		return
	}

	c.JSON(http.StatusOK, authResponse{userResponse: toUserResponse(user), Token: token})
}
