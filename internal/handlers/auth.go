package handlers

import (
	"errors"
	"net/http"

	"github.com/Ianrury/api-tash-manajement/internal/auth"
	dom "github.com/Ianrury/api-tash-manajement/internal/domain"
	"github.com/Ianrury/api-tash-manajement/internal/dto"
	"github.com/Ianrury/api-tash-manajement/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles register, login and profile.
type AuthHandler struct {
	tokens  *auth.TokenService
	userSvc *service.UserService
}

// NewAuthHandler returns a new AuthHandler.
func NewAuthHandler(tokens *auth.TokenService, userSvc *service.UserService) *AuthHandler {
	return &AuthHandler{tokens: tokens, userSvc: userSvc}
}

func userToResponse(u dom.User) dto.UserResponse {
	return dto.UserResponse{UserID: u.ID, Name: u.Name, Username: u.Username}
}

// Register godoc
// @Summary      Register new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "Credentials"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBinding(c, err)
		return
	}
	user, err := h.userSvc.Register(c.Request.Context(), req.Name, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrUsernameTaken) {
			respondError(c, http.StatusBadRequest, "Username already exists")
			return
		}
		respondInternal(c, err, "Server error during registration")
		return
	}
	token, err := h.tokens.Issue(user.ID)
	if err != nil {
		respondInternal(c, err, "Server error during registration")
		return
	}
	respondData(c, http.StatusCreated, "User registered successfully", dto.AuthData{
		User:  userToResponse(user),
		Token: token,
	})
}

// Login godoc
// @Summary      User login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credentials"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBinding(c, err)
		return
	}
	user, err := h.userSvc.ValidateCredentials(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			// Same body for unknown username and wrong password.
			respondError(c, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		respondInternal(c, err, "Server error during login")
		return
	}
	token, err := h.tokens.Issue(user.ID)
	if err != nil {
		respondInternal(c, err, "Server error during login")
		return
	}
	respondData(c, http.StatusOK, "Login successful", dto.AuthData{
		User:  userToResponse(user),
		Token: token,
	})
}

// Profile godoc
// @Summary      Current user profile
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]interface{}
// @Router       /auth/profile [get]
func (h *AuthHandler) Profile(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Not authorized, no token or invalid token")
		return
	}
	respondData(c, http.StatusOK, "", gin.H{"user": userToResponse(user)})
}
