package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ravaka/staffhub/internal/domain/user"
)

type Authenticator interface {
	Signup(req user.SignupRequest) (user.User, error)
	Authenticate(email, password string) (user.User, error)
}

type AuthHandler struct {
	users Authenticator
}

func NewAuthHandler(users Authenticator) *AuthHandler {
	return &AuthHandler{users: users}
}

func (h *AuthHandler) Signup(ctx *gin.Context) {
	var req user.SignupRequest

	if !BindJSON(ctx, &req, "Missing required fields") {
		return
	}

	u, err := h.users.Signup(req)

	if err != nil {
		if errors.Is(err, user.ErrDuplicateEmail) {
			RespondBadRequest(ctx, "User with this email already exists")
			return
		}

		RespondInternal(ctx, "Could not create account")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Registration successful! Please wait for admin approval.",
		"user": gin.H{
			"email":  u.Email,
			"name":   u.Name,
			"role":   u.Role,
			"status": u.Status,
		},
	})
}

func (h *AuthHandler) Login(ctx *gin.Context) {
	var req user.LoginRequest

	if !BindJSON(ctx, &req, "Missing credentials") {
		return
	}

	u, err := h.users.Authenticate(req.Email, req.Password)

	if err != nil {
		if errors.Is(err, user.ErrPendingApproval) {
			RespondUnauthorized(ctx, "Your account is pending admin approval. Please wait.")
			return
		}

		RespondUnauthorized(ctx, "Invalid credentials")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    u.Public(),
	})
}
