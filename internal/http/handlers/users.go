package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ravaka/staffhub/internal/domain/user"
)

type UsersStore interface {
	ListApproved() []user.User
	ListPending() []user.User
	Approve(email string) (user.User, error)
	Reject(email string) error
	Create(req user.CreateRequest) (user.User, error)
	Delete(email string) error
}

type UsersHandler struct {
	users UsersStore
}

func NewUsersHandler(users UsersStore) *UsersHandler {
	return &UsersHandler{users: users}
}

func (h *UsersHandler) List(ctx *gin.Context) {
	approved := h.users.ListApproved()

	out := make([]user.Public, 0, len(approved))

	for _, u := range approved {
		out = append(out, u.Public())
	}

	ctx.JSON(http.StatusOK, out)
}

func (h *UsersHandler) ListPending(ctx *gin.Context) {
	pending := h.users.ListPending()

	out := make([]user.PendingPublic, 0, len(pending))

	for _, u := range pending {
		out = append(out, u.PendingPublic())
	}

	ctx.JSON(http.StatusOK, out)
}

func (h *UsersHandler) Approve(ctx *gin.Context) {
	var req user.ApprovalRequest

	if !BindJSON(ctx, &req, "Missing email") {
		return
	}

	u, err := h.users.Approve(req.Email)

	if err != nil {
		RespondNotFound(ctx, "Pending user not found")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "User approved successfully",
		"user": gin.H{
			"email": u.Email,
			"name":  u.Name,
			"role":  u.Role,
		},
	})
}

func (h *UsersHandler) Reject(ctx *gin.Context) {
	var req user.ApprovalRequest

	if !BindJSON(ctx, &req, "Missing email") {
		return
	}

	err := h.users.Reject(req.Email)

	if err != nil {
		RespondNotFound(ctx, "Pending user not found")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "User rejected successfully",
	})
}

func (h *UsersHandler) Create(ctx *gin.Context) {
	var req user.CreateRequest

	if !BindJSON(ctx, &req, "Missing required fields") {
		return
	}

	u, err := h.users.Create(req)

	if err != nil {
		if errors.Is(err, user.ErrDuplicateEmail) {
			RespondBadRequest(ctx, "User with this email already exists")
			return
		}

		RespondInternal(ctx, "Could not create user")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    u.Public(),
	})
}

func (h *UsersHandler) Delete(ctx *gin.Context) {
	email := ctx.Param("email")

	err := h.users.Delete(email)

	if err != nil {
		if errors.Is(err, user.ErrAdminProtected) {
			RespondBadRequest(ctx, "Cannot delete admin users")
			return
		}

		RespondNotFound(ctx, "User not found")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true})
}
