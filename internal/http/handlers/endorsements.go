package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ravaka/staffhub/internal/domain/endorsement"
)

type EndorsementsStore interface {
	Create(req endorsement.CreateRequest) (endorsement.Endorsement, error)
	ListForUser(email string) []endorsement.Endorsement
	Acknowledge(id, email, initials string) error
}

type EndorsementsHandler struct {
	endorsements EndorsementsStore
}

func NewEndorsementsHandler(endorsements EndorsementsStore) *EndorsementsHandler {
	return &EndorsementsHandler{endorsements: endorsements}
}

func (h *EndorsementsHandler) Create(ctx *gin.Context) {
	var req endorsement.CreateRequest

	if !BindJSON(ctx, &req, "Missing required fields") {
		return
	}

	e, err := h.endorsements.Create(req)

	if err != nil {
		RespondInternal(ctx, "Could not create endorsement")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success":     true,
		"endorsement": e,
	})
}

func (h *EndorsementsHandler) ListForUser(ctx *gin.Context) {
	email := ctx.Param("email")

	ctx.JSON(http.StatusOK, h.endorsements.ListForUser(email))
}

func (h *EndorsementsHandler) Acknowledge(ctx *gin.Context) {
	id := ctx.Param("id")

	// the body is read leniently; an unknown endorsement id is the only failure
	var req endorsement.AcknowledgeRequest

	_ = ctx.ShouldBindJSON(&req)

	err := h.endorsements.Acknowledge(id, req.UserEmail, req.UserInitials)

	if err != nil {
		RespondNotFound(ctx, "Endorsement not found")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true})
}
