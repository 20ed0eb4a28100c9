package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ravaka/staffhub/internal/domain/ward"
)

type WardsStore interface {
	List() []ward.Ward
	Add(req ward.CreateRequest) (ward.Ward, error)
}

type WardsHandler struct {
	wards WardsStore
}

func NewWardsHandler(wards WardsStore) *WardsHandler {
	return &WardsHandler{wards: wards}
}

func (h *WardsHandler) List(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, h.wards.List())
}

func (h *WardsHandler) Create(ctx *gin.Context) {
	var req ward.CreateRequest

	if !BindJSON(ctx, &req, "Missing required fields") {
		return
	}

	w, err := h.wards.Add(req)

	if err != nil {
		if errors.Is(err, ward.ErrDuplicateID) {
			RespondBadRequest(ctx, "Ward with this ID already exists")
			return
		}

		RespondInternal(ctx, "Could not create ward")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"ward":    w,
	})
}
