package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ravaka/staffhub/internal/domain/room"
)

type RoomsStore interface {
	ListByWard(wardID string) []room.Room
	Upsert(req room.UpsertRequest) room.Room
	Delete(wardID, roomNumber string)
}

type RoomsHandler struct {
	rooms RoomsStore
}

func NewRoomsHandler(rooms RoomsStore) *RoomsHandler {
	return &RoomsHandler{rooms: rooms}
}

func (h *RoomsHandler) ListByWard(ctx *gin.Context) {
	wardID := ctx.Param("wardId")

	ctx.JSON(http.StatusOK, h.rooms.ListByWard(wardID))
}

func (h *RoomsHandler) Upsert(ctx *gin.Context) {
	var req room.UpsertRequest

	if !BindJSON(ctx, &req, "Missing required fields") {
		return
	}

	rm := h.rooms.Upsert(req)

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"room":    rm,
	})
}

func (h *RoomsHandler) Delete(ctx *gin.Context) {
	wardID := ctx.Param("wardId")
	roomNumber := ctx.Param("roomNumber")

	h.rooms.Delete(wardID, roomNumber)

	ctx.JSON(http.StatusOK, gin.H{"success": true})
}
