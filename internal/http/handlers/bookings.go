package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ravaka/staffhub/internal/domain/booking"
)

type BookingsStore interface {
	List() []booking.Booking
	Create(req booking.CreateRequest) (booking.Booking, error)
	Delete(id int64) error
}

type BookingsHandler struct {
	bookings BookingsStore
}

func NewBookingsHandler(bookings BookingsStore) *BookingsHandler {
	return &BookingsHandler{bookings: bookings}
}

func (h *BookingsHandler) List(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, h.bookings.List())
}

func (h *BookingsHandler) Create(ctx *gin.Context) {
	var req booking.CreateRequest

	if !BindJSON(ctx, &req, "Missing required fields") {
		return
	}

	b, err := h.bookings.Create(req)

	if err != nil {
		RespondInternal(ctx, "Could not create PTH booking")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"booking": b,
	})
}

func (h *BookingsHandler) Delete(ctx *gin.Context) {
	// a non-numeric id can never match a booking, so it takes the 404 path
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)

	if err == nil {
		err = h.bookings.Delete(id)
	}

	if err != nil {
		RespondNotFound(ctx, "PTH booking not found")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true})
}
