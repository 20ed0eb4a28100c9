package booking

import (
	"errors"
	"time"
)

const StatusPending = "pending"

// Booking is a pathology-transport request. IDs are millisecond timestamps,
// matching the wire format the source exposed.
type Booking struct {
	ID              int64     `json:"id"`
	AccessionNumber string    `json:"accessionNumber"`
	MRN             string    `json:"mrn"`
	ExtensionNumber string    `json:"extensionNumber"`
	SendingTime     string    `json:"sendingTime"`
	Notes           string    `json:"notes"`
	Status          string    `json:"status"`
	CreatedBy       string    `json:"createdBy"`
	CreatedByRole   string    `json:"createdByRole"`
	CreatedAt       time.Time `json:"createdAt"`
}

var ErrNotFound = errors.New("pth booking not found")

type CreateRequest struct {
	AccessionNumber string `json:"accessionNumber" binding:"required"`
	MRN             string `json:"mrn" binding:"required"`
	ExtensionNumber string `json:"extensionNumber" binding:"required"`
	SendingTime     string `json:"sendingTime" binding:"required"`
	Notes           string `json:"notes"`
	CreatedBy       string `json:"createdBy"`
	CreatedByRole   string `json:"createdByRole"`
}
