package endorsement

import (
	"errors"
	"time"
)

const (
	TypeGeneral  = "general"
	TypeSpecific = "specific"

	StatusActive = "active"
)

type Acknowledgment struct {
	Email          string    `json:"email"`
	Initials       string    `json:"initials"`
	AcknowledgedAt time.Time `json:"acknowledgedAt"`
}

// Endorsement is a broadcast or targeted shift message. RecipientEmail is set
// only for the "specific" type and serializes as null otherwise.
type Endorsement struct {
	ID              string           `json:"id"`
	Message         string           `json:"message"`
	Type            string           `json:"type"`
	RecipientEmail  *string          `json:"recipientEmail"`
	SenderName      string           `json:"senderName"`
	CreatedAt       time.Time        `json:"createdAt"`
	Acknowledgments []Acknowledgment `json:"acknowledgments"`
	Status          string           `json:"status"`
}

var ErrNotFound = errors.New("endorsement not found")

type CreateRequest struct {
	Message        string `json:"message" binding:"required"`
	Type           string `json:"type" binding:"required"`
	SenderName     string `json:"senderName" binding:"required"`
	RecipientEmail string `json:"recipientEmail"`
}

// AcknowledgeRequest has no required fields: the source accepted whatever the
// client sent and keyed idempotence on the email alone.
type AcknowledgeRequest struct {
	UserEmail    string `json:"userEmail"`
	UserInitials string `json:"userInitials"`
}
