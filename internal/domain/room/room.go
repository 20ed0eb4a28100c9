package room

import "time"

// Room is a patient-room assignment, keyed by (wardId, roomNumber). There is
// no separate id; posting the same key again replaces the record.
type Room struct {
	WardID         string    `json:"wardId"`
	RoomNumber     string    `json:"roomNumber"`
	PatientName    string    `json:"patientName"`
	NurseExtension string    `json:"nurseExtension"`
	NurseName      string    `json:"nurseName"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type UpsertRequest struct {
	WardID         string `json:"wardId" binding:"required"`
	RoomNumber     string `json:"roomNumber" binding:"required"`
	PatientName    string `json:"patientName"`
	NurseExtension string `json:"nurseExtension" binding:"required"`
	NurseName      string `json:"nurseName" binding:"required"`
}
