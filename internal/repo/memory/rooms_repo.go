package memory

import (
	"sync"
	"time"

	"github.com/ravaka/staffhub/internal/domain/room"
)

type RoomsRepo struct {
	mu    sync.RWMutex
	items []room.Room
}

func NewRoomsRepo() *RoomsRepo {
	return &RoomsRepo{items: make([]room.Room, 0)}
}

func (r *RoomsRepo) ListByWard(wardID string) []room.Room {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]room.Room, 0)

	for _, rm := range r.items {
		if rm.WardID == wardID {
			out = append(out, rm)
		}
	}

	return out
}

// Upsert replaces the record for (wardId, roomNumber) if present, otherwise
// appends it. Exactly one record per key survives.
func (r *RoomsRepo) Upsert(req room.UpsertRequest) room.Room {
	r.mu.Lock()
	defer r.mu.Unlock()

	rm := room.Room{
		WardID:         req.WardID,
		RoomNumber:     req.RoomNumber,
		PatientName:    req.PatientName,
		NurseExtension: req.NurseExtension,
		NurseName:      req.NurseName,
		UpdatedAt:      time.Now().UTC(),
	}

	for i := range r.items {
		if r.items[i].WardID == rm.WardID && r.items[i].RoomNumber == rm.RoomNumber {
			r.items[i] = rm

			return rm
		}
	}

	r.items = append(r.items, rm)

	return rm
}

// Delete removes every record matching the key. Deleting a missing room is
// not an error.
func (r *RoomsRepo) Delete(wardID, roomNumber string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.items[:0]

	for _, rm := range r.items {
		if !(rm.WardID == wardID && rm.RoomNumber == roomNumber) {
			kept = append(kept, rm)
		}
	}

	r.items = kept
}
