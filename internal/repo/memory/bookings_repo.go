package memory

import (
	"sync"
	"time"

	"github.com/ravaka/staffhub/internal/domain/booking"
)

type BookingsRepo struct {
	mu     sync.RWMutex
	items  []booking.Booking
	lastID int64
}

func NewBookingsRepo() *BookingsRepo {
	return &BookingsRepo{items: make([]booking.Booking, 0)}
}

func (r *BookingsRepo) List() []booking.Booking {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]booking.Booking, len(r.items))
	copy(out, r.items)

	return out
}

func (r *BookingsRepo) Create(req booking.CreateRequest) (booking.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	createdBy := req.CreatedBy
	if createdBy == "" {
		createdBy = "unknown"
	}

	createdByRole := req.CreatedByRole
	if createdByRole == "" {
		createdByRole = "unknown"
	}

	b := booking.Booking{
		ID:              r.nextID(),
		AccessionNumber: req.AccessionNumber,
		MRN:             req.MRN,
		ExtensionNumber: req.ExtensionNumber,
		SendingTime:     req.SendingTime,
		Notes:           req.Notes,
		Status:          booking.StatusPending,
		CreatedBy:       createdBy,
		CreatedByRole:   createdByRole,
		CreatedAt:       time.Now().UTC(),
	}
	r.items = append(r.items, b)

	return b, nil
}

func (r *BookingsRepo) Delete(id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, b := range r.items {
		if b.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)

			return nil
		}
	}

	return booking.ErrNotFound
}

// same same-millisecond guard as the endorsements store
func (r *BookingsRepo) nextID() int64 {
	id := time.Now().UnixMilli()

	if id <= r.lastID {
		id = r.lastID + 1
	}
	r.lastID = id

	return id
}
