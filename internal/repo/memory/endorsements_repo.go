package memory

import (
	"strconv"
	"sync"
	"time"

	"github.com/ravaka/staffhub/internal/domain/endorsement"
)

type EndorsementsRepo struct {
	mu     sync.RWMutex
	items  []endorsement.Endorsement
	lastID int64
}

func NewEndorsementsRepo() *EndorsementsRepo {
	return &EndorsementsRepo{items: make([]endorsement.Endorsement, 0)}
}

func (r *EndorsementsRepo) Create(req endorsement.CreateRequest) (endorsement.Endorsement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var recipient *string

	// recipient only means something for targeted endorsements
	if req.Type == endorsement.TypeSpecific {
		email := req.RecipientEmail
		recipient = &email
	}

	e := endorsement.Endorsement{
		ID:              strconv.FormatInt(r.nextID(), 10),
		Message:         req.Message,
		Type:            req.Type,
		RecipientEmail:  recipient,
		SenderName:      req.SenderName,
		CreatedAt:       time.Now().UTC(),
		Acknowledgments: make([]endorsement.Acknowledgment, 0),
		Status:          endorsement.StatusActive,
	}
	r.items = append(r.items, e)

	return e, nil
}

// ListForUser returns active endorsements that are either general broadcasts
// or targeted at the given email.
func (r *EndorsementsRepo) ListForUser(email string) []endorsement.Endorsement {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]endorsement.Endorsement, 0)

	for _, e := range r.items {
		if e.Status != endorsement.StatusActive {
			continue
		}

		if e.Type == endorsement.TypeGeneral || (e.RecipientEmail != nil && *e.RecipientEmail == email) {
			out = append(out, e)
		}
	}

	return out
}

// Acknowledge records an acknowledgment once per distinct email. Repeats are
// accepted and ignored.
func (r *EndorsementsRepo) Acknowledge(id, email, initials string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].ID != id {
			continue
		}

		for _, a := range r.items[i].Acknowledgments {
			if a.Email == email {
				return nil
			}
		}

		r.items[i].Acknowledgments = append(r.items[i].Acknowledgments, endorsement.Acknowledgment{
			Email:          email,
			Initials:       initials,
			AcknowledgedAt: time.Now().UTC(),
		})

		return nil
	}

	return endorsement.ErrNotFound
}

// millisecond timestamps collide under load; bump past the last issued id so
// ids stay unique while keeping the wire format
func (r *EndorsementsRepo) nextID() int64 {
	id := time.Now().UnixMilli()

	if id <= r.lastID {
		id = r.lastID + 1
	}
	r.lastID = id

	return id
}
