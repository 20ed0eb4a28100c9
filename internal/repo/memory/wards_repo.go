package memory

import (
	"sync"

	"github.com/ravaka/staffhub/internal/domain/ward"
)

type WardsRepo struct {
	mu    sync.RWMutex
	items []ward.Ward
}

func NewWardsRepo(seed ...ward.Ward) *WardsRepo {
	r := &WardsRepo{items: make([]ward.Ward, 0, len(seed))}
	r.items = append(r.items, seed...)

	return r
}

func (r *WardsRepo) List() []ward.Ward {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]ward.Ward, len(r.items))
	copy(out, r.items)

	return out
}

func (r *WardsRepo) Add(req ward.CreateRequest) (ward.Ward, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, w := range r.items {
		if w.ID == req.ID {
			return ward.Ward{}, ward.ErrDuplicateID
		}
	}

	w := ward.Ward{ID: req.ID, Name: req.Name}
	r.items = append(r.items, w)

	return w, nil
}
