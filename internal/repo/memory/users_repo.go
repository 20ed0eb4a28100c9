package memory

import (
	"sync"
	"time"

	"github.com/ravaka/staffhub/internal/domain/user"
)

// UsersRepo holds both the approved and the pending collections so the
// email-uniqueness invariant across the two can be enforced under one lock.
type UsersRepo struct {
	mu       sync.RWMutex
	approved []user.User
	pending  []user.User
}

func NewUsersRepo(seed ...user.User) *UsersRepo {
	r := &UsersRepo{
		approved: make([]user.User, 0, len(seed)),
		pending:  make([]user.User, 0),
	}
	r.approved = append(r.approved, seed...)

	return r
}

// Signup queues a new account for admin approval.
func (r *UsersRepo) Signup(req user.SignupRequest) (user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.emailTaken(req.Email) {
		return user.User{}, user.ErrDuplicateEmail
	}

	u := user.User{
		Email:     req.Email,
		Password:  req.Password,
		Name:      req.Name,
		Role:      req.Role,
		Ward:      req.Ward,
		Status:    user.StatusPending,
		CreatedAt: time.Now().UTC(),
	}
	r.pending = append(r.pending, u)

	return u, nil
}

// Authenticate checks approved accounts first, then pending ones so the
// caller can tell "wrong password" apart from "not approved yet".
func (r *UsersRepo) Authenticate(email, password string) (user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.approved {
		if u.Email == email && u.Password == password {
			return u, nil
		}
	}

	for _, u := range r.pending {
		if u.Email == email && u.Password == password {
			return user.User{}, user.ErrPendingApproval
		}
	}

	return user.User{}, user.ErrBadCredentials
}

func (r *UsersRepo) ListApproved() []user.User {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]user.User, len(r.approved))
	copy(out, r.approved)

	return out
}

func (r *UsersRepo) ListPending() []user.User {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]user.User, len(r.pending))
	copy(out, r.pending)

	return out
}

// Approve moves a pending account into the approved collection. The move is
// one-way; there is no un-approve.
func (r *UsersRepo) Approve(email string) (user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, u := range r.pending {
		if u.Email == email {
			u.Status = user.StatusApproved
			r.approved = append(r.approved, u)
			r.pending = append(r.pending[:i], r.pending[i+1:]...)

			return u, nil
		}
	}

	return user.User{}, user.ErrNotFound
}

func (r *UsersRepo) Reject(email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, u := range r.pending {
		if u.Email == email {
			r.pending = append(r.pending[:i], r.pending[i+1:]...)

			return nil
		}
	}

	return user.ErrNotFound
}

// Create adds an approved account directly, skipping the approval queue.
func (r *UsersRepo) Create(req user.CreateRequest) (user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.emailTaken(req.Email) {
		return user.User{}, user.ErrDuplicateEmail
	}

	u := user.User{
		Email:     req.Email,
		Password:  req.Password,
		Name:      req.Name,
		Role:      req.Role,
		Ward:      req.Ward,
		Status:    user.StatusApproved,
		CreatedAt: time.Now().UTC(),
	}
	r.approved = append(r.approved, u)

	return u, nil
}

// Delete removes an approved account. Admin accounts are never deletable.
func (r *UsersRepo) Delete(email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, u := range r.approved {
		if u.Email == email {
			if u.Role == user.RoleAdmin {
				return user.ErrAdminProtected
			}

			r.approved = append(r.approved[:i], r.approved[i+1:]...)

			return nil
		}
	}

	return user.ErrNotFound
}

// callers must hold the lock
func (r *UsersRepo) emailTaken(email string) bool {
	for _, u := range r.approved {
		if u.Email == email {
			return true
		}
	}
	for _, u := range r.pending {
		if u.Email == email {
			return true
		}
	}

	return false
}
