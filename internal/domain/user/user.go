package user

import (
	"errors"
	"time"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"

	RoleAdmin = "admin"
)

// User is a staff account. Passwords are stored and compared in plaintext to
// match the contract this service reproduces; that is a known security defect
// of the source system, not a design feature.
type User struct {
	Email     string    `json:"email"`
	Password  string    `json:"-"` // never expose in JSON
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Ward      string    `json:"ward,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// Public is the view returned by login and the approved-user listing.
type Public struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
	Ward  string `json:"ward,omitempty"`
}

// PendingPublic additionally carries when the signup happened.
type PendingPublic struct {
	Public
	CreatedAt time.Time `json:"createdAt"`
}

func (u User) Public() Public {
	return Public{
		Email: u.Email,
		Name:  u.Name,
		Role:  u.Role,
		Ward:  u.Ward,
	}
}

func (u User) PendingPublic() PendingPublic {
	return PendingPublic{
		Public:    u.Public(),
		CreatedAt: u.CreatedAt,
	}
}

var (
	ErrNotFound        = errors.New("user not found")
	ErrDuplicateEmail  = errors.New("email already in use")
	ErrAdminProtected  = errors.New("admin users cannot be deleted")
	ErrPendingApproval = errors.New("account pending approval")
	ErrBadCredentials  = errors.New("invalid credentials")
)

type SignupRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Role     string `json:"role" binding:"required"`
	Ward     string `json:"ward"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// CreateRequest is the admin-side direct creation payload. Same shape as
// signup, but the account lands approved immediately.
type CreateRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Role     string `json:"role" binding:"required"`
	Ward     string `json:"ward"`
}

type ApprovalRequest struct {
	Email string `json:"email" binding:"required"`
}
