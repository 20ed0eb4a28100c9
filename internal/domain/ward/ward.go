package ward

import "errors"

// Ward is a named hospital unit. The list is append-only: there is no update
// or delete operation in the contract.
type Ward struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

var ErrDuplicateID = errors.New("ward id already exists")

type CreateRequest struct {
	ID   string `json:"id" binding:"required"`
	Name string `json:"name" binding:"required"`
}
