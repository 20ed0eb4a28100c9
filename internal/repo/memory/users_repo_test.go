package memory

import (
	"errors"
	"testing"

	"github.com/ravaka/staffhub/internal/domain/user"
)

func signupReq(email string) user.SignupRequest {
	return user.SignupRequest{
		Email:    email,
		Password: "p",
		Name:     "A",
		Role:     "nurse",
	}
}

func TestSignupLandsInPendingOnly(t *testing.T) {
	repo := NewUsersRepo(SeedUsers()...)

	u, err := repo.Signup(signupReq("a@b.com"))
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	if u.Status != user.StatusPending {
		t.Fatalf("got status %q, want %q", u.Status, user.StatusPending)
	}

	for _, approved := range repo.ListApproved() {
		if approved.Email == "a@b.com" {
			t.Fatalf("fresh signup must not appear in the approved set")
		}
	}

	pending := repo.ListPending()
	if len(pending) != 1 || pending[0].Email != "a@b.com" {
		t.Fatalf("expected one pending user a@b.com, got %+v", pending)
	}
}

func TestSignupRejectsDuplicateAcrossBothCollections(t *testing.T) {
	repo := NewUsersRepo(SeedUsers()...)

	// duplicate of a seeded approved account
	_, err := repo.Signup(signupReq("admin@hospital.com"))
	if !errors.Is(err, user.ErrDuplicateEmail) {
		t.Fatalf("got %v, want ErrDuplicateEmail", err)
	}

	// duplicate of a pending account
	if _, err := repo.Signup(signupReq("a@b.com")); err != nil {
		t.Fatalf("first signup failed: %v", err)
	}

	_, err = repo.Signup(signupReq("a@b.com"))
	if !errors.Is(err, user.ErrDuplicateEmail) {
		t.Fatalf("got %v, want ErrDuplicateEmail", err)
	}

	// direct creation checks pending too
	_, err = repo.Create(user.CreateRequest{Email: "a@b.com", Password: "p", Name: "A", Role: "nurse"})
	if !errors.Is(err, user.ErrDuplicateEmail) {
		t.Fatalf("got %v, want ErrDuplicateEmail", err)
	}
}

func TestApproveMovesUserOneWay(t *testing.T) {
	repo := NewUsersRepo()

	if _, err := repo.Signup(signupReq("a@b.com")); err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	u, err := repo.Approve("a@b.com")
	if err != nil {
		t.Fatalf("approve failed: %v", err)
	}

	if u.Status != user.StatusApproved {
		t.Fatalf("got status %q, want %q", u.Status, user.StatusApproved)
	}

	if len(repo.ListPending()) != 0 {
		t.Fatalf("approved user still listed as pending")
	}

	approved := repo.ListApproved()
	if len(approved) != 1 || approved[0].Email != "a@b.com" {
		t.Fatalf("expected a@b.com in approved set, got %+v", approved)
	}

	// a second approve of the same email must miss
	_, err = repo.Approve("a@b.com")
	if !errors.Is(err, user.ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestRejectRemovesPendingUser(t *testing.T) {
	repo := NewUsersRepo()

	if _, err := repo.Signup(signupReq("a@b.com")); err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	if err := repo.Reject("a@b.com"); err != nil {
		t.Fatalf("reject failed: %v", err)
	}

	if len(repo.ListPending()) != 0 {
		t.Fatalf("rejected user still pending")
	}

	if err := repo.Reject("a@b.com"); !errors.Is(err, user.ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestAuthenticate(t *testing.T) {
	repo := NewUsersRepo(SeedUsers()...)

	if _, err := repo.Signup(signupReq("a@b.com")); err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{name: "approved_match", email: "nurse1@hospital.com", password: "nurse123", wantErr: nil},
		{name: "wrong_password", email: "nurse1@hospital.com", password: "nope", wantErr: user.ErrBadCredentials},
		{name: "pending_match", email: "a@b.com", password: "p", wantErr: user.ErrPendingApproval},
		{name: "unknown_email", email: "ghost@b.com", password: "p", wantErr: user.ErrBadCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := repo.Authenticate(tt.email, tt.password)

			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("got %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestDeleteProtectsAdmins(t *testing.T) {
	repo := NewUsersRepo(SeedUsers()...)

	err := repo.Delete("admin@hospital.com")
	if !errors.Is(err, user.ErrAdminProtected) {
		t.Fatalf("got %v, want ErrAdminProtected", err)
	}

	// collection must be unchanged
	if len(repo.ListApproved()) != 3 {
		t.Fatalf("approved set changed after refused delete")
	}

	if err := repo.Delete("nurse1@hospital.com"); err != nil {
		t.Fatalf("delete nurse failed: %v", err)
	}

	if err := repo.Delete("ghost@b.com"); !errors.Is(err, user.ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}
