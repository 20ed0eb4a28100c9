package memory

import (
	"errors"
	"testing"

	"github.com/ravaka/staffhub/internal/domain/endorsement"
)

func TestCreateEndorsementRecipientOnlyForSpecific(t *testing.T) {
	repo := NewEndorsementsRepo()

	general, err := repo.Create(endorsement.CreateRequest{
		Message:        "handover done",
		Type:           endorsement.TypeGeneral,
		SenderName:     "Nurse Sarah",
		RecipientEmail: "ignored@b.com",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if general.RecipientEmail != nil {
		t.Fatalf("general endorsement must have no recipient, got %q", *general.RecipientEmail)
	}

	if general.Status != endorsement.StatusActive {
		t.Fatalf("got status %q, want active", general.Status)
	}

	if general.Acknowledgments == nil || len(general.Acknowledgments) != 0 {
		t.Fatalf("acknowledgments must start as an empty list")
	}

	specific, err := repo.Create(endorsement.CreateRequest{
		Message:        "check bed 4",
		Type:           endorsement.TypeSpecific,
		SenderName:     "Nurse Sarah",
		RecipientEmail: "nurse2@hospital.com",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if specific.RecipientEmail == nil || *specific.RecipientEmail != "nurse2@hospital.com" {
		t.Fatalf("specific endorsement lost its recipient: %+v", specific)
	}

	if general.ID == specific.ID {
		t.Fatalf("ids must be unique even within the same millisecond")
	}
}

func TestListForUserFiltersByTypeAndRecipient(t *testing.T) {
	repo := NewEndorsementsRepo()

	mustCreate := func(req endorsement.CreateRequest) endorsement.Endorsement {
		t.Helper()
		e, err := repo.Create(req)
		if err != nil {
			t.Fatalf("create failed: %v", err)
		}
		return e
	}

	mustCreate(endorsement.CreateRequest{Message: "m1", Type: endorsement.TypeGeneral, SenderName: "s"})
	mustCreate(endorsement.CreateRequest{Message: "m2", Type: endorsement.TypeSpecific, SenderName: "s", RecipientEmail: "a@b.com"})
	mustCreate(endorsement.CreateRequest{Message: "m3", Type: endorsement.TypeSpecific, SenderName: "s", RecipientEmail: "other@b.com"})

	got := repo.ListForUser("a@b.com")

	if len(got) != 2 {
		t.Fatalf("got %d endorsements, want 2 (general + targeted)", len(got))
	}

	for _, e := range got {
		if e.Type == endorsement.TypeSpecific && *e.RecipientEmail != "a@b.com" {
			t.Fatalf("leaked endorsement targeted at someone else: %+v", e)
		}
	}
}

func TestAcknowledgeIsIdempotentPerEmail(t *testing.T) {
	repo := NewEndorsementsRepo()

	e, err := repo.Create(endorsement.CreateRequest{Message: "m", Type: endorsement.TypeGeneral, SenderName: "s"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := repo.Acknowledge(e.ID, "a@b.com", "AB"); err != nil {
		t.Fatalf("first acknowledge failed: %v", err)
	}

	// same email again, different initials: still one entry
	if err := repo.Acknowledge(e.ID, "a@b.com", "XY"); err != nil {
		t.Fatalf("repeat acknowledge failed: %v", err)
	}

	if err := repo.Acknowledge(e.ID, "c@d.com", "CD"); err != nil {
		t.Fatalf("second user acknowledge failed: %v", err)
	}

	got := repo.ListForUser("a@b.com")
	if len(got) != 1 {
		t.Fatalf("expected one endorsement, got %d", len(got))
	}

	acks := got[0].Acknowledgments
	if len(acks) != 2 {
		t.Fatalf("got %d acknowledgments, want 2", len(acks))
	}

	if acks[0].Email != "a@b.com" || acks[0].Initials != "AB" {
		t.Fatalf("first acknowledgment overwritten: %+v", acks[0])
	}
}

func TestAcknowledgeUnknownID(t *testing.T) {
	repo := NewEndorsementsRepo()

	err := repo.Acknowledge("123", "a@b.com", "AB")
	if !errors.Is(err, endorsement.ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}
