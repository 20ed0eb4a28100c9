package memory

import (
	"github.com/ravaka/staffhub/internal/domain/user"
	"github.com/ravaka/staffhub/internal/domain/ward"
)

// SeedUsers returns the fixed staff accounts present at startup.
func SeedUsers() []user.User {
	return []user.User{
		{Email: "admin@hospital.com", Password: "admin123", Name: "Admin", Role: "admin", Status: user.StatusApproved},
		{Email: "nurse1@hospital.com", Password: "nurse123", Name: "Nurse Sarah", Role: "nurse", Ward: "ICU", Status: user.StatusApproved},
		{Email: "nurse2@hospital.com", Password: "nurse123", Name: "Nurse John", Role: "nurse", Ward: "Emergency", Status: user.StatusApproved},
	}
}

// SeedWards returns the fixed hospital ward list.
func SeedWards() []ward.Ward {
	ids := []string{
		"A1", "A1-NURSERY", "A2", "A3-1", "A3-2", "A4",
		"B2", "B3-1", "B3-2", "CCU/B4",
		"C1", "C2", "C3", "C4/CVT",
		"D2", "D3-1", "D3-2", "D4-1", "D4-2",
		"E1", "E2", "E3",
		"F1", "F2", "F2-2", "F3",
		"CVSD", "CSICU",
	}

	wards := make([]ward.Ward, 0, len(ids))

	for _, id := range ids {
		wards = append(wards, ward.Ward{ID: id, Name: id})
	}

	return wards
}
