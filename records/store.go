// Package records owns the list of registered patient cases: the store that
// holds them in insertion order, the registration rules that build a case
// from the form, and the search that narrows the list to a filtered view.
package records

import (
	"context"
	"fmt"

	"github.com/linesmerrill/haemo-report-api/models"
)

// Store is an append-only list of patient cases
type Store interface {
	// Append adds c to the end of the list, assigning the next sequential id.
	Append(ctx context.Context, c models.PatientCase) (models.PatientCase, error)
	// All returns every case in insertion order.
	All(ctx context.Context) ([]models.PatientCase, error)
}

// FormatID renders the n-th sequence number as a patient id, e.g. P001
func FormatID(n int64) string {
	return fmt.Sprintf("P%03d", n)
}

// DemoCases returns the records the dashboard starts with when demo data is enabled
func DemoCases() []models.PatientCase {
	return []models.PatientCase{
		{
			ID:             "P001",
			Name:           "John Doe",
			DateOfBirth:    "1970-03-15",
			Age:            54,
			Gender:         models.GenderMale,
			Address:        "123 Main Street, City",
			Diagnosis:      models.DiagnosisChronicKidneyDisease,
			DateRegistered: "2024-01-10",
			Sequence:       1,
		},
		{
			ID:             "P002",
			Name:           "Jane Smith",
			DateOfBirth:    "1965-07-22",
			Age:            59,
			Gender:         models.GenderFemale,
			Address:        "456 Oak Avenue, Town",
			Diagnosis:      models.DiagnosisDiabeticNephropathy,
			DateRegistered: "2024-01-12",
			Sequence:       2,
		},
		{
			ID:             "P003",
			Name:           "Michael Johnson",
			DateOfBirth:    "1975-11-08",
			Age:            48,
			Gender:         models.GenderMale,
			Address:        "789 Pine Road, Village",
			Diagnosis:      models.DiagnosisHypertension,
			DateRegistered: "2024-01-15",
			Sequence:       3,
		},
	}
}
