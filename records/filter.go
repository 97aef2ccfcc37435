package records

import (
	"strings"

	"github.com/linesmerrill/haemo-report-api/models"
)

// Query holds the search box and diagnosis select of the patient table
type Query struct {
	Search    string
	Diagnosis string
}

// Matches reports whether c belongs to the filtered view described by q
func (q Query) Matches(c models.PatientCase) bool {
	if q.Search != "" {
		s := strings.ToLower(q.Search)
		if !strings.Contains(strings.ToLower(c.Name), s) && !strings.Contains(strings.ToLower(c.ID), s) {
			return false
		}
	}
	if q.Diagnosis != "" {
		if !strings.Contains(strings.ToLower(string(c.Diagnosis)), strings.ToLower(q.Diagnosis)) {
			return false
		}
	}
	return true
}

// Filter returns the cases matching q, keeping their original order.
// The result is never nil.
func Filter(cases []models.PatientCase, q Query) []models.PatientCase {
	out := make([]models.PatientCase, 0, len(cases))
	for _, c := range cases {
		if q.Matches(c) {
			out = append(out, c)
		}
	}
	return out
}
