package records_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/linesmerrill/haemo-report-api/models"
	"github.com/linesmerrill/haemo-report-api/records"
)

func ids(cases []models.PatientCase) []string {
	out := make([]string, 0, len(cases))
	for _, c := range cases {
		out = append(out, c.ID)
	}
	return out
}

func TestFilter(t *testing.T) {
	demo := records.DemoCases()

	tests := []struct {
		name  string
		query records.Query
		want  []string
	}{
		{"empty query returns everything", records.Query{}, []string{"P001", "P002", "P003"}},
		{"name is case insensitive", records.Query{Search: "jane"}, []string{"P002"}},
		{"upper case search", records.Query{Search: "JOHN"}, []string{"P001", "P003"}},
		{"matches id", records.Query{Search: "p003"}, []string{"P003"}},
		{"diagnosis only", records.Query{Diagnosis: "hypertension"}, []string{"P003"}},
		{"diagnosis substring", records.Query{Diagnosis: "kidney"}, []string{"P001"}},
		{"search and diagnosis", records.Query{Search: "j", Diagnosis: "diabetic-nephropathy"}, []string{"P002"}},
		{"no match", records.Query{Search: "nobody"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(records.Filter(demo, tt.query)))
		})
	}
}

func TestFilterIsIdempotent(t *testing.T) {
	q := records.Query{Search: "o", Diagnosis: "e"}
	once := records.Filter(records.DemoCases(), q)
	twice := records.Filter(once, q)

	assert.Equal(t, once, twice)
}

func TestFilterPreservesOrder(t *testing.T) {
	cases := []models.PatientCase{
		{ID: "P009", Name: "Ann"},
		{ID: "P002", Name: "Anna"},
		{ID: "P005", Name: "Bob"},
		{ID: "P001", Name: "Hannah"},
	}

	assert.Equal(t, []string{"P009", "P002", "P001"}, ids(records.Filter(cases, records.Query{Search: "ann"})))
}

func TestFilterNilInput(t *testing.T) {
	got := records.Filter(nil, records.Query{})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
