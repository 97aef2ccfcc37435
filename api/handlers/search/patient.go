package search

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/linesmerrill/haemo-report-api/api"
	"github.com/linesmerrill/haemo-report-api/config"
	"github.com/linesmerrill/haemo-report-api/models"
	"github.com/linesmerrill/haemo-report-api/records"
)

// Patient searches the registered cases
type Patient struct {
	Store records.Store
}

// QueryFrom reads the search and diagnosis query parameters
func QueryFrom(r *http.Request) records.Query {
	q := r.URL.Query()
	return records.Query{
		Search:    q.Get("search"),
		Diagnosis: q.Get("diagnosis"),
	}
}

// PatientSearchHandler returns the cases matching ?search= and ?diagnosis=, in registration order
func (p Patient) PatientSearchHandler(w http.ResponseWriter, r *http.Request) {
	query := QueryFrom(r)

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	all, err := p.Store.All(ctx)
	if err != nil {
		config.ErrorStatus("failed to get patients", http.StatusInternalServerError, w, err)
		return
	}

	view := records.Filter(all, query)
	zap.S().Debugw("patient search",
		"search", query.Search,
		"diagnosis", query.Diagnosis,
		"matched", len(view))

	b, err := json.Marshal(models.PatientListResponse{Count: len(view), Patients: view})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(b)
}
