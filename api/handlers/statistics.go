package handlers

import (
	"net/http"

	"github.com/linesmerrill/haemo-report-api/api"
	"github.com/linesmerrill/haemo-report-api/config"
	"github.com/linesmerrill/haemo-report-api/records"
	"github.com/linesmerrill/haemo-report-api/stats"
)

// Statistics exported for testing purposes
type Statistics struct {
	Store records.Store
}

// StatisticsHandler returns the dashboard summary over every registered case
func (s Statistics) StatisticsHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	all, err := s.Store.All(ctx)
	if err != nil {
		config.ErrorStatus("failed to get patients", http.StatusInternalServerError, w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats.Summarize(all))
}
