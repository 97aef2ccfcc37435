package handlers

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/linesmerrill/haemo-report-api/api"
	"github.com/linesmerrill/haemo-report-api/config"
	"github.com/linesmerrill/haemo-report-api/models"
	"github.com/linesmerrill/haemo-report-api/records"
	"github.com/linesmerrill/haemo-report-api/stats"
)

// Province serves the health-service dashboard
type Province struct {
	Store records.Store
}

// OverviewHandler returns the province figures for ?range=, monthly by default
func (p Province) OverviewHandler(w http.ResponseWriter, r *http.Request) {
	tr := models.TimeRange(r.URL.Query().Get("range"))
	if tr == "" {
		tr = models.TimeRangeMonthly
	}
	if !tr.Valid() {
		config.ErrorStatus("invalid time range", http.StatusBadRequest, w, fmt.Errorf("unknown time range %q", string(tr)))
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	all, err := p.Store.All(ctx)
	if err != nil {
		config.ErrorStatus("failed to get patients", http.StatusInternalServerError, w, err)
		return
	}

	zap.S().Debugf("province overview for range: %v", tr)
	writeJSON(w, http.StatusOK, stats.Province(stats.Hospitals(), len(all), tr))
}

// HospitalsHandler returns the participating hospitals with their case counts
func (p Province) HospitalsHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, stats.Hospitals())
}
