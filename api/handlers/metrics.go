package handlers

import (
	"net/http"

	"github.com/linesmerrill/haemo-report-api/api"
)

// metricsHandler serves the request metrics gathered since startup
func metricsHandler(mc *api.MetricsCollector) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, mc.Summary())
	})
}
