package handlers

import (
	"net/http"

	"github.com/linesmerrill/haemo-report-api/models"
)

func diagnosesHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.Diagnoses)
}
