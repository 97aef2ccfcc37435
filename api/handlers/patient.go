package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/linesmerrill/haemo-report-api/api"
	"github.com/linesmerrill/haemo-report-api/api/handlers/search"
	"github.com/linesmerrill/haemo-report-api/config"
	"github.com/linesmerrill/haemo-report-api/export"
	"github.com/linesmerrill/haemo-report-api/models"
	"github.com/linesmerrill/haemo-report-api/records"
	"github.com/linesmerrill/haemo-report-api/stats"
)

// Patient exported for testing purposes
type Patient struct {
	Store records.Store
	Feed  *PatientFeed
	Now   func() time.Time
}

// patientRegistered is the payload of a patient_registered feed event
type patientRegistered struct {
	Patient    models.PatientCase `json:"patient"`
	Statistics models.Statistics  `json:"statistics"`
}

// CreatePatientHandler registers a new patient case from the submitted form
func (p Patient) CreatePatientHandler(w http.ResponseWriter, r *http.Request) {
	var form models.NewPatientCase
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		config.ErrorStatus("failed to decode request", http.StatusBadRequest, w, err)
		return
	}

	c, err := records.NewCase(form, p.Now())
	if err != nil {
		config.ErrorStatus("invalid patient case", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	created, err := p.Store.Append(ctx, c)
	if err != nil {
		config.ErrorStatus("failed to register patient", http.StatusInternalServerError, w, err)
		return
	}
	zap.S().Infow("patient registered",
		"id", created.ID,
		"diagnosis", created.Diagnosis)

	if p.Feed != nil {
		all, err := p.Store.All(ctx)
		if err != nil {
			zap.S().Errorw("failed to refresh statistics for the patient feed", "error", err)
		} else {
			p.Feed.Broadcast(EventPatientRegistered, patientRegistered{Patient: created, Statistics: stats.Summarize(all)})
		}
	}

	writeJSON(w, http.StatusCreated, created)
}

// ExportPatientsHandler downloads the filtered view in the requested ?format=
func (p Patient) ExportPatientsHandler(w http.ResponseWriter, r *http.Request) {
	format, err := export.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		config.ErrorStatus("unknown export format", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	all, err := p.Store.All(ctx)
	if err != nil {
		config.ErrorStatus("failed to get patients", http.StatusInternalServerError, w, err)
		return
	}
	view := records.Filter(all, search.QueryFrom(r))

	now := p.Now()
	body, err := export.Render(format, view, now)
	if err != nil {
		config.ErrorStatus("failed to export patients", http.StatusInternalServerError, w, err)
		return
	}

	filename := export.Filename(format, now)
	zap.S().Infow("patients exported",
		"format", format,
		"rows", len(view),
		"filename", filename)

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}
