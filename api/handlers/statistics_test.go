package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linesmerrill/haemo-report-api/api/handlers"
	"github.com/linesmerrill/haemo-report-api/models"
	"github.com/linesmerrill/haemo-report-api/records"
)

func TestStatistics_StatisticsHandler(t *testing.T) {
	a := demoApp()
	response := executeRequest(a, authedRequest(t, "GET", "/api/v1/statistics", loginAs(t, a, models.RoleHospital), nil))
	checkResponseCode(t, http.StatusOK, response.Code)

	var s models.Statistics
	require.NoError(t, json.Unmarshal(response.Body.Bytes(), &s))
	assert.Equal(t, 3, s.TotalCases)
	assert.Equal(t, 3, s.ActivePatients)
	assert.Equal(t, 53.7, s.AverageAge)
	assert.Equal(t, 0, s.ThisMonth)
	assert.Equal(t, 2, s.Genders[models.GenderMale])
	assert.Equal(t, 1, s.Diagnoses[models.DiagnosisHypertension])
}

func TestStatistics_StatisticsHandlerEmpty(t *testing.T) {
	a := newApp(records.NewMemoryStore())
	response := executeRequest(a, authedRequest(t, "GET", "/api/v1/statistics", loginAs(t, a, models.RoleHospital), nil))
	checkResponseCode(t, http.StatusOK, response.Code)
	assert.JSONEq(t, `{"totalCases":0,"activePatients":0,"averageAge":0,"thisMonth":0,"diagnoses":{},"genders":{}}`, response.Body.String())
}

func TestStatistics_StatisticsHandlerStoreError(t *testing.T) {
	req, _ := http.NewRequest("GET", "/api/v1/statistics", nil)
	rr := httptest.NewRecorder()
	http.HandlerFunc(handlers.Statistics{Store: failingStore{}}.StatisticsHandler).ServeHTTP(rr, req)

	checkResponseCode(t, http.StatusInternalServerError, rr.Code)
}
