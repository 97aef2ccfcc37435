// Package docs Haemodialysis Report API.
//
// Documentation of the Haemodialysis Report API.
//
//     Schemes: https
//     BasePath: /
//     Version: 1.0.0
//
//     Consumes:
//     - application/json
//
//     Produces:
//     - application/json
//     - text/csv
//     - text/plain
//
//     Security:
//     - bearer
//
//    SecurityDefinitions:
//    bearer:
//      type: apiKey
//      name: Authorization
//      in: header
//
// swagger:meta
package docs

import (
	"github.com/linesmerrill/haemo-report-api/api"
	"github.com/linesmerrill/haemo-report-api/models"
)

// swagger:route GET /health health healthEndpointID
// Lists the healthchex of the web service api.
// responses:
//   200: healthResponse

// Shows the current health of the api. true means it is alive, false means it is not.
// swagger:response healthResponse
type healthResponseWrapper struct {
	// in:body
	Body models.HealthCheckResponse
}

// swagger:route POST /api/v1/auth/login auth login
// Signs in as hospital staff or a health-service administrator.
// responses:
//   200: loginResponse
//   401: errorResponse

// swagger:parameters login
type loginParamsWrapper struct {
	// in:body
	Body models.LoginRequest
}

// A bearer token and the signed in user.
// swagger:response loginResponse
type loginResponseWrapper struct {
	// in:body
	Body models.LoginResponse
}

// swagger:route GET /api/v1/diagnoses patients diagnoses
// Lists the diagnosis codes with their display names.
// responses:
//   200: diagnosesResponse

// swagger:response diagnosesResponse
type diagnosesResponseWrapper struct {
	// in:body
	Body []models.DiagnosisOption
}

// swagger:route POST /api/v1/patients patients createPatient
// Registers a patient case. Hospital role only.
// responses:
//   201: patientResponse
//   400: errorResponse
//   403: errorResponse

// swagger:parameters createPatient
type createPatientParamsWrapper struct {
	// in:body
	Body models.NewPatientCase
}

// The registered case with its assigned id and derived age.
// swagger:response patientResponse
type patientResponseWrapper struct {
	// in:body
	Body models.PatientCase
}

// swagger:route GET /api/v1/patients patients listPatients
// Lists the cases matching the search and diagnosis filters, in registration order.
// responses:
//   200: patientListResponse

// swagger:parameters listPatients exportPatients
type patientFilterParamsWrapper struct {
	// Case-insensitive match on name or id
	// in:query
	Search string `json:"search"`
	// Diagnosis code
	// in:query
	Diagnosis string `json:"diagnosis"`
}

// swagger:response patientListResponse
type patientListResponseWrapper struct {
	// in:body
	Body models.PatientListResponse
}

// swagger:route GET /api/v1/patients/export patients exportPatients
// Downloads the filtered cases as csv, excel or pdf text.
// responses:
//   200: exportResponse
//   400: errorResponse

// swagger:parameters exportPatients
type exportParamsWrapper struct {
	// csv, excel or pdf
	// in:query
	// required: true
	Format string `json:"format"`
}

// The export file, sent as an attachment.
// swagger:response exportResponse
type exportResponseWrapper struct {
	// in:body
	Body string
}

// swagger:route GET /api/v1/statistics statistics statistics
// Summarizes every registered case.
// responses:
//   200: statisticsResponse

// swagger:response statisticsResponse
type statisticsResponseWrapper struct {
	// in:body
	Body models.Statistics
}

// swagger:route GET /api/v1/province/overview province provinceOverview
// Shows the province figures. Health-service role only.
// responses:
//   200: provinceOverviewResponse
//   400: errorResponse
//   403: errorResponse

// swagger:parameters provinceOverview
type provinceOverviewParamsWrapper struct {
	// daily, weekly, monthly, quarterly, semester or yearly
	// in:query
	Range string `json:"range"`
}

// swagger:response provinceOverviewResponse
type provinceOverviewResponseWrapper struct {
	// in:body
	Body models.ProvinceOverview
}

// swagger:route GET /api/v1/hospitals province hospitals
// Lists the participating hospitals. Health-service role only.
// responses:
//   200: hospitalsResponse

// swagger:response hospitalsResponse
type hospitalsResponseWrapper struct {
	// in:body
	Body []models.Hospital
}

// swagger:route GET /api/v1/metrics metrics metrics
// Shows request metrics gathered since startup.
// responses:
//   200: metricsResponse

// swagger:response metricsResponse
type metricsResponseWrapper struct {
	// in:body
	Body api.MetricsSummary
}

// swagger:response errorResponse
type errorResponseWrapper struct {
	// in:body
	Body models.ErrorMessageResponse
}
