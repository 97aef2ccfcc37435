package models

// HealthCheckResponse is the body of /health
type HealthCheckResponse struct {
	Alive bool `json:"alive"`
}

// ErrorMessageResponse is the body of every failed request, e.g.
// {"Response":{"Message":"invalid patient case","Error":"..."}}
type ErrorMessageResponse struct {
	Response MessageError
}

// MessageError carries what failed and the underlying cause
type MessageError struct {
	Message string
	Error   string
}
