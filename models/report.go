package models

import "time"

// ReportSnapshot is a scheduled report built from the full list of patient cases
type ReportSnapshot struct {
	ID          string     `json:"id"`
	GeneratedAt time.Time  `json:"generatedAt"`
	Statistics  Statistics `json:"statistics"`
	Filename    string     `json:"filename"`
	Content     []byte     `json:"-"`
}
