package models

// Hospital is a participating dialysis unit in the province
type Hospital struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Cases int    `json:"cases"`
}

// TimeRange is the reporting window selected on the health-service dashboard
type TimeRange string

// Reporting windows offered by the province dashboard
const (
	TimeRangeDaily     TimeRange = "daily"
	TimeRangeWeekly    TimeRange = "weekly"
	TimeRangeMonthly   TimeRange = "monthly"
	TimeRangeQuarterly TimeRange = "quarterly"
	TimeRangeSemester  TimeRange = "semester"
	TimeRangeYearly    TimeRange = "yearly"
)

// Valid reports whether t is one of the known reporting windows
func (t TimeRange) Valid() bool {
	switch t {
	case TimeRangeDaily, TimeRangeWeekly, TimeRangeMonthly, TimeRangeQuarterly, TimeRangeSemester, TimeRangeYearly:
		return true
	}
	return false
}

// ProvinceOverview holds the figures shown to provincial health-service administrators
type ProvinceOverview struct {
	TimeRange               TimeRange  `json:"timeRange"`
	TotalCases              int        `json:"totalCases"`
	ActiveHospitals         int        `json:"activeHospitals"`
	TotalPatients           int        `json:"totalPatients"`
	AverageCasesPerHospital float64    `json:"averageCasesPerHospital"`
	Hospitals               []Hospital `json:"hospitals"`
}
