package models

// Statistics holds the summary cards of the hospital dashboard
type Statistics struct {
	TotalCases     int               `json:"totalCases"`
	ActivePatients int               `json:"activePatients"`
	AverageAge     float64           `json:"averageAge"`
	ThisMonth      int               `json:"thisMonth"`
	Diagnoses      map[Diagnosis]int `json:"diagnoses"`
	Genders        map[Gender]int    `json:"genders"`
}
