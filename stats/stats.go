// Package stats computes the summary figures shown on the hospital and
// province dashboards.
package stats

import (
	"math"

	"github.com/linesmerrill/haemo-report-api/models"
)

// thisMonthRatio is the fixed share of all cases reported as "this month".
// It is a placeholder figure, not a count of cases registered this month.
const thisMonthRatio = 0.26

// Summarize builds the hospital dashboard statistics for cases.
// An empty list yields zero for every figure.
func Summarize(cases []models.PatientCase) models.Statistics {
	s := models.Statistics{
		TotalCases:     len(cases),
		ActivePatients: len(cases),
		AverageAge:     AverageAge(cases),
		ThisMonth:      ThisMonth(len(cases)),
		Diagnoses:      map[models.Diagnosis]int{},
		Genders:        map[models.Gender]int{},
	}
	for _, c := range cases {
		s.Diagnoses[c.Diagnosis]++
		s.Genders[c.Gender]++
	}
	return s
}

// AverageAge returns the mean age of cases rounded to one decimal place, or 0 when there are none
func AverageAge(cases []models.PatientCase) float64 {
	if len(cases) == 0 {
		return 0
	}
	var sum int
	for _, c := range cases {
		sum += c.Age
	}
	return round1(float64(sum) / float64(len(cases)))
}

// ThisMonth returns the placeholder "this month" figure for a total case count
func ThisMonth(total int) int {
	return int(math.Floor(float64(total) * thisMonthRatio))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
