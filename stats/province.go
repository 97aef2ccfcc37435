package stats

import "github.com/linesmerrill/haemo-report-api/models"

// Hospitals returns the participating hospitals of the province
func Hospitals() []models.Hospital {
	return []models.Hospital{
		{ID: "HSP-001", Name: "Central Hospital", Cases: 1245},
		{ID: "HSP-002", Name: "Regional Medical Center", Cases: 987},
		{ID: "HSP-003", Name: "St. Mary's Hospital", Cases: 856},
		{ID: "HSP-004", Name: "City General Hospital", Cases: 1102},
	}
}

// Province builds the health-service overview from the hospital table and the
// number of patients registered in this service.
func Province(hospitals []models.Hospital, totalPatients int, tr models.TimeRange) models.ProvinceOverview {
	o := models.ProvinceOverview{
		TimeRange:       tr,
		ActiveHospitals: len(hospitals),
		TotalPatients:   totalPatients,
		Hospitals:       hospitals,
	}
	if o.Hospitals == nil {
		o.Hospitals = []models.Hospital{}
	}
	for _, h := range hospitals {
		o.TotalCases += h.Cases
	}
	if len(hospitals) > 0 {
		o.AverageCasesPerHospital = round1(float64(o.TotalCases) / float64(len(hospitals)))
	}
	return o
}
