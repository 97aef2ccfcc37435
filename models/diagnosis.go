package models

// Diagnosis is the classification code of a patient's renal condition
type Diagnosis string

// Diagnosis codes accepted by the registration form
const (
	DiagnosisChronicKidneyDisease Diagnosis = "chronic-kidney-disease"
	DiagnosisDiabeticNephropathy  Diagnosis = "diabetic-nephropathy"
	DiagnosisHypertension         Diagnosis = "hypertension"
	DiagnosisGlomerulonephritis   Diagnosis = "glomerulonephritis"
	DiagnosisPolycysticKidney     Diagnosis = "polycystic-kidney"
	DiagnosisLupusNephritis       Diagnosis = "lupus-nephritis"
	DiagnosisOther                Diagnosis = "other"
)

// DiagnosisOption pairs a diagnosis code with the label shown on screen and in reports
type DiagnosisOption struct {
	Code        Diagnosis `json:"code"`
	DisplayName string    `json:"displayName"`
}

// Diagnoses lists every known diagnosis in the order the form presents them
var Diagnoses = []DiagnosisOption{
	{Code: DiagnosisChronicKidneyDisease, DisplayName: "Chronic Kidney Disease"},
	{Code: DiagnosisDiabeticNephropathy, DisplayName: "Diabetic Nephropathy"},
	{Code: DiagnosisHypertension, DisplayName: "Hypertension"},
	{Code: DiagnosisGlomerulonephritis, DisplayName: "Glomerulonephritis"},
	{Code: DiagnosisPolycysticKidney, DisplayName: "Polycystic Kidney Disease"},
	{Code: DiagnosisLupusNephritis, DisplayName: "Lupus Nephritis"},
	{Code: DiagnosisOther, DisplayName: "Other"},
}

// Valid reports whether d is one of the known diagnosis codes
func (d Diagnosis) Valid() bool {
	for _, o := range Diagnoses {
		if o.Code == d {
			return true
		}
	}
	return false
}

// DisplayName returns the human readable label for d, or the raw code if unknown
func (d Diagnosis) DisplayName() string {
	for _, o := range Diagnoses {
		if o.Code == d {
			return o.DisplayName
		}
	}
	return string(d)
}
