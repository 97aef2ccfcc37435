package models

// Gender is the recorded gender of a patient case
type Gender string

// Genders accepted by the patient registration form
const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// DateLayout is the calendar date layout used for every date field
const DateLayout = "2006-01-02"

// PatientCase holds the structure for a single registered haemodialysis patient
type PatientCase struct {
	ID             string    `json:"id" bson:"id"`
	Name           string    `json:"name" bson:"name"`
	DateOfBirth    string    `json:"dob" bson:"dob"`
	Age            int       `json:"age" bson:"age"`
	Gender         Gender    `json:"gender" bson:"gender"`
	Address        string    `json:"address" bson:"address"`
	Diagnosis      Diagnosis `json:"diagnosis" bson:"diagnosis"`
	DateRegistered string    `json:"dateRegistered" bson:"dateRegistered"`
	Sequence       int64     `json:"-" bson:"seq"`
}

// NewPatientCase is the patient registration form as submitted by hospital staff.
// Age is derived from DateOfBirth on entry and is not part of the form.
type NewPatientCase struct {
	Name        string    `json:"name" validate:"required"`
	DateOfBirth string    `json:"dob" validate:"required,datetime=2006-01-02"`
	Gender      Gender    `json:"gender" validate:"required,oneof=male female other"`
	Address     string    `json:"address" validate:"required"`
	Diagnosis   Diagnosis `json:"diagnosis" validate:"required,diagnosis"`
}

// PatientListResponse is returned when listing the filtered view of patient cases
type PatientListResponse struct {
	Count    int           `json:"count"`
	Patients []PatientCase `json:"patients"`
}
