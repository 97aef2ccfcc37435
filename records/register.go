package records

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/linesmerrill/haemo-report-api/models"
)

// ErrInvalidCase is returned when a registration form fails validation
var ErrInvalidCase = errors.New("invalid patient case")

var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("diagnosis", validateDiagnosis)
}

func validateDiagnosis(fl validator.FieldLevel) bool {
	return models.Diagnosis(fl.Field().String()).Valid()
}

// Validator returns the shared validator, with the diagnosis tag registered
func Validator() *validator.Validate {
	return validate
}

// NewCase validates the registration form and builds the case to append,
// deriving age from the date of birth as of now. The id is left to the store.
func NewCase(form models.NewPatientCase, now time.Time) (models.PatientCase, error) {
	form.Name = strings.TrimSpace(form.Name)
	form.Address = strings.TrimSpace(form.Address)
	if err := validate.Struct(form); err != nil {
		return models.PatientCase{}, fmt.Errorf("%w: %v", ErrInvalidCase, err)
	}

	dob, err := time.Parse(models.DateLayout, form.DateOfBirth)
	if err != nil {
		return models.PatientCase{}, fmt.Errorf("%w: %v", ErrInvalidCase, err)
	}
	if dob.After(now) {
		return models.PatientCase{}, fmt.Errorf("%w: date of birth %s is in the future", ErrInvalidCase, form.DateOfBirth)
	}

	return models.PatientCase{
		Name:           form.Name,
		DateOfBirth:    form.DateOfBirth,
		Age:            AgeOn(dob, now),
		Gender:         form.Gender,
		Address:        form.Address,
		Diagnosis:      form.Diagnosis,
		DateRegistered: now.Format(models.DateLayout),
	}, nil
}
