package records

import "time"

// AgeOn returns the age in whole years of someone born on dob, as of today.
// A birth date in the future yields 0.
func AgeOn(dob, today time.Time) int {
	age := today.Year() - dob.Year()
	if today.Month() < dob.Month() || (today.Month() == dob.Month() && today.Day() < dob.Day()) {
		age--
	}
	if age < 0 {
		return 0
	}
	return age
}
