package domain

import (
	"net/mail"
	"strings"
	"unicode/utf8"
)

// ValidateSubmission checks the booking form fields required for submission.
// Counts are expected to be normalized already.
func ValidateSubmission(d PersonalDetails, customRequests *string) *ValidationError {
	v := NewValidationError()

	if strings.TrimSpace(d.Name) == "" {
		v.Add("name", "name is required")
	} else if utf8.RuneCountInString(d.Name) > MaxNameLength {
		v.Add("name", "name is too long")
	}

	if strings.TrimSpace(d.Email) == "" {
		v.Add("email", "email is required")
	} else if !validEmail(d.Email) {
		v.Add("email", "email is not a valid address")
	}

	if strings.TrimSpace(d.Phone) == "" {
		v.Add("phone", "phone is required")
	}

	if d.DepartureDate.IsZero() {
		v.Add("departureDate", "departure date is required")
	} else if d.ReturnDate != nil && !d.ReturnDate.After(d.DepartureDate) {
		v.Add("returnDate", "return date must be after departure date")
	}

	validateCounts(v, d)

	if customRequests != nil && utf8.RuneCountInString(*customRequests) > MaxCustomRequestsLength {
		v.Add("customRequests", "custom requests are too long")
	}

	return v
}

// ValidateDraft checks only the fields that must be sane even on a draft
func ValidateDraft(d PersonalDetails, customRequests *string) *ValidationError {
	v := NewValidationError()

	if d.Email != "" && !validEmail(d.Email) {
		v.Add("email", "email is not a valid address")
	}
	if utf8.RuneCountInString(d.Name) > MaxNameLength {
		v.Add("name", "name is too long")
	}
	if !d.DepartureDate.IsZero() && d.ReturnDate != nil && !d.ReturnDate.After(d.DepartureDate) {
		v.Add("returnDate", "return date must be after departure date")
	}

	validateCounts(v, d)

	if customRequests != nil && utf8.RuneCountInString(*customRequests) > MaxCustomRequestsLength {
		v.Add("customRequests", "custom requests are too long")
	}

	return v
}

func validateCounts(v *ValidationError, d PersonalDetails) {
	if d.TravelerCount > MaxTravelerCount {
		v.Add("travelerCount", "too many travelers")
	}
	if d.ChildCount > MaxTravelerCount {
		v.Add("childCount", "too many children")
	}
	if utf8.RuneCountInString(d.ChildrenAges) > MaxChildrenAgesLength {
		v.Add("childrenAges", "children ages are too long")
	}
}

func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == strings.TrimSpace(s)
}
