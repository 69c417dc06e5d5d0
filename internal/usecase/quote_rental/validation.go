package quote_rental

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.SubjectID == "" {
		return fmt.Errorf("%w: subjectID is required", ErrInvalidInput)
	}
	return nil
}

// hasValidDates проверяет, что обе даты заданы и конец позже начала
func hasValidDates(req *Request) bool {
	if req.Start.IsZero() || req.End.IsZero() {
		return false
	}
	return req.End.After(req.Start)
}
