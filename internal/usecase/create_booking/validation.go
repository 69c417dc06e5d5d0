package create_booking

import (
	"fmt"

	"github.com/m04kA/SMC-TravelBooking/internal/domain"
)

// validateRequest валидирует входные данные запроса.
// Черновик проверяется мягко, ожидающее подтверждения бронирование как полная форма.
func validateRequest(req *Request) error {
	if req.UserID == "" {
		return fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}

	if req.Subject.IsZero() {
		return fmt.Errorf("%w: subject kind and id are required", ErrInvalidInput)
	}

	if _, err := domain.ParseSubjectKind(string(req.Subject.Kind)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	var verr *domain.ValidationError
	switch req.Status {
	case domain.StatusDraft:
		verr = domain.ValidateDraft(req.Details, req.CustomRequests)
	case domain.StatusPending:
		verr = domain.ValidateSubmission(req.Details, req.CustomRequests)
	default:
		return fmt.Errorf("%w: initial status must be draft or pending, got %q", ErrInvalidInput, req.Status)
	}

	if verr.HasErrors() {
		return fmt.Errorf("%w: %w", ErrInvalidInput, verr)
	}

	return nil
}
