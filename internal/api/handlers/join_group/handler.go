package join_group

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TravelBooking/internal/api/handlers"
	"github.com/m04kA/SMC-TravelBooking/internal/api/middleware"
	joinGroup "github.com/m04kA/SMC-TravelBooking/internal/usecase/join_group"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные участника"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgGroupNotFound      = "группа не найдена"
	msgNotConfirmed       = "бронирование еще не подтверждено"
	msgAlreadyJoined      = "вы уже участник этой группы"
)

type Handler struct {
	useCase JoinGroupUseCase
	logger  Logger
}

func NewHandler(useCase JoinGroupUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/groups/{shareToken}/join
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	shareToken := mux.Vars(r)["shareToken"]

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /groups/{token}/join - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Тело необязательно
	var req JoinGroupRequest
	if r.ContentLength != 0 {
		if err := handlers.DecodeJSON(r, &req); err != nil {
			h.logger.Warn("POST /groups/{token}/join - Invalid request body: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
			return
		}
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(shareToken, userID))
	if err != nil {
		switch {
		case errors.Is(err, joinGroup.ErrInvalidInput):
			h.logger.Warn("POST /groups/{token}/join - Invalid input: user_id=%s, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)
		case errors.Is(err, joinGroup.ErrGroupNotFound):
			h.logger.Warn("POST /groups/{token}/join - Group not found: user_id=%s", userID)
			handlers.RespondNotFound(w, msgGroupNotFound)
		case errors.Is(err, joinGroup.ErrNotConfirmed):
			h.logger.Warn("POST /groups/{token}/join - Booking not confirmed: user_id=%s", userID)
			handlers.RespondConflict(w, msgNotConfirmed)
		case errors.Is(err, joinGroup.ErrAlreadyJoined):
			h.logger.Warn("POST /groups/{token}/join - Already joined: user_id=%s", userID)
			handlers.RespondConflict(w, msgAlreadyJoined)
		case errors.Is(err, joinGroup.ErrPersistence):
			h.logger.Error("POST /groups/{token}/join - Storage unavailable: user_id=%s, error=%v", userID, err)
			handlers.RespondServiceUnavailable(w)
		default:
			h.logger.Error("POST /groups/{token}/join - Failed to join group: user_id=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /groups/{token}/join - User joined: booking_id=%s, user_id=%s, participants=%d",
		result.BookingID, userID, result.ParticipantCount)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
