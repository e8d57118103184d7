package reserve_room

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelBookingService/internal/api/middleware"
	reserveRoom "github.com/m04kA/SMC-HotelBookingService/internal/usecase/reserve_room"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса, ожидается положительный roomId"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgEnrollmentNotFound = "регистрация пользователя не найдена"
	msgTicketIneligible   = "билет не дает права на бронирование отеля"
	msgAlreadyBooked      = "у пользователя уже есть бронирование"
	msgRoomNotFound       = "комната не найдена"
	msgRoomFull           = "в комнате нет свободных мест"
	msgInvalidInput       = "некорректные данные запроса"
)

type Handler struct {
	useCase ReserveRoomUseCase
	logger  Logger
}

func NewHandler(useCase ReserveRoomUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /booking
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /booking - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req ReserveRoomRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /booking - Invalid request body: user_id=%d, error=%v", userID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, reserveRoom.ErrInvalidInput):
			h.logger.Warn("POST /booking - Invalid input: user_id=%d, room_id=%d", userID, req.RoomID)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, reserveRoom.ErrEnrollmentNotFound):
			h.logger.Warn("POST /booking - Enrollment not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgEnrollmentNotFound)

		case errors.Is(err, reserveRoom.ErrRoomNotFound):
			h.logger.Warn("POST /booking - Room not found: user_id=%d, room_id=%d", userID, req.RoomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, reserveRoom.ErrTicketIneligible):
			h.logger.Warn("POST /booking - Ticket ineligible: user_id=%d", userID)
			handlers.RespondForbidden(w, msgTicketIneligible)

		case errors.Is(err, reserveRoom.ErrBookingAlreadyExists):
			h.logger.Warn("POST /booking - Booking already exists: user_id=%d", userID)
			handlers.RespondForbidden(w, msgAlreadyBooked)

		case errors.Is(err, reserveRoom.ErrRoomFull):
			h.logger.Warn("POST /booking - Room is full: user_id=%d, room_id=%d", userID, req.RoomID)
			handlers.RespondForbidden(w, msgRoomFull)

		default:
			h.logger.Error("POST /booking - Failed to reserve room: user_id=%d, room_id=%d, error=%v",
				userID, req.RoomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /booking - Room reserved successfully: booking_id=%d, user_id=%d, room_id=%d",
		result.BookingID, userID, req.RoomID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
