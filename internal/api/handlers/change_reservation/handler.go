package change_reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HotelBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelBookingService/internal/api/middleware"
	changeReservation "github.com/m04kA/SMC-HotelBookingService/internal/usecase/change_reservation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса, ожидается положительный roomId"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgMissingBookingID   = "не указан ID бронирования"
	msgNoCurrentBooking   = "у пользователя нет бронирования"
	msgBookingNotFound    = "бронирование не найдено"
	msgRoomNotFound       = "комната не найдена"
	msgRoomFull           = "в комнате нет свободных мест"
	msgInvalidInput       = "некорректные данные запроса"
)

type Handler struct {
	useCase ChangeReservationUseCase
	logger  Logger
}

func NewHandler(useCase ChangeReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /booking/{bookingId} и PUT /booking
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /booking/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Отсутствующий или нечисловой bookingId уходит в use case как 0 и отклоняется там (403)
	var bookingID int64
	if raw, ok := mux.Vars(r)["bookingId"]; ok {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.logger.Warn("PUT /booking/{id} - Non-numeric booking ID: %q", raw)
		} else {
			bookingID = parsed
		}
	}

	var req ChangeReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /booking/{id} - Invalid request body: user_id=%d, error=%v", userID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(userID, bookingID))
	if err != nil {
		switch {
		case errors.Is(err, changeReservation.ErrInvalidInput):
			h.logger.Warn("PUT /booking/{id} - Invalid input: user_id=%d, booking_id=%d, room_id=%d", userID, bookingID, req.RoomID)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, changeReservation.ErrMissingBookingID):
			h.logger.Warn("PUT /booking/{id} - Missing booking ID: user_id=%d", userID)
			handlers.RespondForbidden(w, msgMissingBookingID)

		case errors.Is(err, changeReservation.ErrNoCurrentBooking):
			h.logger.Warn("PUT /booking/{id} - User has no booking: user_id=%d", userID)
			handlers.RespondForbidden(w, msgNoCurrentBooking)

		case errors.Is(err, changeReservation.ErrRoomFull):
			h.logger.Warn("PUT /booking/{id} - Room is full: user_id=%d, room_id=%d", userID, req.RoomID)
			handlers.RespondForbidden(w, msgRoomFull)

		case errors.Is(err, changeReservation.ErrRoomNotFound):
			h.logger.Warn("PUT /booking/{id} - Room not found: user_id=%d, room_id=%d", userID, req.RoomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, changeReservation.ErrBookingNotFound):
			h.logger.Warn("PUT /booking/{id} - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		default:
			h.logger.Error("PUT /booking/{id} - Failed to change reservation: user_id=%d, booking_id=%d, error=%v",
				userID, bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /booking/{id} - Reservation changed successfully: booking_id=%d, user_id=%d, room_id=%d",
		result.BookingID, userID, req.RoomID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
