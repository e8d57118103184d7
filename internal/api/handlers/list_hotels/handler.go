package list_hotels

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-HotelBookingService/internal/service/hotels"
)

const (
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidInput       = "некорректный ID пользователя"
	msgEnrollmentNotFound = "регистрация пользователя не найдена"
	msgTicketNotFound     = "билет не найден"
	msgPaymentRequired    = "билет не оплачен, удаленный или не включает отель"
)

type Handler struct {
	service HotelService
	logger  Logger
}

func NewHandler(service HotelService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /hotels
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /hotels - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.service.ListHotels(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, hotels.ErrInvalidInput):
			h.logger.Warn("GET /hotels - Invalid user ID: user_id=%d", userID)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, hotels.ErrEnrollmentNotFound):
			h.logger.Warn("GET /hotels - Enrollment not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgEnrollmentNotFound)

		case errors.Is(err, hotels.ErrTicketNotFound):
			h.logger.Warn("GET /hotels - Ticket not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgTicketNotFound)

		case errors.Is(err, hotels.ErrCannotListHotels):
			h.logger.Warn("GET /hotels - Ticket does not allow hotels: user_id=%d", userID)
			handlers.RespondPaymentRequired(w, msgPaymentRequired)

		default:
			h.logger.Error("GET /hotels - Failed to list hotels: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /hotels - Hotels listed successfully: user_id=%d, count=%d", userID, len(result))
	handlers.RespondJSON(w, http.StatusOK, result)
}
