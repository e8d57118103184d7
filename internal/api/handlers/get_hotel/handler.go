package get_hotel

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HotelBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-HotelBookingService/internal/service/hotels"
)

const (
	msgInvalidHotelID     = "некорректный ID отеля"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgEnrollmentNotFound = "регистрация пользователя не найдена"
	msgTicketNotFound     = "билет не найден"
	msgHotelNotFound      = "отель не найден"
	msgPaymentRequired    = "билет не оплачен, удаленный или не включает отель"
	msgRejected           = "запрос отклонен"
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

// Handle GET /hotels/{hotelId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	hotelID, err := strconv.ParseInt(mux.Vars(r)["hotelId"], 10, 64)
	if err != nil || hotelID <= 0 {
		h.logger.Warn("GET /hotels/{id} - Invalid hotel ID: %q", mux.Vars(r)["hotelId"])
		handlers.RespondBadRequest(w, msgInvalidHotelID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /hotels/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	hotel, err := h.service.GetHotelWithRooms(r.Context(), userID, hotelID)
	if err != nil {
		switch {
		case errors.Is(err, hotels.ErrInvalidInput):
			h.logger.Warn("GET /hotels/{id} - Invalid input: user_id=%d, hotel_id=%d", userID, hotelID)
			handlers.RespondBadRequest(w, msgInvalidHotelID)

		case errors.Is(err, hotels.ErrEnrollmentNotFound):
			h.logger.Warn("GET /hotels/{id} - Enrollment not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgEnrollmentNotFound)

		case errors.Is(err, hotels.ErrTicketNotFound):
			h.logger.Warn("GET /hotels/{id} - Ticket not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgTicketNotFound)

		case errors.Is(err, hotels.ErrHotelNotFound):
			h.logger.Warn("GET /hotels/{id} - Hotel not found: hotel_id=%d", hotelID)
			handlers.RespondNotFound(w, msgHotelNotFound)

		case errors.Is(err, hotels.ErrCannotListHotels):
			h.logger.Warn("GET /hotels/{id} - Ticket does not allow hotels: user_id=%d", userID)
			handlers.RespondPaymentRequired(w, msgPaymentRequired)

		case handlers.StatusFromError(err) != http.StatusInternalServerError:
			h.logger.Warn("GET /hotels/{id} - Rejected: user_id=%d, hotel_id=%d, error=%v", userID, hotelID, err)
			handlers.RespondError(w, handlers.StatusFromError(err), msgRejected)

		default:
			h.logger.Error("GET /hotels/{id} - Failed to get hotel: user_id=%d, hotel_id=%d, error=%v", userID, hotelID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /hotels/{id} - Hotel retrieved successfully: hotel_id=%d, user_id=%d, rooms=%d",
		hotelID, userID, len(hotel.Rooms))
	handlers.RespondJSON(w, http.StatusOK, hotel)
}
