package domain

// Операции бронирования (используются в метриках и событиях)
const (
	OperationReserve = "reserve"
	OperationChange  = "change"
)

// Исходы бронирования для метрик
const (
	OutcomeSuccess          = "success"
	OutcomeTicketIneligible = "ticket_ineligible"
	OutcomeRoomFull         = "room_full"
	OutcomeNotFound         = "not_found"
	OutcomeAlreadyBooked    = "already_booked"
	OutcomeMissingBookingID = "missing_booking_id"
	OutcomeNoCurrentBooking = "no_current_booking"
	OutcomeError            = "error"
)
