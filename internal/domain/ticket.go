package domain

import "time"

// TicketStatus статус билета
type TicketStatus string

const (
	TicketStatusReserved TicketStatus = "RESERVED"
	TicketStatusPaid     TicketStatus = "PAID"
)

// TicketType тип билета
type TicketType struct {
	ID            int64
	Name          string
	Price         int64 // в центах
	IsRemote      bool
	IncludesHotel bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Ticket билет, привязанный к регистрации
type Ticket struct {
	ID           int64
	EnrollmentID int64
	TicketTypeID int64
	Status       TicketStatus
	TicketType   TicketType
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsPaid returns true if the ticket has been paid
func (t *Ticket) IsPaid() bool {
	return t.Status == TicketStatusPaid
}

// AllowsHotel returns true if the ticket grants a hotel room:
// paid, includes hotel and is not remote
func (t *Ticket) AllowsHotel() bool {
	return t.IsPaid() && t.TicketType.IncludesHotel && !t.TicketType.IsRemote
}

// IneligibilityReason описывает, почему билет не дает права на отель
// Пустая строка, если билет подходит
func (t *Ticket) IneligibilityReason() string {
	switch {
	case !t.IsPaid():
		return "ticket_not_paid"
	case t.TicketType.IsRemote:
		return "ticket_remote"
	case !t.TicketType.IncludesHotel:
		return "ticket_without_hotel"
	default:
		return ""
	}
}
