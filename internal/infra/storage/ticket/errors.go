package ticket

import "errors"

var (
	// ErrTicketNotFound возвращается, когда у регистрации нет билета
	ErrTicketNotFound = errors.New("ticket.repository: ticket not found")

	ErrBuildQuery = errors.New("ticket.repository: failed to build query")
	ErrScanRow    = errors.New("ticket.repository: failed to scan row")
)
