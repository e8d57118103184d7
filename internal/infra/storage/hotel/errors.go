package hotel

import "errors"

var (
	// ErrHotelNotFound возвращается, когда отель не найден
	ErrHotelNotFound = errors.New("hotel.repository: hotel not found")

	ErrBuildQuery = errors.New("hotel.repository: failed to build query")
	ErrExecQuery  = errors.New("hotel.repository: failed to execute query")
	ErrScanRow    = errors.New("hotel.repository: failed to scan row")
)
