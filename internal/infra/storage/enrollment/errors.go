package enrollment

import "errors"

var (
	// ErrEnrollmentNotFound возвращается, когда у пользователя нет регистрации
	ErrEnrollmentNotFound = errors.New("enrollment.repository: enrollment not found")

	ErrBuildQuery = errors.New("enrollment.repository: failed to build query")
	ErrScanRow    = errors.New("enrollment.repository: failed to scan row")
)
