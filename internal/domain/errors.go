package domain

import "errors"

// Виды ошибок, которые транспорт переводит в HTTP статусы.
// Конкретные ошибки usecase оборачивают один из видов через %w.
var (
	// ErrNotFound запрошенная сущность не существует (404)
	ErrNotFound = errors.New("not found")

	// ErrNoVacancy бронирование запрещено: билет не подходит, комната заполнена или не передан bookingId (403)
	ErrNoVacancy = errors.New("no vacancy")

	// ErrPaymentRequired билет не оплачен или не включает отель при просмотре отелей (402)
	ErrPaymentRequired = errors.New("payment required")
)

// kindError конкретная ошибка, относящаяся к одному из видов выше
type kindError struct {
	kind error
	msg  string
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Unwrap() error { return e.kind }

// NewError создает ошибку с текстом msg, для которой errors.Is(err, kind) == true
func NewError(kind error, msg string) error {
	return &kindError{kind: kind, msg: msg}
}
