package bookingevents

import "errors"

var (
	// ErrConnect возвращается, когда не удалось подключиться к RabbitMQ
	ErrConnect = errors.New("bookingevents: failed to connect to broker")

	// ErrChannel возвращается при ошибке открытия канала или объявления очереди
	ErrChannel = errors.New("bookingevents: channel error")

	// ErrMarshal возвращается при ошибке сериализации события
	ErrMarshal = errors.New("bookingevents: failed to marshal event")

	// ErrPublish возвращается при ошибке публикации
	ErrPublish = errors.New("bookingevents: failed to publish event")
)
