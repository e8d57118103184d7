package domain

import "time"

// Enrollment регистрация пользователя на событие (1:1 с пользователем)
type Enrollment struct {
	ID        int64
	UserID    int64
	Name      string
	CPF       string
	Birthday  time.Time
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
