package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/m04kA/SMC-HotelBookingService/internal/api/handlers"
)

const (
	msgMissingToken = "отсутствует токен авторизации"
	msgInvalidToken = "недействительный токен авторизации"
)

type contextKey string

const userIDKey contextKey = "user_id"

var (
	// ErrMissingToken возвращается, когда заголовок Authorization пуст или без Bearer
	ErrMissingToken = errors.New("auth: missing bearer token")

	// ErrInvalidToken возвращается, когда токен не прошел проверку
	ErrInvalidToken = errors.New("auth: invalid token")
)

// Claims полезная нагрузка токена. ID пользователя берется из userId, иначе из sub
type Claims struct {
	UserID int64 `json:"userId,omitempty"`
	jwt.RegisteredClaims
}

// Auth проверяет Bearer токен (HS256) и кладет ID пользователя в контекст
func Auth(secret string, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, err := ParseToken(r.Header.Get("Authorization"), secret)
			if err != nil {
				logger.Warn("%s %s - Unauthorized: %v", r.Method, r.URL.Path, err)
				if errors.Is(err, ErrMissingToken) {
					handlers.RespondUnauthorized(w, msgMissingToken)
				} else {
					handlers.RespondUnauthorized(w, msgInvalidToken)
				}
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		})
	}
}

// ParseToken достает ID пользователя из значения заголовка Authorization
func ParseToken(header, secret string) (int64, error) {
	if !strings.HasPrefix(header, "Bearer ") {
		return 0, ErrMissingToken
	}
	raw := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	if raw == "" {
		return 0, ErrMissingToken
	}

	var claims Claims
	token, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return 0, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	userID := claims.UserID
	if userID == 0 && claims.Subject != "" {
		userID, err = strconv.ParseInt(claims.Subject, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: subject is not a user id: %v", ErrInvalidToken, err)
		}
	}
	if userID <= 0 {
		return 0, fmt.Errorf("%w: token has no user id", ErrInvalidToken)
	}

	return userID, nil
}

// WithUserID кладет ID пользователя в контекст
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// GetUserID возвращает ID пользователя, положенный Auth
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}
