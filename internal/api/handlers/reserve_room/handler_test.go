package reserve_room

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-HotelBookingService/internal/api/middleware"
	reserveRoom "github.com/m04kA/SMC-HotelBookingService/internal/usecase/reserve_room"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	got  *reserveRoom.Request
	resp *reserveRoom.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *reserveRoom.Request) (*reserveRoom.Response, error) {
	f.got = req
	return f.resp, f.err
}

func newRequest(body string, userID int64) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/booking", strings.NewReader(body))
	if userID != 0 {
		r = r.WithContext(middleware.WithUserID(r.Context(), userID))
	}
	return r
}

func TestHandle_Success(t *testing.T) {
	uc := &fakeUseCase{resp: &reserveRoom.Response{BookingID: 77}}
	h := NewHandler(uc, nopLogger{})
	w := httptest.NewRecorder()

	h.Handle(w, newRequest(`{"roomId": 3}`, 10))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"bookingId": 77}`, w.Body.String())
	assert.Equal(t, &reserveRoom.Request{UserID: 10, RoomID: 3}, uc.got)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		userID     int64
		ucErr      error
		wantStatus int
	}{
		{name: "no user", body: `{"roomId": 3}`, wantStatus: http.StatusUnauthorized},
		{name: "broken body", body: `{`, userID: 10, wantStatus: http.StatusBadRequest},
		{name: "missing room id", body: `{}`, userID: 10, wantStatus: http.StatusBadRequest},
		{name: "zero room id", body: `{"roomId": 0}`, userID: 10, wantStatus: http.StatusBadRequest},
		{name: "invalid input", body: `{"roomId": 3}`, userID: 10, ucErr: reserveRoom.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{name: "enrollment not found", body: `{"roomId": 3}`, userID: 10, ucErr: reserveRoom.ErrEnrollmentNotFound, wantStatus: http.StatusNotFound},
		{name: "room not found", body: `{"roomId": 3}`, userID: 10, ucErr: reserveRoom.ErrRoomNotFound, wantStatus: http.StatusNotFound},
		{name: "ticket ineligible", body: `{"roomId": 3}`, userID: 10, ucErr: reserveRoom.ErrTicketIneligible, wantStatus: http.StatusForbidden},
		{name: "already booked", body: `{"roomId": 3}`, userID: 10, ucErr: reserveRoom.ErrBookingAlreadyExists, wantStatus: http.StatusForbidden},
		{name: "room full", body: `{"roomId": 3}`, userID: 10, ucErr: fmt.Errorf("%w: 2/2 places taken", reserveRoom.ErrRoomFull), wantStatus: http.StatusForbidden},
		{name: "internal", body: `{"roomId": 3}`, userID: 10, ucErr: errors.New("db down"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUseCase{err: tt.ucErr}
			h := NewHandler(uc, nopLogger{})
			w := httptest.NewRecorder()

			h.Handle(w, newRequest(tt.body, tt.userID))

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), fmt.Sprintf(`"code":%d`, tt.wantStatus))
		})
	}
}
