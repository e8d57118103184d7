package list_hotels

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-HotelBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-HotelBookingService/internal/service/hotels"
	"github.com/m04kA/SMC-HotelBookingService/internal/service/hotels/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeService struct {
	resp []models.HotelResponse
	err  error
}

func (f *fakeService) ListHotels(context.Context, int64) ([]models.HotelResponse, error) {
	return f.resp, f.err
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name       string
		userID     int64
		svc        *fakeService
		wantStatus int
	}{
		{name: "success", userID: 1, svc: &fakeService{resp: []models.HotelResponse{{ID: 1, Name: "Driven Resort"}}}, wantStatus: http.StatusOK},
		{name: "no user", svc: &fakeService{}, wantStatus: http.StatusUnauthorized},
		{name: "payment required", userID: 1, svc: &fakeService{err: hotels.ErrCannotListHotels}, wantStatus: http.StatusPaymentRequired},
		{name: "enrollment not found", userID: 1, svc: &fakeService{err: hotels.ErrEnrollmentNotFound}, wantStatus: http.StatusNotFound},
		{name: "ticket not found", userID: 1, svc: &fakeService{err: hotels.ErrTicketNotFound}, wantStatus: http.StatusNotFound},
		{name: "internal", userID: 1, svc: &fakeService{err: errors.New("db down")}, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/hotels", nil)
			if tt.userID != 0 {
				r = r.WithContext(middleware.WithUserID(r.Context(), tt.userID))
			}
			w := httptest.NewRecorder()

			NewHandler(tt.svc, nopLogger{}).Handle(w, r)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestHandle_EmptyListIsArray(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/hotels", nil)
	r = r.WithContext(middleware.WithUserID(r.Context(), 1))
	w := httptest.NewRecorder()

	NewHandler(&fakeService{resp: []models.HotelResponse{}}, nopLogger{}).Handle(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}
