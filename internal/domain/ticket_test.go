package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTicket_AllowsHotel(t *testing.T) {
	tests := []struct {
		name       string
		ticket     Ticket
		wantAllow  bool
		wantReason string
	}{
		{
			name:      "paid with hotel in person",
			ticket:    Ticket{Status: TicketStatusPaid, TicketType: TicketType{IncludesHotel: true}},
			wantAllow: true,
		},
		{
			name:       "reserved",
			ticket:     Ticket{Status: TicketStatusReserved, TicketType: TicketType{IncludesHotel: true}},
			wantReason: "ticket_not_paid",
		},
		{
			name:       "remote",
			ticket:     Ticket{Status: TicketStatusPaid, TicketType: TicketType{IncludesHotel: true, IsRemote: true}},
			wantReason: "ticket_remote",
		},
		{
			name:       "without hotel",
			ticket:     Ticket{Status: TicketStatusPaid, TicketType: TicketType{IncludesHotel: false}},
			wantReason: "ticket_without_hotel",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantAllow, tt.ticket.AllowsHotel())
			assert.Equal(t, tt.wantReason, tt.ticket.IneligibilityReason())
		})
	}
}

func TestRoom_Vacancy(t *testing.T) {
	room := Room{Capacity: 3}

	assert.True(t, room.HasVacancy(2))
	assert.False(t, room.HasVacancy(3))
	assert.Equal(t, 1, room.Available(2))
	assert.Equal(t, 0, room.Available(5))

	empty := Room{Capacity: 0}
	assert.False(t, empty.HasVacancy(0))
}

func TestNewError_KeepsKind(t *testing.T) {
	errRoomFull := NewError(ErrNoVacancy, "reserve_room: room is full")
	wrapped := fmt.Errorf("tx: %w", errRoomFull)

	assert.ErrorIs(t, wrapped, errRoomFull)
	assert.ErrorIs(t, wrapped, ErrNoVacancy)
	assert.NotErrorIs(t, wrapped, ErrNotFound)
	assert.Equal(t, "reserve_room: room is full", errRoomFull.Error())
}
