package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppointmentStatusValid(t *testing.T) {
	assert.True(t, AppointmentStatusScheduled.Valid())
	assert.True(t, AppointmentStatusCompleted.Valid())
	assert.True(t, AppointmentStatusCancelled.Valid())
	assert.False(t, AppointmentStatus("pending").Valid())
	assert.False(t, AppointmentStatus("").Valid())
}

func TestCanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from AppointmentStatus
		to   AppointmentStatus
		want bool
	}{
		{"scheduled stays scheduled", AppointmentStatusScheduled, AppointmentStatusScheduled, true},
		{"scheduled completes", AppointmentStatusScheduled, AppointmentStatusCompleted, true},
		{"scheduled cancels", AppointmentStatusScheduled, AppointmentStatusCancelled, true},
		{"completed stays completed", AppointmentStatusCompleted, AppointmentStatusCompleted, true},
		{"completed cannot reopen", AppointmentStatusCompleted, AppointmentStatusScheduled, false},
		{"completed cannot cancel", AppointmentStatusCompleted, AppointmentStatusCancelled, false},
		{"cancelled stays cancelled", AppointmentStatusCancelled, AppointmentStatusCancelled, true},
		{"cancelled cannot reopen", AppointmentStatusCancelled, AppointmentStatusScheduled, false},
		{"cancelled cannot complete", AppointmentStatusCancelled, AppointmentStatusCompleted, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &Appointment{Status: tt.from}
			assert.Equal(t, tt.want, a.CanTransitionTo(tt.to))
		})
	}
}

func TestStatusPredicates(t *testing.T) {
	a := &Appointment{Status: AppointmentStatusScheduled}
	assert.True(t, a.IsScheduled())

	a.Complete()
	assert.True(t, a.IsCompleted())
	assert.False(t, a.IsScheduled())

	a.Status = AppointmentStatusScheduled
	a.Cancel()
	assert.True(t, a.IsCancelled())
}
