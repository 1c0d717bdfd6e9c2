package converter

import (
	"testing"
	"time"

	"go-hospital-management/internal/delivery/dto"
	"go-hospital-management/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookRequestToAppointmentForcesScheduled(t *testing.T) {
	tests := []string{"scheduled", "completed", "cancelled"}

	for _, submitted := range tests {
		t.Run(submitted, func(t *testing.T) {
			req := &dto.BookAppointmentRequest{
				PatientID:       3,
				DoctorID:        5,
				AppointmentDate: "2026-09-01 10:30:00",
				Status:          submitted,
				Reason:          "Annual checkup",
			}

			appointment := BookRequestToAppointment(req)
			assert.Equal(t, entity.AppointmentStatusScheduled, appointment.Status)
			assert.Equal(t, uint(3), appointment.PatientID)
			assert.Equal(t, uint(5), appointment.DoctorID)
			assert.Equal(t, "Annual checkup", appointment.Reason)
		})
	}
}

func TestBookRequestToAppointmentParsesDate(t *testing.T) {
	req := &dto.BookAppointmentRequest{
		PatientID:       1,
		DoctorID:        2,
		AppointmentDate: "2026-09-01 10:30:00",
		Status:          "scheduled",
		Reason:          "Follow-up",
	}

	appointment := BookRequestToAppointment(req)
	want := time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC)
	assert.Equal(t, want, appointment.AppointmentDate)
}

func TestApplyUpdateRequest(t *testing.T) {
	appointment := &entity.Appointment{
		ID:        9,
		PatientID: 3,
		DoctorID:  5,
		Status:    entity.AppointmentStatusScheduled,
		Reason:    "Annual checkup",
	}

	ApplyUpdateRequest(&dto.UpdateAppointmentRequest{
		AppointmentDate: "2026-09-02 11:00:00",
		Status:          "completed",
		Reason:          "Checkup done",
	}, appointment)

	assert.Equal(t, entity.AppointmentStatusCompleted, appointment.Status)
	assert.Equal(t, "Checkup done", appointment.Reason)
	assert.Equal(t, uint(3), appointment.PatientID)
}

func TestAppointmentToResponse(t *testing.T) {
	date := time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC)
	appointment := &entity.Appointment{
		ID:              9,
		PatientID:       3,
		DoctorID:        5,
		AppointmentDate: date,
		Status:          entity.AppointmentStatusScheduled,
		Reason:          "Annual checkup",
	}

	res := AppointmentToResponse(appointment)
	require.NotNil(t, res)
	assert.Equal(t, "2026-09-01 10:30:00", res.AppointmentDate)
	assert.Equal(t, "scheduled", res.Status)
}

func TestAppointmentToResponseNil(t *testing.T) {
	assert.Nil(t, AppointmentToResponse(nil))
}

func TestAppointmentsToResponsesEmpty(t *testing.T) {
	res := AppointmentsToResponses(nil)
	require.NotNil(t, res)
	assert.Len(t, res, 0)
}
