package converter

import (
	"time"

	"go-hospital-management/internal/delivery/dto"
	"go-hospital-management/internal/domain/entity"
)

const appointmentDateLayout = "2006-01-02 15:04:05"

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:              appointment.ID,
		PatientID:       appointment.PatientID,
		DoctorID:        appointment.DoctorID,
		AppointmentDate: appointment.AppointmentDate.Format(appointmentDateLayout),
		Status:          string(appointment.Status),
		Reason:          appointment.Reason,
	}
}

// AppointmentsToResponses converts a slice of Appointment entities to DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return responses
}

// BookRequestToAppointment builds the entity persisted on the booking path.
// The submitted status value is ignored: a new appointment is always
// scheduled, whatever the client sent.
func BookRequestToAppointment(req *dto.BookAppointmentRequest) *entity.Appointment {
	date, _ := time.Parse(appointmentDateLayout, req.AppointmentDate)
	return &entity.Appointment{
		PatientID:       req.PatientID,
		DoctorID:        req.DoctorID,
		AppointmentDate: date,
		Status:          entity.AppointmentStatusScheduled,
		Reason:          req.Reason,
	}
}

// ApplyUpdateRequest maps a validated update request onto an existing
// appointment. Status transition legality is checked by the caller.
func ApplyUpdateRequest(req *dto.UpdateAppointmentRequest, appointment *entity.Appointment) {
	date, _ := time.Parse(appointmentDateLayout, req.AppointmentDate)
	appointment.AppointmentDate = date
	appointment.Status = entity.AppointmentStatus(req.Status)
	appointment.Reason = req.Reason
}
