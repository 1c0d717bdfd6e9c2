package dto

// Request DTOs

// BookAppointmentRequest carries a status field for wire compatibility with
// the booking clients, but bookings are always persisted as scheduled.
type BookAppointmentRequest struct {
	PatientID       uint   `json:"patient_id" validate:"required"`
	DoctorID        uint   `json:"doctor_id" validate:"required"`
	AppointmentDate string `json:"appointment_date" validate:"required,datetime=2006-01-02 15:04:05"`
	Status          string `json:"status" validate:"required,oneof=scheduled completed cancelled"`
	Reason          string `json:"reason" validate:"required"`
}

type UpdateAppointmentRequest struct {
	AppointmentDate string `json:"appointment_date" validate:"required,datetime=2006-01-02 15:04:05"`
	Status          string `json:"status" validate:"required,oneof=scheduled completed cancelled"`
	Reason          string `json:"reason" validate:"required"`
}

// Response DTOs

type AppointmentResponse struct {
	ID              uint   `json:"id"`
	PatientID       uint   `json:"patient_id"`
	DoctorID        uint   `json:"doctor_id"`
	AppointmentDate string `json:"appointment_date"`
	Status          string `json:"status"`
	Reason          string `json:"reason"`
}
