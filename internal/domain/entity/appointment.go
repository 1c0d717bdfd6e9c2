package entity

import "time"

// AppointmentStatus represents the lifecycle state of an appointment
type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "scheduled"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// Appointment links a patient and a doctor at a point in time. Booking always
// starts an appointment as scheduled; completed and cancelled are terminal.
type Appointment struct {
	ID              uint              `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID       uint              `gorm:"not null;index" json:"patient_id"`
	DoctorID        uint              `gorm:"not null;index" json:"doctor_id"`
	AppointmentDate time.Time         `gorm:"not null" json:"appointment_date"`
	Status          AppointmentStatus `gorm:"type:varchar(20);not null;default:'scheduled';index" json:"status"`
	Reason          string            `gorm:"type:text;not null" json:"reason"`
	CreatedAt       time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient *Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor  *Doctor  `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

func (s AppointmentStatus) Valid() bool {
	switch s {
	case AppointmentStatusScheduled, AppointmentStatusCompleted, AppointmentStatusCancelled:
		return true
	}
	return false
}

// IsScheduled checks if the appointment is still open
func (a *Appointment) IsScheduled() bool {
	return a.Status == AppointmentStatusScheduled
}

// IsCompleted checks if the appointment has been completed
func (a *Appointment) IsCompleted() bool {
	return a.Status == AppointmentStatusCompleted
}

// IsCancelled checks if the appointment has been cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}

// CanTransitionTo reports whether moving to next is a legal transition.
// scheduled may move to any status; completed and cancelled are terminal and
// only accept their own value (a no-op re-statement).
func (a *Appointment) CanTransitionTo(next AppointmentStatus) bool {
	if a.Status == next {
		return true
	}
	return a.Status == AppointmentStatusScheduled
}

// Cancel marks the appointment cancelled
func (a *Appointment) Cancel() {
	a.Status = AppointmentStatusCancelled
}

// Complete marks the appointment completed
func (a *Appointment) Complete() {
	a.Status = AppointmentStatusCompleted
}
