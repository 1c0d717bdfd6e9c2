package dto

// Request DTOs

type CreatePatientRequest struct {
	FirstName        string `json:"first_name" validate:"required,max=255"`
	LastName         string `json:"last_name" validate:"required,max=255"`
	DateOfBirth      string `json:"date_of_birth" validate:"required,datetime=2006-01-02"`
	Gender           string `json:"gender" validate:"required,oneof=Male Female Other"`
	Address          string `json:"address" validate:"required"`
	Phone            string `json:"phone" validate:"required,max=30"`
	Email            string `json:"email" validate:"required,email"`
	EmergencyContact string `json:"emergency_contact" validate:"required"`
	MedicalHistory   string `json:"medical_history" validate:"required"`
}

// UpdatePatientRequest carries the same rule set as create; patient updates
// are full replacements, matching the write path this API grew out of.
type UpdatePatientRequest = CreatePatientRequest

// Response DTOs

type PatientResponse struct {
	ID               uint   `json:"id"`
	FirstName        string `json:"first_name"`
	LastName         string `json:"last_name"`
	DateOfBirth      string `json:"date_of_birth"`
	Gender           string `json:"gender"`
	Address          string `json:"address"`
	Phone            string `json:"phone"`
	Email            string `json:"email"`
	EmergencyContact string `json:"emergency_contact"`
	MedicalHistory   string `json:"medical_history"`
}
