package dto

// Request DTOs

type CreateDoctorRequest struct {
	FirstName      string `json:"first_name" validate:"required,max=255"`
	LastName       string `json:"last_name" validate:"required,max=255"`
	Specialization string `json:"specialization" validate:"required,max=255"`
	LicenseNumber  string `json:"license_number" validate:"required,max=255"`
	Phone          string `json:"phone" validate:"required,max=30"`
	Email          string `json:"email" validate:"required,email,max=255"`
}

// UpdateDoctorRequest is a partial update; omitted fields keep their values.
type UpdateDoctorRequest struct {
	FirstName      string `json:"first_name" validate:"omitempty,max=255"`
	LastName       string `json:"last_name" validate:"omitempty,max=255"`
	Specialization string `json:"specialization" validate:"omitempty,max=255"`
	LicenseNumber  string `json:"license_number" validate:"omitempty,max=255"`
	Phone          string `json:"phone" validate:"omitempty,max=30"`
	Email          string `json:"email" validate:"omitempty,email,max=255"`
}

// Response DTOs

type DoctorResponse struct {
	ID             uint   `json:"id"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Specialization string `json:"specialization"`
	LicenseNumber  string `json:"license_number"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
}
