package dto

// Request DTOs

type CreateMedicalRecordRequest struct {
	PatientID uint   `json:"patient_id" validate:"required"`
	DoctorID  uint   `json:"doctor_id" validate:"required"`
	VisitDate string `json:"visit_date" validate:"required,datetime=2006-01-02"`
	Diagnosis string `json:"diagnosis" validate:"required"`
	Treatment string `json:"treatment" validate:"required"`
	Notes     string `json:"notes" validate:"required"`
}

// UpdateMedicalRecordRequest mirrors create, including the FK existence rules.
type UpdateMedicalRecordRequest = CreateMedicalRecordRequest

// Response DTOs

type MedicalRecordResponse struct {
	ID        uint   `json:"id"`
	PatientID uint   `json:"patient_id"`
	DoctorID  uint   `json:"doctor_id"`
	VisitDate string `json:"visit_date"`
	Diagnosis string `json:"diagnosis"`
	Treatment string `json:"treatment"`
	Notes     string `json:"notes"`
}
