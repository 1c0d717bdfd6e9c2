package converter

import (
	"time"

	"go-hospital-management/internal/delivery/dto"
	"go-hospital-management/internal/domain/entity"
)

const dateLayout = "2006-01-02"

// PatientToResponse converts a Patient entity to PatientResponse DTO
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:               patient.ID,
		FirstName:        patient.FirstName,
		LastName:         patient.LastName,
		DateOfBirth:      patient.DateOfBirth.Format(dateLayout),
		Gender:           patient.Gender,
		Address:          patient.Address,
		Phone:            patient.Phone,
		Email:            patient.Email,
		EmergencyContact: patient.EmergencyContact,
		MedicalHistory:   patient.MedicalHistory,
	}
}

// PatientsToResponses converts a slice of Patient entities to PatientResponse DTOs
func PatientsToResponses(patients []entity.Patient) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, len(patients))
	for i := range patients {
		responses[i] = *PatientToResponse(&patients[i])
	}
	return responses
}

// PatientRequestToEntity maps a validated create/update request onto a
// Patient entity. The date has already passed datetime validation.
func PatientRequestToEntity(req *dto.CreatePatientRequest, patient *entity.Patient) {
	dob, _ := time.Parse(dateLayout, req.DateOfBirth)
	patient.FirstName = req.FirstName
	patient.LastName = req.LastName
	patient.DateOfBirth = dob
	patient.Gender = req.Gender
	patient.Address = req.Address
	patient.Phone = req.Phone
	patient.Email = req.Email
	patient.EmergencyContact = req.EmergencyContact
	patient.MedicalHistory = req.MedicalHistory
}
