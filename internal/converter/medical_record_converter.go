package converter

import (
	"time"

	"go-hospital-management/internal/delivery/dto"
	"go-hospital-management/internal/domain/entity"
)

// MedicalRecordToResponse converts a MedicalRecord entity to its DTO
func MedicalRecordToResponse(record *entity.MedicalRecord) *dto.MedicalRecordResponse {
	if record == nil {
		return nil
	}

	return &dto.MedicalRecordResponse{
		ID:        record.ID,
		PatientID: record.PatientID,
		DoctorID:  record.DoctorID,
		VisitDate: record.VisitDate.Format(dateLayout),
		Diagnosis: record.Diagnosis,
		Treatment: record.Treatment,
		Notes:     record.Notes,
	}
}

// MedicalRecordsToResponses converts a slice of MedicalRecord entities to DTOs
func MedicalRecordsToResponses(records []entity.MedicalRecord) []dto.MedicalRecordResponse {
	responses := make([]dto.MedicalRecordResponse, len(records))
	for i := range records {
		responses[i] = *MedicalRecordToResponse(&records[i])
	}
	return responses
}

// MedicalRecordRequestToEntity maps a validated create/update request onto a
// MedicalRecord entity.
func MedicalRecordRequestToEntity(req *dto.CreateMedicalRecordRequest, record *entity.MedicalRecord) {
	visitDate, _ := time.Parse(dateLayout, req.VisitDate)
	record.PatientID = req.PatientID
	record.DoctorID = req.DoctorID
	record.VisitDate = visitDate
	record.Diagnosis = req.Diagnosis
	record.Treatment = req.Treatment
	record.Notes = req.Notes
}
