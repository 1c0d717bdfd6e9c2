package handler

import (
	"encoding/json"
	"net/http"

	"go-hospital-management/internal/delivery/dto"
	"go-hospital-management/internal/usecase"
	"go-hospital-management/pkg/response"
	"go-hospital-management/pkg/validator"

	"github.com/gorilla/mux"
)

type MedicalRecordHandler struct {
	recordUsecase usecase.MedicalRecordUsecase
	validator     *validator.CustomValidator
}

func NewMedicalRecordHandler(recordUsecase usecase.MedicalRecordUsecase, validator *validator.CustomValidator) *MedicalRecordHandler {
	return &MedicalRecordHandler{
		recordUsecase: recordUsecase,
		validator:     validator,
	}
}

func (h *MedicalRecordHandler) GetMedicalRecords(w http.ResponseWriter, r *http.Request) {
	records, err := h.recordUsecase.GetAllMedicalRecords(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get medical records")
		return
	}

	response.Data(w, http.StatusOK, "medicalRecords", records)
}

func (h *MedicalRecordHandler) AddMedicalRecord(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateMedicalRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if _, err := h.recordUsecase.CreateMedicalRecord(r.Context(), &req); err != nil {
		if errs, ok := recordReferenceErrors(err); ok {
			response.ValidationError(w, errs)
			return
		}
		response.InternalServerError(w, "Failed to create medical record")
		return
	}

	response.Message(w, http.StatusCreated, "Medical Record successfully created.")
}

func (h *MedicalRecordHandler) UpdateMedicalRecord(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid medical record ID")
		return
	}

	var req dto.UpdateMedicalRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if _, err := h.recordUsecase.UpdateMedicalRecord(r.Context(), id, &req); err != nil {
		if err == usecase.ErrMedicalRecordNotFound {
			response.NotFound(w, "Medical Record not found")
			return
		}
		if errs, ok := recordReferenceErrors(err); ok {
			response.ValidationError(w, errs)
			return
		}
		response.InternalServerError(w, "Failed to update medical record")
		return
	}

	response.Message(w, http.StatusOK, "Medical Record successfully updated.")
}

// ShowMedicalRecords lists a patient's records; an empty result is a 404
func (h *MedicalRecordHandler) ShowMedicalRecords(w http.ResponseWriter, r *http.Request) {
	patientID, err := parseID(mux.Vars(r)["patient_id"])
	if err != nil {
		response.BadRequest(w, "Invalid patient ID")
		return
	}

	records, err := h.recordUsecase.GetMedicalRecordsByPatient(r.Context(), patientID)
	if err != nil {
		response.InternalServerError(w, "Failed to get medical records")
		return
	}

	if len(records) == 0 {
		response.NotFound(w, "Medical Records not found")
		return
	}

	response.Data(w, http.StatusOK, "medicalRecords", records)
}

func recordReferenceErrors(err error) (map[string][]string, bool) {
	switch err {
	case usecase.ErrRecordPatientInvalid:
		return map[string][]string{
			"patient_id": {"The selected patient_id is invalid."},
		}, true
	case usecase.ErrRecordDoctorInvalid:
		return map[string][]string{
			"doctor_id": {"The selected doctor_id is invalid."},
		}, true
	}
	return nil, false
}
