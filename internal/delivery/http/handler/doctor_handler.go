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

type DoctorHandler struct {
	doctorUsecase usecase.DoctorUsecase
	validator     *validator.CustomValidator
}

func NewDoctorHandler(doctorUsecase usecase.DoctorUsecase, validator *validator.CustomValidator) *DoctorHandler {
	return &DoctorHandler{
		doctorUsecase: doctorUsecase,
		validator:     validator,
	}
}

func (h *DoctorHandler) AddDoctor(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDoctorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if _, err := h.doctorUsecase.CreateDoctor(r.Context(), &req); err != nil {
		if errs, ok := doctorUniqueErrors(err); ok {
			response.ValidationError(w, errs)
			return
		}
		response.InternalServerError(w, "Failed to add doctor")
		return
	}

	response.Message(w, http.StatusCreated, "Doctor added successfully")
}

func (h *DoctorHandler) UpdateDoctor(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid doctor ID")
		return
	}

	var req dto.UpdateDoctorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if _, err := h.doctorUsecase.UpdateDoctor(r.Context(), id, &req); err != nil {
		if err == usecase.ErrDoctorNotFound {
			response.NotFound(w, "Doctor not found")
			return
		}
		if errs, ok := doctorUniqueErrors(err); ok {
			response.ValidationError(w, errs)
			return
		}
		response.InternalServerError(w, "Failed to update doctor")
		return
	}

	response.Message(w, http.StatusOK, "Doctor updated successfully")
}

func (h *DoctorHandler) DeleteDoctor(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid doctor ID")
		return
	}

	if err := h.doctorUsecase.DeleteDoctor(r.Context(), id); err != nil {
		if err == usecase.ErrDoctorNotFound {
			response.NotFound(w, "Doctor not found")
			return
		}
		response.InternalServerError(w, "Failed to delete doctor")
		return
	}

	response.Message(w, http.StatusOK, "Doctor deleted successfully")
}

// ShowDoctor returns the doctor rows matching the email query parameter
func (h *DoctorHandler) ShowDoctor(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")

	doctors, err := h.doctorUsecase.GetDoctorsByEmail(r.Context(), email)
	if err != nil {
		response.InternalServerError(w, "Failed to get doctor")
		return
	}

	response.Data(w, http.StatusOK, "doctor", doctors)
}

func (h *DoctorHandler) GetDoctors(w http.ResponseWriter, r *http.Request) {
	doctors, err := h.doctorUsecase.GetAllDoctors(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get doctors")
		return
	}

	response.Data(w, http.StatusOK, "doctors", doctors)
}

func doctorUniqueErrors(err error) (map[string][]string, bool) {
	switch err {
	case usecase.ErrDoctorLicenseTaken:
		return map[string][]string{
			"license_number": {"The license_number has already been taken."},
		}, true
	case usecase.ErrDoctorEmailTaken:
		return map[string][]string{
			"email": {"The email has already been taken."},
		}, true
	}
	return nil, false
}
