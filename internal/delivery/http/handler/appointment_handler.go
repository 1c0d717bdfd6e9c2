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

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

func (h *AppointmentHandler) GetAppointments(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.appointmentUsecase.GetAllAppointments(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get appointments")
		return
	}

	response.Data(w, http.StatusOK, "appointments", appointments)
}

func (h *AppointmentHandler) BookAppointment(w http.ResponseWriter, r *http.Request) {
	var req dto.BookAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if _, err := h.appointmentUsecase.BookAppointment(r.Context(), &req); err != nil {
		if errs, ok := appointmentReferenceErrors(err); ok {
			response.ValidationError(w, errs)
			return
		}
		response.InternalServerError(w, "Failed to book appointment")
		return
	}

	response.Message(w, http.StatusCreated, "Appointment book successfully")
}

// ShowAppointments filters appointments by patient_id or doctor_id query
// parameter. At least one must be supplied; an empty result is a 404.
func (h *AppointmentHandler) ShowAppointments(w http.ResponseWriter, r *http.Request) {
	patientParam := r.URL.Query().Get("patient_id")
	doctorParam := r.URL.Query().Get("doctor_id")

	if patientParam == "" && doctorParam == "" {
		response.UnprocessableEntity(w, "Missing patient_id or doctor_id in the request")
		return
	}

	var (
		appointments []dto.AppointmentResponse
		err          error
	)
	if patientParam != "" {
		patientID, parseErr := parseID(patientParam)
		if parseErr != nil {
			response.BadRequest(w, "Invalid patient_id")
			return
		}
		appointments, err = h.appointmentUsecase.GetAppointmentsByPatient(r.Context(), patientID)
	} else {
		doctorID, parseErr := parseID(doctorParam)
		if parseErr != nil {
			response.BadRequest(w, "Invalid doctor_id")
			return
		}
		appointments, err = h.appointmentUsecase.GetAppointmentsByDoctor(r.Context(), doctorID)
	}
	if err != nil {
		response.InternalServerError(w, "Failed to get appointments")
		return
	}

	if len(appointments) == 0 {
		response.NotFound(w, "No appointments found")
		return
	}

	response.Data(w, http.StatusOK, "appointments", appointments)
}

func (h *AppointmentHandler) UpdateAppointment(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid appointment ID")
		return
	}

	var req dto.UpdateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if _, err := h.appointmentUsecase.UpdateAppointment(r.Context(), id, &req); err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrIllegalStatusTransition:
			response.ValidationError(w, map[string][]string{
				"status": {"The requested status change is not allowed."},
			})
		default:
			response.InternalServerError(w, "Failed to update appointment")
		}
		return
	}

	response.Message(w, http.StatusOK, "Appointment updated successfully")
}

func (h *AppointmentHandler) CancelAppointment(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid appointment ID")
		return
	}

	if err := h.appointmentUsecase.CancelAppointment(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrAppointmentCompleted:
			response.UnprocessableEntity(w, "Completed appointments cannot be cancelled")
		default:
			response.InternalServerError(w, "Failed to cancel appointment")
		}
		return
	}

	response.Message(w, http.StatusOK, "Appointment cancelled successfully")
}

func appointmentReferenceErrors(err error) (map[string][]string, bool) {
	switch err {
	case usecase.ErrAppointmentPatientInvalid:
		return map[string][]string{
			"patient_id": {"The selected patient_id is invalid."},
		}, true
	case usecase.ErrAppointmentDoctorInvalid:
		return map[string][]string{
			"doctor_id": {"The selected doctor_id is invalid."},
		}, true
	}
	return nil, false
}
