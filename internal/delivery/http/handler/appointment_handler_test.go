package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-hospital-management/internal/delivery/dto"
	"go-hospital-management/internal/usecase"
	"go-hospital-management/pkg/validator"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAppointmentUsecase struct {
	all        []dto.AppointmentResponse
	bookErr    error
	byPatient  []dto.AppointmentResponse
	byDoctor   []dto.AppointmentResponse
	findErr    error
	updateErr  error
	cancelErr  error
	lastBooked *dto.BookAppointmentRequest
}

func (s *stubAppointmentUsecase) GetAllAppointments(ctx context.Context) ([]dto.AppointmentResponse, error) {
	return s.all, s.findErr
}

func (s *stubAppointmentUsecase) BookAppointment(ctx context.Context, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error) {
	if s.bookErr != nil {
		return nil, s.bookErr
	}
	s.lastBooked = req
	return &dto.AppointmentResponse{ID: 1, PatientID: req.PatientID, DoctorID: req.DoctorID, Status: "scheduled"}, nil
}

func (s *stubAppointmentUsecase) GetAppointmentsByPatient(ctx context.Context, patientID uint) ([]dto.AppointmentResponse, error) {
	return s.byPatient, s.findErr
}

func (s *stubAppointmentUsecase) GetAppointmentsByDoctor(ctx context.Context, doctorID uint) ([]dto.AppointmentResponse, error) {
	return s.byDoctor, s.findErr
}

func (s *stubAppointmentUsecase) UpdateAppointment(ctx context.Context, id uint, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	return &dto.AppointmentResponse{ID: id, Status: req.Status}, nil
}

func (s *stubAppointmentUsecase) CancelAppointment(ctx context.Context, id uint) error {
	return s.cancelErr
}

func newAppointmentHandler(uc usecase.AppointmentUsecase) *AppointmentHandler {
	return NewAppointmentHandler(uc, validator.NewValidator())
}

func validBookRequest() dto.BookAppointmentRequest {
	return dto.BookAppointmentRequest{
		PatientID:       3,
		DoctorID:        5,
		AppointmentDate: "2026-09-01 10:30:00",
		Status:          "scheduled",
		Reason:          "Annual checkup",
	}
}

func TestGetAppointmentsEmptyListIsOK(t *testing.T) {
	h := newAppointmentHandler(&stubAppointmentUsecase{all: []dto.AppointmentResponse{}})
	rec := httptest.NewRecorder()

	h.GetAppointments(rec, httptest.NewRequest(http.MethodGet, "/appointment/list", nil))

	body := decodeEnvelope(t, rec)
	assert.Equal(t, http.StatusOK, rec.Code)

	appointments, ok := body["appointments"].([]interface{})
	require.True(t, ok)
	assert.Len(t, appointments, 0)
}

func TestBookAppointmentSuccess(t *testing.T) {
	stub := &stubAppointmentUsecase{}
	h := newAppointmentHandler(stub)
	rec := httptest.NewRecorder()

	h.BookAppointment(rec, postJSON(t, "/appointment/book", validBookRequest()))

	body := decodeEnvelope(t, rec)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Appointment book successfully", body["message"])

	require.NotNil(t, stub.lastBooked)
	assert.Equal(t, uint(3), stub.lastBooked.PatientID)
	assert.Equal(t, uint(5), stub.lastBooked.DoctorID)
}

func TestBookAppointmentValidationErrors(t *testing.T) {
	h := newAppointmentHandler(&stubAppointmentUsecase{})
	rec := httptest.NewRecorder()

	req := validBookRequest()
	req.AppointmentDate = "tomorrow"
	req.Status = "pending"
	h.BookAppointment(rec, postJSON(t, "/appointment/book", req))

	body := decodeEnvelope(t, rec)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	errors, ok := body["errors"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, errors, "appointment_date")
	assert.Contains(t, errors, "status")
}

func TestBookAppointmentUnknownPatient(t *testing.T) {
	h := newAppointmentHandler(&stubAppointmentUsecase{bookErr: usecase.ErrAppointmentPatientInvalid})
	rec := httptest.NewRecorder()

	h.BookAppointment(rec, postJSON(t, "/appointment/book", validBookRequest()))

	body := decodeEnvelope(t, rec)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	errors, ok := body["errors"].(map[string]interface{})
	require.True(t, ok)
	patientErrors, ok := errors["patient_id"].([]interface{})
	require.True(t, ok)
	assert.Contains(t, patientErrors, "The selected patient_id is invalid.")
}

func TestShowAppointmentsRequiresFilter(t *testing.T) {
	h := newAppointmentHandler(&stubAppointmentUsecase{})
	rec := httptest.NewRecorder()

	h.ShowAppointments(rec, httptest.NewRequest(http.MethodGet, "/appointment/show", nil))

	body := decodeEnvelope(t, rec)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "Missing patient_id or doctor_id in the request", body["message"])
}

func TestShowAppointmentsEmptyResultIsNotFound(t *testing.T) {
	h := newAppointmentHandler(&stubAppointmentUsecase{byPatient: []dto.AppointmentResponse{}})
	rec := httptest.NewRecorder()

	h.ShowAppointments(rec, httptest.NewRequest(http.MethodGet, "/appointment/show?patient_id=3", nil))

	body := decodeEnvelope(t, rec)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "No appointments found", body["message"])
}

func TestShowAppointmentsByDoctor(t *testing.T) {
	h := newAppointmentHandler(&stubAppointmentUsecase{byDoctor: []dto.AppointmentResponse{
		{ID: 1, PatientID: 3, DoctorID: 5, Status: "scheduled"},
	}})
	rec := httptest.NewRecorder()

	h.ShowAppointments(rec, httptest.NewRequest(http.MethodGet, "/appointment/show?doctor_id=5", nil))

	body := decodeEnvelope(t, rec)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, body, "appointments")
}

func TestUpdateAppointmentIllegalTransition(t *testing.T) {
	h := newAppointmentHandler(&stubAppointmentUsecase{updateErr: usecase.ErrIllegalStatusTransition})
	rec := httptest.NewRecorder()

	req := postJSON(t, "/appointment/9/edit", dto.UpdateAppointmentRequest{
		AppointmentDate: "2026-09-01 10:30:00",
		Status:          "scheduled",
		Reason:          "Reopen",
	})
	req = mux.SetURLVars(req, map[string]string{"id": "9"})
	h.UpdateAppointment(rec, req)

	body := decodeEnvelope(t, rec)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	errors, ok := body["errors"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, errors, "status")
}

func TestUpdateAppointmentNotFound(t *testing.T) {
	h := newAppointmentHandler(&stubAppointmentUsecase{updateErr: usecase.ErrAppointmentNotFound})
	rec := httptest.NewRecorder()

	req := postJSON(t, "/appointment/99/edit", dto.UpdateAppointmentRequest{
		AppointmentDate: "2026-09-01 10:30:00",
		Status:          "completed",
		Reason:          "Done",
	})
	req = mux.SetURLVars(req, map[string]string{"id": "99"})
	h.UpdateAppointment(rec, req)

	body := decodeEnvelope(t, rec)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Appointment not found", body["message"])
}

func TestCancelAppointment(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"cancel scheduled", nil, http.StatusOK, "Appointment cancelled successfully"},
		{"cancel missing", usecase.ErrAppointmentNotFound, http.StatusNotFound, "Appointment not found"},
		{"cancel completed", usecase.ErrAppointmentCompleted, http.StatusUnprocessableEntity, "Completed appointments cannot be cancelled"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newAppointmentHandler(&stubAppointmentUsecase{cancelErr: tt.err})
			rec := httptest.NewRecorder()

			req := httptest.NewRequest(http.MethodPut, "/appointment/9/cancel", nil)
			req = mux.SetURLVars(req, map[string]string{"id": "9"})
			h.CancelAppointment(rec, req)

			body := decodeEnvelope(t, rec)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantMsg, body["message"])
		})
	}
}

func TestCancelAppointmentBadID(t *testing.T) {
	h := newAppointmentHandler(&stubAppointmentUsecase{})
	rec := httptest.NewRecorder()

	req := httptest.NewRequest(http.MethodPut, "/appointment/abc/cancel", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "abc"})
	h.CancelAppointment(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
