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

type stubPatientUsecase struct {
	all       []dto.PatientResponse
	byEmail   []dto.PatientResponse
	createErr error
	updateErr error
	deleteErr error
}

func (s *stubPatientUsecase) CreatePatient(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	return &dto.PatientResponse{ID: 1, Email: req.Email}, nil
}

func (s *stubPatientUsecase) GetAllPatients(ctx context.Context) ([]dto.PatientResponse, error) {
	return s.all, nil
}

func (s *stubPatientUsecase) GetPatientsByEmail(ctx context.Context, email string) ([]dto.PatientResponse, error) {
	return s.byEmail, nil
}

func (s *stubPatientUsecase) UpdatePatient(ctx context.Context, id uint, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	return &dto.PatientResponse{ID: id}, nil
}

func (s *stubPatientUsecase) DeletePatient(ctx context.Context, id uint) error {
	return s.deleteErr
}

func newPatientHandler(uc usecase.PatientUsecase) *PatientHandler {
	return NewPatientHandler(uc, validator.NewValidator())
}

func validPatientRequest() dto.CreatePatientRequest {
	return dto.CreatePatientRequest{
		FirstName:        "John",
		LastName:         "Smith",
		DateOfBirth:      "1990-04-12",
		Gender:           "Male",
		Address:          "12 Main Street",
		Phone:            "555-0101",
		Email:            "john@example.com",
		EmergencyContact: "Jane Smith 555-0102",
		MedicalHistory:   "None",
	}
}

func TestAddPatientSuccess(t *testing.T) {
	h := newPatientHandler(&stubPatientUsecase{})
	rec := httptest.NewRecorder()

	h.AddPatient(rec, postJSON(t, "/patient/add", validPatientRequest()))

	body := decodeEnvelope(t, rec)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Patient added successfully", body["message"])
}

func TestAddPatientMissingFields(t *testing.T) {
	h := newPatientHandler(&stubPatientUsecase{})
	rec := httptest.NewRecorder()

	req := validPatientRequest()
	req.FirstName = ""
	req.Gender = "Unknown"
	h.AddPatient(rec, postJSON(t, "/patient/add", req))

	body := decodeEnvelope(t, rec)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	errors, ok := body["errors"].(map[string]interface{})
	require.True(t, ok)

	firstNameErrors, ok := errors["first_name"].([]interface{})
	require.True(t, ok)
	assert.Contains(t, firstNameErrors, "The first_name field is required.")

	genderErrors, ok := errors["gender"].([]interface{})
	require.True(t, ok)
	assert.Contains(t, genderErrors, "The selected gender is invalid.")
}

func TestUpdatePatientNotFound(t *testing.T) {
	h := newPatientHandler(&stubPatientUsecase{updateErr: usecase.ErrPatientNotFound})
	rec := httptest.NewRecorder()

	req := postJSON(t, "/patient/99/edit", validPatientRequest())
	req = mux.SetURLVars(req, map[string]string{"id": "99"})
	h.UpdatePatient(rec, req)

	body := decodeEnvelope(t, rec)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Patient not found", body["message"])
}

func TestDeletePatientSuccess(t *testing.T) {
	h := newPatientHandler(&stubPatientUsecase{})
	rec := httptest.NewRecorder()

	req := httptest.NewRequest(http.MethodDelete, "/patient/7/delete", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "7"})
	h.DeletePatient(rec, req)

	body := decodeEnvelope(t, rec)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Patient detail deleted successfully", body["message"])
}

func TestGetPatientsEmptyListIsOK(t *testing.T) {
	h := newPatientHandler(&stubPatientUsecase{all: []dto.PatientResponse{}})
	rec := httptest.NewRecorder()

	h.GetPatients(rec, httptest.NewRequest(http.MethodGet, "/patient/list", nil))

	body := decodeEnvelope(t, rec)
	assert.Equal(t, http.StatusOK, rec.Code)

	patients, ok := body["patients"].([]interface{})
	require.True(t, ok)
	assert.Len(t, patients, 0)
}

func TestShowPatientByEmail(t *testing.T) {
	h := newPatientHandler(&stubPatientUsecase{byEmail: []dto.PatientResponse{
		{ID: 1, Email: "john@example.com"},
	}})
	rec := httptest.NewRecorder()

	h.ShowPatient(rec, httptest.NewRequest(http.MethodGet, "/patient/show?email=john@example.com", nil))

	body := decodeEnvelope(t, rec)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, body, "patient")
}
