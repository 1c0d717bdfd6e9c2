package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Name            string `json:"name" validate:"required,max=255"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
	Gender          string `json:"gender" validate:"required,oneof=Male Female Other"`
	DateOfBirth     string `json:"date_of_birth" validate:"required,datetime=2006-01-02"`
	AppointmentDate string `json:"appointment_date" validate:"required,datetime=2006-01-02 15:04:05"`
}

func validSample() sampleRequest {
	return sampleRequest{
		Name:            "John Smith",
		Email:           "john@example.com",
		Password:        "password123",
		Gender:          "Male",
		DateOfBirth:     "1990-04-12",
		AppointmentDate: "2026-09-01 10:30:00",
	}
}

func TestValidatePasses(t *testing.T) {
	cv := NewValidator()
	req := validSample()

	assert.NoError(t, cv.Validate(&req))
}

func TestMissingFieldMessage(t *testing.T) {
	cv := NewValidator()
	req := validSample()
	req.Email = ""

	err := cv.Validate(&req)
	require.Error(t, err)

	errors := cv.FormatValidationErrors(err)
	require.Contains(t, errors, "email")
	assert.Equal(t, []string{"The email field is required."}, errors["email"])
}

func TestFieldNamesUseJSONTags(t *testing.T) {
	cv := NewValidator()
	req := validSample()
	req.DateOfBirth = ""

	errors := cv.FormatValidationErrors(cv.Validate(&req))
	assert.Contains(t, errors, "date_of_birth")
	assert.NotContains(t, errors, "DateOfBirth")
}

func TestRuleMessages(t *testing.T) {
	cv := NewValidator()

	tests := []struct {
		name    string
		mutate  func(*sampleRequest)
		field   string
		wantMsg string
	}{
		{
			name:    "invalid email",
			mutate:  func(r *sampleRequest) { r.Email = "not-an-email" },
			field:   "email",
			wantMsg: "The email must be a valid email address.",
		},
		{
			name:    "short password",
			mutate:  func(r *sampleRequest) { r.Password = "short" },
			field:   "password",
			wantMsg: "The password must be at least 8 characters.",
		},
		{
			name:    "enum violation",
			mutate:  func(r *sampleRequest) { r.Gender = "Unknown" },
			field:   "gender",
			wantMsg: "The selected gender is invalid.",
		},
		{
			name:    "date format",
			mutate:  func(r *sampleRequest) { r.DateOfBirth = "12/04/1990" },
			field:   "date_of_birth",
			wantMsg: "The date_of_birth does not match the format 2006-01-02.",
		},
		{
			name:    "datetime format",
			mutate:  func(r *sampleRequest) { r.AppointmentDate = "2026-09-01" },
			field:   "appointment_date",
			wantMsg: "The appointment_date does not match the format 2006-01-02 15:04:05.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validSample()
			tt.mutate(&req)

			err := cv.Validate(&req)
			require.Error(t, err)

			errors := cv.FormatValidationErrors(err)
			require.Contains(t, errors, tt.field)
			assert.Contains(t, errors[tt.field], tt.wantMsg)
		})
	}
}

func TestMultipleFieldsCollected(t *testing.T) {
	cv := NewValidator()
	req := sampleRequest{}

	errors := cv.FormatValidationErrors(cv.Validate(&req))
	assert.Len(t, errors, 6)
}
