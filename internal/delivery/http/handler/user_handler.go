package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"go-hospital-management/internal/delivery/dto"
	"go-hospital-management/internal/delivery/http/middleware"
	"go-hospital-management/internal/domain/entity"
	"go-hospital-management/internal/usecase"
	"go-hospital-management/pkg/jwt"
	"go-hospital-management/pkg/response"
	"go-hospital-management/pkg/validator"

	"github.com/gorilla/mux"
)

type UserHandler struct {
	userUsecase usecase.UserUsecase
	validator   *validator.CustomValidator
	jwtService  *jwt.JWTService
}

func NewUserHandler(userUsecase usecase.UserUsecase, validator *validator.CustomValidator, jwtService *jwt.JWTService) *UserHandler {
	return &UserHandler{
		userUsecase: userUsecase,
		validator:   validator,
		jwtService:  jwtService,
	}
}

func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if _, err := h.userUsecase.Register(r.Context(), &req); err != nil {
		if err == usecase.ErrUserEmailTaken {
			response.ValidationError(w, map[string][]string{
				"email": {"The email has already been taken."},
			})
			return
		}
		response.InternalServerError(w, "Failed to register user")
		return
	}

	response.Message(w, http.StatusCreated, "User created successfully")
}

func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	res, err := h.userUsecase.Login(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrWrongEmail:
			response.UnprocessableEntity(w, "Wrong Email")
		case usecase.ErrWrongPassword:
			response.UnprocessableEntity(w, "Wrong Password")
		default:
			response.InternalServerError(w, "Failed to login")
		}
		return
	}

	response.DataWithMessage(w, http.StatusOK, "User successfully logged in", response.Envelope{
		"user":  res.User,
		"token": res.Token,
	})
}

func (h *UserHandler) Logout(w http.ResponseWriter, r *http.Request) {
	tokenID, ok := middleware.GetTokenIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	// Revoke the refresh token too when the client sends it along
	var req struct {
		RefreshToken string `json:"refresh_token"`
	}
	json.NewDecoder(r.Body).Decode(&req)

	refreshTokenID := ""
	if req.RefreshToken != "" {
		if claims, err := h.jwtService.ValidateToken(req.RefreshToken); err == nil {
			refreshTokenID = claims.TokenID
		}
	}

	if err := h.userUsecase.Logout(r.Context(), tokenID, refreshTokenID); err != nil {
		response.InternalServerError(w, "Failed to logout")
		return
	}

	response.Message(w, http.StatusOK, "User successfully logged out")
}

func (h *UserHandler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var req dto.RefreshTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	tokens, err := h.userUsecase.RefreshToken(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidToken, usecase.ErrTokenRevoked:
			response.Unauthorized(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to refresh token")
		}
		return
	}

	response.Data(w, http.StatusOK, "token", tokens)
}

func (h *UserHandler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	user, err := h.userUsecase.GetCurrentUser(r.Context(), userID)
	if err != nil {
		if err == usecase.ErrUserNotFound {
			response.NotFound(w, "User not found")
			return
		}
		response.InternalServerError(w, "Failed to get user info")
		return
	}

	response.Data(w, http.StatusOK, "user", user)
}

func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid user ID")
		return
	}

	var req dto.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if _, err := h.userUsecase.UpdateUser(r.Context(), id, &req); err != nil {
		switch err {
		case usecase.ErrUserNotFound:
			response.NotFound(w, "User not found")
		case usecase.ErrUserEmailTaken:
			response.ValidationError(w, map[string][]string{
				"email": {"The email has already been taken."},
			})
		default:
			response.InternalServerError(w, "Failed to update user")
		}
		return
	}

	response.Message(w, http.StatusOK, "User successfully updated")
}

func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid user ID")
		return
	}

	if err := h.userUsecase.DeleteUser(r.Context(), id); err != nil {
		if err == usecase.ErrUserNotFound {
			response.NotFound(w, "User not found")
			return
		}
		response.InternalServerError(w, "Failed to delete user")
		return
	}

	response.Message(w, http.StatusOK, "User successfully removed")
}

func (h *UserHandler) GetPatientUsers(w http.ResponseWriter, r *http.Request) {
	h.listByRole(w, r, entity.RolePatient, "patients")
}

func (h *UserHandler) GetDoctorUsers(w http.ResponseWriter, r *http.Request) {
	h.listByRole(w, r, entity.RoleDoctor, "doctors")
}

func (h *UserHandler) GetReceptionistUsers(w http.ResponseWriter, r *http.Request) {
	h.listByRole(w, r, entity.RoleReceptionist, "receptionists")
}

func (h *UserHandler) listByRole(w http.ResponseWriter, r *http.Request, role entity.UserRole, entityKey string) {
	users, err := h.userUsecase.GetUsersByRole(r.Context(), role)
	if err != nil {
		response.InternalServerError(w, "Failed to get users")
		return
	}

	response.Data(w, http.StatusOK, entityKey, users)
}

// parseID parses a positive decimal row id from a path variable
func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
