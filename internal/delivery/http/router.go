package http

import (
	"net/http"

	"go-hospital-management/internal/delivery/http/handler"
	"go-hospital-management/internal/delivery/http/middleware"
	"go-hospital-management/internal/domain/entity"

	"github.com/gorilla/mux"
)

type Router struct {
	router               *mux.Router
	userHandler          *handler.UserHandler
	patientHandler       *handler.PatientHandler
	doctorHandler        *handler.DoctorHandler
	appointmentHandler   *handler.AppointmentHandler
	medicalRecordHandler *handler.MedicalRecordHandler
	auditLogHandler      *handler.AuditLogHandler
	authMiddleware       *middleware.AuthMiddleware
	corsMiddleware       *middleware.CORSMiddleware
}

func NewRouter(
	userHandler *handler.UserHandler,
	patientHandler *handler.PatientHandler,
	doctorHandler *handler.DoctorHandler,
	appointmentHandler *handler.AppointmentHandler,
	medicalRecordHandler *handler.MedicalRecordHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:               mux.NewRouter(),
		userHandler:          userHandler,
		patientHandler:       patientHandler,
		doctorHandler:        doctorHandler,
		appointmentHandler:   appointmentHandler,
		medicalRecordHandler: medicalRecordHandler,
		auditLogHandler:      auditLogHandler,
		authMiddleware:       authMiddleware,
		corsMiddleware:       corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// User routes (public)
	user := api.PathPrefix("/user").Subrouter()
	user.HandleFunc("/add", r.userHandler.Register).Methods(http.MethodPost)
	user.HandleFunc("/login", r.userHandler.Login).Methods(http.MethodPost)
	user.HandleFunc("/refresh", r.userHandler.RefreshToken).Methods(http.MethodPost)

	// User routes (protected)
	userProtected := api.PathPrefix("/user").Subrouter()
	userProtected.Use(r.authMiddleware.Authenticate)
	userProtected.HandleFunc("/logout", r.userHandler.Logout).Methods(http.MethodPost)
	userProtected.HandleFunc("/me", r.userHandler.GetCurrentUser).Methods(http.MethodGet)

	// User management (admin)
	userAdmin := api.PathPrefix("/user").Subrouter()
	userAdmin.Use(r.authMiddleware.Authenticate)
	userAdmin.Use(middleware.RequireAdmin)
	userAdmin.HandleFunc("/{id:[0-9]+}/edit", r.userHandler.UpdateUser).Methods(http.MethodPut)
	userAdmin.HandleFunc("/{id:[0-9]+}/delete", r.userHandler.DeleteUser).Methods(http.MethodDelete)
	userAdmin.HandleFunc("/patient/list", r.userHandler.GetPatientUsers).Methods(http.MethodGet)
	userAdmin.HandleFunc("/doctor/list", r.userHandler.GetDoctorUsers).Methods(http.MethodGet)
	userAdmin.HandleFunc("/receptionist/list", r.userHandler.GetReceptionistUsers).Methods(http.MethodGet)

	// Patient management (admin/receptionist; show also open to doctors)
	patientStaff := api.PathPrefix("/patient").Subrouter()
	patientStaff.Use(r.authMiddleware.Authenticate)
	patientStaff.Use(middleware.RequireStaff)
	patientStaff.HandleFunc("/add", r.patientHandler.AddPatient).Methods(http.MethodPost)
	patientStaff.HandleFunc("/{id:[0-9]+}/edit", r.patientHandler.UpdatePatient).Methods(http.MethodPut)
	patientStaff.HandleFunc("/{id:[0-9]+}/delete", r.patientHandler.DeletePatient).Methods(http.MethodDelete)
	patientStaff.HandleFunc("/list", r.patientHandler.GetPatients).Methods(http.MethodGet)

	patientShow := api.PathPrefix("/patient").Subrouter()
	patientShow.Use(r.authMiddleware.Authenticate)
	patientShow.Use(middleware.RequireRole(entity.RoleAdmin, entity.RoleReceptionist, entity.RoleDoctor))
	patientShow.HandleFunc("/show", r.patientHandler.ShowPatient).Methods(http.MethodGet)

	// Doctor management (admin/receptionist writes; reads open)
	doctorStaff := api.PathPrefix("/doctor").Subrouter()
	doctorStaff.Use(r.authMiddleware.Authenticate)
	doctorStaff.Use(middleware.RequireStaff)
	doctorStaff.HandleFunc("/add", r.doctorHandler.AddDoctor).Methods(http.MethodPost)
	doctorStaff.HandleFunc("/{id:[0-9]+}/edit", r.doctorHandler.UpdateDoctor).Methods(http.MethodPut)
	doctorStaff.HandleFunc("/{id:[0-9]+}/delete", r.doctorHandler.DeleteDoctor).Methods(http.MethodDelete)

	doctor := api.PathPrefix("/doctor").Subrouter()
	doctor.Use(r.authMiddleware.Authenticate)
	doctor.HandleFunc("/show", r.doctorHandler.ShowDoctor).Methods(http.MethodGet)
	doctor.HandleFunc("/list", r.doctorHandler.GetDoctors).Methods(http.MethodGet)

	// Appointments (any authenticated user)
	appointment := api.PathPrefix("/appointment").Subrouter()
	appointment.Use(r.authMiddleware.Authenticate)
	appointment.HandleFunc("/list", r.appointmentHandler.GetAppointments).Methods(http.MethodGet)
	appointment.HandleFunc("/book", r.appointmentHandler.BookAppointment).Methods(http.MethodPost)
	appointment.HandleFunc("/show", r.appointmentHandler.ShowAppointments).Methods(http.MethodGet)
	appointment.HandleFunc("/{id:[0-9]+}/edit", r.appointmentHandler.UpdateAppointment).Methods(http.MethodPut)
	appointment.HandleFunc("/{id:[0-9]+}/cancel", r.appointmentHandler.CancelAppointment).Methods(http.MethodPut)

	// Medical records (writes doctor-only, list admin, show open)
	medicalRecordDoctor := api.PathPrefix("/medicalRecord").Subrouter()
	medicalRecordDoctor.Use(r.authMiddleware.Authenticate)
	medicalRecordDoctor.Use(middleware.RequireDoctor)
	medicalRecordDoctor.HandleFunc("/add", r.medicalRecordHandler.AddMedicalRecord).Methods(http.MethodPost)
	medicalRecordDoctor.HandleFunc("/{id:[0-9]+}/edit", r.medicalRecordHandler.UpdateMedicalRecord).Methods(http.MethodPut)

	medicalRecordAdmin := api.PathPrefix("/medicalRecord").Subrouter()
	medicalRecordAdmin.Use(r.authMiddleware.Authenticate)
	medicalRecordAdmin.Use(middleware.RequireAdmin)
	medicalRecordAdmin.HandleFunc("/list", r.medicalRecordHandler.GetMedicalRecords).Methods(http.MethodGet)

	medicalRecord := api.PathPrefix("/medicalRecord").Subrouter()
	medicalRecord.Use(r.authMiddleware.Authenticate)
	medicalRecord.HandleFunc("/{patient_id:[0-9]+}/show", r.medicalRecordHandler.ShowMedicalRecords).Methods(http.MethodGet)

	// Audit logs (admin)
	auditLog := api.PathPrefix("/auditLog").Subrouter()
	auditLog.Use(r.authMiddleware.Authenticate)
	auditLog.Use(middleware.RequireAdmin)
	auditLog.HandleFunc("/list", r.auditLogHandler.GetAuditLogs).Methods(http.MethodGet)
	auditLog.HandleFunc("/{id:[0-9]+}/show", r.auditLogHandler.GetAuditLog).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
