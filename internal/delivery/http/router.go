package http

import (
	"net/http"

	"hospitrack/internal/delivery/http/handler"
	"hospitrack/internal/delivery/http/middleware"
	"hospitrack/pkg/response"

	"github.com/gorilla/mux"
)

// Handlers groups the HTTP handlers mounted by the router
type Handlers struct {
	Auth      *handler.AuthHandler
	Dashboard *handler.DashboardHandler
	Patient   *handler.PatientHandler
	Bed       *handler.BedHandler
	Alert     *handler.AlertHandler
	Transfer  *handler.TransferHandler
	AuditLog  *handler.AuditLogHandler
}

type Router struct {
	router            *mux.Router
	handlers          Handlers
	authMiddleware    *middleware.AuthMiddleware
	corsMiddleware    *middleware.CORSMiddleware
	rateLimiter       *middleware.RateLimiter
	metricsMiddleware *middleware.MetricsMiddleware
}

func NewRouter(
	handlers Handlers,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	rateLimiter *middleware.RateLimiter,
	metricsMiddleware *middleware.MetricsMiddleware,
) *Router {
	return &Router{
		router:            mux.NewRouter(),
		handlers:          handlers,
		authMiddleware:    authMiddleware,
		corsMiddleware:    corsMiddleware,
		rateLimiter:       rateLimiter,
		metricsMiddleware: metricsMiddleware,
	}
}

// Setup registers every route. CORS wraps the whole router so that
// preflight requests are answered before route matching.
func (r *Router) Setup() http.Handler {
	r.router.Use(r.metricsMiddleware.Handle)
	r.router.Handle("/metrics", r.metricsMiddleware.Handler()).Methods(http.MethodGet)

	// mux skips middleware for unmatched requests, so these are wrapped directly
	r.router.NotFoundHandler = r.metricsMiddleware.Handle(http.HandlerFunc(r.notFound))
	r.router.MethodNotAllowedHandler = r.metricsMiddleware.Handle(http.HandlerFunc(r.methodNotAllowed))

	api := r.router.PathPrefix("/api").Subrouter()

	// Health check
	handle(api, "/health", http.HandlerFunc(r.healthCheck), http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	limited := r.rateLimiter.RateLimit
	handle(auth, "/login", limited(http.HandlerFunc(r.handlers.Auth.Login)), http.MethodPost)
	handle(auth, "/admin/register", limited(http.HandlerFunc(r.handlers.Auth.RegisterAdmin)), http.MethodPost)
	handle(auth, "/doctor/register", limited(http.HandlerFunc(r.handlers.Auth.RegisterDoctor)), http.MethodPost)
	handle(auth, "/nurse/register", limited(http.HandlerFunc(r.handlers.Auth.RegisterNurse)), http.MethodPost)
	handle(auth, "/refresh", http.HandlerFunc(r.handlers.Auth.RefreshToken), http.MethodPost)

	// Everything below requires a bearer token
	protected := api.NewRoute().Subrouter()
	protected.Use(r.authMiddleware.Authenticate)

	handle(protected, "/auth/logout", http.HandlerFunc(r.handlers.Auth.Logout), http.MethodPost)
	handle(protected, "/auth/me", http.HandlerFunc(r.handlers.Auth.GetCurrentUser), http.MethodGet)

	// Dashboard
	handle(protected, "/dashboard/system-stats", http.HandlerFunc(r.handlers.Dashboard.GetSystemStats), http.MethodGet)
	handle(protected, "/dashboard/bed-occupancy", http.HandlerFunc(r.handlers.Dashboard.GetBedOccupancy), http.MethodGet)
	handle(protected, "/dashboard/patient-stats", http.HandlerFunc(r.handlers.Dashboard.GetPatientStats), http.MethodGet)

	// Patients
	handle(protected, "/patients", http.HandlerFunc(r.handlers.Patient.GetAllPatients), http.MethodGet)
	handle(protected, "/patients", http.HandlerFunc(r.handlers.Patient.CreatePatient), http.MethodPost)
	handle(protected, "/patients/{id:[0-9]+}", http.HandlerFunc(r.handlers.Patient.GetPatient), http.MethodGet)
	handle(protected, "/patients/{id:[0-9]+}/notes", http.HandlerFunc(r.handlers.Patient.UpdateNotes), http.MethodPatch)

	// Beds
	handle(protected, "/beds", http.HandlerFunc(r.handlers.Bed.GetAllBeds), http.MethodGet)
	handle(protected, "/beds", middleware.RequireAdmin(http.HandlerFunc(r.handlers.Bed.CreateBed)), http.MethodPost)
	handle(protected, "/beds/{id:[0-9]+}", http.HandlerFunc(r.handlers.Bed.GetBed), http.MethodGet)
	handle(protected, "/beds/{id:[0-9]+}/assign", http.HandlerFunc(r.handlers.Bed.AssignPatient), http.MethodPost)
	handle(protected, "/beds/{id:[0-9]+}/release", http.HandlerFunc(r.handlers.Bed.Release), http.MethodPost)
	handle(protected, "/beds/{id:[0-9]+}/status", http.HandlerFunc(r.handlers.Bed.UpdateStatus), http.MethodPatch)

	// Alerts
	handle(protected, "/alerts", http.HandlerFunc(r.handlers.Alert.GetAllAlerts), http.MethodGet)
	handle(protected, "/alerts", http.HandlerFunc(r.handlers.Alert.CreateAlert), http.MethodPost)
	handle(protected, "/alerts/{id:[0-9]+}", http.HandlerFunc(r.handlers.Alert.GetAlert), http.MethodGet)
	handle(protected, "/alerts/{id:[0-9]+}/acknowledge", http.HandlerFunc(r.handlers.Alert.Acknowledge), http.MethodPatch)
	handle(protected, "/alerts/{id:[0-9]+}/resolve", http.HandlerFunc(r.handlers.Alert.Resolve), http.MethodPatch)

	// Transfers
	handle(protected, "/transfers", http.HandlerFunc(r.handlers.Transfer.GetAllTransfers), http.MethodGet)
	handle(protected, "/transfers", http.HandlerFunc(r.handlers.Transfer.RequestTransfer), http.MethodPost)
	handle(protected, "/transfers/{id:[0-9]+}", http.HandlerFunc(r.handlers.Transfer.GetTransfer), http.MethodGet)
	handle(protected, "/transfers/{id:[0-9]+}/approve", middleware.RequireAdminOrDoctor(http.HandlerFunc(r.handlers.Transfer.Approve)), http.MethodPatch)
	handle(protected, "/transfers/{id:[0-9]+}/reject", middleware.RequireAdminOrDoctor(http.HandlerFunc(r.handlers.Transfer.Reject)), http.MethodPatch)

	// Audit logs (admin)
	handle(protected, "/audit-logs", middleware.RequireAdmin(http.HandlerFunc(r.handlers.AuditLog.GetAllAuditLogs)), http.MethodGet)
	handle(protected, "/audit-logs/{id:[0-9]+}", middleware.RequireAdmin(http.HandlerFunc(r.handlers.AuditLog.GetAuditLog)), http.MethodGet)

	return r.corsMiddleware.Handle(r.router)
}

// handle registers path both with and without the trailing slash
func handle(router *mux.Router, path string, h http.Handler, methods ...string) {
	router.Handle(path+"/", h).Methods(methods...)
	router.Handle(path, h).Methods(methods...)
}

func (r *Router) notFound(w http.ResponseWriter, req *http.Request) {
	response.NotFound(w, "Route not found")
}

func (r *Router) methodNotAllowed(w http.ResponseWriter, req *http.Request) {
	response.Error(w, http.StatusMethodNotAllowed, "Method not allowed", nil)
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	response.JSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}
