package http

import (
	"net/http"

	"go-consultation-booking/internal/delivery/http/handler"
	"go-consultation-booking/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router            *mux.Router
	plannerHandler    *handler.PlannerHandler
	slotHandler       *handler.AppointmentSlotHandler
	consultantHandler *handler.ConsultantHandler
	authMiddleware    *middleware.AuthMiddleware
	corsMiddleware    *middleware.CORSMiddleware
}

func NewRouter(
	plannerHandler *handler.PlannerHandler,
	slotHandler *handler.AppointmentSlotHandler,
	consultantHandler *handler.ConsultantHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:            mux.NewRouter(),
		plannerHandler:    plannerHandler,
		slotHandler:       slotHandler,
		consultantHandler: consultantHandler,
		authMiddleware:    authMiddleware,
		corsMiddleware:    corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Public routes (the booking surface reads persisted slots)
	api.HandleFunc("/slots", r.slotHandler.ListSlots).Methods(http.MethodGet)
	api.HandleFunc("/slots/{id:[0-9]+}", r.slotHandler.GetSlot).Methods(http.MethodGet)
	api.HandleFunc("/consultants", r.consultantHandler.GetAllConsultants).Methods(http.MethodGet)

	// Admin routes (protected - admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)

	// Slot planning sessions (admin)
	admin.HandleFunc("/planner/sessions", r.plannerHandler.CreateSession).Methods(http.MethodPost)
	admin.HandleFunc("/planner/sessions/{sessionId}", r.plannerHandler.GetSession).Methods(http.MethodGet)
	admin.HandleFunc("/planner/sessions/{sessionId}", r.plannerHandler.DeleteSession).Methods(http.MethodDelete)
	admin.HandleFunc("/planner/sessions/{sessionId}/availability", r.plannerHandler.ToggleAvailability).Methods(http.MethodPatch)
	admin.HandleFunc("/planner/sessions/{sessionId}/bulk-edit", r.plannerHandler.BulkEditSession).Methods(http.MethodPatch)
	admin.HandleFunc("/planner/sessions/{sessionId}/save", r.plannerHandler.SaveSession).Methods(http.MethodPost)

	// Persisted slot management (admin)
	admin.HandleFunc("/slots/bulk-edit", r.slotHandler.BulkEdit).Methods(http.MethodPut)
	admin.HandleFunc("/slots", r.slotHandler.BulkDelete).Methods(http.MethodDelete)
	admin.HandleFunc("/slots/{id:[0-9]+}", r.slotHandler.UpdateSlot).Methods(http.MethodPut)
	admin.HandleFunc("/slots/{id:[0-9]+}", r.slotHandler.DeleteSlot).Methods(http.MethodDelete)

	// Consultant roster management (admin)
	admin.HandleFunc("/consultants", r.consultantHandler.CreateConsultant).Methods(http.MethodPost)
	admin.HandleFunc("/consultants/{id}", r.consultantHandler.GetConsultant).Methods(http.MethodGet)
	admin.HandleFunc("/consultants/{id}", r.consultantHandler.UpdateConsultant).Methods(http.MethodPut)
	admin.HandleFunc("/consultants/{id}", r.consultantHandler.DeleteConsultant).Methods(http.MethodDelete)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
