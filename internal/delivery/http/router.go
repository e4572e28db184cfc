package http

import (
	"net/http"

	"justbookit/internal/delivery/http/handler"
	"justbookit/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router         *mux.Router
	authHandler    *handler.AuthHandler
	serviceHandler *handler.ServiceHandler
	bookingHandler *handler.BookingHandler
	reviewHandler  *handler.ReviewHandler
	adminHandler   *handler.AdminHandler
	authMiddleware *middleware.AuthMiddleware
	corsMiddleware *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	serviceHandler *handler.ServiceHandler,
	bookingHandler *handler.BookingHandler,
	reviewHandler *handler.ReviewHandler,
	adminHandler *handler.AdminHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:         mux.NewRouter(),
		authHandler:    authHandler,
		serviceHandler: serviceHandler,
		bookingHandler: bookingHandler,
		reviewHandler:  reviewHandler,
		adminHandler:   adminHandler,
		authMiddleware: authMiddleware,
		corsMiddleware: corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)
	auth.HandleFunc("/forgot-password", r.authHandler.ForgotPassword).Methods(http.MethodPost)
	auth.HandleFunc("/reset-password", r.authHandler.ResetPassword).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)
	authProtected.HandleFunc("/change-password", r.authHandler.ChangePassword).Methods(http.MethodPost)
	authProtected.HandleFunc("/profile", r.authHandler.UpdateProfile).Methods(http.MethodPut)

	// Service catalog (public)
	api.HandleFunc("/services", r.serviceHandler.ListServices).Methods(http.MethodGet)
	api.HandleFunc("/services/search", r.serviceHandler.SearchServices).Methods(http.MethodGet)
	api.HandleFunc("/services/{id}", r.serviceHandler.GetService).Methods(http.MethodGet)

	// Service management (protected - professionals only for create)
	professional := api.PathPrefix("/services").Subrouter()
	professional.Use(r.authMiddleware.Authenticate)
	professional.Use(middleware.RequireProfessional)
	professional.HandleFunc("", r.serviceHandler.CreateService).Methods(http.MethodPost)

	serviceProtected := api.PathPrefix("/services").Subrouter()
	serviceProtected.Use(r.authMiddleware.Authenticate)
	serviceProtected.HandleFunc("/{id}", r.serviceHandler.UpdateService).Methods(http.MethodPut)
	serviceProtected.HandleFunc("/{id}", r.serviceHandler.DeleteService).Methods(http.MethodDelete)
	serviceProtected.HandleFunc("/{id}/bookings", r.bookingHandler.CreateBooking).Methods(http.MethodPost)

	// Booking lifecycle (protected)
	bookings := api.PathPrefix("/bookings").Subrouter()
	bookings.Use(r.authMiddleware.Authenticate)
	bookings.HandleFunc("", r.bookingHandler.GetMyBookings).Methods(http.MethodGet)
	bookings.HandleFunc("/{id}/status", r.bookingHandler.UpdateStatus).Methods(http.MethodPatch)
	bookings.HandleFunc("/{id}/review", r.reviewHandler.CreateReview).Methods(http.MethodPost)

	// Dashboard (protected)
	dashboard := api.PathPrefix("/dashboard").Subrouter()
	dashboard.Use(r.authMiddleware.Authenticate)
	dashboard.HandleFunc("", r.bookingHandler.GetDashboard).Methods(http.MethodGet)

	// Admin routes (protected - staff only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireStaff)

	// User management (admin)
	admin.HandleFunc("/users", r.adminHandler.ListUsers).Methods(http.MethodGet)
	admin.HandleFunc("/users/{id}", r.adminHandler.UpdateUser).Methods(http.MethodPut)
	admin.HandleFunc("/users/{id}", r.adminHandler.DeleteUser).Methods(http.MethodDelete)

	// Booking management (admin)
	admin.HandleFunc("/bookings", r.adminHandler.ListBookings).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{id}/status", r.adminHandler.OverrideBookingStatus).Methods(http.MethodPatch)
	admin.HandleFunc("/bookings/{id}", r.adminHandler.DeleteBooking).Methods(http.MethodDelete)

	// Service management (admin)
	admin.HandleFunc("/services/{id}", r.adminHandler.UpdateService).Methods(http.MethodPut)
	admin.HandleFunc("/services/{id}", r.adminHandler.DeleteService).Methods(http.MethodDelete)

	// Review management (admin)
	admin.HandleFunc("/reviews", r.adminHandler.ListReviews).Methods(http.MethodGet)
	admin.HandleFunc("/reviews/{id}", r.adminHandler.DeleteReview).Methods(http.MethodDelete)

	// Audit trail (admin)
	admin.HandleFunc("/audit-logs", r.adminHandler.ListAuditLogs).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
