package middleware

import (
	"net/http"

	"justbookit/pkg/response"
)

// RequireProfessional gates routes reserved for professional accounts.
// The flag is read from context (set by AuthMiddleware from JWT claims).
func RequireProfessional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !IsProfessionalFromContext(r.Context()) {
			response.Forbidden(w, "Only professional users can access this resource")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireStaff gates the administrative surface.
func RequireStaff(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !IsStaffFromContext(r.Context()) {
			response.Forbidden(w, "You don't have permission to access this resource")
			return
		}
		next.ServeHTTP(w, r)
	})
}
