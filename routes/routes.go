package routes

import "net/http"

// RegisterAllRoutes registers all application routes
func RegisterAllRoutes(mux *http.ServeMux) {
	RegisterTaskRoutes(mux)
	RegisterScheduleRoutes(mux)
	RegisterAccountRoutes(mux)
}
