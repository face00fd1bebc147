package routes

import (
	"net/http"

	"studyflow/planner/handlers"
)

// RegisterAccountRoutes registers auth and profile routes
func RegisterAccountRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /auth/login", handlers.LoginHandler)
	mux.HandleFunc("POST /auth/signup", handlers.SignupHandler)
	mux.HandleFunc("POST /auth/logout", handlers.LogoutHandler)

	mux.HandleFunc("GET /profile", handlers.GetProfileHandler)
	mux.HandleFunc("PATCH /profile/update", handlers.UpdateProfileHandler)
	mux.HandleFunc("POST /profile/avatar", handlers.UploadAvatarHandler)
}
