package routes

import (
	"net/http"

	"studyflow/planner/handlers"
)

// RegisterScheduleRoutes registers all schedule-related routes
func RegisterScheduleRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /schedule", handlers.GetScheduleHandler)
	mux.HandleFunc("GET /schedule/week", handlers.GetWeekHandler)
	mux.HandleFunc("POST /schedule/create", handlers.CreateScheduleItemHandler)
	mux.HandleFunc("PATCH /schedule/update", handlers.UpdateScheduleItemHandler)
	mux.HandleFunc("DELETE /schedule/delete", handlers.DeleteScheduleItemHandler)
	mux.HandleFunc("POST /schedule/template", handlers.ApplyTemplateHandler)
}
