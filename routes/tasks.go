package routes

import (
	"net/http"

	"studyflow/planner/handlers"
)

// RegisterTaskRoutes registers all task-related routes
func RegisterTaskRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /tasks", handlers.GetTasksHandler)
	mux.HandleFunc("POST /tasks/create", handlers.CreateTaskHandler)
	mux.HandleFunc("PATCH /tasks/update", handlers.UpdateTaskHandler)
	mux.HandleFunc("DELETE /tasks/delete", handlers.DeleteTaskHandler)
	mux.HandleFunc("POST /tasks/toggle", handlers.ToggleTaskHandler)
	mux.HandleFunc("POST /tasks/postpone", handlers.PostponeTaskHandler)
	mux.HandleFunc("PATCH /tasks/notes", handlers.UpdateNotesHandler)
	mux.HandleFunc("GET /calendar", handlers.GetCalendarHandler)
}
