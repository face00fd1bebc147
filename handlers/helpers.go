package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"studyflow/planner/store"
	"studyflow/planner/supabase"
	"studyflow/planner/types"
)

// sessions caches the per-owner mirror stores for the lifetime of the
// process; logout tears an owner's entry down.
var sessions = store.NewManager()

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

type errorResponse struct {
	Success      bool   `json:"success"`
	ErrorMessage string `json:"error"`
}

func writeError(w http.ResponseWriter, message string, status int) {
	writeJSON(w, status, errorResponse{Success: false, ErrorMessage: message})
}

// statusFor maps the store/gateway error taxonomy onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, types.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, types.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, types.ErrInvalidTimeRange), errors.Is(err, types.ErrInvalidWeekday):
		return http.StatusBadRequest
	case types.IsGatewayError(err):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// sessionFromRequest authenticates the caller and returns their loaded
// session, building the stores on first use with gateways bound to the
// request's access token.
func sessionFromRequest(r *http.Request) (*store.Session, error) {
	client, owner, err := supabase.ClientFromRequest(r)
	if err != nil {
		return nil, types.ErrUnauthenticated
	}

	return sessions.Session(r.Context(), owner, func() (store.TaskGateway, store.ScheduleGateway) {
		return supabase.NewTasks(client), supabase.NewSchedule(client)
	})
}
