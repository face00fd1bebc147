package handlers

import (
	"net/http"
	"time"

	"studyflow/planner/config"
	"studyflow/planner/views"
)

type calendarResponse struct {
	Success      bool                           `json:"success"`
	Month        string                         `json:"month"`
	Cells        map[string]views.CellAggregate `json:"cells"`
	ErrorMessage string                         `json:"error,omitempty"`
}

// GetCalendarHandler returns per-day aggregates for one month, the data
// behind the calendar grid.
func GetCalendarHandler(w http.ResponseWriter, r *http.Request) {
	monthStr := r.URL.Query().Get("month")
	month, err := time.ParseInLocation("2006-01", monthStr, time.Local)
	if err != nil {
		writeError(w, "Invalid month, want YYYY-MM", http.StatusBadRequest)
		return
	}

	sess, err := sessionFromRequest(r)
	if err != nil {
		config.Logger.Error("Failed to open session: ", err)
		writeError(w, "Unauthorized", statusFor(err))
		return
	}

	writeJSON(w, http.StatusOK, calendarResponse{
		Success: true,
		Month:   monthStr,
		Cells:   views.MonthAggregates(sess.Tasks.Tasks(), month.Year(), month.Month()),
	})
}
