package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"studyflow/planner/config"
	"studyflow/planner/types"
)

func dayFromQuery(r *http.Request) (types.Weekday, bool) {
	n, err := strconv.Atoi(r.URL.Query().Get("day"))
	if err != nil {
		return 0, false
	}
	day := types.Weekday(n)
	return day, day.Valid()
}

func GetScheduleHandler(w http.ResponseWriter, r *http.Request) {
	day, ok := dayFromQuery(r)
	if !ok {
		writeError(w, "Invalid or missing day, want 0-6", http.StatusBadRequest)
		return
	}

	sess, err := sessionFromRequest(r)
	if err != nil {
		config.Logger.Error("Failed to open session: ", err)
		writeError(w, "Unauthorized", statusFor(err))
		return
	}

	writeJSON(w, http.StatusOK, types.GetScheduleResponse{
		Success: true,
		Day:     day,
		Items:   sess.Schedule.EffectiveScheduleForDay(day),
	})
}

func GetWeekHandler(w http.ResponseWriter, r *http.Request) {
	sess, err := sessionFromRequest(r)
	if err != nil {
		config.Logger.Error("Failed to open session: ", err)
		writeError(w, "Unauthorized", statusFor(err))
		return
	}

	writeJSON(w, http.StatusOK, types.GetWeekResponse{
		Success: true,
		Week:    sess.Schedule.Week(),
	})
}

func CreateScheduleItemHandler(w http.ResponseWriter, r *http.Request) {
	var draft types.ScheduleDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		config.Logger.Error("Failed to decode schedule JSON: ", err)
		writeError(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}
	if draft.Title == "" {
		writeError(w, "Missing title", http.StatusBadRequest)
		return
	}

	sess, err := sessionFromRequest(r)
	if err != nil {
		config.Logger.Error("Failed to open session: ", err)
		writeError(w, "Unauthorized", statusFor(err))
		return
	}

	item, err := sess.Schedule.AddItem(r.Context(), draft)
	if err != nil {
		config.Logger.Error("Failed to create schedule item: ", err)
		writeError(w, err.Error(), statusFor(err))
		return
	}

	writeJSON(w, http.StatusCreated, types.ScheduleItemResponse{
		Success: true,
		Item:    item,
	})
}

func UpdateScheduleItemHandler(w http.ResponseWriter, r *http.Request) {
	itemID := r.URL.Query().Get("id")
	if itemID == "" {
		writeError(w, "Missing item ID", http.StatusBadRequest)
		return
	}

	var patch types.SchedulePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil || patch.IsEmpty() {
		config.Logger.Error("Failed to decode update JSON: ", err)
		writeError(w, "Invalid or empty update payload", http.StatusBadRequest)
		return
	}

	sess, err := sessionFromRequest(r)
	if err != nil {
		config.Logger.Error("Failed to open session: ", err)
		writeError(w, "Unauthorized", statusFor(err))
		return
	}

	item, err := sess.Schedule.UpdateItem(r.Context(), itemID, patch)
	if err != nil {
		config.Logger.Error("Failed to update schedule item: ", err)
		writeError(w, "Failed to update schedule item", statusFor(err))
		return
	}

	writeJSON(w, http.StatusOK, types.ScheduleItemResponse{
		Success: true,
		Item:    item,
	})
}

func DeleteScheduleItemHandler(w http.ResponseWriter, r *http.Request) {
	itemID := r.URL.Query().Get("id")
	if itemID == "" {
		writeError(w, "Missing item ID", http.StatusBadRequest)
		return
	}

	sess, err := sessionFromRequest(r)
	if err != nil {
		config.Logger.Error("Failed to open session: ", err)
		writeError(w, "Unauthorized", statusFor(err))
		return
	}

	if err := sess.Schedule.DeleteItem(r.Context(), itemID); err != nil {
		config.Logger.Error("Failed to delete schedule item: ", err)
		writeError(w, "Failed to delete schedule item", statusFor(err))
		return
	}

	writeJSON(w, http.StatusOK, types.DeleteResponse{
		Success: true,
		Message: "Schedule item deleted successfully",
	})
}

// ApplyTemplateHandler replaces a day's one-off items with a template. The
// body may carry a custom template; an empty body applies the default
// study day.
func ApplyTemplateHandler(w http.ResponseWriter, r *http.Request) {
	day, ok := dayFromQuery(r)
	if !ok {
		writeError(w, "Invalid or missing day, want 0-6", http.StatusBadRequest)
		return
	}

	template := config.DefaultDayTemplate()
	if r.Body != nil && r.ContentLength != 0 {
		var custom []types.ScheduleDraft
		if err := json.NewDecoder(r.Body).Decode(&custom); err != nil {
			config.Logger.Error("Failed to decode template JSON: ", err)
			writeError(w, "Invalid JSON body", http.StatusBadRequest)
			return
		}
		template = custom
	}

	sess, err := sessionFromRequest(r)
	if err != nil {
		config.Logger.Error("Failed to open session: ", err)
		writeError(w, "Unauthorized", statusFor(err))
		return
	}

	items, err := sess.Schedule.ApplyTemplateToDay(r.Context(), template, day)
	if err != nil {
		config.Logger.Error("Failed to apply template: ", err)
		writeError(w, err.Error(), statusFor(err))
		return
	}

	writeJSON(w, http.StatusOK, types.GetScheduleResponse{
		Success: true,
		Day:     day,
		Items:   items,
	})
}
