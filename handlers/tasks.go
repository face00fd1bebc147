package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"studyflow/planner/config"
	"studyflow/planner/types"
)

func GetTasksHandler(w http.ResponseWriter, r *http.Request) {
	sess, err := sessionFromRequest(r)
	if err != nil {
		config.Logger.Error("Failed to open session: ", err)
		writeError(w, "Unauthorized", statusFor(err))
		return
	}

	tasks := sess.Tasks.Tasks()
	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		date, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
		if err != nil {
			writeError(w, "Invalid date, want YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		tasks = sess.Tasks.TasksForDate(date)
	}

	writeJSON(w, http.StatusOK, types.GetTasksResponse{
		Success: true,
		Tasks:   tasks,
	})
}

func CreateTaskHandler(w http.ResponseWriter, r *http.Request) {
	var draft types.TaskDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		config.Logger.Error("Failed to decode task JSON: ", err)
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

	task, err := sess.Tasks.Add(r.Context(), draft)
	if err != nil {
		config.Logger.Error("Failed to create task: ", err)
		writeError(w, "Failed to create task", statusFor(err))
		return
	}

	writeJSON(w, http.StatusCreated, types.TaskResponse{
		Success: true,
		Task:    task,
	})
}

func UpdateTaskHandler(w http.ResponseWriter, r *http.Request) {
	taskID := r.URL.Query().Get("id")
	if taskID == "" {
		writeError(w, "Missing task ID", http.StatusBadRequest)
		return
	}

	var patch types.TaskPatch
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

	task, err := sess.Tasks.Update(r.Context(), taskID, patch)
	if err != nil {
		config.Logger.Error("Failed to update task: ", err)
		writeError(w, "Failed to update task", statusFor(err))
		return
	}

	writeJSON(w, http.StatusOK, types.TaskResponse{
		Success: true,
		Task:    task,
	})
}

func DeleteTaskHandler(w http.ResponseWriter, r *http.Request) {
	taskID := r.URL.Query().Get("id")
	if taskID == "" {
		writeError(w, "Missing task ID", http.StatusBadRequest)
		return
	}

	sess, err := sessionFromRequest(r)
	if err != nil {
		config.Logger.Error("Failed to open session: ", err)
		writeError(w, "Unauthorized", statusFor(err))
		return
	}

	if err := sess.Tasks.Delete(r.Context(), taskID); err != nil {
		config.Logger.Error("Failed to delete task: ", err)
		writeError(w, "Failed to delete task", statusFor(err))
		return
	}

	writeJSON(w, http.StatusOK, types.DeleteResponse{
		Success: true,
		Message: "Task deleted successfully",
	})
}

func ToggleTaskHandler(w http.ResponseWriter, r *http.Request) {
	taskID := r.URL.Query().Get("id")
	if taskID == "" {
		writeError(w, "Missing task ID", http.StatusBadRequest)
		return
	}

	sess, err := sessionFromRequest(r)
	if err != nil {
		config.Logger.Error("Failed to open session: ", err)
		writeError(w, "Unauthorized", statusFor(err))
		return
	}

	task, err := sess.Tasks.ToggleComplete(r.Context(), taskID)
	if err != nil {
		config.Logger.Error("Failed to toggle task: ", err)
		writeError(w, "Failed to toggle task", statusFor(err))
		return
	}

	writeJSON(w, http.StatusOK, types.TaskResponse{
		Success: true,
		Task:    task,
	})
}

func PostponeTaskHandler(w http.ResponseWriter, r *http.Request) {
	taskID := r.URL.Query().Get("id")
	if taskID == "" {
		writeError(w, "Missing task ID", http.StatusBadRequest)
		return
	}

	sess, err := sessionFromRequest(r)
	if err != nil {
		config.Logger.Error("Failed to open session: ", err)
		writeError(w, "Unauthorized", statusFor(err))
		return
	}

	task, err := sess.Tasks.Postpone(r.Context(), taskID)
	if err != nil {
		config.Logger.Error("Failed to postpone task: ", err)
		writeError(w, "Failed to postpone task", statusFor(err))
		return
	}

	writeJSON(w, http.StatusOK, types.TaskResponse{
		Success: true,
		Task:    task,
	})
}

func UpdateNotesHandler(w http.ResponseWriter, r *http.Request) {
	taskID := r.URL.Query().Get("id")
	if taskID == "" {
		writeError(w, "Missing task ID", http.StatusBadRequest)
		return
	}

	var body struct {
		Notes string `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		config.Logger.Error("Failed to decode notes JSON: ", err)
		writeError(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}

	sess, err := sessionFromRequest(r)
	if err != nil {
		config.Logger.Error("Failed to open session: ", err)
		writeError(w, "Unauthorized", statusFor(err))
		return
	}

	task, err := sess.Tasks.UpdateNotes(r.Context(), taskID, body.Notes)
	if err != nil {
		config.Logger.Error("Failed to update notes: ", err)
		writeError(w, "Failed to update notes", statusFor(err))
		return
	}

	writeJSON(w, http.StatusOK, types.TaskResponse{
		Success: true,
		Task:    task,
	})
}
