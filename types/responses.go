package types

// Response envelopes for the JSON API. Error is only set on failure.

type TaskResponse struct {
	Success      bool   `json:"success"`
	Task         Task   `json:"task,omitempty"`
	ErrorMessage string `json:"error,omitempty"`
}

type GetTasksResponse struct {
	Success      bool   `json:"success"`
	Tasks        []Task `json:"tasks"`
	ErrorMessage string `json:"error,omitempty"`
}

type ScheduleItemResponse struct {
	Success      bool              `json:"success"`
	Item         DailyScheduleItem `json:"item,omitempty"`
	ErrorMessage string            `json:"error,omitempty"`
}

type GetScheduleResponse struct {
	Success      bool                `json:"success"`
	Day          Weekday             `json:"day"`
	Items        []DailyScheduleItem `json:"items"`
	ErrorMessage string              `json:"error,omitempty"`
}

type GetWeekResponse struct {
	Success      bool           `json:"success"`
	Week         WeeklySchedule `json:"week"`
	ErrorMessage string         `json:"error,omitempty"`
}

type ProfileResponse struct {
	Success      bool   `json:"success"`
	User         User   `json:"user,omitempty"`
	ErrorMessage string `json:"error,omitempty"`
}

type AuthResponse struct {
	Success      bool   `json:"success"`
	AccessToken  string `json:"access_token,omitempty"`
	RefreshToken string `json:"refresh_token,omitempty"`
	UserID       string `json:"user_id,omitempty"`
	ErrorMessage string `json:"error,omitempty"`
}

type DeleteResponse struct {
	Success      bool   `json:"success"`
	Message      string `json:"message,omitempty"`
	ErrorMessage string `json:"error,omitempty"`
}
