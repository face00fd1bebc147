package types

// UserPreferences holds per-user settings stored on the profile row.
// StudyGoals maps a subject to target minutes per day.
type UserPreferences struct {
	Theme         string         `json:"theme,omitempty"`
	StudyGoals    map[string]int `json:"study_goals,omitempty"`
	Notifications bool           `json:"notifications,omitempty"`
}

// User is the authenticated owner of tasks and schedule items.
type User struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Email       string           `json:"email"`
	PhotoURL    string           `json:"photo_url,omitempty"`
	Preferences *UserPreferences `json:"preferences,omitempty"`
}

// ProfilePatch is a partial profile update.
type ProfilePatch struct {
	Name        *string          `json:"name,omitempty"`
	PhotoURL    *string          `json:"photo_url,omitempty"`
	Preferences *UserPreferences `json:"preferences,omitempty"`
}

func (p ProfilePatch) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if p.Name != nil {
		fields["name"] = *p.Name
	}
	if p.PhotoURL != nil {
		fields["avatar_url"] = *p.PhotoURL
	}
	if p.Preferences != nil {
		fields["preferences"] = *p.Preferences
	}
	return fields
}
