package handlers

import (
	"encoding/json"
	"net/http"

	"studyflow/planner/config"
	"studyflow/planner/supabase"
	"studyflow/planner/types"
)

const maxAvatarBytes = 5 << 20

func GetProfileHandler(w http.ResponseWriter, r *http.Request) {
	client, owner, err := supabase.ClientFromRequest(r)
	if err != nil {
		config.Logger.Error("Failed to create Supabase client: ", err)
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	user, err := supabase.NewProfiles(client).Get(r.Context(), owner)
	if err != nil {
		config.Logger.Error("Failed to fetch profile: ", err)
		writeError(w, "Failed to fetch profile", statusFor(err))
		return
	}

	writeJSON(w, http.StatusOK, types.ProfileResponse{
		Success: true,
		User:    user,
	})
}

func UpdateProfileHandler(w http.ResponseWriter, r *http.Request) {
	var patch types.ProfilePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		config.Logger.Error("Failed to decode profile JSON: ", err)
		writeError(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}

	client, owner, err := supabase.ClientFromRequest(r)
	if err != nil {
		config.Logger.Error("Failed to create Supabase client: ", err)
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	profiles := supabase.NewProfiles(client)
	if err := profiles.Update(r.Context(), owner, patch); err != nil {
		config.Logger.Error("Failed to update profile: ", err)
		writeError(w, "Failed to update profile", statusFor(err))
		return
	}

	user, err := profiles.Get(r.Context(), owner)
	if err != nil {
		config.Logger.Error("Failed to fetch profile after update: ", err)
		writeError(w, "Failed to fetch profile", statusFor(err))
		return
	}

	writeJSON(w, http.StatusOK, types.ProfileResponse{
		Success: true,
		User:    user,
	})
}

// UploadAvatarHandler accepts a multipart form with an "avatar" file and
// stores it in the avatars bucket.
func UploadAvatarHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxAvatarBytes); err != nil {
		writeError(w, "Invalid multipart form", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("avatar")
	if err != nil {
		writeError(w, "Missing avatar file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	client, owner, err := supabase.ClientFromRequest(r)
	if err != nil {
		config.Logger.Error("Failed to create Supabase client: ", err)
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	url, err := supabase.NewProfiles(client).UploadAvatar(r.Context(), owner, header.Filename, file)
	if err != nil {
		config.Logger.Error("Failed to upload avatar: ", err)
		writeError(w, "Failed to upload avatar", statusFor(err))
		return
	}

	writeJSON(w, http.StatusOK, types.ProfileResponse{
		Success: true,
		User:    types.User{ID: owner, PhotoURL: url},
	})
}
