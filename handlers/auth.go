package handlers

import (
	"encoding/json"
	"net/http"

	"studyflow/planner/config"
	"studyflow/planner/supabase"
	"studyflow/planner/types"
)

func LoginHandler(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Email == "" || body.Password == "" {
		writeError(w, "Missing email or password", http.StatusBadRequest)
		return
	}

	creds, err := supabase.SignIn(body.Email, body.Password)
	if err != nil {
		config.Logger.Error("Sign-in failed: ", err)
		writeError(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}

	writeJSON(w, http.StatusOK, types.AuthResponse{
		Success:      true,
		AccessToken:  creds.AccessToken,
		RefreshToken: creds.RefreshToken,
		UserID:       creds.UserID,
	})
}

func SignupHandler(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Name     string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Email == "" || body.Password == "" {
		writeError(w, "Missing email or password", http.StatusBadRequest)
		return
	}
	if body.Name == "" {
		body.Name = body.Email
	}

	userID, err := supabase.SignUp(r.Context(), body.Email, body.Password, body.Name)
	if err != nil {
		config.Logger.Error("Signup failed: ", err)
		writeError(w, "Signup failed", statusFor(err))
		return
	}

	writeJSON(w, http.StatusCreated, types.AuthResponse{
		Success: true,
		UserID:  userID,
	})
}

// LogoutHandler tears down the caller's mirror stores and revokes the
// session at the auth service.
func LogoutHandler(w http.ResponseWriter, r *http.Request) {
	token, err := supabase.BearerToken(r)
	if err != nil {
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	owner, err := supabase.OwnerFromToken(token)
	if err != nil {
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	sessions.Close(owner)

	if err := supabase.SignOut(token); err != nil {
		// Local teardown already happened; the token revocation failing is
		// not worth failing the logout over.
		config.Logger.Warn("Sign-out at auth service failed: ", err)
	}

	writeJSON(w, http.StatusOK, types.DeleteResponse{
		Success: true,
		Message: "Logged out",
	})
}
