package supabase

import (
	"context"
	"fmt"

	"studyflow/planner/types"

	gotruetypes "github.com/supabase-community/gotrue-go/types"
)

// Credentials returned to the client after sign-in or signup.
type Credentials struct {
	AccessToken  string
	RefreshToken string
	UserID       string
}

// SignIn performs an email/password sign-in against the hosted auth service.
func SignIn(email, password string) (Credentials, error) {
	resp, err := Client.Auth.SignInWithEmailPassword(email, password)
	if err != nil {
		return Credentials{}, types.NewGatewayError("sign in", err)
	}
	return Credentials{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		UserID:       resp.User.ID.String(),
	}, nil
}

// SignUp registers a new account and creates its profile row, the same way
// the web client used to.
func SignUp(ctx context.Context, email, password, name string) (string, error) {
	resp, err := Client.Auth.Signup(gotruetypes.SignupRequest{
		Email:    email,
		Password: password,
		Data: map[string]interface{}{
			"name": name,
		},
	})
	if err != nil {
		return "", types.NewGatewayError("sign up", err)
	}

	userID := resp.User.ID.String()
	profiles := NewProfiles(Client)
	if err := profiles.Create(ctx, types.User{ID: userID, Name: name, Email: email}); err != nil {
		return "", fmt.Errorf("signup succeeded but profile creation failed: %w", err)
	}
	return userID, nil
}

// SignOut revokes the caller's session at the auth service.
func SignOut(token string) error {
	client, _, err := ClientForToken(token)
	if err != nil {
		return err
	}
	if err := client.Auth.WithToken(token).Logout(); err != nil {
		return types.NewGatewayError("sign out", err)
	}
	return nil
}
