package supabase

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"studyflow/planner/config"

	"github.com/golang-jwt/jwt"
	"github.com/supabase-community/supabase-go"
)

// Client is the shared service-level client, used for work that is not tied
// to a signed-in user (signup profile rows, health checks).
var Client *supabase.Client

func Init() {
	apiURL := os.Getenv("SUPABASE_URL")
	apiKey := os.Getenv("SUPABASE_KEY")

	if apiURL == "" || apiKey == "" {
		config.Logger.Fatal("SUPABASE_URL or SUPABASE_KEY is missing")
	}

	var err error
	Client, err = supabase.NewClient(apiURL, apiKey, &supabase.ClientOptions{})
	if err != nil {
		config.Logger.Fatal("Failed to create Supabase client: ", err)
	}
}

// ClientFromRequest builds a client scoped to the caller's access token and
// returns it together with the owner id from the token's sub claim. Row
// level security at the backend does the actual enforcement; the sub is only
// trusted as a scoping key, which is why an unverified parse is enough here.
func ClientFromRequest(r *http.Request) (*supabase.Client, string, error) {
	token, err := BearerToken(r)
	if err != nil {
		return nil, "", err
	}
	return ClientForToken(token)
}

// BearerToken extracts the raw access token from the Authorization header.
func BearerToken(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", fmt.Errorf("missing Authorization header")
	}

	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == "" || token == authHeader {
		return "", fmt.Errorf("invalid Authorization header")
	}
	return token, nil
}

// ClientForToken builds a user-scoped client for a raw access token.
func ClientForToken(tokenString string) (*supabase.Client, string, error) {
	apiURL := os.Getenv("SUPABASE_URL")
	apiKey := os.Getenv("SUPABASE_KEY")

	owner, err := OwnerFromToken(tokenString)
	if err != nil {
		return nil, "", err
	}

	client, err := supabase.NewClient(apiURL, apiKey, &supabase.ClientOptions{
		Headers: map[string]string{
			"Authorization": "Bearer " + tokenString,
		},
	})
	return client, owner, err
}

// OwnerFromToken pulls the sub claim out of a Supabase access token.
func OwnerFromToken(tokenString string) (string, error) {
	token, _, err := new(jwt.Parser).ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return "", fmt.Errorf("invalid JWT format")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", fmt.Errorf("invalid JWT claims")
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", fmt.Errorf("missing sub in token")
	}
	return sub, nil
}
