package supabase

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path"
	"time"

	"studyflow/planner/types"

	storage_go "github.com/supabase-community/storage-go"
	"github.com/supabase-community/supabase-go"
)

const avatarBucket = "avatars"

// Profiles is the persistence gateway for the profiles table and the
// avatar storage bucket.
type Profiles struct {
	client *supabase.Client
}

func NewProfiles(client *supabase.Client) *Profiles {
	return &Profiles{client: client}
}

type profileRow struct {
	ID          string                 `json:"id"`
	Name        string                 `json:"name"`
	Email       string                 `json:"email"`
	AvatarURL   string                 `json:"avatar_url,omitempty"`
	Preferences *types.UserPreferences `json:"preferences,omitempty"`
	CreatedAt   string                 `json:"created_at,omitempty"`
}

func (g *Profiles) Get(ctx context.Context, id string) (types.User, error) {
	resp, _, err := g.client.From("profiles").
		Select("*", "", false).
		Eq("id", id).
		Single().
		ExecuteWithContext(ctx)
	if err != nil {
		return types.User{}, types.NewGatewayError("get profile", err)
	}

	var row profileRow
	if err := json.Unmarshal(resp, &row); err != nil {
		return types.User{}, types.NewGatewayError("get profile", fmt.Errorf("decode row: %w", err))
	}
	return types.User{
		ID:          row.ID,
		Name:        row.Name,
		Email:       row.Email,
		PhotoURL:    row.AvatarURL,
		Preferences: row.Preferences,
	}, nil
}

func (g *Profiles) Create(ctx context.Context, user types.User) error {
	row := profileRow{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	_, _, err := g.client.From("profiles").
		Insert([]profileRow{row}, false, "", "", "").
		ExecuteWithContext(ctx)
	if err != nil {
		return types.NewGatewayError("create profile", err)
	}
	return nil
}

func (g *Profiles) Update(ctx context.Context, id string, patch types.ProfilePatch) error {
	fields := patch.Fields()
	if len(fields) == 0 {
		return nil
	}
	_, _, err := g.client.From("profiles").
		Update(fields, "", "").
		Eq("id", id).
		ExecuteWithContext(ctx)
	if err != nil {
		return types.NewGatewayError("update profile", err)
	}
	return nil
}

// UploadAvatar stores the picture under the owner's folder in the avatars
// bucket and records the public URL on the profile row.
func (g *Profiles) UploadAvatar(ctx context.Context, id, filename string, r io.Reader) (string, error) {
	objectPath := path.Join(id, filename)
	upsert := true
	_, err := g.client.Storage.UploadFile(avatarBucket, objectPath, r, storage_go.FileOptions{Upsert: &upsert})
	if err != nil {
		return "", types.NewGatewayError("upload avatar", err)
	}

	url := fmt.Sprintf("%s/storage/v1/object/public/%s/%s",
		os.Getenv("SUPABASE_URL"), avatarBucket, objectPath)

	photo := url
	if err := g.Update(ctx, id, types.ProfilePatch{PhotoURL: &photo}); err != nil {
		return "", err
	}
	return url, nil
}
