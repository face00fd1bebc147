package supabase

import (
	"net/http/httptest"
	"testing"
)

func TestGenerateTestJWTRoundTripsOwner(t *testing.T) {
	t.Setenv("SUPABASE_JWT_SECRET", "unit-test-secret")

	token, err := GenerateTestJWT("user-123")
	if err != nil {
		t.Fatalf("GenerateTestJWT: %v", err)
	}

	owner, err := OwnerFromToken(token)
	if err != nil {
		t.Fatalf("OwnerFromToken: %v", err)
	}
	if owner != "user-123" {
		t.Errorf("owner = %q, want %q", owner, "user-123")
	}
}

func TestOwnerFromTokenRejectsGarbage(t *testing.T) {
	if _, err := OwnerFromToken("not-a-jwt"); err == nil {
		t.Error("malformed token must be rejected")
	}
}

func TestBearerToken(t *testing.T) {
	r := httptest.NewRequest("GET", "/tasks", nil)
	if _, err := BearerToken(r); err == nil {
		t.Error("missing Authorization header must be rejected")
	}

	r.Header.Set("Authorization", "abc.def.ghi")
	if _, err := BearerToken(r); err == nil {
		t.Error("header without Bearer prefix must be rejected")
	}

	r.Header.Set("Authorization", "Bearer abc.def.ghi")
	token, err := BearerToken(r)
	if err != nil {
		t.Fatalf("BearerToken: %v", err)
	}
	if token != "abc.def.ghi" {
		t.Errorf("token = %q", token)
	}
}
