package token

import "testing"

func setSecrets(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_ACCESS_SECRET", "test-access-secret")
	t.Setenv("JWT_REFRESH_SECRET", "test-refresh-secret")
}

func TestGenerateAndValidate(t *testing.T) {
	setSecrets(t)

	accessToken, refreshToken := GenerateTokens("user-42")
	if accessToken == "" || refreshToken == "" {
		t.Fatal("Expected both tokens to be generated")
	}
	if accessToken == refreshToken {
		t.Error("Access and refresh tokens must differ")
	}

	t.Run("access token round trip", func(t *testing.T) {
		dto, err := ValidateAccessToken(accessToken)
		if err != nil {
			t.Fatalf("ValidateAccessToken failed: %v", err)
		}
		if dto.Id != "user-42" {
			t.Errorf("Expected id user-42, got %q", dto.Id)
		}
	})

	t.Run("refresh token round trip", func(t *testing.T) {
		dto, err := ValidateRefreshToken(refreshToken)
		if err != nil {
			t.Fatalf("ValidateRefreshToken failed: %v", err)
		}
		if dto.Id != "user-42" {
			t.Errorf("Expected id user-42, got %q", dto.Id)
		}
	})

	t.Run("secrets are not interchangeable", func(t *testing.T) {
		if _, err := ValidateRefreshToken(accessToken); err == nil {
			t.Error("Access token must not validate as refresh token")
		}
		if _, err := ValidateAccessToken(refreshToken); err == nil {
			t.Error("Refresh token must not validate as access token")
		}
	})

	t.Run("tampered token rejected", func(t *testing.T) {
		if _, err := ValidateAccessToken(accessToken + "x"); err == nil {
			t.Error("Tampered token must not validate")
		}
	})

	t.Run("garbage rejected", func(t *testing.T) {
		if _, err := ValidateAccessToken("not-a-jwt"); err == nil {
			t.Error("Garbage must not validate")
		}
	})
}
