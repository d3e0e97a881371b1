package utils

import (
	"testing"

	"github.com/spf13/viper"

	"github.com/malovets/fleetops/internal/pkg/constants"
)

func TestAuthTokenRoundTrip(t *testing.T) {
	viper.Set(constants.ViperSecretKey, "test-secret")
	t.Cleanup(func() { viper.Set(constants.ViperSecretKey, "") })

	raw, err := GenerateAuthToken(&AuthTokenWrapper{UserID: 42, Secret: "test-secret"})
	if err != nil {
		t.Fatalf("GenerateAuthToken: %v", err)
	}

	parsed, err := ParseAuthToken(raw)
	if err != nil {
		t.Fatalf("ParseAuthToken: %v", err)
	}
	if parsed.UserID != 42 || parsed.Secret != "test-secret" {
		t.Fatalf("claims got %+v", parsed)
	}
}

func TestParseAuthTokenRejectsTampered(t *testing.T) {
	viper.Set(constants.ViperSecretKey, "test-secret")
	t.Cleanup(func() { viper.Set(constants.ViperSecretKey, "") })

	raw, err := GenerateAuthToken(&AuthTokenWrapper{UserID: 42})
	if err != nil {
		t.Fatalf("GenerateAuthToken: %v", err)
	}

	viper.Set(constants.ViperSecretKey, "other-secret")
	if _, err = ParseAuthToken(raw); err == nil {
		t.Fatal("expected tampered token to fail")
	}
}
