package service

import (
	"errors"
	"testing"

	"github.com/blogium-next/internal/config"
)

func TestValidatePassword_EmptyPolicyAcceptsAnything(t *testing.T) {
	if err := validatePassword(config.PasswordPolicyConfig{}, ""); err != nil {
		t.Fatalf("expected empty policy to accept empty password, got %v", err)
	}
}

func TestValidatePassword_Rules(t *testing.T) {
	policy := config.PasswordPolicyConfig{
		MinLength:     8,
		RequireUpper:  true,
		RequireLower:  true,
		RequireNumber: true,
	}

	cases := []struct {
		name     string
		password string
		wantKey  string
	}{
		{"too_short", "Ab1", "error.password_min_length"},
		{"no_upper", "abcdefg1", "error.password_require_upper"},
		{"no_lower", "ABCDEFG1", "error.password_require_lower"},
		{"no_number", "Abcdefgh", "error.password_require_number"},
		{"ok", "Abcdefg1", ""},
	}
	for _, tc := range cases {
		err := validatePassword(policy, tc.password)
		if tc.wantKey == "" {
			if err != nil {
				t.Fatalf("%s: expected pass, got %v", tc.name, err)
			}
			continue
		}
		if !errors.Is(err, ErrWeakPassword) {
			t.Fatalf("%s: expected ErrWeakPassword, got %v", tc.name, err)
		}
		var policyErr passwordPolicyError
		if !errors.As(err, &policyErr) {
			t.Fatalf("%s: expected passwordPolicyError, got %T", tc.name, err)
		}
		if policyErr.Key() != tc.wantKey {
			t.Fatalf("%s: expected key %q, got %q", tc.name, tc.wantKey, policyErr.Key())
		}
	}
}

func TestValidatePassword_MinLengthCountsRunes(t *testing.T) {
	policy := config.PasswordPolicyConfig{MinLength: 4}
	if err := validatePassword(policy, "密码密码"); err != nil {
		t.Fatalf("expected 4 rune password to pass, got %v", err)
	}
	if err := validatePassword(policy, "密码密"); !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("expected 3 rune password to fail, got %v", err)
	}
}
