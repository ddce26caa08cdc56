package secrets

import (
	"errors"
	"strings"
	"testing"

	"github.com/lite-lake/simply-dns/internal/domain"
	"github.com/lite-lake/simply-dns/internal/domain/entity"
	"github.com/lite-lake/simply-dns/internal/domain/valueobject"
)

func TestSecretResolver_Resolve(t *testing.T) {
	secrets := []entity.Secret{
		{Name: "simply_api_key", Value: "super-secret-123"},
		{Name: "backup-key", Value: "key-abc-xyz"},
	}
	resolver := NewSecretResolver(secrets)

	t.Run("resolve secret reference", func(t *testing.T) {
		ref := valueobject.NewSecretRefSecret("simply_api_key")
		val, err := resolver.Resolve(*ref)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if val != "super-secret-123" {
			t.Errorf("expected 'super-secret-123', got %q", val)
		}
	})

	t.Run("resolve plain value", func(t *testing.T) {
		ref := valueobject.NewSecretRefPlain("plain-key")
		val, err := resolver.Resolve(*ref)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if val != "plain-key" {
			t.Errorf("expected 'plain-key', got %q", val)
		}
	})

	t.Run("missing secret returns error", func(t *testing.T) {
		ref := valueobject.NewSecretRefSecret("non-existent")
		_, err := resolver.Resolve(*ref)
		if !errors.Is(err, domain.ErrMissingSecret) {
			t.Errorf("expected ErrMissingSecret, got %v", err)
		}
	})

	t.Run("environment fallback", func(t *testing.T) {
		t.Setenv("SIMPLYDNS_SECRET_FROM_ENV", "env-value")

		ref := valueobject.NewSecretRefSecret("from-env")
		val, err := resolver.Resolve(*ref)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if val != "env-value" {
			t.Errorf("expected 'env-value', got %q", val)
		}
	})

	t.Run("secrets file wins over environment", func(t *testing.T) {
		t.Setenv("SIMPLYDNS_SECRET_SIMPLY_API_KEY", "env-value")

		ref := valueobject.NewSecretRefSecret("simply_api_key")
		val, err := resolver.Resolve(*ref)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if val != "super-secret-123" {
			t.Errorf("expected file value, got %q", val)
		}
	})
}

func TestSecretResolver_APIKey(t *testing.T) {
	resolver := NewSecretResolver([]entity.Secret{
		{Name: "main-key", Value: "key-material"},
	})

	t.Run("resolves account key", func(t *testing.T) {
		account := &entity.Account{Name: "main", Number: "S1", APIKey: *valueobject.NewSecretRefSecret("main-key")}
		val, err := resolver.APIKey(account)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if val != "key-material" {
			t.Errorf("expected 'key-material', got %q", val)
		}
	})

	t.Run("error names the account", func(t *testing.T) {
		account := &entity.Account{Name: "backup", Number: "S2", APIKey: *valueobject.NewSecretRefSecret("missing")}
		_, err := resolver.APIKey(account)
		if !errors.Is(err, domain.ErrMissingSecret) {
			t.Fatalf("expected ErrMissingSecret, got %v", err)
		}
		if got := err.Error(); !strings.Contains(got, "accounts[backup]") {
			t.Errorf("error should name the account, got %q", got)
		}
	})
}

func TestSecretResolver_ResolveAll_CachesValues(t *testing.T) {
	resolver := NewSecretResolver([]entity.Secret{
		{Name: "main-key", Value: "resolved-key"},
	})

	cfg := &entity.Config{
		Accounts: []entity.Account{
			{Name: "main", Number: "S1", APIKey: *valueobject.NewSecretRefSecret("main-key")},
		},
	}

	if err := resolver.ResolveAll(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ref := cfg.Accounts[0].APIKey
	if val := resolver.GetResolvedValue(ref); val != "resolved-key" {
		t.Errorf("GetResolvedValue returned %q, expected 'resolved-key'", val)
	}
}

func TestSecretResolver_ResolveAll_DoesNotModifyOriginal(t *testing.T) {
	resolver := NewSecretResolver([]entity.Secret{
		{Name: "main-key", Value: "resolved-key"},
	})

	cfg := &entity.Config{
		Accounts: []entity.Account{
			{Name: "main", Number: "S1", APIKey: *valueobject.NewSecretRefSecret("main-key")},
		},
	}

	if err := resolver.ResolveAll(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Accounts[0].APIKey.Plain != "" {
		t.Errorf("ResolveAll modified APIKey.Plain, expected empty, got %q", cfg.Accounts[0].APIKey.Plain)
	}
	if cfg.Accounts[0].APIKey.Secret != "main-key" {
		t.Errorf("ResolveAll modified APIKey.Secret, got %q", cfg.Accounts[0].APIKey.Secret)
	}
}

func TestEnvKey(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"api_key", "SIMPLYDNS_SECRET_API_KEY"},
		{"simply-main", "SIMPLYDNS_SECRET_SIMPLY_MAIN"},
		{"Key.2", "SIMPLYDNS_SECRET_KEY_2"},
	}

	for _, tt := range tests {
		if got := envKey(tt.name); got != tt.want {
			t.Errorf("envKey(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
