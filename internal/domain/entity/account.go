package entity

import (
	"fmt"

	"github.com/lite-lake/simply-dns/internal/domain"
	"github.com/lite-lake/simply-dns/internal/domain/valueobject"
)

// Account holds the credentials for one Simply.com account. Zones reference
// accounts by name, so several domains can share a key and a config can
// carry more than one account. BaseURL is only set to point at a test or
// staging endpoint.
type Account struct {
	Name    string                `yaml:"name"`
	Number  string                `yaml:"number"`
	APIKey  valueobject.SecretRef `yaml:"api_key"`
	BaseURL string                `yaml:"base_url,omitempty"`
}

func (a *Account) Validate() error {
	if a.Name == "" {
		return fmt.Errorf("%w: account name is required", domain.ErrInvalidName)
	}
	if a.Number == "" {
		return domain.RequiredField("number")
	}
	if err := a.APIKey.Validate(); err != nil {
		return fmt.Errorf("api_key: %w", err)
	}
	return nil
}
