package secrets

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/lite-lake/simply-dns/internal/domain"
	"github.com/lite-lake/simply-dns/internal/domain/entity"
	"github.com/lite-lake/simply-dns/internal/domain/valueobject"
)

// EnvPrefix is the prefix for environment fallbacks: a secret named
// api_key that is absent from secrets.yaml resolves from
// SIMPLYDNS_SECRET_API_KEY. This keeps key material out of the config
// tree entirely when preferred.
const EnvPrefix = "SIMPLYDNS_SECRET_"

type SecretResolver struct {
	secrets        map[string]string
	resolvedValues map[string]string
}

func NewSecretResolver(secrets []entity.Secret) *SecretResolver {
	s := &SecretResolver{
		secrets:        make(map[string]string),
		resolvedValues: make(map[string]string),
	}
	for _, secret := range secrets {
		s.secrets[secret.Name] = secret.Value
	}
	return s
}

func (r *SecretResolver) Resolve(ref valueobject.SecretRef) (string, error) {
	val, err := ref.Resolve(r.secrets)
	if err == nil {
		return val, nil
	}
	if errors.Is(err, domain.ErrMissingSecret) && ref.Secret != "" {
		if env, ok := os.LookupEnv(envKey(ref.Secret)); ok {
			return env, nil
		}
	}
	return "", err
}

// APIKey materializes the API key for an account.
func (r *SecretResolver) APIKey(account *entity.Account) (string, error) {
	val, err := r.Resolve(account.APIKey)
	if err != nil {
		return "", fmt.Errorf("accounts[%s].api_key: %w", account.Name, err)
	}
	return val, nil
}

func (r *SecretResolver) ResolveAll(cfg *entity.Config) error {
	for i := range cfg.Accounts {
		ref := cfg.Accounts[i].APIKey
		val, err := r.Resolve(ref)
		if err != nil {
			return fmt.Errorf("accounts[%s].api_key: %w", cfg.Accounts[i].Name, err)
		}
		r.cacheResolved(ref, val)
	}
	return nil
}

func (r *SecretResolver) GetResolvedValue(ref valueobject.SecretRef) string {
	key := cacheKey(ref)
	if val, ok := r.resolvedValues[key]; ok {
		return val
	}
	val, _ := r.Resolve(ref)
	return val
}

func (r *SecretResolver) cacheResolved(ref valueobject.SecretRef, val string) {
	r.resolvedValues[cacheKey(ref)] = val
}

func cacheKey(ref valueobject.SecretRef) string {
	return ref.Plain + "|" + ref.Secret
}

func envKey(name string) string {
	mapped := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z':
			return r - ('a' - 'A')
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		default:
			return '_'
		}
	}, name)
	return EnvPrefix + mapped
}
