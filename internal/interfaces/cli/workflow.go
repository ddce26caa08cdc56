package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/lite-lake/simply-dns/internal/application/usecase"
	"github.com/lite-lake/simply-dns/internal/domain"
	"github.com/lite-lake/simply-dns/internal/domain/contract"
	"github.com/lite-lake/simply-dns/internal/domain/entity"
	"github.com/lite-lake/simply-dns/internal/infrastructure/persistence"
	"github.com/lite-lake/simply-dns/internal/infrastructure/secrets"
	"github.com/lite-lake/simply-dns/internal/infrastructure/state"
)

// loadWorkspace reads and validates the configuration under ConfigDir and
// applies the --base-url override to every account.
func loadWorkspace(ctx context.Context) (*entity.Config, error) {
	loader := persistence.NewConfigLoader(ConfigDir)
	cfg, err := loader.Load(ctx)
	if err != nil {
		return nil, err
	}
	if err := loader.Validate(cfg); err != nil {
		return nil, err
	}
	overrideBaseURL(cfg, BaseURL)
	return cfg, nil
}

func overrideBaseURL(cfg *entity.Config, baseURL string) {
	if baseURL == "" {
		return
	}
	for i := range cfg.Accounts {
		cfg.Accounts[i].BaseURL = baseURL
	}
}

// resolveRecordAPI builds an API client for the zone that manages the given
// domain, resolving the owning account's key on the way.
func resolveRecordAPI(cfg *entity.Config, domainName string) (contract.RecordAPI, *entity.Zone, error) {
	zone := findZone(cfg, domainName)
	if zone == nil {
		return nil, nil, fmt.Errorf("%w: %s", domain.ErrZoneNotConfigured, domainName)
	}
	account := cfg.GetAccountMap()[zone.Account]
	if account == nil {
		return nil, nil, fmt.Errorf("%w: account '%s'", domain.ErrMissingReference, zone.Account)
	}
	apiKey, err := secrets.NewSecretResolver(cfg.Secrets).APIKey(account)
	if err != nil {
		return nil, nil, err
	}
	return usecase.DefaultAPIFactory(account, apiKey), zone, nil
}

func findZone(cfg *entity.Config, domainName string) *entity.Zone {
	for i := range cfg.Zones {
		if strings.EqualFold(cfg.Zones[i].Domain, domainName) {
			return &cfg.Zones[i]
		}
	}
	return nil
}

// syncUsecase wires the sync usecase against the configured directory and
// the plan file next to it.
func syncUsecase() *usecase.SyncUsecase {
	return usecase.NewSyncUsecase(&usecase.SyncConfig{
		Loader: &workspaceSource{loader: persistence.NewConfigLoader(ConfigDir)},
		Store:  state.NewPlanStore(planPath()),
	})
}

func planPath() string {
	return filepath.Join(ConfigDir, state.DefaultPlanPath)
}

// workspaceSource adds the --base-url override on top of the config loader.
type workspaceSource struct {
	loader *persistence.ConfigLoader
}

func (s *workspaceSource) Load(ctx context.Context) (*entity.Config, error) {
	cfg, err := s.loader.Load(ctx)
	if err != nil {
		return nil, err
	}
	overrideBaseURL(cfg, BaseURL)
	return cfg, nil
}

func (s *workspaceSource) Validate(cfg *entity.Config) error {
	return s.loader.Validate(cfg)
}
