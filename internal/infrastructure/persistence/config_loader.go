package persistence

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lite-lake/simply-dns/internal/domain"
	"github.com/lite-lake/simply-dns/internal/domain/entity"
	"gopkg.in/yaml.v3"
)

var (
	ErrConfigNotLoaded = errors.New("config not loaded")
	ErrAccountConflict = errors.New("account conflict")
	ErrSecretConflict  = errors.New("secret conflict")
)

// ConfigLoader reads the desired state from a config directory:
//
//	config.yaml   accounts, defaults, and optionally secrets and zones
//	secrets.yaml  additional secrets (optional)
//	zones/*.yaml  additional zones, merged in file name order (optional)
//
// Unknown YAML keys are rejected so a typo'd field fails loudly instead of
// silently planning the wrong records.
type ConfigLoader struct {
	baseDir string
}

func NewConfigLoader(baseDir string) *ConfigLoader {
	return &ConfigLoader{baseDir: baseDir}
}

func (l *ConfigLoader) Load(ctx context.Context) (*entity.Config, error) {
	if _, err := os.Stat(l.baseDir); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: config directory %s does not exist", domain.ErrConfigNotFound, l.baseDir)
	}

	cfg := &entity.Config{}

	mainPath := filepath.Join(l.baseDir, "config.yaml")
	if err := loadInto(mainPath, cfg); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrConfigNotFound, mainPath)
		}
		return nil, fmt.Errorf("failed to load config.yaml: %w", err)
	}

	secretsPath := filepath.Join(l.baseDir, "secrets.yaml")
	if _, err := os.Stat(secretsPath); err == nil {
		secrets, err := loadEntity[entity.Secret](secretsPath, "secrets")
		if err != nil {
			return nil, fmt.Errorf("failed to load secrets.yaml: %w", err)
		}
		cfg.Secrets = append(cfg.Secrets, secrets...)
	}

	zoneFiles, err := filepath.Glob(filepath.Join(l.baseDir, "zones", "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan zones directory: %w", err)
	}
	sort.Strings(zoneFiles)
	for _, path := range zoneFiles {
		zones, err := loadEntity[entity.Zone](path, "zones")
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", filepath.Base(path), err)
		}
		cfg.Zones = append(cfg.Zones, zones...)
	}

	cfg.ApplyDefaults()

	return cfg, nil
}

func (l *ConfigLoader) Validate(cfg *entity.Config) error {
	if cfg == nil {
		return ErrConfigNotLoaded
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := validateReferences(cfg); err != nil {
		return err
	}

	if err := validateConflicts(cfg); err != nil {
		return err
	}

	return nil
}

func loadInto(filePath string, out interface{}) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	return decodeStrict(data, out)
}

func loadEntity[T any](filePath, yamlKey string) ([]T, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	itemsRaw, ok := raw[yamlKey]
	if !ok {
		return nil, nil
	}

	itemsData, err := yaml.Marshal(itemsRaw)
	if err != nil {
		return nil, err
	}

	var items []T
	if err := decodeStrict(itemsData, &items); err != nil {
		return nil, err
	}

	return items, nil
}

func decodeStrict(data []byte, out interface{}) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func validateReferences(cfg *entity.Config) error {
	accounts := cfg.GetAccountMap()

	for _, zone := range cfg.Zones {
		if _, ok := accounts[zone.Account]; !ok {
			return fmt.Errorf("%w: account '%s' referenced by zone '%s' does not exist", domain.ErrMissingReference, zone.Account, zone.Domain)
		}
	}

	// Account api_key secret refs are checked at resolve time instead: the
	// resolver falls back to environment variables, so absence from
	// secrets.yaml is not an error here.
	return nil
}

func validateConflicts(cfg *entity.Config) error {
	secretNames := make(map[string]bool)
	for _, secret := range cfg.Secrets {
		if secretNames[secret.Name] {
			return fmt.Errorf("%w: secret '%s' is defined multiple times", ErrSecretConflict, secret.Name)
		}
		secretNames[secret.Name] = true
	}

	accountNames := make(map[string]bool)
	for _, account := range cfg.Accounts {
		if accountNames[account.Name] {
			return fmt.Errorf("%w: account '%s' is defined multiple times", ErrAccountConflict, account.Name)
		}
		accountNames[account.Name] = true
	}

	zoneDomains := make(map[string]string)
	for _, zone := range cfg.Zones {
		key := strings.ToLower(zone.Domain)
		if _, ok := zoneDomains[key]; ok {
			return fmt.Errorf("%w: zone '%s' is defined multiple times", domain.ErrZoneConflict, zone.Domain)
		}
		zoneDomains[key] = zone.Domain
	}

	return nil
}
