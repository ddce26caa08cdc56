package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/lite-lake/simply-dns/internal/domain"
	"github.com/lite-lake/simply-dns/internal/domain/contract"
	"github.com/lite-lake/simply-dns/internal/domain/entity"
	"github.com/lite-lake/simply-dns/internal/domain/retry"
	"github.com/lite-lake/simply-dns/internal/domain/service"
	"github.com/lite-lake/simply-dns/internal/domain/valueobject"
	"github.com/lite-lake/simply-dns/internal/infrastructure/logger"
	"github.com/lite-lake/simply-dns/internal/infrastructure/secrets"
	"github.com/lite-lake/simply-dns/internal/simply"
	"gopkg.in/yaml.v3"
)

// ConfigSource loads and validates the desired configuration.
type ConfigSource interface {
	Load(ctx context.Context) (*entity.Config, error)
	Validate(cfg *entity.Config) error
}

// PlanStore persists plans between the plan and apply steps.
type PlanStore interface {
	Save(ctx context.Context, plan *valueobject.Plan) error
	Load(ctx context.Context) (*valueobject.Plan, error)
	Clear(ctx context.Context) error
}

// RecordAPIFactory builds the API client for an account once its key has
// been resolved.
type RecordAPIFactory func(account *entity.Account, apiKey string) contract.RecordAPI

// DefaultAPIFactory returns the real Simply.com client.
func DefaultAPIFactory(account *entity.Account, apiKey string) contract.RecordAPI {
	return simply.New(simply.Config{
		Account: account.Number,
		APIKey:  apiKey,
		BaseURL: account.BaseURL,
	})
}

type SyncConfig struct {
	Loader     ConfigSource
	Store      PlanStore
	APIFactory RecordAPIFactory
	Differ     *service.DifferService
	MaxRetries int
}

// SyncUsecase drives the plan and apply steps: it loads config, talks to
// the record API per account, and hands the diffing to the domain service.
type SyncUsecase struct {
	loader     ConfigSource
	store      PlanStore
	apiFactory RecordAPIFactory
	differ     *service.DifferService
	maxRetries int
}

func NewSyncUsecase(cfg *SyncConfig) *SyncUsecase {
	if cfg == nil {
		cfg = &SyncConfig{}
	}

	differ := cfg.Differ
	if differ == nil {
		differ = service.NewDifferService()
	}

	factory := cfg.APIFactory
	if factory == nil {
		factory = DefaultAPIFactory
	}

	maxRetries := cfg.MaxRetries
	if maxRetries <= 0 {
		maxRetries = domain.DefaultRetryMaxAttempts
	}

	return &SyncUsecase{
		loader:     cfg.Loader,
		store:      cfg.Store,
		apiFactory: factory,
		differ:     differ,
		maxRetries: maxRetries,
	}
}

// Result is the outcome of one applied change. CreatedIDs is only set for
// creates.
type Result struct {
	Change     *valueobject.Change
	CreatedIDs []simply.RecordID
	Err        error
}

// Plan builds the change set for every configured zone within scope and,
// when a store is wired, persists it for a later Apply.
func (u *SyncUsecase) Plan(ctx context.Context, scope *valueobject.Scope) (*valueobject.Plan, error) {
	ctx = logger.WithOperation(ctx, "plan")
	log := logger.FromContext(ctx)

	if scope == nil {
		scope = valueobject.NewScope()
	}

	cfg, err := u.loadConfig(ctx)
	if err != nil {
		return nil, err
	}

	resolver := secrets.NewSecretResolver(cfg.Secrets)
	accounts := cfg.GetAccountMap()
	apis := make(map[string]contract.RecordAPI)

	plan := valueobject.NewPlanWithScope(scope)

	for i := range cfg.Zones {
		zone := &cfg.Zones[i]
		if scope.Domain != "" && !strings.EqualFold(scope.Domain, zone.Domain) {
			continue
		}

		api, err := u.apiFor(apis, resolver, accounts, zone.Account)
		if err != nil {
			return nil, err
		}

		remote, err := u.listRecords(ctx, api, zone.Domain)
		if err != nil {
			return nil, fmt.Errorf("listing records for %s: %w", zone.Domain, err)
		}

		log.Debug("fetched remote records", "domain", zone.Domain, "count", len(remote))
		u.differ.PlanZone(plan, zone, remote, scope)
	}

	digest, err := DesiredDigest(cfg)
	if err != nil {
		return nil, err
	}
	plan.SetDigest(digest)

	if u.store != nil {
		if err := u.store.Save(ctx, plan); err != nil {
			return nil, err
		}
	}

	log.Info("plan completed", "zones", len(cfg.Zones), "changes", len(plan.Changes()))
	return plan, nil
}

// Apply executes every change in the plan, collecting per-change results
// instead of stopping at the first failure. A plan whose digest no longer
// matches the current config is refused with ErrPlanStale.
func (u *SyncUsecase) Apply(ctx context.Context, plan *valueobject.Plan) ([]*Result, error) {
	ctx = logger.WithOperation(ctx, "apply")
	log := logger.FromContext(ctx)

	cfg, err := u.loadConfig(ctx)
	if err != nil {
		return nil, err
	}

	digest, err := DesiredDigest(cfg)
	if err != nil {
		return nil, err
	}
	if plan.Digest() != "" && plan.Digest() != digest {
		return nil, domain.ErrPlanStale
	}

	resolver := secrets.NewSecretResolver(cfg.Secrets)
	accounts := cfg.GetAccountMap()
	zones := cfg.GetZoneMap()
	apis := make(map[string]contract.RecordAPI)

	log.Info("starting apply", "changes", len(plan.Changes()))

	results := make([]*Result, 0, len(plan.Changes()))
	for i, ch := range plan.Changes() {
		log.Debug("applying change",
			"index", i+1,
			"type", ch.Type().String(),
			"domain", ch.Domain(),
			"key", ch.Key(),
		)

		zone, ok := zones[ch.Domain()]
		if !ok {
			results = append(results, &Result{Change: ch, Err: fmt.Errorf("%w: %s", domain.ErrZoneNotConfigured, ch.Domain())})
			continue
		}

		api, err := u.apiFor(apis, resolver, accounts, zone.Account)
		if err != nil {
			results = append(results, &Result{Change: ch, Err: err})
			continue
		}

		results = append(results, u.applyChange(ctx, api, ch))
	}

	successCount := 0
	failedCount := 0
	for _, r := range results {
		if r.Err != nil {
			failedCount++
		} else {
			successCount++
		}
	}

	log.Info("apply completed", "total", len(results), "success", successCount, "failed", failedCount)

	// The plan no longer reflects remote state once changes ran, so it is
	// cleared even after a partial failure; the next plan shows what is left.
	if u.store != nil && len(plan.Changes()) > 0 {
		if err := u.store.Clear(ctx); err != nil {
			log.Warn("could not clear plan file", "error", err)
		}
	}

	return results, nil
}

func (u *SyncUsecase) applyChange(ctx context.Context, api contract.RecordAPI, ch *valueobject.Change) *Result {
	result := &Result{Change: ch}

	var err error
	switch ch.Type() {
	case valueobject.ChangeTypeCreate:
		spec, ok := ch.NewState().(entity.RecordSpec)
		if !ok {
			result.Err = fmt.Errorf("change %s has no desired record", ch.Key())
			return result
		}
		err = logger.TimedOperation(ctx, "create_record", func() error {
			ids, createErr := retry.DoWithResult(ctx, func() ([]simply.RecordID, error) {
				return api.CreateRecord(ctx, ch.Domain(), simply.CreateRequest{
					Type:     spec.Type,
					Name:     spec.Name,
					Data:     spec.Data,
					Priority: spec.Priority,
					TTL:      spec.TTL,
					Comment:  spec.Comment,
				})
			}, retry.WithMaxAttempts(u.maxRetries), retry.WithIsRetryable(simply.IsTransport))
			result.CreatedIDs = ids
			return createErr
		})

	case valueobject.ChangeTypeUpdate:
		old, okOld := ch.OldState().(simply.Record)
		spec, okNew := ch.NewState().(entity.RecordSpec)
		if !okOld || !okNew {
			result.Err = fmt.Errorf("change %s is missing record state", ch.Key())
			return result
		}
		err = logger.TimedOperation(ctx, "update_record", func() error {
			return retry.Do(ctx, func() error {
				return api.UpdateRecord(ctx, ch.Domain(), old.ID, simply.UpdateRequest{
					Type:     spec.Type,
					Name:     spec.Name,
					Data:     spec.Data,
					Priority: spec.Priority,
					TTL:      spec.TTL,
				})
			}, retry.WithMaxAttempts(u.maxRetries), retry.WithIsRetryable(simply.IsTransport))
		})

	case valueobject.ChangeTypeDelete:
		old, ok := ch.OldState().(simply.Record)
		if !ok {
			result.Err = fmt.Errorf("change %s has no remote record", ch.Key())
			return result
		}
		err = logger.TimedOperation(ctx, "delete_record", func() error {
			return retry.Do(ctx, func() error {
				return api.DeleteRecord(ctx, ch.Domain(), old.ID)
			}, retry.WithMaxAttempts(u.maxRetries), retry.WithIsRetryable(simply.IsTransport))
		})

	default:
		return result
	}

	if err != nil {
		logger.FromContext(ctx).Error("change failed", "key", ch.Key(), "domain", ch.Domain(), "error", err)
		result.Err = err
	}
	return result
}

func (u *SyncUsecase) listRecords(ctx context.Context, api contract.RecordAPI, domainName string) ([]simply.Record, error) {
	var records []simply.Record
	err := logger.TimedOperation(ctx, "list_records", func() error {
		listed, listErr := retry.DoWithResult(ctx, func() ([]simply.Record, error) {
			return api.ListRecords(ctx, domainName)
		}, retry.WithMaxAttempts(u.maxRetries), retry.WithIsRetryable(simply.IsTransport))
		records = listed
		return listErr
	})
	return records, err
}

func (u *SyncUsecase) apiFor(cache map[string]contract.RecordAPI, resolver *secrets.SecretResolver, accounts map[string]*entity.Account, accountName string) (contract.RecordAPI, error) {
	if api, ok := cache[accountName]; ok {
		return api, nil
	}

	account, ok := accounts[accountName]
	if !ok {
		return nil, fmt.Errorf("%w: account '%s'", domain.ErrMissingReference, accountName)
	}

	apiKey, err := resolver.APIKey(account)
	if err != nil {
		return nil, err
	}

	api := u.apiFactory(account, apiKey)
	cache[accountName] = api
	return api, nil
}

func (u *SyncUsecase) loadConfig(ctx context.Context) (*entity.Config, error) {
	cfg, err := u.loader.Load(ctx)
	if err != nil {
		return nil, err
	}
	if err := u.loader.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DesiredDigest fingerprints the configured zones. Apply compares it with
// the digest carried by the plan so a plan written against an older config
// is refused instead of silently applying outdated changes.
func DesiredDigest(cfg *entity.Config) (string, error) {
	data, err := yaml.Marshal(cfg.Zones)
	if err != nil {
		return "", fmt.Errorf("computing config digest: %w", err)
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
