package state

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/lite-lake/simply-dns/internal/domain"
	"github.com/lite-lake/simply-dns/internal/domain/entity"
	"github.com/lite-lake/simply-dns/internal/domain/valueobject"
	"github.com/lite-lake/simply-dns/internal/simply"
	"gopkg.in/yaml.v3"
)

// DefaultPlanPath is where "sync plan" leaves its output for "sync apply",
// relative to the config directory.
const DefaultPlanPath = ".simplydns/plan.yaml"

// PlanStore persists a plan between the plan and apply steps. The file is
// guarded by a flock so concurrent invocations cannot interleave a
// half-written plan, and writes go through a temp file plus rename.
type PlanStore struct {
	path  string
	flock *flock.Flock
}

func NewPlanStore(path string) *PlanStore {
	return &PlanStore{
		path:  path,
		flock: flock.New(path + ".lock"),
	}
}

type planDocument struct {
	SavedAt time.Time        `yaml:"saved_at"`
	Digest  string           `yaml:"digest,omitempty"`
	Scope   scopeDocument    `yaml:"scope,omitempty"`
	Changes []changeDocument `yaml:"changes"`
}

type scopeDocument struct {
	Domain string `yaml:"domain,omitempty"`
	Type   string `yaml:"type,omitempty"`
	Name   string `yaml:"name,omitempty"`
}

type changeDocument struct {
	Type    string             `yaml:"type"`
	Domain  string             `yaml:"domain"`
	Key     string             `yaml:"key"`
	Old     *simply.Record     `yaml:"old,omitempty"`
	New     *entity.RecordSpec `yaml:"new,omitempty"`
	Actions []string           `yaml:"actions,omitempty"`
}

func (s *PlanStore) Save(ctx context.Context, plan *valueobject.Plan) error {
	// The lock file lives next to the plan, so the directory must exist
	// before the lock can be taken.
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("%w: creating plan directory: %v", domain.ErrPlanWriteFailed, err)
	}

	if err := s.flock.Lock(); err != nil {
		return fmt.Errorf("acquiring plan lock: %w", err)
	}
	defer s.flock.Unlock()

	doc := planDocument{
		SavedAt: time.Now().UTC(),
		Digest:  plan.Digest(),
		Changes: make([]changeDocument, 0, len(plan.Changes())),
	}
	if scope := plan.Scope(); scope != nil {
		doc.Scope = scopeDocument{Domain: scope.Domain, Type: scope.Type, Name: scope.Name}
	}
	for _, c := range plan.Changes() {
		doc.Changes = append(doc.Changes, toChangeDocument(c))
	}

	data, err := yaml.Marshal(&doc)
	if err != nil {
		return fmt.Errorf("%w: marshaling plan: %v", domain.ErrPlanWriteFailed, err)
	}

	tmpPath := filepath.Join(filepath.Dir(s.path), "."+filepath.Base(s.path)+".tmp")
	if err := os.WriteFile(tmpPath, data, 0o600); err != nil {
		return fmt.Errorf("%w: writing %s: %v", domain.ErrPlanWriteFailed, tmpPath, err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: renaming %s to %s: %v", domain.ErrPlanWriteFailed, tmpPath, s.path, err)
	}

	return nil
}

func (s *PlanStore) Load(ctx context.Context) (*valueobject.Plan, error) {
	// A never-saved plan may have no state directory, where the lock file
	// cannot be created either.
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", domain.ErrPlanNotFound, s.path)
	}

	if err := s.flock.Lock(); err != nil {
		return nil, fmt.Errorf("acquiring plan lock: %w", err)
	}
	defer s.flock.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrPlanNotFound, s.path)
		}
		return nil, fmt.Errorf("%w: reading %s: %v", domain.ErrPlanReadFailed, s.path, err)
	}

	var doc planDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", domain.ErrPlanReadFailed, s.path, err)
	}

	scope := valueobject.NewScopeWithValues(doc.Scope.Domain, doc.Scope.Type, doc.Scope.Name)
	plan := valueobject.NewPlanWithScope(scope)
	plan.SetDigest(doc.Digest)

	for _, cd := range doc.Changes {
		change, err := fromChangeDocument(cd)
		if err != nil {
			return nil, fmt.Errorf("%w: parsing %s: %v", domain.ErrPlanReadFailed, s.path, err)
		}
		plan.AddChange(change)
	}

	return plan, nil
}

// Clear removes the stored plan. A missing file is not an error, so apply
// can always clear after finishing.
func (s *PlanStore) Clear(ctx context.Context) error {
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return nil
	}

	if err := s.flock.Lock(); err != nil {
		return fmt.Errorf("acquiring plan lock: %w", err)
	}
	defer s.flock.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("%w: removing %s: %v", domain.ErrPlanWriteFailed, s.path, err)
	}
	return nil
}

func toChangeDocument(c *valueobject.Change) changeDocument {
	doc := changeDocument{
		Type:    c.Type().String(),
		Domain:  c.Domain(),
		Key:     c.Key(),
		Actions: c.Actions(),
	}
	if old, ok := c.OldState().(simply.Record); ok {
		doc.Old = &old
	}
	if desired, ok := c.NewState().(entity.RecordSpec); ok {
		doc.New = &desired
	}
	return doc
}

func fromChangeDocument(doc changeDocument) (*valueobject.Change, error) {
	changeType, err := valueobject.ParseChangeType(doc.Type)
	if err != nil {
		return nil, err
	}

	var oldState, newState interface{}
	if doc.Old != nil {
		oldState = *doc.Old
	}
	if doc.New != nil {
		newState = *doc.New
	}

	return valueobject.NewChange(changeType, doc.Domain, doc.Key, oldState, newState, doc.Actions), nil
}
