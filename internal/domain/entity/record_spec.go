package entity

import (
	"fmt"
	"strings"

	"github.com/lite-lake/simply-dns/internal/domain"
)

// RecordSpec is a desired DNS record as declared in a zone file. Type is a
// free string tag: the service is the sole authority on which record types
// exist, so there is no whitelist here. Nil TTL and Priority mean the
// service picks.
type RecordSpec struct {
	Type     string `yaml:"type"`
	Name     string `yaml:"name"`
	Data     string `yaml:"data"`
	TTL      *int   `yaml:"ttl,omitempty"`
	Priority *int   `yaml:"priority,omitempty"`
	Comment  string `yaml:"comment,omitempty"`
}

func (r *RecordSpec) Validate() error {
	if r.Type == "" {
		return fmt.Errorf("%w: record type is required", domain.ErrInvalidType)
	}
	if r.Name == "" {
		return domain.RequiredField("name")
	}
	if r.Data == "" {
		return domain.RequiredField("data")
	}
	if r.TTL != nil && *r.TTL < 0 {
		return fmt.Errorf("%w: ttl must be non-negative", domain.ErrInvalidTTL)
	}
	if r.Priority != nil && *r.Priority < 0 {
		return fmt.Errorf("%w: priority must be non-negative", domain.ErrInvalidPriority)
	}
	return nil
}

// Key identifies the record within its zone as "TYPE:name", normalized per
// DNS case rules. Zone files must not declare two records with the same key.
func (r *RecordSpec) Key() string {
	return RecordKey(r.Type, r.Name)
}

func RecordKey(recordType, name string) string {
	return strings.ToUpper(recordType) + ":" + strings.ToLower(name)
}
