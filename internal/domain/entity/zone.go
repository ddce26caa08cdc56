package entity

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/lite-lake/simply-dns/internal/domain"
)

// Zone is one managed domain: which account it belongs to and the records
// it should carry. With Prune set, records that exist remotely but are not
// declared here get deleted on apply (NS and SOA excepted); without it the
// zone is additive only.
type Zone struct {
	Domain  string       `yaml:"domain"`
	Account string       `yaml:"account"`
	Prune   bool         `yaml:"prune,omitempty"`
	Records []RecordSpec `yaml:"records,omitempty"`
}

var domainRegex = regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(\.[a-zA-Z0-9]([a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$`)

func (z *Zone) Validate() error {
	if z.Domain == "" {
		return fmt.Errorf("%w: zone domain is required", domain.ErrInvalidDomain)
	}
	if !domainRegex.MatchString(z.Domain) {
		return fmt.Errorf("%w: invalid domain format %s", domain.ErrInvalidDomain, z.Domain)
	}
	if z.Account == "" {
		return domain.RequiredField("account")
	}

	seen := make(map[string]int)
	for i := range z.Records {
		if err := z.Records[i].Validate(); err != nil {
			return fmt.Errorf("records[%d]: %w", i, err)
		}
		key := z.Records[i].Key()
		if prev, ok := seen[key]; ok {
			return fmt.Errorf("%w: records[%d] and records[%d] both declare %s", domain.ErrRecordConflict, prev, i, key)
		}
		seen[key] = i
	}
	return nil
}

// RecordByKey returns the declared record with the given key, or nil.
func (z *Zone) RecordByKey(key string) *RecordSpec {
	for i := range z.Records {
		if z.Records[i].Key() == key {
			return &z.Records[i]
		}
	}
	return nil
}

// PruneExempt reports whether a record type is never deleted by pruning.
// The service manages the apex NS and SOA entries itself.
func PruneExempt(recordType string) bool {
	switch strings.ToUpper(recordType) {
	case "NS", "SOA":
		return true
	}
	return false
}
