package valueobject

import "strings"

// Scope narrows planning to matching records. Empty selectors match
// everything; set ones compare case-insensitively, following DNS rules.
type Scope struct {
	Domain string
	Type   string
	Name   string
}

func NewScope() *Scope {
	return &Scope{}
}

func NewScopeWithValues(domain, recordType, name string) *Scope {
	return &Scope{
		Domain: domain,
		Type:   recordType,
		Name:   name,
	}
}

func (s *Scope) Matches(domain, recordType, name string) bool {
	if s.Domain != "" && !strings.EqualFold(s.Domain, domain) {
		return false
	}
	if s.Type != "" && !strings.EqualFold(s.Type, recordType) {
		return false
	}
	if s.Name != "" && !strings.EqualFold(s.Name, name) {
		return false
	}
	return true
}

func (s *Scope) IsEmpty() bool {
	return s.Domain == "" && s.Type == "" && s.Name == ""
}

func (s *Scope) Equals(other *Scope) bool {
	if other == nil {
		return false
	}
	return s.Domain == other.Domain && s.Type == other.Type && s.Name == other.Name
}

func (s *Scope) Clone() *Scope {
	return &Scope{
		Domain: s.Domain,
		Type:   s.Type,
		Name:   s.Name,
	}
}
