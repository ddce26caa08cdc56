package valueobject

// Plan is an ordered list of record changes plus the scope that produced it.
// Digest fingerprints the desired configuration the plan was computed from,
// so a saved plan can be refused once the configuration moves on.
type Plan struct {
	changes []*Change
	scope   *Scope
	digest  string
}

func NewPlan() *Plan {
	return &Plan{
		changes: make([]*Change, 0),
		scope:   &Scope{},
	}
}

func NewPlanWithScope(scope *Scope) *Plan {
	if scope == nil {
		scope = &Scope{}
	}
	return &Plan{
		changes: make([]*Change, 0),
		scope:   scope,
	}
}

func (p *Plan) Changes() []*Change { return p.changes }
func (p *Plan) Scope() *Scope      { return p.scope }
func (p *Plan) Digest() string     { return p.digest }

func (p *Plan) SetDigest(digest string) {
	p.digest = digest
}

func (p *Plan) AddChange(ch *Change) {
	p.changes = append(p.changes, ch)
}

func (p *Plan) HasChanges() bool {
	for _, c := range p.changes {
		if c.Type() != ChangeTypeNoop {
			return true
		}
	}
	return false
}

func (p *Plan) FilterByType(changeType ChangeType) []*Change {
	var result []*Change
	for _, c := range p.changes {
		if c.Type() == changeType {
			result = append(result, c)
		}
	}
	return result
}

func (p *Plan) FilterByDomain(domain string) []*Change {
	var result []*Change
	for _, c := range p.changes {
		if c.Domain() == domain {
			result = append(result, c)
		}
	}
	return result
}

func (p *Plan) Counts() map[ChangeType]int {
	counts := make(map[ChangeType]int)
	for _, c := range p.changes {
		counts[c.Type()]++
	}
	return counts
}

func (p *Plan) Equals(other *Plan) bool {
	if other == nil {
		return false
	}
	if p.digest != other.digest {
		return false
	}
	if !p.scope.Equals(other.scope) {
		return false
	}
	if len(p.changes) != len(other.changes) {
		return false
	}
	for i, c := range p.changes {
		if !c.Equals(other.changes[i]) {
			return false
		}
	}
	return true
}

func (p *Plan) Clone() *Plan {
	changes := make([]*Change, len(p.changes))
	for i, c := range p.changes {
		changes[i] = c.Clone()
	}
	return &Plan{
		changes: changes,
		scope:   p.scope.Clone(),
		digest:  p.digest,
	}
}
