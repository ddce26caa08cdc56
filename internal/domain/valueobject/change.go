package valueobject

import "fmt"

type ChangeType int

const (
	ChangeTypeNoop ChangeType = iota
	ChangeTypeCreate
	ChangeTypeUpdate
	ChangeTypeDelete
)

func (ct ChangeType) String() string {
	switch ct {
	case ChangeTypeNoop:
		return "NOOP"
	case ChangeTypeCreate:
		return "CREATE"
	case ChangeTypeUpdate:
		return "UPDATE"
	case ChangeTypeDelete:
		return "DELETE"
	default:
		return "UNKNOWN"
	}
}

// ParseChangeType is the inverse of String, for plans loaded from disk.
func ParseChangeType(s string) (ChangeType, error) {
	switch s {
	case "NOOP":
		return ChangeTypeNoop, nil
	case "CREATE":
		return ChangeTypeCreate, nil
	case "UPDATE":
		return ChangeTypeUpdate, nil
	case "DELETE":
		return ChangeTypeDelete, nil
	}
	return ChangeTypeNoop, fmt.Errorf("unknown change type %q", s)
}

// Change is one record mutation the plan wants to perform. Key identifies
// the record as "TYPE:name" within its domain. Old and new state stay
// loosely typed; the apply layer knows which concrete record type to expect
// on each side (remote record for old, desired spec for new).
type Change struct {
	changeType ChangeType
	domain     string
	key        string
	oldState   interface{}
	newState   interface{}
	actions    []string
}

func NewChange(changeType ChangeType, domain, key string, oldState, newState interface{}, actions []string) *Change {
	newActions := make([]string, len(actions))
	copy(newActions, actions)
	return &Change{
		changeType: changeType,
		domain:     domain,
		key:        key,
		oldState:   oldState,
		newState:   newState,
		actions:    newActions,
	}
}

func (c *Change) Type() ChangeType      { return c.changeType }
func (c *Change) Domain() string        { return c.domain }
func (c *Change) Key() string           { return c.key }
func (c *Change) OldState() interface{} { return c.oldState }
func (c *Change) NewState() interface{} { return c.newState }
func (c *Change) Actions() []string     { return c.actions }

func (c *Change) Equals(other *Change) bool {
	if other == nil {
		return false
	}
	if c.changeType != other.changeType || c.domain != other.domain || c.key != other.key {
		return false
	}
	if len(c.actions) != len(other.actions) {
		return false
	}
	for i, a := range c.actions {
		if a != other.actions[i] {
			return false
		}
	}
	return true
}

func (c *Change) Clone() *Change {
	newActions := make([]string, len(c.actions))
	copy(newActions, c.actions)
	return &Change{
		changeType: c.changeType,
		domain:     c.domain,
		key:        c.key,
		oldState:   c.oldState,
		newState:   c.newState,
		actions:    newActions,
	}
}
