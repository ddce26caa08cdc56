package entity

import (
	"fmt"
)

type Defaults struct {
	TTL *int `yaml:"ttl,omitempty"`
}

type Config struct {
	Secrets  []Secret  `yaml:"secrets,omitempty"`
	Accounts []Account `yaml:"accounts,omitempty"`
	Zones    []Zone    `yaml:"zones,omitempty"`
	Defaults Defaults  `yaml:"defaults,omitempty"`
}

func (c *Config) Validate() error {
	for i, s := range c.Secrets {
		if err := s.Validate(); err != nil {
			return fmt.Errorf("secrets[%d]: %w", i, err)
		}
	}
	for i := range c.Accounts {
		if err := c.Accounts[i].Validate(); err != nil {
			return fmt.Errorf("accounts[%d]: %w", i, err)
		}
	}
	for i := range c.Zones {
		if err := c.Zones[i].Validate(); err != nil {
			return fmt.Errorf("zones[%d]: %w", i, err)
		}
	}
	return nil
}

func toMapPtr[T any](items []T, getName func(T) string) map[string]*T {
	m := make(map[string]*T)
	for i := range items {
		m[getName(items[i])] = &items[i]
	}
	return m
}

func (c *Config) GetSecretsMap() map[string]string {
	m := make(map[string]string)
	for _, s := range c.Secrets {
		m[s.Name] = s.Value
	}
	return m
}

func (c *Config) GetAccountMap() map[string]*Account {
	return toMapPtr(c.Accounts, func(a Account) string { return a.Name })
}

func (c *Config) GetZoneMap() map[string]*Zone {
	return toMapPtr(c.Zones, func(z Zone) string { return z.Domain })
}

// ApplyDefaults fills zone records that rely on config-level defaults, so
// later stages never consult Defaults themselves.
func (c *Config) ApplyDefaults() {
	if c.Defaults.TTL == nil {
		return
	}
	for zi := range c.Zones {
		for ri := range c.Zones[zi].Records {
			if c.Zones[zi].Records[ri].TTL == nil {
				ttl := *c.Defaults.TTL
				c.Zones[zi].Records[ri].TTL = &ttl
			}
		}
	}
}
