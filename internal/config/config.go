package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

const (
	defaultLDAPPort        = "389"
	defaultGroupPrefix     = "Devices - "
	defaultDeviceAttribute = "extensionAttribute1"
)

// deviceAttributePattern matches the attribute names Entra accepts in
// dynamic membership rules (e.g. extensionAttribute1, deviceOwnership).
var deviceAttributePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9]*$`)

// Config holds all runtime settings. Loaded once at startup, validated
// eagerly, never mutated afterwards.
type Config struct {
	LDAPServer   string
	LDAPPort     string
	LDAPUser     string
	LDAPPassword string
	BaseDN       string

	TenantID string
	ClientID string

	GroupPrefix     string
	DeviceAttribute string
	DryRun          bool
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	cfg := &Config{
		LDAPServer:   strings.TrimSpace(os.Getenv("LDAP_SERVER")),
		LDAPPort:     strings.TrimSpace(os.Getenv("LDAP_PORT")),
		LDAPUser:     strings.TrimSpace(os.Getenv("LDAP_USER")),
		LDAPPassword: strings.TrimSpace(os.Getenv("LDAP_PASSWORD")),
		BaseDN:       strings.TrimSpace(os.Getenv("BASE_DN")),

		TenantID: strings.TrimSpace(os.Getenv("ENTRA_TENANT_ID")),
		ClientID: strings.TrimSpace(os.Getenv("ENTRA_CLIENT_ID")),

		// Deliberately not trimmed: the prefix usually ends in a space.
		GroupPrefix:     os.Getenv("GROUP_NAME_PREFIX"),
		DeviceAttribute: strings.TrimSpace(os.Getenv("DEVICE_ATTRIBUTE")),
		DryRun:          strings.EqualFold(strings.TrimSpace(os.Getenv("DRY_RUN")), "true"),
	}

	if cfg.LDAPPort == "" {
		cfg.LDAPPort = defaultLDAPPort
	}
	if cfg.GroupPrefix == "" {
		cfg.GroupPrefix = defaultGroupPrefix
	}
	if cfg.DeviceAttribute == "" {
		cfg.DeviceAttribute = defaultDeviceAttribute
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	required := []struct {
		key   string
		value string
	}{
		{"LDAP_SERVER", c.LDAPServer},
		{"LDAP_USER", c.LDAPUser},
		{"LDAP_PASSWORD", c.LDAPPassword},
		{"BASE_DN", c.BaseDN},
		{"ENTRA_TENANT_ID", c.TenantID},
		{"ENTRA_CLIENT_ID", c.ClientID},
	}

	var missing []string
	for _, r := range required {
		if r.value == "" {
			missing = append(missing, r.key)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required settings: %s", strings.Join(missing, ", "))
	}

	if !deviceAttributePattern.MatchString(c.DeviceAttribute) {
		return fmt.Errorf("invalid DEVICE_ATTRIBUTE %q: must be alphanumeric", c.DeviceAttribute)
	}

	return nil
}
