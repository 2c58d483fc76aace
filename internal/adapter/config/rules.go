// Package config loads the rule table from YAML so tuning changes never
// require a rebuild.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"harvestduel/internal/domain/farming"
)

// LoadRules reads a complete rule table from path. The file replaces the
// built-in defaults wholesale; partial overrides are not supported so a
// tuning file always documents the full economy. The caller is expected to
// Validate before use.
func LoadRules(path string) (*farming.Rules, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	rules := &farming.Rules{}
	if err := yaml.Unmarshal(raw, rules); err != nil {
		return nil, fmt.Errorf("rules file %s: %w", path, err)
	}
	return rules, nil
}
