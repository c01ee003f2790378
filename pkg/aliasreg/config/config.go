// Package config loads declarative alias manifests.
//
// A manifest lists the aliases a registry should carry, so deployments can
// ship name compatibility tables as data instead of code:
//
//	aliases:
//	  - alias: mean
//	    name: avg
//	    case_insensitive: true
//	  - alias: total
//	    name: sum
//
// Load a manifest with FromFile, FromYAML, or FromJSON, then register its
// entries with Apply.
package config

import (
	"fmt"

	"github.com/randalmurphal/aliasreg/pkg/aliasreg"
)

// Manifest is a declarative set of alias registrations.
type Manifest struct {
	Aliases []AliasSpec `yaml:"aliases" json:"aliases"`
}

// AliasSpec describes one alias registration.
type AliasSpec struct {
	// Alias is the secondary name to register.
	Alias string `yaml:"alias" json:"alias"`
	// Name is the target real name; it must already be registered.
	Name string `yaml:"name" json:"name"`
	// CaseInsensitive makes the alias match under lowercase folding.
	CaseInsensitive bool `yaml:"case_insensitive" json:"case_insensitive"`
}

// Sensitivity returns the alias sensitivity class for the spec.
func (s AliasSpec) Sensitivity() aliasreg.Sensitivity {
	if s.CaseInsensitive {
		return aliasreg.CaseInsensitive
	}
	return aliasreg.CaseSensitive
}

// Validate checks the manifest for structurally invalid entries.
func (m Manifest) Validate() error {
	for i, spec := range m.Aliases {
		if spec.Alias == "" {
			return fmt.Errorf("alias entry %d: alias cannot be empty", i)
		}
		if spec.Name == "" {
			return fmt.Errorf("alias entry %d (%q): name cannot be empty", i, spec.Alias)
		}
	}
	return nil
}

// Registrar is the part of the alias layer a manifest is applied to.
// aliasreg.Aliases and registry.Factory both satisfy it.
type Registrar interface {
	RegisterAlias(aliasName, realName string, sensitivity aliasreg.Sensitivity) error
}

// Apply validates the manifest and registers every alias in order, stopping
// at the first failure. Registration errors wrap the aliasreg sentinel kinds
// and should abort initialization.
func Apply(r Registrar, m Manifest) error {
	if err := m.Validate(); err != nil {
		return fmt.Errorf("apply alias manifest: %w", err)
	}
	for _, spec := range m.Aliases {
		if err := r.RegisterAlias(spec.Alias, spec.Name, spec.Sensitivity()); err != nil {
			return fmt.Errorf("apply alias manifest: %w", err)
		}
	}
	return nil
}
