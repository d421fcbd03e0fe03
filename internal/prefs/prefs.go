// Package prefs is a small process-wide store for UI preferences with an
// explicit load/save lifecycle. It replaces the kind of ambient
// browser-local state (sidebar open, last filters) that otherwise leaks
// into globals.
package prefs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const prefsFileName = "prefs.json"

// Prefs are the persisted UI preferences. Zero values fall back to
// defaults at read time.
type Prefs struct {
	PageSize       int    `json:"page_size,omitempty"`
	OutputStyle    string `json:"output_style,omitempty"` // "table" or "plain"
	LastTeamFilter string `json:"last_team_filter,omitempty"`
	CompactLists   bool   `json:"compact_lists,omitempty"`
}

// DefaultPageSize is used when no preference is saved.
const DefaultPageSize = 10

// EffectivePageSize returns the saved page size or the default.
func (p Prefs) EffectivePageSize() int {
	if p.PageSize > 0 {
		return p.PageSize
	}
	return DefaultPageSize
}

// Load reads preferences from the user config dir. A missing file is not
// an error; it yields zero prefs.
func Load() (Prefs, error) {
	path, err := prefsPath()
	if err != nil {
		return Prefs{}, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Prefs{}, nil
	}
	if err != nil {
		return Prefs{}, fmt.Errorf("failed to read preferences: %w", err)
	}

	var p Prefs
	if err := json.Unmarshal(data, &p); err != nil {
		return Prefs{}, fmt.Errorf("failed to parse preferences: %w", err)
	}
	return p, nil
}

// Save writes preferences to the user config dir, creating it on first
// use.
func Save(p Prefs) error {
	path, err := prefsPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create preferences directory: %w", err)
	}

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode preferences: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write preferences: %w", err)
	}
	return nil
}

func prefsPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, "leavectl", prefsFileName), nil
}
