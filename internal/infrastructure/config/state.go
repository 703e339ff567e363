package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultStateFile is the file name for dynamic session state.
const DefaultStateFile = "state.yaml"

// State holds dynamic session state (read/write): the last opened
// source, so navigation commands can omit the URL.
type State struct {
	LastURL string `yaml:"last_url,omitempty"`
}

// LoadState loads session state from the .memorize directory. A missing
// file yields empty state.
func LoadState(basePath string) (*State, error) {
	stateFile := filepath.Join(basePath, DefaultConfigDir, DefaultStateFile)

	data, err := os.ReadFile(stateFile)
	if os.IsNotExist(err) {
		return &State{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading state file: %w", err)
	}

	var st State
	if err := yaml.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("parsing state file: %w", err)
	}

	return &st, nil
}

// Save writes the session state to the state file.
func (s *State) Save(basePath string) error {
	configDir := filepath.Join(basePath, DefaultConfigDir)
	stateFile := filepath.Join(configDir, DefaultStateFile)

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshaling state: %w", err)
	}

	if err := os.WriteFile(stateFile, data, 0600); err != nil {
		return fmt.Errorf("writing state file: %w", err)
	}

	return nil
}

// ResolveURL returns the explicit URL when given, falling back to the
// last opened source.
func (s *State) ResolveURL(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if s.LastURL == "" {
		return "", fmt.Errorf("no source opened yet (run 'memorize open <url>' or pass --url)")
	}
	return s.LastURL, nil
}
