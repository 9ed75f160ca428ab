// Package config handles configuration loading and cookbook home resolution.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileName is the per-cookbook configuration file inside the cookbook home.
const FileName = "config.yaml"

// HomeEnv overrides the cookbook home directory when set.
const HomeEnv = "COOKBOOK_HOME"

// ---------------------------------------------------------------------------
// Config types
// ---------------------------------------------------------------------------

// MenuConfig controls the interactive menu.
type MenuConfig struct {
	Banner   string `yaml:"banner"`
	Farewell string `yaml:"farewell"`
}

// CookbookConfig is the root per-cookbook configuration.
type CookbookConfig struct {
	DataFile    string     `yaml:"data_file"`    // relative paths resolve against the cookbook home
	SeedSamples bool       `yaml:"seed_samples"` // add the sample recipes when no data file exists yet
	Menu        MenuConfig `yaml:"menu"`
}

// Default returns a CookbookConfig populated with sensible defaults.
func Default() *CookbookConfig {
	return &CookbookConfig{
		DataFile:    "recipes.json",
		SeedSamples: true,
		Menu: MenuConfig{
			Banner:   "Welcome to the Vegan Cooking App!",
			Farewell: "Thanks for cooking vegan! See you next time!",
		},
	}
}

// Load reads a per-cookbook config.yaml from path.
// If the file does not exist it returns Default() with no error.
// Missing keys retain their default values.
func Load(path string) (*CookbookConfig, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}

	// Unmarshal into a plain map so we can apply only the keys that are present.
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	if v, ok := raw["data_file"].(string); ok && strings.TrimSpace(v) != "" {
		cfg.DataFile = strings.TrimSpace(v)
	}
	if v, ok := raw["seed_samples"].(bool); ok {
		cfg.SeedSamples = v
	}
	if menu, ok := raw["menu"].(map[string]any); ok {
		if v, ok := menu["banner"].(string); ok && v != "" {
			cfg.Menu.Banner = v
		}
		if v, ok := menu["farewell"].(string); ok && v != "" {
			cfg.Menu.Farewell = v
		}
	}

	return cfg, nil
}

// DataPath resolves the configured data file against home.
func (c *CookbookConfig) DataPath(home string) string {
	p := c.DataFile
	if strings.HasPrefix(p, "~/") {
		if h, err := os.UserHomeDir(); err == nil {
			p = filepath.Join(h, p[2:])
		}
	}
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(home, p)
}

// ---------------------------------------------------------------------------
// Cookbook home resolution
// ---------------------------------------------------------------------------

// globalConfigPath returns the path to the global cookbook config file.
// This file stores only cookbook_home (and future global settings).
func globalConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "cookbook", FileName), nil
}

// normalizePath expands ~ and makes the path absolute.
func normalizePath(path string) (string, error) {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(home, path[2:])
	}
	return filepath.Abs(os.ExpandEnv(path))
}

// ResolveHome returns the cookbook home path and the source of the resolution.
// Priority: COOKBOOK_HOME env → persisted global config → ~/.cookbook
// source is one of "env", "config", or "default".
func ResolveHome() (path, source string) {
	if env := os.Getenv(HomeEnv); env != "" {
		p, err := normalizePath(env)
		if err == nil {
			return p, "env"
		}
	}

	if persisted, ok, _ := GetPersistedHome(); ok {
		return persisted, "config"
	}

	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".cookbook"), "default"
}

// GetHome returns the resolved cookbook home path.
func GetHome() string {
	path, _ := ResolveHome()
	return path
}

// GetPersistedHome reads cookbook_home from the global config.
// Returns ("", false, nil) if not set.
func GetPersistedHome() (string, bool, error) {
	cfgPath, err := globalConfigPath()
	if err != nil {
		return "", false, err
	}

	data, err := os.ReadFile(cfgPath)
	if os.IsNotExist(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return "", false, nil
	}

	val, _ := raw["cookbook_home"].(string)
	val = strings.TrimSpace(val)
	if val == "" {
		return "", false, nil
	}

	p, err := normalizePath(val)
	if err != nil {
		return "", false, err
	}
	return p, true, nil
}

// SetPersistedHome normalizes path and persists it in the global config.
// Returns the normalized path.
func SetPersistedHome(path string) (string, error) {
	normalized, err := normalizePath(path)
	if err != nil {
		return "", err
	}

	cfgPath, err := globalConfigPath()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(cfgPath), 0o755); err != nil {
		return "", err
	}

	// Read existing global config, preserving any other keys.
	var raw map[string]any
	if data, err := os.ReadFile(cfgPath); err == nil {
		_ = yaml.Unmarshal(data, &raw)
	}
	if raw == nil {
		raw = make(map[string]any)
	}
	raw["cookbook_home"] = normalized

	out, err := yaml.Marshal(raw)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(cfgPath, out, 0o600); err != nil {
		return "", err
	}
	return normalized, nil
}

// ClearPersistedHome removes cookbook_home from the global config.
// Returns true if the key was present and removed.
// If the file becomes empty after removal it is deleted.
func ClearPersistedHome() (bool, error) {
	cfgPath, err := globalConfigPath()
	if err != nil {
		return false, err
	}

	data, err := os.ReadFile(cfgPath)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return false, nil
	}

	if _, ok := raw["cookbook_home"]; !ok {
		return false, nil
	}
	delete(raw, "cookbook_home")

	if len(raw) == 0 {
		_ = os.Remove(cfgPath)
		return true, nil
	}

	out, err := yaml.Marshal(raw)
	if err != nil {
		return false, err
	}
	return true, os.WriteFile(cfgPath, out, 0o600)
}
