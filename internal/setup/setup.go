// Package setup registers the cookbook MCP server with supported coding
// agents (Claude Code, Cursor, Codex) and removes it again.
package setup

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ServerName is the key the cookbook server is registered under.
const ServerName = "cookbook"

// Server describes how an agent launches the cookbook MCP server.
type Server struct {
	Command string // executable; defaults to "cookbook"
	Home    string // optional --home passed to the server
}

func (s Server) command() string {
	if s.Command == "" {
		return "cookbook"
	}
	return s.Command
}

func (s Server) args() []string {
	if s.Home != "" {
		return []string{"--home", s.Home, "mcp"}
	}
	return []string{"mcp"}
}

func (s Server) jsonEntry() map[string]any {
	args := make([]any, 0, 3)
	for _, a := range s.args() {
		args = append(args, a)
	}
	return map[string]any{
		"command": s.command(),
		"args":    args,
		"type":    "stdio",
	}
}

// Result reports what an install or uninstall did.
type Result struct {
	Changed bool   // false when already installed / nothing to remove
	Path    string // agent config file that was inspected
}

// ---------------------------------------------------------------------------
// Default path helpers
// ---------------------------------------------------------------------------

// DefaultClaudeHome returns the default ~/.claude directory.
func DefaultClaudeHome() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".claude")
}

// DefaultCursorHome returns the default ~/.cursor directory.
func DefaultCursorHome() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".cursor")
}

// DefaultCodexHome returns the default ~/.codex directory.
func DefaultCodexHome() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".codex")
}

//revive:disable:flag-parameter
func claudeMCPPath(claudeHome string, project bool) string {
	if project {
		return filepath.Join(filepath.Dir(claudeHome), ".mcp.json")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".claude.json")
}

//revive:enable:flag-parameter

// ---------------------------------------------------------------------------
// Claude Code / Cursor (JSON mcpServers)
// ---------------------------------------------------------------------------

// InstallClaudeCode registers srv in Claude Code. With project set the entry
// goes to .mcp.json next to claudeHome, otherwise to ~/.claude.json.
//
//revive:disable:flag-parameter
func InstallClaudeCode(claudeHome string, project bool, srv Server) (Result, error) {
	if claudeHome == "" {
		claudeHome = DefaultClaudeHome()
	}
	return installMCPServers(claudeMCPPath(claudeHome, project), srv)
}

// UninstallClaudeCode removes the cookbook entry from Claude Code.
func UninstallClaudeCode(claudeHome string, project bool) (Result, error) {
	if claudeHome == "" {
		claudeHome = DefaultClaudeHome()
	}
	return uninstallMCPServers(claudeMCPPath(claudeHome, project))
}

//revive:enable:flag-parameter

// InstallCursor registers srv in <cursorHome>/mcp.json.
func InstallCursor(cursorHome string, srv Server) (Result, error) {
	if cursorHome == "" {
		cursorHome = DefaultCursorHome()
	}
	return installMCPServers(filepath.Join(cursorHome, "mcp.json"), srv)
}

// UninstallCursor removes the cookbook entry from <cursorHome>/mcp.json.
func UninstallCursor(cursorHome string) (Result, error) {
	if cursorHome == "" {
		cursorHome = DefaultCursorHome()
	}
	return uninstallMCPServers(filepath.Join(cursorHome, "mcp.json"))
}

func installMCPServers(path string, srv Server) (Result, error) {
	res := Result{Path: path}
	data, err := readJSON(path)
	if err != nil {
		return res, err
	}
	servers, _ := data["mcpServers"].(map[string]any)
	if servers == nil {
		servers = make(map[string]any)
		data["mcpServers"] = servers
	}
	if _, exists := servers[ServerName]; exists {
		return res, nil
	}
	servers[ServerName] = srv.jsonEntry()
	res.Changed = true
	return res, writeJSON(path, data)
}

func uninstallMCPServers(path string) (Result, error) {
	res := Result{Path: path}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return res, nil
	}
	data, err := readJSON(path)
	if err != nil {
		return res, err
	}
	servers, _ := data["mcpServers"].(map[string]any)
	if _, exists := servers[ServerName]; !exists {
		return res, nil
	}
	delete(servers, ServerName)
	if len(servers) == 0 {
		delete(data, "mcpServers")
	}
	res.Changed = true
	if len(data) == 0 {
		return res, os.Remove(path)
	}
	return res, writeJSON(path, data)
}

// ---------------------------------------------------------------------------
// Codex (TOML config)
// ---------------------------------------------------------------------------

const tomlHeader = "[mcp_servers." + ServerName + "]"

// InstallCodex appends an [mcp_servers.cookbook] table to
// <codexHome>/config.toml.
func InstallCodex(codexHome string, srv Server) (Result, error) {
	if codexHome == "" {
		codexHome = DefaultCodexHome()
	}
	path := filepath.Join(codexHome, "config.toml")
	res := Result{Path: path}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return res, err
	}
	if strings.Contains(string(data), tomlHeader) {
		return res, nil
	}
	if err := os.MkdirAll(codexHome, 0o755); err != nil {
		return res, err
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return res, err
	}
	defer f.Close()
	if _, err := f.WriteString(tomlSection(srv)); err != nil {
		return res, err
	}
	res.Changed = true
	return res, nil
}

// UninstallCodex drops the [mcp_servers.cookbook] table and its keys.
func UninstallCodex(codexHome string) (Result, error) {
	if codexHome == "" {
		codexHome = DefaultCodexHome()
	}
	path := filepath.Join(codexHome, "config.toml")
	res := Result{Path: path}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return res, nil
	}
	if err != nil {
		return res, err
	}
	if !strings.Contains(string(data), tomlHeader) {
		return res, nil
	}

	lines := strings.Split(string(data), "\n")
	kept := make([]string, 0, len(lines))
	inSection := false
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == tomlHeader {
			inSection = true
			continue
		}
		if inSection && strings.HasPrefix(trimmed, "[") {
			inSection = false
		}
		if !inSection {
			kept = append(kept, line)
		}
	}
	cleaned := strings.TrimRight(strings.Join(kept, "\n"), "\n") + "\n"
	res.Changed = true
	return res, os.WriteFile(path, []byte(cleaned), 0o644) // #nosec G306 -- agent TOML config holds no secrets
}

func tomlSection(srv Server) string {
	quoted := make([]string, 0, 3)
	for _, a := range srv.args() {
		quoted = append(quoted, strconv.Quote(a))
	}
	return "\n" + tomlHeader + "\n" +
		"command = " + strconv.Quote(srv.command()) + "\n" +
		"args = [" + strings.Join(quoted, ", ") + "]\n"
}

// ---------------------------------------------------------------------------
// JSON helpers
// ---------------------------------------------------------------------------

// readJSON returns an empty map for a missing or empty file. Existing files
// that are not a JSON object are an error so they are never clobbered.
func readJSON(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return make(map[string]any), nil
	}
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(string(data)) == "" {
		return make(map[string]any), nil
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	if m == nil {
		m = make(map[string]any)
	}
	return m, nil
}

func writeJSON(path string, data map[string]any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	b = append(b, '\n')
	return os.WriteFile(path, b, 0o644) // #nosec G306 -- agent config files (MCP server entries) do not contain secrets
}
