// Package shared holds the context passed to all CLI commands.
package shared

import (
	"github.com/go-ports/cookbook/internal/config"
	"github.com/go-ports/cookbook/internal/service"
)

// Context carries global CLI state (flags set on the root command).
type Context struct {
	// Home overrides the cookbook home directory.
	// When empty, resolution falls through to COOKBOOK_HOME env var → persisted config → ~/.cookbook.
	Home string
}

// ResolveHome returns the effective cookbook home and where it came from.
func (c *Context) ResolveHome() (home, source string) {
	if c.Home != "" {
		return c.Home, "flag"
	}
	return config.ResolveHome()
}

// Service opens the cookbook service for the effective home.
func (c *Context) Service() (*service.Service, error) {
	return service.New(c.Home)
}
