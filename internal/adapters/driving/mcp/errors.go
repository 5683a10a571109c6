// Package mcp provides an MCP (Model Context Protocol) server adapter
// for dimens. It lets AI assistants check quantity compatibility and
// resolve common references against the local catalog.
package mcp

import "errors"

// ErrMissingResolverService is returned when the resolver service is not provided.
var ErrMissingResolverService = errors.New("mcp: resolver service is required")
