// Copyright (c) 2025 h315uk3 All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package templates provides embedded filesystem access for MCP server template files.
// It offers a reusable abstraction for accessing the embedded scaffold templates
// (*.tmpl) consumed by the generators and the markdown documents (*.md) served as
// resources and server instructions.
//
// The package provides thread-safe access to embedded files through the [EmbedFS] interface,
// with [MagicEmbed] serving as the default implementation for convenient template access.
// This enables efficient reuse of template files across different MCP server components
// while maintaining clean separation of concerns and centralized template management.
//
// Key features:
//   - Thread-safe embedded file access
//   - Consistent interface abstraction over [embed.FS]
//   - Centralized template file management
//   - Scaffold templates, documentation, and server instructions in one place
//
// Example usage:
//
//	import "github.com/h315uk3/mcp-forge/src/mcp-server/templates"
//
//	// Read the getting-started guide
//	content, err := templates.MagicEmbed.ReadFile("getting-started.md")
//	if err != nil {
//		return fmt.Errorf("failed to read guide: %w", err)
//	}
//
//	// List all available template files
//	entries, err := templates.MagicEmbed.ReadDir(".")
//	if err != nil {
//		return fmt.Errorf("failed to list templates: %w", err)
//	}
package templates
