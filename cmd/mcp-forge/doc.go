// Copyright (c) 2025 h315uk3 All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// mcp-forge is a command-line toolkit for scaffolding Model Context
// Protocol (MCP) servers and validating their manifests. Running the
// binary without arguments starts an MCP server over stdio that exposes
// the generation tools to any MCP client.
//
// # Installation
//
// Install with Go 1.25.5 or later:
//
//	go install github.com/h315uk3/mcp-forge/cmd/mcp-forge@latest
//
// # Usage
//
//	mcp-forge [FLAGS]
//	mcp-forge validate MANIFEST_FILE
//
// # Flags
//
//	    --instructions  Print the generation workflows and exit
//	    --config        Path to a JSON or YAML configuration file
//	-h, --help          Show help text
//	-v, --version       Show version
//
// # Examples
//
// Start the MCP server on stdio (default behavior):
//
//	mcp-forge
//
// Start with an explicit configuration file:
//
//	mcp-forge --config forge.yaml
//
// Validate a server manifest before publication:
//
//	mcp-forge validate manifest.json
//
// Configuration can also come from the MCP_FORGE_CONFIG_FILE environment
// variable, and MCP_FORGE_OUTPUT_DIR overrides the output base directory.
package main
