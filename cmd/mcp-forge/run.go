// Copyright (c) 2025 h315uk3 All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package main

import (
	"github.com/h315uk3/mcp-forge/src/cli"
	verpkg "github.com/h315uk3/mcp-forge/src/version"
)

var version string // set by ldflags or defaults to imported version

func init() {
	if version == "" {
		version = verpkg.Version
	}
}

// Keep main simple; Execute owns flag parsing, server startup, and exit codes
func main() { cli.Execute(version) }
