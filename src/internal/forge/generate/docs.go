// Copyright (c) 2025 h315uk3 All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package generate produces the textual artifacts served by the forge
// tools. It provides one generator per artifact kind:
//   - Project: a complete Go MCP server scaffold (go.mod, main.go,
//     server.go, tools.go, resources.go, errors.go, .gitignore, README.md).
//   - Tool: a tool handler stub plus a matching test file.
//   - Resource: a resource handler stub whose body branches on the declared
//     resource type (text, binary, json).
//   - Readme: standalone README content with an optional sanitized output
//     path echoed back as the suggested write location.
//   - Manifest report: the violation report produced by manifest
//     validation, packaged as an artifact.
//
// Generators are pure: they never touch the filesystem. Writing an artifact
// to disk is the caller's side effect. Every artifact carries a SHA3-256
// checksum over its file contents, so two runs with the same inputs can be
// shown byte-identical.
//
// Generators assume their inputs already passed shape validation; the only
// checks repeated here are the path-safety steps the pipeline assigns to
// this stage (output paths and name-derived file layouts).
package generate
