// Copyright (c) 2025 h315uk3 All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package dispatch

import (
	"context"

	"github.com/h315uk3/mcp-forge/src/internal/forge/generate"
	"github.com/h315uk3/mcp-forge/src/internal/forge/schema"
)

// Canonical tool operation names.
const (
	OpGenerateProject  = "generate_project"
	OpGenerateTool     = "generate_tool"
	OpGenerateResource = "generate_resource"
	OpGenerateReadme   = "generate_readme"
	OpValidateManifest = "validate_manifest"
)

// ResourceTypes are the legal values of the resource_type argument.
var ResourceTypes = []string{"text", "binary", "json"}

// DefaultNameLength is the identifier length cap applied when no explicit
// limit is configured.
const DefaultNameLength = 64

// DefaultTools returns the descriptor table for the five generation tools.
// This is the data-driven registry the catalog is built from; descriptions
// double as the MCP tool descriptions.
//
// maxNameLen caps the project, tool, and resource identifier arguments;
// values <= 0 fall back to DefaultNameLength.
func DefaultTools(maxNameLen int) []Descriptor {
	if maxNameLen <= 0 {
		maxNameLen = DefaultNameLength
	}
	return []Descriptor{
		{
			Name:        OpGenerateProject,
			Kind:        OpTool,
			Description: "Generate a complete Go MCP server project scaffold",
			Args: schema.ArgSpec{Fields: []schema.FieldSpec{
				{Name: "project_name", Required: true, Identifier: true, MaxLen: maxNameLen,
					Description: "Project name (letters, digits, '-' and '_'; must start with a letter)"},
				{Name: "description", MaxLen: 512,
					Description: "Short project description"},
			}},
			Run: func(ctx context.Context, gen *generate.Generator, args map[string]string) (*generate.Artifact, error) {
				return gen.Project(args["project_name"], args["description"])
			},
		},
		{
			Name:        OpGenerateTool,
			Kind:        OpTool,
			Description: "Generate a tool handler stub and matching test file",
			Args: schema.ArgSpec{Fields: []schema.FieldSpec{
				{Name: "tool_name", Required: true, Identifier: true, MaxLen: maxNameLen,
					Description: "Tool name (letters, digits, '-' and '_'; must start with a letter)"},
				{Name: "description", Required: true, MaxLen: 512,
					Description: "What the tool does"},
			}},
			Run: func(ctx context.Context, gen *generate.Generator, args map[string]string) (*generate.Artifact, error) {
				return gen.Tool(args["tool_name"], args["description"])
			},
		},
		{
			Name:        OpGenerateResource,
			Kind:        OpTool,
			Description: "Generate a resource handler stub for a text, binary, or json resource",
			Args: schema.ArgSpec{Fields: []schema.FieldSpec{
				{Name: "resource_name", Required: true, Identifier: true, MaxLen: maxNameLen,
					Description: "Resource name (letters, digits, '-' and '_'; must start with a letter)"},
				{Name: "resource_type", Required: true, Enum: ResourceTypes,
					Description: "Serialization branch: text, binary, or json"},
				{Name: "description", MaxLen: 512,
					Description: "What the resource exposes"},
			}},
			Run: func(ctx context.Context, gen *generate.Generator, args map[string]string) (*generate.Artifact, error) {
				return gen.Resource(args["resource_name"], args["resource_type"], args["description"])
			},
		},
		{
			Name:        OpGenerateReadme,
			Kind:        OpTool,
			Description: "Generate README.md content for an MCP server project",
			Args: schema.ArgSpec{Fields: []schema.FieldSpec{
				{Name: "project_name", Required: true, MaxLen: 128,
					Description: "Project name used in the document"},
				{Name: "description", MaxLen: 512,
					Description: "Short project description"},
				{Name: "output_path", MaxLen: 256,
					Description: "Optional relative path to write the README below the output directory"},
			}},
			Run: func(ctx context.Context, gen *generate.Generator, args map[string]string) (*generate.Artifact, error) {
				return gen.Readme(args["project_name"], args["description"], args["output_path"])
			},
		},
		{
			Name:        OpValidateManifest,
			Kind:        OpTool,
			Description: "Validate an MCP server manifest document and report every violation",
			Args: schema.ArgSpec{Fields: []schema.FieldSpec{
				{Name: "manifest_content", Required: true, MaxLen: 65536,
					Description: "Manifest document text (JSON)"},
			}},
			Run: func(ctx context.Context, gen *generate.Generator, args map[string]string) (*generate.Artifact, error) {
				return gen.ManifestReport(args["manifest_content"])
			},
		},
	}
}
