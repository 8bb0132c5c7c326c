// Copyright (c) 2025 h315uk3 All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package generate

import (
	"fmt"
	"strings"

	"github.com/h315uk3/mcp-forge/src/internal/forge/pathsafe"
	"github.com/h315uk3/mcp-forge/src/internal/forge/render"
	"github.com/h315uk3/mcp-forge/src/internal/forge/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultDescription fills in when a caller omits the optional description.
const DefaultDescription = "A Model Context Protocol server"

// Options tune the generator defaults. Zero values fall back to the
// documented defaults.
type Options struct {
	// ModulePrefix prefixes generated module paths ("example.com" by default).
	ModulePrefix string

	// GoVersion is written into generated go.mod files ("1.25" by default).
	GoVersion string

	// OutputBaseDir is the base every optional output path is sanitized
	// against ("." by default).
	OutputBaseDir string
}

func (o *Options) fillDefaults() {
	if o.ModulePrefix == "" {
		o.ModulePrefix = "example.com"
	}
	if o.GoVersion == "" {
		o.GoVersion = "1.25"
	}
	if o.OutputBaseDir == "" {
		o.OutputBaseDir = "."
	}
}

// Generator turns normalized tool arguments into artifacts. Construct it
// once with [New]; it is stateless across calls and safe for concurrent use.
type Generator struct {
	engine *render.Engine
	opts   Options
}

// New creates a Generator rendering through engine.
func New(engine *render.Engine, opts Options) *Generator {
	opts.fillDefaults()
	return &Generator{engine: engine, opts: opts}
}

// projectLayout fixes the scaffold file order: template name, generated
// path, and the purpose line shown in the layout table.
var projectLayout = []struct {
	template string
	path     string
	purpose  string
}{
	{"go-mod.tmpl", "go.mod", "Module definition and dependencies"},
	{"main-go.tmpl", "main.go", "Entry point"},
	{"server-go.tmpl", "server.go", "MCP server construction and stdio serving"},
	{"tools-go.tmpl", "tools.go", "Tool declarations and handlers"},
	{"resources-go.tmpl", "resources.go", "Resource declarations and handlers"},
	{"errors-go.tmpl", "errors.go", "Sentinel errors"},
	{"gitignore.tmpl", ".gitignore", "Build and editor noise"},
	{"readme.tmpl", "README.md", "Project documentation"},
}

// Project generates a complete Go MCP server scaffold for name. Every file
// in the layout is rendered with the same parameter set, so the artifact is
// reproducible byte for byte.
func (g *Generator) Project(name, description string) (*Artifact, error) {
	if description == "" {
		description = DefaultDescription
	}
	params := map[string]any{
		"Name":        name,
		"Description": description,
		"Module":      g.opts.ModulePrefix + "/" + name,
		"GoVersion":   g.opts.GoVersion,
	}

	artifact := &Artifact{
		Name:  name,
		Kind:  KindSourceFile,
		Files: make([]File, 0, len(projectLayout)),
	}
	for _, entry := range projectLayout {
		content, err := g.engine.Render(entry.template, params)
		if err != nil {
			return nil, err
		}
		artifact.Files = append(artifact.Files, File{
			Path:    name + "/" + entry.path,
			Content: string(content),
		})
	}

	artifact.Summary = projectSummary(name, description)
	artifact.Checksum = artifact.checksum()
	return artifact, nil
}

// projectSummary renders the layout table shown above the generated files.
func projectSummary(name, description string) string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "Generated MCP server project %q: %s\n\n", name, description)

	table := tablewriter.NewTable(&buf,
		tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
	)
	table.Header([]string{"File", "Purpose"})

	rows := make([][]string, 0, len(projectLayout))
	for _, entry := range projectLayout {
		rows = append(rows, []string{name + "/" + entry.path, entry.purpose})
	}
	table.Bulk(rows)
	table.Render()
	return buf.String()
}

// Tool generates a handler stub and a matching test file for a tool named
// name. The exported handler identifier is derived from the name, so
// "fetch-forecast" yields handleFetchForecast.
func (g *Generator) Tool(name, description string) (*Artifact, error) {
	params := map[string]any{
		"ToolName":    name,
		"HandlerName": ExportName(name),
		"Description": description,
	}

	stub, err := g.engine.Render("tool-stub.tmpl", params)
	if err != nil {
		return nil, err
	}
	test, err := g.engine.Render("tool-stub-test.tmpl", params)
	if err != nil {
		return nil, err
	}

	base := snake(name)
	artifact := &Artifact{
		Name: name,
		Kind: KindSourceFile,
		Files: []File{
			{Path: base + "_tool.go", Content: string(stub)},
			{Path: base + "_tool_test.go", Content: string(test)},
		},
		Summary: fmt.Sprintf("Generated tool stub %q with handler handle%s and tests.", name, ExportName(name)),
	}
	artifact.Checksum = artifact.checksum()
	return artifact, nil
}

// Resource generates a resource handler stub. resourceType selects the
// serialization branch: "text", "binary", or "json" each produce a
// materially different body.
func (g *Generator) Resource(name, resourceType, description string) (*Artifact, error) {
	if description == "" {
		description = DefaultDescription
	}
	params := map[string]any{
		"ResourceName": name,
		"HandlerName":  ExportName(name),
		"Type":         resourceType,
		"Description":  description,
	}

	stub, err := g.engine.Render("resource-stub.tmpl", params)
	if err != nil {
		return nil, err
	}

	artifact := &Artifact{
		Name: name,
		Kind: KindSourceFile,
		Files: []File{
			{Path: snake(name) + "_resource.go", Content: string(stub)},
		},
		Summary: fmt.Sprintf("Generated %s resource stub %q with handler handle%s.", resourceType, name, ExportName(name)),
	}
	artifact.Checksum = artifact.checksum()
	return artifact, nil
}

// Readme generates standalone README content. When outputPath is non-empty
// it is sanitized against the configured base directory and echoed back on
// the artifact; the write itself is the caller's side effect.
func (g *Generator) Readme(projectName, description, outputPath string) (*Artifact, error) {
	if description == "" {
		description = DefaultDescription
	}

	var sanitized string
	if outputPath != "" {
		var err error
		sanitized, err = pathsafe.Sanitize(outputPath, g.opts.OutputBaseDir)
		if err != nil {
			return nil, err
		}
	}

	content, err := g.engine.Render("readme.tmpl", map[string]any{
		"Name":        projectName,
		"Description": description,
		"Module":      g.opts.ModulePrefix + "/" + projectName,
	})
	if err != nil {
		return nil, err
	}

	artifact := &Artifact{
		Name: projectName,
		Kind: KindDocument,
		Files: []File{
			{Path: "README.md", Content: string(content)},
		},
		Summary:    fmt.Sprintf("Generated README for %q.", projectName),
		OutputPath: sanitized,
	}
	artifact.Checksum = artifact.checksum()
	return artifact, nil
}

// ManifestReport validates content as a server manifest and packages the
// outcome as a report artifact. An invalid manifest is a successful report,
// never an error; only an internal schema fault can fail here.
func (g *Generator) ManifestReport(content string) (*Artifact, error) {
	report, err := schema.ValidateManifest(content)
	if err != nil {
		return nil, err
	}

	rendered := report.Render()
	status := "valid"
	if !report.Valid {
		status = fmt.Sprintf("invalid (%d violations)", len(report.Violations))
	}

	artifact := &Artifact{
		Name: "manifest",
		Kind: KindReport,
		Files: []File{
			{Path: "manifest-report.md", Content: rendered},
		},
		Summary: "Manifest validation result: " + status,
	}
	artifact.Checksum = artifact.checksum()
	return artifact, nil
}

// titleCaser keeps existing capitals so "fetchData" becomes "FetchData".
var titleCaser = cases.Title(language.English, cases.NoLower)

// ExportName derives an exported Go identifier from a tool or resource
// name: "fetch-forecast" becomes "FetchForecast", "cache_v2" becomes
// "CacheV2".
func ExportName(name string) string {
	parts := strings.FieldsFunc(name, func(r rune) bool {
		return r == '-' || r == '_' || r == ' '
	})
	var b strings.Builder
	for _, part := range parts {
		b.WriteString(titleCaser.String(part))
	}
	return b.String()
}

// snake flattens a name into a Go file name fragment.
func snake(name string) string {
	return strings.ToLower(strings.NewReplacer("-", "_", " ", "_").Replace(name))
}
