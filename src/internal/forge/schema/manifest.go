// Copyright (c) 2025 h315uk3 All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package schema

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/xeipuuv/gojsonschema"
)

// manifestSchema is the fixed JSON Schema every server manifest is checked
// against. The schema is closed at both levels: unknown top-level keys and
// unknown capability keys are violations, matching the closed-schema policy
// used for tool arguments.
const manifestSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"title": "MCP server manifest",
	"type": "object",
	"required": ["name", "version", "capabilities"],
	"additionalProperties": false,
	"properties": {
		"name": {
			"type": "string",
			"minLength": 1,
			"pattern": "^[A-Za-z][A-Za-z0-9_-]*$"
		},
		"version": {
			"type": "string",
			"pattern": "^[0-9]+\\.[0-9]+\\.[0-9]+(-[0-9A-Za-z.-]+)?$"
		},
		"description": {
			"type": "string"
		},
		"capabilities": {
			"type": "object",
			"additionalProperties": false,
			"properties": {
				"tools": {"type": "boolean"},
				"resources": {"type": "boolean"},
				"prompts": {"type": "boolean"},
				"logging": {"type": "boolean"}
			}
		}
	}
}`

var (
	manifestOnce     sync.Once
	compiledManifest *gojsonschema.Schema
	manifestCompile  error
)

// ManifestReport is the outcome of validating one manifest document. An
// invalid manifest is a successfully produced report, never an error: the
// report itself is the artifact.
type ManifestReport struct {
	Valid      bool
	Violations Violations
}

// ValidateManifest checks content against the manifest schema and returns a
// report listing every violation found. Unparseable JSON is itself reported
// as a violation on the document root rather than raised as an error; the
// only hard failure is an internal schema-compilation fault.
func ValidateManifest(content string) (*ManifestReport, error) {
	manifestOnce.Do(func() {
		compiledManifest, manifestCompile = gojsonschema.NewSchema(gojsonschema.NewStringLoader(manifestSchema))
	})
	if manifestCompile != nil {
		return nil, fmt.Errorf("schema: manifest schema failed to compile: %w", manifestCompile)
	}

	if strings.TrimSpace(content) == "" {
		return &ManifestReport{Violations: Violations{{Field: "$", Reason: "manifest document is empty"}}}, nil
	}

	result, err := compiledManifest.Validate(gojsonschema.NewStringLoader(content))
	if err != nil {
		// Malformed JSON in the user's manifest is a finding, not a fault.
		return &ManifestReport{Violations: Violations{{Field: "$", Reason: "invalid JSON syntax: " + err.Error()}}}, nil
	}

	if result.Valid() {
		return &ManifestReport{Valid: true}, nil
	}

	violations := make(Violations, 0, len(result.Errors()))
	for _, re := range result.Errors() {
		field := re.Field()
		if field == "(root)" {
			field = "$"
		}
		violations = append(violations, Violation{Field: field, Reason: re.Description()})
	}
	sort.SliceStable(violations, func(i, j int) bool { return violations[i].Field < violations[j].Field })
	return &ManifestReport{Violations: violations}, nil
}

// Render formats the report as markdown: a status line followed by a
// violation table when the manifest is invalid. Output is deterministic for
// a given report.
func (r *ManifestReport) Render() string {
	if r.Valid {
		return "Manifest is valid.\n\nAll required fields (name, version, capabilities) are present and well-formed.\n"
	}

	var buf strings.Builder
	fmt.Fprintf(&buf, "Manifest is INVALID: %d violation(s) found.\n\n", len(r.Violations))

	table := tablewriter.NewTable(&buf,
		tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
	)
	table.Header([]string{"Field", "Violation"})

	rows := make([][]string, 0, len(r.Violations))
	for _, v := range r.Violations {
		rows = append(rows, []string{v.Field, v.Reason})
	}
	table.Bulk(rows)
	table.Render()
	return buf.String()
}
