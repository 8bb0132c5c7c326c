// Copyright (c) 2025 h315uk3 All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package schema_test

import (
	"testing"

	"github.com/h315uk3/mcp-forge/src/internal/forge/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func toolSpec() schema.ArgSpec {
	return schema.ArgSpec{Fields: []schema.FieldSpec{
		{Name: "tool_name", Required: true, Identifier: true, MaxLen: 64},
		{Name: "description", Required: true, MaxLen: 512},
		{Name: "resource_type", Enum: []string{"text", "binary", "json"}},
	}}
}

func TestArgSpecValidate(t *testing.T) {
	tests := []struct {
		name       string
		bag        map[string]any
		wantFields []string // violated fields, in batch order
	}{
		{
			name: "valid bag",
			bag: map[string]any{
				"tool_name":   "fetch_data",
				"description": "Fetches data from upstream",
			},
		},
		{
			name:       "two missing required fields both reported",
			bag:        map[string]any{},
			wantFields: []string{"tool_name", "description"},
		},
		{
			name: "unknown field rejected not ignored",
			bag: map[string]any{
				"tool_name":   "fetch_data",
				"description": "ok",
				"template":    "{{.evil}}",
			},
			wantFields: []string{"template"},
		},
		{
			name: "enum mismatch",
			bag: map[string]any{
				"tool_name":     "fetch_data",
				"description":   "ok",
				"resource_type": "xml",
			},
			wantFields: []string{"resource_type"},
		},
		{
			name: "wrong type reported with actual type",
			bag: map[string]any{
				"tool_name":   42,
				"description": "ok",
			},
			wantFields: []string{"tool_name"},
		},
		{
			name: "empty required string",
			bag: map[string]any{
				"tool_name":   "fetch_data",
				"description": "   ",
			},
			wantFields: []string{"description"},
		},
		{
			name: "violations accumulate across fields",
			bag: map[string]any{
				"resource_type": "xml",
				"bogus":         "x",
			},
			wantFields: []string{"bogus", "tool_name", "description", "resource_type"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			normalized, violations := toolSpec().Validate(tt.bag)
			if len(tt.wantFields) == 0 {
				require.Nil(t, violations)
				require.NotNil(t, normalized)
				for name, raw := range tt.bag {
					assert.Equal(t, raw, normalized[name])
				}
				return
			}
			require.Len(t, violations, len(tt.wantFields))
			assert.Nil(t, normalized, "invalid bag must not yield normalized arguments")
			for i, field := range tt.wantFields {
				assert.Equal(t, field, violations[i].Field)
				assert.NotEmpty(t, violations[i].Reason)
			}
		})
	}
}

func TestViolationsError(t *testing.T) {
	_, violations := toolSpec().Validate(map[string]any{})
	require.Error(t, violations)
	msg := violations.Error()
	assert.Contains(t, msg, "tool_name")
	assert.Contains(t, msg, "description")
}

func TestValidateManifest(t *testing.T) {
	tests := []struct {
		name       string
		content    string
		valid      bool
		wantFields []string
	}{
		{
			name: "valid manifest",
			content: `{
				"name": "weather-server",
				"version": "1.2.3",
				"description": "A weather MCP server",
				"capabilities": {"tools": true, "resources": false}
			}`,
			valid: true,
		},
		{
			name:       "empty document reports every missing field",
			content:    "{}",
			wantFields: []string{"$", "$", "$"},
		},
		{
			name:       "empty string",
			content:    "",
			wantFields: []string{"$"},
		},
		{
			name:       "malformed JSON is a report not an error",
			content:    `{"name": `,
			wantFields: []string{"$"},
		},
		{
			name: "bad version and unknown capability both reported",
			content: `{
				"name": "weather-server",
				"version": "not-semver",
				"capabilities": {"tools": true, "telepathy": true}
			}`,
			wantFields: []string{"capabilities", "version"},
		},
		{
			name: "unknown top-level key",
			content: `{
				"name": "weather-server",
				"version": "1.0.0",
				"capabilities": {},
				"extra": 1
			}`,
			wantFields: []string{"$"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := schema.ValidateManifest(tt.content)
			require.NoError(t, err, "manifest validation must never hard-fail on user input")
			require.NotNil(t, report)
			if tt.valid {
				assert.True(t, report.Valid)
				assert.Empty(t, report.Violations)
				assert.Contains(t, report.Render(), "valid")
				return
			}
			assert.False(t, report.Valid)
			require.Len(t, report.Violations, len(tt.wantFields))
			for i, field := range tt.wantFields {
				assert.Equal(t, field, report.Violations[i].Field)
			}
			rendered := report.Render()
			assert.Contains(t, rendered, "INVALID")
			for _, v := range report.Violations {
				assert.Contains(t, rendered, v.Field)
			}
		})
	}
}

func TestValidateManifestEmptyDocumentNamesRequiredFields(t *testing.T) {
	report, err := schema.ValidateManifest("{}")
	require.NoError(t, err)
	require.False(t, report.Valid)

	joined := report.Violations.Error()
	assert.Contains(t, joined, "name")
	assert.Contains(t, joined, "version")
	assert.Contains(t, joined, "capabilities")
}

func TestManifestReportRenderDeterministic(t *testing.T) {
	first, err := schema.ValidateManifest("{}")
	require.NoError(t, err)
	second, err := schema.ValidateManifest("{}")
	require.NoError(t, err)
	assert.Equal(t, first.Render(), second.Render())
}
