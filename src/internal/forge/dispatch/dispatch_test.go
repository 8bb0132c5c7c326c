// Copyright (c) 2025 h315uk3 All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package dispatch_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/h315uk3/mcp-forge/src/internal/forge/dispatch"
	"github.com/h315uk3/mcp-forge/src/internal/forge/generate"
	"github.com/h315uk3/mcp-forge/src/internal/forge/pathsafe"
	"github.com/h315uk3/mcp-forge/src/internal/forge/render"
	"github.com/h315uk3/mcp-forge/src/internal/forge/schema"
	"github.com/h315uk3/mcp-forge/src/mcp-server/templates"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDispatcher(t *testing.T) *dispatch.Dispatcher {
	t.Helper()

	engine, err := render.NewEngine(templates.MagicEmbed, "*.tmpl")
	require.NoError(t, err)
	gen := generate.New(engine, generate.Options{OutputBaseDir: "out"})

	descriptors := dispatch.DefaultTools(0)
	descriptors = append(descriptors,
		dispatch.Descriptor{
			Name:        "docs/getting-started",
			Kind:        dispatch.OpResource,
			Description: "Getting started guide",
			Content: func() (string, error) {
				data, err := templates.MagicEmbed.ReadFile("getting-started.md")
				return string(data), err
			},
		},
		dispatch.Descriptor{
			Name:        "testing-strategies",
			Kind:        dispatch.OpPrompt,
			Description: "Testing guidance",
			Content:     func() (string, error) { return "Write table-driven tests.", nil },
		},
	)

	catalog, err := dispatch.NewCatalog(descriptors...)
	require.NoError(t, err)
	return dispatch.New(catalog, gen, nil)
}

func TestDispatchGenerateProject(t *testing.T) {
	d := newDispatcher(t)

	result, err := d.Dispatch(context.Background(), dispatch.Request{
		Op: dispatch.OpGenerateProject,
		Args: map[string]any{
			"project_name": "weather-server",
			"description":  "Weather lookups",
		},
	})
	require.NoError(t, err)
	require.NotNil(t, result.Artifact)
	assert.Len(t, result.Artifact.Files, 8)
	assert.NotEmpty(t, result.Artifact.Checksum)
}

func TestDispatchUnknownOperation(t *testing.T) {
	d := newDispatcher(t)

	result, err := d.Dispatch(context.Background(), dispatch.Request{
		Op:   "delete-everything",
		Args: map[string]any{},
	})
	require.Error(t, err)
	assert.Nil(t, result, "unknown operation must produce no artifact")

	var notFound *dispatch.NotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "delete-everything", notFound.Op)
	assert.Contains(t, notFound.Known, dispatch.OpGenerateProject)
	assert.Equal(t, dispatch.KindNotFound, dispatch.ErrorKind(err))
}

func TestDispatchValidationBatch(t *testing.T) {
	d := newDispatcher(t)

	// Missing both required fields plus an unknown one: all three reported.
	_, err := d.Dispatch(context.Background(), dispatch.Request{
		Op:   dispatch.OpGenerateTool,
		Args: map[string]any{"bogus": "x"},
	})
	require.Error(t, err)

	var violations schema.Violations
	require.True(t, errors.As(err, &violations))
	assert.Len(t, violations, 3)
	assert.Equal(t, dispatch.KindValidationFailed, dispatch.ErrorKind(err))
}

func TestDispatchConfiguredNameCap(t *testing.T) {
	engine, err := render.NewEngine(templates.MagicEmbed, "*.tmpl")
	require.NoError(t, err)
	gen := generate.New(engine, generate.Options{OutputBaseDir: "out"})

	catalog, err := dispatch.NewCatalog(dispatch.DefaultTools(8)...)
	require.NoError(t, err)
	d := dispatch.New(catalog, gen, nil)

	_, err = d.Dispatch(context.Background(), dispatch.Request{
		Op: dispatch.OpGenerateProject,
		Args: map[string]any{
			"project_name": "abcdefghijkl",
			"description":  "twelve characters, cap is eight",
		},
	})
	require.Error(t, err)

	var violations schema.Violations
	require.True(t, errors.As(err, &violations))
	require.Len(t, violations, 1)
	assert.Equal(t, "project_name", violations[0].Field)
	assert.Equal(t, dispatch.KindValidationFailed, dispatch.ErrorKind(err))

	result, err := d.Dispatch(context.Background(), dispatch.Request{
		Op: dispatch.OpGenerateProject,
		Args: map[string]any{
			"project_name": "abcdefgh",
			"description":  "exactly at the cap",
		},
	})
	require.NoError(t, err)
	require.NotNil(t, result.Artifact)
}

func TestDispatchTraversalRejectedBeforeRendering(t *testing.T) {
	d := newDispatcher(t)

	result, err := d.Dispatch(context.Background(), dispatch.Request{
		Op: dispatch.OpGenerateProject,
		Args: map[string]any{
			"project_name": "../../etc",
		},
	})
	require.Error(t, err)
	assert.Nil(t, result)

	var perr *pathsafe.Error
	require.True(t, errors.As(err, &perr), "expected path rejection, got %T", err)
	assert.Equal(t, pathsafe.KindTraversal, perr.Kind)
	assert.Equal(t, dispatch.KindPathRejected, dispatch.ErrorKind(err))
}

func TestDispatchInvalidManifestIsSuccess(t *testing.T) {
	d := newDispatcher(t)

	result, err := d.Dispatch(context.Background(), dispatch.Request{
		Op:   dispatch.OpValidateManifest,
		Args: map[string]any{"manifest_content": "{}"},
	})
	require.NoError(t, err, "an invalid manifest is a report, not a dispatch error")
	require.NotNil(t, result.Artifact)
	assert.Equal(t, generate.KindReport, result.Artifact.Kind)

	text := result.Artifact.Text()
	assert.Contains(t, text, "name")
	assert.Contains(t, text, "version")
	assert.Contains(t, text, "capabilities")
}

func TestDispatchResourceContent(t *testing.T) {
	d := newDispatcher(t)

	result, err := d.Dispatch(context.Background(), dispatch.Request{Op: "docs/getting-started"})
	require.NoError(t, err)
	require.Len(t, result.Artifact.Files, 1)
	assert.Contains(t, result.Artifact.Files[0].Content, "generate_project")
}

func TestDispatchPromptContent(t *testing.T) {
	d := newDispatcher(t)

	result, err := d.Dispatch(context.Background(), dispatch.Request{Op: "testing-strategies"})
	require.NoError(t, err)
	assert.Equal(t, "Write table-driven tests.", result.Artifact.Files[0].Content)
}

func TestDispatchConcurrent(t *testing.T) {
	d := newDispatcher(t)

	done := make(chan error, 16)
	for i := 0; i < 16; i++ {
		go func(i int) {
			_, err := d.Dispatch(context.Background(), dispatch.Request{
				Op: dispatch.OpGenerateTool,
				Args: map[string]any{
					"tool_name":   fmt.Sprintf("tool-%d", i),
					"description": "concurrent",
				},
			})
			done <- err
		}(i)
	}
	for i := 0; i < 16; i++ {
		require.NoError(t, <-done)
	}
}

func TestNewCatalogRejectsBrokenDescriptors(t *testing.T) {
	tests := []struct {
		name        string
		descriptors []dispatch.Descriptor
	}{
		{
			name: "duplicate name",
			descriptors: append(dispatch.DefaultTools(0),
				dispatch.DefaultTools(0)[0]),
		},
		{
			name: "tool without executor",
			descriptors: []dispatch.Descriptor{
				{Name: "broken", Kind: dispatch.OpTool},
			},
		},
		{
			name: "resource without content",
			descriptors: []dispatch.Descriptor{
				{Name: "broken", Kind: dispatch.OpResource},
			},
		},
		{
			name: "empty name",
			descriptors: []dispatch.Descriptor{
				{Kind: dispatch.OpTool},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := dispatch.NewCatalog(tt.descriptors...)
			assert.Error(t, err)
		})
	}
}

func TestCatalogOps(t *testing.T) {
	catalog, err := dispatch.NewCatalog(dispatch.DefaultTools(0)...)
	require.NoError(t, err)

	ops := catalog.Ops()
	assert.Equal(t, []string{
		dispatch.OpGenerateProject,
		dispatch.OpGenerateReadme,
		dispatch.OpGenerateResource,
		dispatch.OpGenerateTool,
		dispatch.OpValidateManifest,
	}, ops)

	assert.Len(t, catalog.OpsOf(dispatch.OpTool), 5)
	assert.Empty(t, catalog.OpsOf(dispatch.OpPrompt))
}

func TestErrorKindClassification(t *testing.T) {
	assert.Equal(t, dispatch.KindIoError, dispatch.ErrorKind(&dispatch.IoError{Path: "x", Err: errors.New("disk full")}))
	assert.Equal(t, dispatch.KindTemplateError, dispatch.ErrorKind(&render.SlotError{Template: "t", Slot: "s"}))
	assert.Equal(t, dispatch.KindInternal, dispatch.ErrorKind(errors.New("anything else")))
}
