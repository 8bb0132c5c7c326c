// Copyright (c) 2025 h315uk3 All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"strings"
	"testing"

	"github.com/h315uk3/mcp-forge/src/mcp-server/templates"
)

func TestParseTemplateResult(t *testing.T) {
	cf := &CLIFramework{}

	input := "Long description text.\n\nMore detail here.\n\n## Examples\n\n  forge --instructions\n"
	longDesc, examples, err := cf.parseTemplateResult(input)
	if err != nil {
		t.Fatalf("parseTemplateResult failed: %v", err)
	}

	if !strings.Contains(longDesc, "Long description text.") {
		t.Errorf("long description missing expected text, got: %q", longDesc)
	}
	if strings.Contains(longDesc, "## Examples") {
		t.Errorf("long description should not contain the examples marker, got: %q", longDesc)
	}
	if !strings.Contains(examples, "forge --instructions") {
		t.Errorf("examples missing expected text, got: %q", examples)
	}
}

func TestParseTemplateResult_MissingMarker(t *testing.T) {
	cf := &CLIFramework{}

	if _, _, err := cf.parseTemplateResult("no marker here"); err == nil {
		t.Error("expected error for template without '## Examples' marker")
	}
}

func TestExtractFlagNames(t *testing.T) {
	cf := NewCLIFramework("", ServerDependencies{
		Version: "test",
		Embed:   templates.MagicEmbed,
	})
	rootCmd := cf.BuildRootCommand()

	instructionsFlag, configFlag, helpFlag := extractFlagNames(rootCmd)
	if instructionsFlag != "--instructions" {
		t.Errorf("instructions flag = %q, want %q", instructionsFlag, "--instructions")
	}
	if configFlag != "--config" {
		t.Errorf("config flag = %q, want %q", configFlag, "--config")
	}
	if helpFlag != "--help" {
		t.Errorf("help flag = %q, want %q", helpFlag, "--help")
	}
}

func TestBuildRootCommand(t *testing.T) {
	cf := NewCLIFramework("", ServerDependencies{
		Version: "1.2.3",
		Embed:   templates.MagicEmbed,
	})
	rootCmd := cf.BuildRootCommand()

	if rootCmd.Version != "1.2.3" {
		t.Errorf("command version = %q, want %q", rootCmd.Version, "1.2.3")
	}
	if rootCmd.Long == "" {
		t.Error("expected non-empty Long description from cli_help.md template")
	}
	if rootCmd.Example == "" {
		t.Error("expected non-empty Example section from cli_help.md template")
	}
	if strings.Contains(rootCmd.Long, "{{") {
		t.Errorf("Long description contains unexecuted template syntax: %q", rootCmd.Long)
	}
	for _, flag := range []string{"instructions", "config"} {
		if rootCmd.PersistentFlags().Lookup(flag) == nil {
			t.Errorf("missing persistent flag %q", flag)
		}
	}
}

func TestBuildRootCommand_NilEmbedPanics(t *testing.T) {
	cf := NewCLIFramework("", ServerDependencies{Version: "test"})

	defer func() {
		if recover() == nil {
			t.Error("expected panic when embed filesystem is nil")
		}
	}()
	cf.BuildRootCommand()
}
