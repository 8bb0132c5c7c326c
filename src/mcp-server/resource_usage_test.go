// Copyright (c) 2025 h315uk3 All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestCollectResourceUsage(t *testing.T) {
	data := CollectResourceUsage(false)

	if data.Timestamp == "" {
		t.Error("expected non-empty timestamp")
	}
	if _, ok := data.SystemInfo["go_version"]; !ok {
		t.Error("system info missing go_version")
	}
	if _, ok := data.MemoryUsage["heap_alloc_mb"]; !ok {
		t.Error("memory usage missing heap_alloc_mb")
	}
	if data.DetailedMemory != nil {
		t.Error("detailed memory should be nil when not requested")
	}

	detailed := CollectResourceUsage(true)
	if detailed.DetailedMemory == nil {
		t.Error("expected detailed memory stats when requested")
	}
}

func TestFormatResourceUsageAsJSON(t *testing.T) {
	data := CollectResourceUsage(false)

	out, err := FormatResourceUsageAsJSON(data)
	if err != nil {
		t.Fatalf("FormatResourceUsageAsJSON failed: %v", err)
	}

	var parsed map[string]any
	if err := json.Unmarshal([]byte(out), &parsed); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	for _, key := range []string{"timestamp", "memory_usage", "gc_stats", "system_info"} {
		if _, ok := parsed[key]; !ok {
			t.Errorf("JSON output missing %q", key)
		}
	}
}

func TestFormatResourceUsageAsMarkdown(t *testing.T) {
	data := CollectResourceUsage(true)

	out := FormatResourceUsageAsMarkdown(data)

	for _, want := range []string{
		"# Resource Usage Report",
		"## System Information",
		"## Memory Usage",
		"## Garbage Collection",
		"## Detailed Memory Statistics",
		"METRIC",
		"VALUE",
		"Go Version",
		"Heap Allocated",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("markdown output missing %q", want)
		}
	}

	// The metric tables must render as markdown rows
	if !strings.Contains(out, "|") {
		t.Error("expected markdown table formatting in output")
	}
}
