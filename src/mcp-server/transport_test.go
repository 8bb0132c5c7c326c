// Copyright (c) 2025 h315uk3 All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
)

// newTestTransport builds a transport backed by a server with the default
// generation tools and an isolated output directory.
func newTestTransport(t *testing.T) *InMemoryTransport {
	t.Helper()
	t.Setenv("MCP_FORGE_CONFIG_FILE", "")
	t.Setenv("MCP_FORGE_OUTPUT_DIR", t.TempDir())

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	transport, err := NewTransportBuilder().
		WithVersion("test").
		WithDefaultTools().
		BuildInMemoryTransport(ctx)
	if err != nil {
		t.Fatalf("BuildInMemoryTransport failed: %v", err)
	}

	imt, ok := transport.(*InMemoryTransport)
	if !ok {
		t.Fatalf("expected *InMemoryTransport, got %T", transport)
	}
	t.Cleanup(func() { _ = imt.Close() })
	return imt
}

// readResponse reads one JSON-RPC response with a timeout so a dropped
// reply fails the test instead of hanging it.
func readResponse(t *testing.T, transport *InMemoryTransport) map[string]any {
	t.Helper()

	type readResult struct {
		data []byte
		err  error
	}
	ch := make(chan readResult, 1)
	go func() {
		data, err := transport.ReadMessage()
		ch <- readResult{data, err}
	}()

	select {
	case res := <-ch:
		if res.err != nil {
			t.Fatalf("ReadMessage failed: %v", res.err)
		}
		var resp map[string]any
		if err := json.Unmarshal(res.data, &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
		return resp
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for response")
		return nil
	}
}

// writeRequest marshals and writes a JSON-RPC request to the transport.
func writeRequest(t *testing.T, transport *InMemoryTransport, req map[string]any) {
	t.Helper()
	data, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("failed to marshal request: %v", err)
	}
	if err := transport.WriteMessage(data); err != nil {
		t.Fatalf("WriteMessage failed: %v", err)
	}
}

// initTransport performs the initialize handshake and checks the response.
func initTransport(t *testing.T, transport *InMemoryTransport) {
	t.Helper()
	writeRequest(t, transport, map[string]any{
		"jsonrpc": mcp.JSONRPC_VERSION,
		"id":      1,
		"method":  string(mcp.MethodInitialize),
		"params": map[string]any{
			"protocolVersion": mcp.LATEST_PROTOCOL_VERSION,
			"capabilities":    map[string]any{},
		},
	})

	resp := readResponse(t, transport)
	if resp["error"] != nil {
		t.Fatalf("initialize returned error: %v", resp["error"])
	}
	if resp["result"] == nil {
		t.Fatal("initialize returned no result")
	}
}

func TestInMemoryTransport_InitializeAndListTools(t *testing.T) {
	transport := newTestTransport(t)
	initTransport(t, transport)

	writeRequest(t, transport, map[string]any{
		"jsonrpc": mcp.JSONRPC_VERSION,
		"id":      2,
		"method":  string(mcp.MethodToolsList),
	})

	resp := readResponse(t, transport)
	if resp["error"] != nil {
		t.Fatalf("tools/list returned error: %v", resp["error"])
	}

	result, ok := resp["result"].(map[string]any)
	if !ok {
		t.Fatalf("unexpected result type: %T", resp["result"])
	}
	tools, ok := result["tools"].([]any)
	if !ok {
		t.Fatalf("unexpected tools type: %T", result["tools"])
	}

	names := make(map[string]bool, len(tools))
	for _, raw := range tools {
		tool, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		if name, ok := tool["name"].(string); ok {
			names[name] = true
		}
	}
	for _, want := range []string{
		"generate_project",
		"generate_tool",
		"generate_resource",
		"generate_readme",
		"validate_manifest",
		"get_resource_usage",
	} {
		if !names[want] {
			t.Errorf("tools/list missing tool %q", want)
		}
	}
}

func TestInMemoryTransport_CallTool(t *testing.T) {
	transport := newTestTransport(t)
	initTransport(t, transport)

	writeRequest(t, transport, map[string]any{
		"jsonrpc": mcp.JSONRPC_VERSION,
		"id":      3,
		"method":  string(mcp.MethodToolsCall),
		"params": map[string]any{
			"name": "validate_manifest",
			"arguments": map[string]any{
				"manifest_content": `{"name":"demo","version":"1.0.0","capabilities":{"tools":true,"resources":false,"prompts":false,"logging":false}}`,
			},
		},
	})

	resp := readResponse(t, transport)
	if resp["error"] != nil {
		t.Fatalf("tools/call returned error: %v", resp["error"])
	}
	data, err := json.Marshal(resp["result"])
	if err != nil {
		t.Fatalf("failed to re-marshal result: %v", err)
	}
	if got := string(data); !containsAll(got, "Manifest is valid") {
		t.Errorf("tools/call result missing validation report, got: %s", got)
	}
}

func TestInMemoryTransport_InvalidParams(t *testing.T) {
	transport := newTestTransport(t)
	initTransport(t, transport)

	// tools/call with no params at all
	writeRequest(t, transport, map[string]any{
		"jsonrpc": mcp.JSONRPC_VERSION,
		"id":      4,
		"method":  string(mcp.MethodToolsCall),
	})

	resp := readResponse(t, transport)
	errObj, ok := resp["error"].(map[string]any)
	if !ok {
		t.Fatalf("expected error response, got: %v", resp)
	}
	if code, _ := errObj["code"].(float64); code != -32602 {
		t.Errorf("error code = %v, want -32602", errObj["code"])
	}
}

func TestInMemoryTransport_UnsupportedMethod(t *testing.T) {
	transport := newTestTransport(t)
	initTransport(t, transport)

	writeRequest(t, transport, map[string]any{
		"jsonrpc": mcp.JSONRPC_VERSION,
		"id":      5,
		"method":  "no/such/method",
	})

	resp := readResponse(t, transport)
	errObj, ok := resp["error"].(map[string]any)
	if !ok {
		t.Fatalf("expected error response, got: %v", resp)
	}
	if code, _ := errObj["code"].(float64); code != -32603 {
		t.Errorf("error code = %v, want -32603", errObj["code"])
	}
}

func TestInMemoryTransport_ParseError(t *testing.T) {
	transport := newTestTransport(t)

	if err := transport.WriteMessage([]byte("{not json")); err != nil {
		t.Fatalf("WriteMessage failed: %v", err)
	}

	resp := readResponse(t, transport)
	errObj, ok := resp["error"].(map[string]any)
	if !ok {
		t.Fatalf("expected error response, got: %v", resp)
	}
	if code, _ := errObj["code"].(float64); code != -32700 {
		t.Errorf("error code = %v, want -32700", errObj["code"])
	}
}

func TestInMemoryTransport_NotificationGetsNoReply(t *testing.T) {
	transport := newTestTransport(t)
	initTransport(t, transport)

	// Notifications carry no ID and must not produce a response.
	writeRequest(t, transport, map[string]any{
		"jsonrpc": mcp.JSONRPC_VERSION,
		"method":  "notifications/initialized",
	})

	// A follow-up request proves the notification produced no reply:
	// the next message read must be the ping response.
	writeRequest(t, transport, map[string]any{
		"jsonrpc": mcp.JSONRPC_VERSION,
		"id":      6,
		"method":  string(mcp.MethodPing),
	})

	resp := readResponse(t, transport)
	if id, _ := resp["id"].(float64); id != 6 {
		t.Errorf("expected ping response with id 6, got: %v", resp)
	}
	if resp["error"] != nil {
		t.Errorf("ping returned error: %v", resp["error"])
	}
}

func TestInMemoryTransport_DoubleConnect(t *testing.T) {
	transport := newTestTransport(t)

	err := transport.ConnectServer(context.Background(), nil)
	if !errors.Is(err, errAlreadyConnected) {
		t.Errorf("second ConnectServer error = %v, want errAlreadyConnected", err)
	}
}

// containsAll reports whether s contains every substring in subs.
func containsAll(s string, subs ...string) bool {
	for _, sub := range subs {
		if !strings.Contains(s, sub) {
			return false
		}
	}
	return true
}
