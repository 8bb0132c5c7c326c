// Copyright (c) 2025 h315uk3 All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/h315uk3/mcp-forge/src/logger"
)

func TestPipeWriter_SplitsOnNewlines(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	transport := NewInMemoryTransport(ctx)
	w := &pipeWriter{t: transport}

	n, err := w.Write([]byte("first\nsecond\n"))
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if n != len("first\nsecond\n") {
		t.Errorf("Write returned %d, want %d", n, len("first\nsecond\n"))
	}

	for _, want := range []string{"first\n", "second\n"} {
		select {
		case msg := <-transport.recvCh:
			if string(msg) != want {
				t.Errorf("forwarded line = %q, want %q", msg, want)
			}
		case <-time.After(time.Second):
			t.Fatalf("timed out waiting for line %q", want)
		}
	}
}

func TestPipeWriter_BatchedWriteDoesNotBlock(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	transport := NewInMemoryTransport(ctx)
	w := &pipeWriter{t: transport}

	// More complete lines than the receive channel holds, no reader draining yet
	done := make(chan struct{})
	go func() {
		defer close(done)
		if _, err := w.Write([]byte("one\ntwo\nthree\nfour\n")); err != nil {
			t.Errorf("Write failed: %v", err)
		}
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("batched Write blocked without a concurrent reader")
	}

	// Once a reader drains, every line arrives in order
	for _, want := range []string{"one\n", "two\n", "three\n", "four\n"} {
		select {
		case msg := <-transport.recvCh:
			if string(msg) != want {
				t.Errorf("forwarded line = %q, want %q", msg, want)
			}
		case <-time.After(time.Second):
			t.Fatalf("timed out waiting for line %q", want)
		}
	}
}

func TestPipeWriter_BuffersPartialLines(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	transport := NewInMemoryTransport(ctx)
	w := &pipeWriter{t: transport}

	if _, err := w.Write([]byte(`{"par`)); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	// No complete line yet, nothing should be forwarded
	select {
	case msg := <-transport.recvCh:
		t.Fatalf("unexpected forwarded message: %q", msg)
	default:
	}

	if _, err := w.Write([]byte("tial\"}\n")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	select {
	case msg := <-transport.recvCh:
		if string(msg) != "{\"partial\"}\n" {
			t.Errorf("forwarded line = %q, want reassembled line", msg)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for reassembled line")
	}
}

func TestPipeReader_AppendsNewline(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	transport := NewInMemoryTransport(ctx)
	r := &pipeReader{t: transport}

	transport.sendCh <- []byte(`{"jsonrpc":"2.0"}`)

	buf := make([]byte, 64)
	n, err := r.Read(buf)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	got := string(buf[:n])
	if !strings.HasSuffix(got, "\n") {
		t.Errorf("Read result %q does not end with newline", got)
	}
	if !strings.HasPrefix(got, `{"jsonrpc":"2.0"}`) {
		t.Errorf("Read result %q lost message content", got)
	}
}

func TestPipeReader_ServesAcrossSmallBuffers(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	transport := NewInMemoryTransport(ctx)
	r := &pipeReader{t: transport}

	transport.sendCh <- []byte("abcdef\n")

	var got strings.Builder
	buf := make([]byte, 3)
	for got.Len() < len("abcdef\n") {
		n, err := r.Read(buf)
		if err != nil {
			t.Fatalf("Read failed: %v", err)
		}
		got.Write(buf[:n])
	}
	if got.String() != "abcdef\n" {
		t.Errorf("reassembled read = %q, want %q", got.String(), "abcdef\n")
	}
}

func TestPipeReader_EOFOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	transport := NewInMemoryTransport(ctx)
	r := &pipeReader{t: transport}

	cancel()

	buf := make([]byte, 8)
	if _, err := r.Read(buf); err == nil {
		t.Error("expected EOF after context cancellation")
	}
}

func TestConnectStdioServer_FullHandshake(t *testing.T) {
	t.Setenv("MCP_FORGE_CONFIG_FILE", "")
	t.Setenv("MCP_FORGE_OUTPUT_DIR", t.TempDir())

	config, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}
	dispatcher, err := newDispatcher(config, logger.NewMCPLogger(io.Discard, true))
	if err != nil {
		t.Fatalf("newDispatcher failed: %v", err)
	}

	srv, err := NewServerBuilder().
		WithConfig(config).
		WithVersion("test").
		WithDispatcher(dispatcher).
		WithDefaultTools().
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	transport := NewInMemoryTransport(ctx)
	done := make(chan error, 1)
	go func() {
		done <- transport.ConnectStdioServer(ctx, srv)
	}()

	initReq := `{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"protocolVersion":"2025-03-26","capabilities":{},"clientInfo":{"name":"pipe-test","version":"0.0.1"}}}`
	if err := transport.WriteMessage([]byte(initReq)); err != nil {
		t.Fatalf("WriteMessage failed: %v", err)
	}

	resp := readResponse(t, transport)
	if resp["error"] != nil {
		t.Fatalf("initialize over stdio pipes returned error: %v", resp["error"])
	}
	result, ok := resp["result"].(map[string]any)
	if !ok {
		t.Fatalf("unexpected result type: %T", resp["result"])
	}
	serverInfo, ok := result["serverInfo"].(map[string]any)
	if !ok {
		t.Fatalf("missing serverInfo in result: %v", result)
	}
	if name, _ := serverInfo["name"].(string); name != "MCP Forge" {
		t.Errorf("serverInfo.name = %q, want %q", name, "MCP Forge")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("stdio server did not stop after context cancellation")
	}
}
