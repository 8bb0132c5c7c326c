// Copyright (c) 2025 h315uk3 All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"bytes"
	"context"
	"io"
	"sync"

	"github.com/h315uk3/mcp-forge/src/internal/helper/gc"
	"github.com/mark3labs/mcp-go/server"
)

// pipeReader implements io.Reader for StdioServer input.
// It reads JSON-RPC requests from the transport's send channel.
type pipeReader struct {
	t         *InMemoryTransport
	activeBuf gc.Buffer
	offset    int
}

func (r *pipeReader) Read(p []byte) (n int, err error) {
	// 1. Serve from active buffer if available
	if r.activeBuf != nil {
		data := r.activeBuf.Bytes()[r.offset:]
		n = copy(p, data)
		r.offset += n

		// If buffer is drained, return it to pool
		if r.offset >= r.activeBuf.Len() {
			r.activeBuf.Reset()
			gc.Default.Put(r.activeBuf)
			r.activeBuf = nil
			r.offset = 0
		}
		return n, nil
	}

	// 2. Wait for new message
	var msg []byte
	var ok bool

	select {
	case msg, ok = <-r.t.sendCh:
	case <-r.t.ctx.Done():
		return 0, io.EOF
	}

	if !ok {
		return 0, io.EOF
	}

	// 3. Prepare new buffer
	r.activeBuf = gc.Default.Get()
	r.activeBuf.Write(msg)

	// Ensure newline for StdioServer
	if r.activeBuf.Len() == 0 || r.activeBuf.Bytes()[r.activeBuf.Len()-1] != '\n' {
		r.activeBuf.WriteByte('\n')
	}

	// 4. Copy to p
	data := r.activeBuf.Bytes()
	n = copy(p, data)
	r.offset = n

	// If fully consumed, clean up immediately
	if r.offset >= r.activeBuf.Len() {
		r.activeBuf.Reset()
		gc.Default.Put(r.activeBuf)
		r.activeBuf = nil
		r.offset = 0
	}

	return n, nil
}

// pipeWriter implements io.Writer for StdioServer output.
// It splits the stream on newlines and forwards complete JSON-RPC
// messages to the transport's receive channel.
//
// Forwarding is decoupled from Write through an ordered queue drained by a
// single goroutine: a batched Write carrying several newline-terminated
// messages must not block on the receive channel while no reader is
// draining it yet.
type pipeWriter struct {
	t         *InMemoryTransport
	activeBuf gc.Buffer

	mu      sync.Mutex
	pending [][]byte
	kick    chan struct{}
	once    sync.Once
}

// forward drains the pending queue into the receive channel in FIFO order.
func (w *pipeWriter) forward() {
	for {
		select {
		case <-w.t.ctx.Done():
			return
		case <-w.kick:
			for {
				w.mu.Lock()
				if len(w.pending) == 0 {
					w.mu.Unlock()
					break
				}
				msg := w.pending[0]
				w.pending = w.pending[1:]
				w.mu.Unlock()

				w.t.sendToRecv(msg)
			}
		}
	}
}

// enqueue appends a complete line to the pending queue and wakes the
// forwarder without blocking.
func (w *pipeWriter) enqueue(msg []byte) {
	w.once.Do(func() {
		w.kick = make(chan struct{}, 1)
		go w.forward()
	})

	w.mu.Lock()
	w.pending = append(w.pending, msg)
	w.mu.Unlock()

	select {
	case w.kick <- struct{}{}:
	default:
	}
}

func (w *pipeWriter) Write(p []byte) (n int, err error) {
	if w.activeBuf == nil {
		w.activeBuf = gc.Default.Get()
	}
	w.activeBuf.Write(p)

	data := w.activeBuf.Bytes()

	for {
		idx := bytes.IndexByte(data, '\n')
		if idx == -1 {
			break
		}

		// Extract line including newline
		lineLen := idx + 1
		line := data[:lineLen]

		// Make a copy to safely use outside buffer (the queue outlives the buffer)
		msg := make([]byte, len(line))
		copy(msg, line)

		w.enqueue(msg)

		// Advance window
		data = data[lineLen:]
	}

	// Update buffer with remaining data
	if len(data) == 0 {
		// Fully consumed
		w.activeBuf.Reset()
		gc.Default.Put(w.activeBuf)
		w.activeBuf = nil
	} else {
		// Shift remaining to front
		// Note: Set() uses append(dst[:0], src...), which handles overlapping slices correctly
		w.activeBuf.Set(data)
	}

	return len(p), nil
}

// ConnectStdioServer serves an MCP server over the transport's channels using
// the stdio codec. Unlike ConnectServer, the full wire protocol runs through
// the pipes, which keeps framing behavior identical to a real stdio session.
//
// The call blocks until the context is cancelled or the server stops.
func (t *InMemoryTransport) ConnectStdioServer(ctx context.Context, srv *server.MCPServer) error {
	t.mu.Lock()
	if t.started {
		t.mu.Unlock()
		return errAlreadyConnected
	}
	t.started = true
	t.mu.Unlock()

	stdio := server.NewStdioServer(srv)
	return stdio.Listen(ctx, &pipeReader{t: t}, &pipeWriter{t: t})
}
