// Copyright (c) 2024 h315uk3 All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package gc

import (
	"io"

	"github.com/valyala/bytebufferpool"
)

// Buffer defines the interface for a reusable byte buffer.
// It abstracts the [bytebufferpool.ByteBuffer] type to avoid direct dependencies.
//
// Buffer satisfies [io.Writer], so it can be handed directly to template
// execution and other streaming producers.
type Buffer interface {
	Write(p []byte) (int, error)
	WriteString(s string) (int, error)
	WriteByte(c byte) error
	Bytes() []byte
	String() string
	Len() int
	Set(p []byte)
	Reset()
	ReadFrom(r io.Reader) (int64, error)
}

// Pool defines the interface for buffer pooling.
// It abstracts the [bytebufferpool.Pool] type to avoid direct dependencies.
//
// Pool implementations must be safe for concurrent use by multiple goroutines.
type Pool interface {
	Get() Buffer
	Put(b Buffer)
}

// pool wraps [bytebufferpool.Pool] to implement Pool interface.
type pool struct{ p *bytebufferpool.Pool }

// Get returns a buffer from the pool.
func (p *pool) Get() Buffer { return p.p.Get() }

// Put returns a buffer to the pool.
func (p *pool) Put(b Buffer) {
	if buf, ok := b.(*bytebufferpool.ByteBuffer); ok {
		p.p.Put(buf)
	}
}

// Default is the default buffer pool used for efficient memory reuse during
// template rendering and document assembly.
//
// Example usage for rendering a scaffold template:
//
//	// Get a buffer from the pool
//	buf := gc.Default.Get()
//
//	defer func() {
//		buf.Reset()         // Reset the buffer to prevent data leaks
//		gc.Default.Put(buf) // Return the buffer to the pool for reuse
//	}()
//
//	if err := tmpl.ExecuteTemplate(buf, "readme.tmpl", params); err != nil {
//		return nil, fmt.Errorf("error rendering template: %w", err)
//	}
//
//	artifact := buf.String()
//
// Example usage for reading a manifest file supplied on the CLI:
//
//	buf := gc.Default.Get()
//
//	defer func() {
//		buf.Reset()
//		gc.Default.Put(buf)
//	}()
//
//	if _, err := buf.ReadFrom(file); err != nil {
//		return fmt.Errorf("error reading manifest: %w", err)
//	}
//
//	report, err := schema.ValidateManifest(buf.String())
//
// Note: Pooling matters most under concurrent tool calls, where every
// request renders several templates; reusing buffers keeps the allocation
// rate flat regardless of request volume.
var Default Pool = &pool{p: &bytebufferpool.Pool{}}
