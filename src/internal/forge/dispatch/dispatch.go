// Copyright (c) 2025 h315uk3 All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package dispatch

import (
	"context"

	"github.com/h315uk3/mcp-forge/src/internal/forge/generate"
	"github.com/h315uk3/mcp-forge/src/internal/forge/pathsafe"
	"github.com/h315uk3/mcp-forge/src/logger"
)

// Request is one incoming operation invocation. The argument bag is owned
// by the call and never retained.
type Request struct {
	Op   string
	Args map[string]any
}

// Result is a successful dispatch outcome.
type Result struct {
	Op       string
	Artifact *generate.Artifact
}

// Dispatcher routes requests through lookup, validation, sanitization, and
// generation. It holds no per-request state.
type Dispatcher struct {
	catalog *Catalog
	gen     *generate.Generator
	log     logger.Logger
}

// New creates a Dispatcher over catalog and gen. log may be nil.
func New(catalog *Catalog, gen *generate.Generator, log logger.Logger) *Dispatcher {
	return &Dispatcher{catalog: catalog, gen: gen, log: log}
}

// Catalog exposes the read-only operation registry.
func (d *Dispatcher) Catalog() *Catalog { return d.catalog }

// Dispatch executes one request. Failures return typed errors classified by
// [ErrorKind]; malformed client input never panics or terminates the
// process. Tool requests run their generator; resource and prompt requests
// return their content verbatim as a document artifact.
func (d *Dispatcher) Dispatch(ctx context.Context, req Request) (*Result, error) {
	desc, ok := d.catalog.Lookup(req.Op)
	if !ok {
		return nil, &NotFoundError{Op: req.Op, Known: d.catalog.Ops()}
	}

	if desc.Kind != OpTool {
		content, err := desc.Content()
		if err != nil {
			d.logf("operation %s: content load failed: %v", req.Op, err)
			return nil, err
		}
		return &Result{Op: req.Op, Artifact: &generate.Artifact{
			Name:  desc.Name,
			Kind:  generate.KindDocument,
			Files: []generate.File{{Path: desc.Name, Content: content}},
		}}, nil
	}

	args, violations := desc.Args.Validate(req.Args)
	if violations != nil {
		return nil, violations
	}

	// Sanitization step: identifier arguments carry path-safety rules on
	// top of shape validation, and a traversal here must surface as a path
	// rejection before any template is rendered.
	for _, f := range desc.Args.Fields {
		if !f.Identifier {
			continue
		}
		if value, present := args[f.Name]; present {
			if err := pathsafe.ValidateName(value, f.MaxLen); err != nil {
				return nil, err
			}
		}
	}

	artifact, err := desc.Run(ctx, d.gen, args)
	if err != nil {
		d.logf("operation %s failed: %v", req.Op, err)
		return nil, err
	}

	return &Result{Op: req.Op, Artifact: artifact}, nil
}

func (d *Dispatcher) logf(format string, v ...any) {
	if d.log != nil {
		d.log.Printf(format, v...)
	}
}
