// Copyright (c) 2025 h315uk3 All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package dispatch

import (
	"context"
	"fmt"
	"sort"

	"github.com/h315uk3/mcp-forge/src/internal/forge/generate"
	"github.com/h315uk3/mcp-forge/src/internal/forge/schema"
)

// OpKind distinguishes the three operation classes the catalog registers.
type OpKind int

const (
	// OpTool is an invokable operation producing a generated artifact.
	OpTool OpKind = iota

	// OpResource is a retrievable content item.
	OpResource

	// OpPrompt is a pre-authored guidance document returned verbatim.
	OpPrompt
)

// String returns the kind label.
func (k OpKind) String() string {
	switch k {
	case OpTool:
		return "tool"
	case OpResource:
		return "resource"
	case OpPrompt:
		return "prompt"
	default:
		return "unknown"
	}
}

// RunFunc executes a tool operation against already-validated, sanitized
// arguments.
type RunFunc func(ctx context.Context, gen *generate.Generator, args map[string]string) (*generate.Artifact, error)

// ContentFunc loads the content of a resource or prompt operation.
type ContentFunc func() (string, error)

// Descriptor declares one operation: its name, kind, argument schema, and
// how to execute it. Descriptors are registered once and never mutated.
type Descriptor struct {
	Name        string
	Kind        OpKind
	Description string
	Args        schema.ArgSpec
	Run         RunFunc     // tools
	Content     ContentFunc // resources and prompts
}

// Catalog is the immutable operation registry. Build it once with
// [NewCatalog]; afterwards it is safe for unsynchronized concurrent reads.
type Catalog struct {
	ops   map[string]Descriptor
	names []string
}

// NewCatalog registers descriptors and freezes the registry. Registration
// fails on duplicate names, on tools without an executor, and on resources
// or prompts without content: a half-declared operation is an internal
// inconsistency better caught at startup than mid-request.
func NewCatalog(descriptors ...Descriptor) (*Catalog, error) {
	ops := make(map[string]Descriptor, len(descriptors))
	names := make([]string, 0, len(descriptors))

	for _, d := range descriptors {
		if d.Name == "" {
			return nil, fmt.Errorf("dispatch: descriptor with empty name")
		}
		if _, dup := ops[d.Name]; dup {
			return nil, fmt.Errorf("dispatch: duplicate operation %q", d.Name)
		}
		switch d.Kind {
		case OpTool:
			if d.Run == nil {
				return nil, fmt.Errorf("dispatch: tool %q has no executor", d.Name)
			}
		case OpResource, OpPrompt:
			if d.Content == nil {
				return nil, fmt.Errorf("dispatch: %s %q has no content", d.Kind, d.Name)
			}
		default:
			return nil, fmt.Errorf("dispatch: operation %q has unknown kind %d", d.Name, d.Kind)
		}
		ops[d.Name] = d
		names = append(names, d.Name)
	}

	sort.Strings(names)
	return &Catalog{ops: ops, names: names}, nil
}

// Lookup returns the descriptor registered under name.
func (c *Catalog) Lookup(name string) (Descriptor, bool) {
	d, ok := c.ops[name]
	return d, ok
}

// Ops returns every registered operation name in sorted order. The slice is
// a copy; callers may keep it.
func (c *Catalog) Ops() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// OpsOf returns the sorted names of every operation of the given kind.
func (c *Catalog) OpsOf(kind OpKind) []string {
	var out []string
	for _, name := range c.names {
		if c.ops[name].Kind == kind {
			out = append(out, name)
		}
	}
	return out
}
