// Copyright (c) 2025 h315uk3 All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package render

import (
	"encoding/hex"
	"fmt"
	"io/fs"
	"regexp"
	"text/template"

	"github.com/h315uk3/mcp-forge/src/internal/helper/gc"
	"golang.org/x/crypto/sha3"
)

// SlotError reports a template reference to a placeholder slot that the
// supplied parameters do not bind. A missing slot is always fatal for the
// whole rendering; partial output is never returned.
type SlotError struct {
	Template string
	Slot     string
}

// Error implements the error interface.
func (e *SlotError) Error() string {
	return fmt.Sprintf("render: template %q: missing slot %q", e.Template, e.Slot)
}

// Engine holds a parsed, read-only template set. Construct it once at
// startup with [NewEngine]; after that it is safe for concurrent use.
type Engine struct {
	tmpl *template.Template
}

// NewEngine parses every template matching patterns from fsys. Templates are
// configured with missingkey=error so an unbound slot aborts rendering
// instead of producing a silent "<no value>".
func NewEngine(fsys fs.FS, patterns ...string) (*Engine, error) {
	tmpl, err := template.New("forge").Option("missingkey=error").ParseFS(fsys, patterns...)
	if err != nil {
		return nil, fmt.Errorf("render: failed to parse templates: %w", err)
	}
	return &Engine{tmpl: tmpl}, nil
}

// Has reports whether a template with the given name was parsed.
func (e *Engine) Has(name string) bool { return e.tmpl.Lookup(name) != nil }

// Render executes the named template with params and returns the rendered
// bytes. Parameters are a flat map so every slot reference is subject to the
// missingkey=error policy; a reference to an absent key yields a [*SlotError]
// and no output. Rendering identical (name, params) twice yields identical
// bytes.
func (e *Engine) Render(name string, params map[string]any) ([]byte, error) {
	if e.tmpl.Lookup(name) == nil {
		return nil, fmt.Errorf("render: unknown template %q", name)
	}

	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	if err := e.tmpl.ExecuteTemplate(buf, name, params); err != nil {
		if slot, ok := missingSlot(err); ok {
			return nil, &SlotError{Template: name, Slot: slot}
		}
		return nil, fmt.Errorf("render: template %q: %w", name, err)
	}

	out := make([]byte, len(buf.Bytes()))
	copy(out, buf.Bytes())
	return out, nil
}

// missingSlotPatterns match the two shapes text/template uses to report an
// unbound reference: a map key missing under missingkey=error, and a field
// lookup on data that does not carry it.
var missingSlotPatterns = []*regexp.Regexp{
	regexp.MustCompile(`map has no entry for key "([^"]+)"`),
	regexp.MustCompile(`can't evaluate field (\S+) in type`),
}

func missingSlot(err error) (string, bool) {
	msg := err.Error()
	for _, re := range missingSlotPatterns {
		if m := re.FindStringSubmatch(msg); m != nil {
			return m[1], true
		}
	}
	return "", false
}

// Fingerprint returns the SHA3-256 hex digest of content. Two artifacts with
// the same fingerprint rendered from the same inputs demonstrate the
// reproducibility the scaffolding pipeline promises.
func Fingerprint(content []byte) string {
	sum := sha3.Sum256(content)
	return hex.EncodeToString(sum[:])
}
