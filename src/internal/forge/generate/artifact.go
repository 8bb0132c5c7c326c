// Copyright (c) 2025 h315uk3 All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package generate

import (
	"fmt"
	"strings"

	"github.com/h315uk3/mcp-forge/src/internal/forge/render"
	"github.com/h315uk3/mcp-forge/src/internal/helper/gc"
)

// Kind classifies what an artifact contains.
type Kind int

const (
	// KindSourceFile marks artifacts holding generated source code.
	KindSourceFile Kind = iota

	// KindDocument marks artifacts holding prose documents such as READMEs.
	KindDocument

	// KindReport marks artifacts holding validation reports.
	KindReport
)

// String returns the kind label used in artifact text.
func (k Kind) String() string {
	switch k {
	case KindSourceFile:
		return "source"
	case KindDocument:
		return "document"
	case KindReport:
		return "report"
	default:
		return "unknown"
	}
}

// File is one generated file within an artifact.
type File struct {
	Path    string
	Content string
}

// Artifact is the outcome of one generator run. Artifacts are values; they
// are never persisted by the generators themselves. OutputPath, when set, is
// the sanitized location the caller may write to.
type Artifact struct {
	Name       string
	Kind       Kind
	Files      []File
	Summary    string
	Checksum   string
	OutputPath string
}

// Text renders the artifact as a single deterministic document: the
// summary, every file in declaration order under a fenced heading, and the
// checksum footer. This is the payload returned over MCP and printed by the
// CLI.
func (a *Artifact) Text() string {
	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	if a.Summary != "" {
		buf.WriteString(a.Summary)
		if !strings.HasSuffix(a.Summary, "\n") {
			buf.WriteByte('\n')
		}
		buf.WriteByte('\n')
	}

	for _, f := range a.Files {
		fmt.Fprintf(buf, "### %s\n\n```\n%s```\n\n", f.Path, ensureTrailingNewline(f.Content))
	}

	if a.OutputPath != "" {
		fmt.Fprintf(buf, "Suggested output path: %s\n\n", a.OutputPath)
	}
	fmt.Fprintf(buf, "Checksum (SHA3-256): %s\n", a.Checksum)
	return buf.String()
}

// checksum stamps the artifact with a fingerprint over every file, path
// included, so a renamed file changes the digest too.
func (a *Artifact) checksum() string {
	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	for _, f := range a.Files {
		buf.WriteString(f.Path)
		buf.WriteByte(0)
		buf.WriteString(f.Content)
		buf.WriteByte(0)
	}
	return render.Fingerprint(buf.Bytes())
}

func ensureTrailingNewline(s string) string {
	if strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}
