// Copyright (c) 2025 h315uk3 All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package pathsafe_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/h315uk3/mcp-forge/src/internal/forge/pathsafe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		baseDir  string
		expected string
		kind     pathsafe.ErrorKind
		wantErr  bool
	}{
		{
			name:     "plain relative path",
			raw:      "docs/README.md",
			baseDir:  "out",
			expected: "out/docs/README.md",
		},
		{
			name:     "dot segments collapse lexically",
			raw:      "a/../b",
			baseDir:  "out",
			expected: "out/b",
		},
		{
			name:     "trailing slash normalized",
			raw:      "docs/",
			baseDir:  "out",
			expected: "out/docs",
		},
		{
			name:     "no base dir returns cleaned path",
			raw:      "./README.md",
			expected: "README.md",
		},
		{
			name:    "parent traversal",
			raw:     "../secrets",
			baseDir: "out",
			wantErr: true,
			kind:    pathsafe.KindTraversal,
		},
		{
			name:    "nested traversal escaping base",
			raw:     "a/../../secrets",
			baseDir: "out",
			wantErr: true,
			kind:    pathsafe.KindTraversal,
		},
		{
			name:    "absolute path",
			raw:     "/etc/passwd",
			baseDir: "out",
			wantErr: true,
			kind:    pathsafe.KindTraversal,
		},
		{
			name:    "windows drive letter",
			raw:     `C:\Windows\System32`,
			baseDir: "out",
			wantErr: true,
			kind:    pathsafe.KindTraversal,
		},
		{
			name:    "unc share",
			raw:     `\\host\share\file`,
			baseDir: "out",
			wantErr: true,
			kind:    pathsafe.KindTraversal,
		},
		{
			name:    "backslash traversal",
			raw:     `..\secrets`,
			baseDir: "out",
			wantErr: true,
			kind:    pathsafe.KindTraversal,
		},
		{
			name:    "nul byte",
			raw:     "file\x00.md",
			baseDir: "out",
			wantErr: true,
			kind:    pathsafe.KindInvalidCharacter,
		},
		{
			name:    "control character",
			raw:     "file\nname",
			baseDir: "out",
			wantErr: true,
			kind:    pathsafe.KindInvalidCharacter,
		},
		{
			name:    "empty path",
			raw:     "",
			baseDir: "out",
			wantErr: true,
			kind:    pathsafe.KindInvalidCharacter,
		},
		{
			name:    "path resolving to nothing",
			raw:     "./.",
			baseDir: "out",
			wantErr: true,
			kind:    pathsafe.KindInvalidCharacter,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := pathsafe.Sanitize(tt.raw, tt.baseDir)
			if tt.wantErr {
				require.Error(t, err)
				var perr *pathsafe.Error
				require.True(t, errors.As(err, &perr), "expected *pathsafe.Error, got %T", err)
				assert.Equal(t, tt.kind, perr.Kind)
				assert.Empty(t, got, "rejected input must not yield a path")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		maxLen  int
		wantErr bool
		kind    pathsafe.ErrorKind
	}{
		{name: "simple name", input: "my-server"},
		{name: "underscores and digits", input: "cache_v2"},
		{name: "single letter", input: "x"},
		{name: "empty", input: "", wantErr: true, kind: pathsafe.KindInvalidCharacter},
		{name: "traversal", input: "../evil", wantErr: true, kind: pathsafe.KindTraversal},
		{name: "embedded slash", input: "a/b", wantErr: true, kind: pathsafe.KindTraversal},
		{name: "backslash", input: `a\b`, wantErr: true, kind: pathsafe.KindTraversal},
		{name: "drive letter", input: "C:evil", wantErr: true, kind: pathsafe.KindTraversal},
		{name: "nul byte", input: "bad\x00name", wantErr: true, kind: pathsafe.KindInvalidCharacter},
		{name: "leading dash", input: "-flag", wantErr: true, kind: pathsafe.KindInvalidCharacter},
		{name: "leading digit", input: "1server", wantErr: true, kind: pathsafe.KindInvalidCharacter},
		{name: "space", input: "my server", wantErr: true, kind: pathsafe.KindInvalidCharacter},
		{name: "unicode", input: "sérvér", wantErr: true, kind: pathsafe.KindInvalidCharacter},
		{name: "too long", input: strings.Repeat("a", 65), wantErr: true, kind: pathsafe.KindInvalidCharacter},
		{name: "custom cap", input: "abcdef", maxLen: 4, wantErr: true, kind: pathsafe.KindInvalidCharacter},
		{name: "exactly at cap", input: strings.Repeat("a", 64)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := pathsafe.ValidateName(tt.input, tt.maxLen)
			if tt.wantErr {
				require.Error(t, err)
				var perr *pathsafe.Error
				require.True(t, errors.As(err, &perr))
				assert.Equal(t, tt.kind, perr.Kind)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestErrorMessage(t *testing.T) {
	_, err := pathsafe.Sanitize("../x", "out")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Traversal")
	assert.Contains(t, err.Error(), "../x")
}
