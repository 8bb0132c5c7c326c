// Copyright (c) 2025 h315uk3 All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package pathsafe

import (
	"fmt"
	"path"
	"strings"
)

// ErrorKind classifies why a path or name was rejected.
type ErrorKind int

const (
	// KindTraversal marks inputs that attempt to escape the allowed base
	// directory: parent-directory segments, absolute paths, drive letters,
	// or UNC prefixes.
	KindTraversal ErrorKind = iota

	// KindInvalidCharacter marks inputs containing bytes or characters that
	// are never legal in a generated path or identifier: NUL bytes, control
	// characters, or characters outside the identifier charset.
	KindInvalidCharacter
)

// String returns the kind tag used in error responses.
func (k ErrorKind) String() string {
	switch k {
	case KindTraversal:
		return "Traversal"
	case KindInvalidCharacter:
		return "InvalidCharacter"
	default:
		return "Unknown"
	}
}

// Error reports a rejected path-like input. Input is echoed back so callers
// can build a precise error response; Reason states what was wrong.
type Error struct {
	Kind   ErrorKind
	Input  string
	Reason string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("pathsafe: %s: %s: %q", e.Kind, e.Reason, e.Input)
}

// DefaultMaxNameLen caps identifier length when the caller does not
// configure one.
const DefaultMaxNameLen = 64

// Sanitize resolves raw against baseDir and returns the normalized path, or
// an [*Error] if the input would escape baseDir or contains illegal bytes.
//
// Resolution is purely lexical: separators are normalized, "." and ".."
// segments are collapsed with [path.Clean], and the result is rejected if any
// parent-directory segment survives. The filesystem is never consulted, so
// symlink races cannot occur. Inputs such as "a/../b" are legal and resolve
// to "b"; "../b" and "a/../../b" are traversal; "/etc/x", "C:\x", and
// "\\host\share" are absolute escapes and rejected on every platform.
func Sanitize(raw, baseDir string) (string, error) {
	if raw == "" {
		return "", &Error{Kind: KindInvalidCharacter, Input: raw, Reason: "empty path"}
	}
	if strings.ContainsRune(raw, 0) {
		return "", &Error{Kind: KindInvalidCharacter, Input: raw, Reason: "NUL byte in path"}
	}
	for _, r := range raw {
		if r < 0x20 || r == 0x7f {
			return "", &Error{Kind: KindInvalidCharacter, Input: raw, Reason: "control character in path"}
		}
	}

	// Windows separators count as separators regardless of host platform.
	normalized := strings.ReplaceAll(raw, `\`, "/")

	if strings.HasPrefix(normalized, "/") {
		return "", &Error{Kind: KindTraversal, Input: raw, Reason: "absolute path escapes base directory"}
	}
	if hasDrivePrefix(normalized) {
		return "", &Error{Kind: KindTraversal, Input: raw, Reason: "drive-letter path escapes base directory"}
	}

	cleaned := path.Clean(normalized)
	if cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return "", &Error{Kind: KindTraversal, Input: raw, Reason: "parent-directory traversal"}
	}
	if cleaned == "." {
		return "", &Error{Kind: KindInvalidCharacter, Input: raw, Reason: "path resolves to nothing"}
	}

	if baseDir == "" {
		return cleaned, nil
	}
	return path.Join(path.Clean(strings.ReplaceAll(baseDir, `\`, "/")), cleaned), nil
}

// ValidateName checks a project, tool, or resource identifier. Identifiers
// must start with a letter, contain only letters, digits, '-' and '_', and
// fit within maxLen bytes (DefaultMaxNameLen when maxLen <= 0). Anything
// path-like (separators, "..", drive letters) is rejected as traversal so a
// hostile name can never smuggle a path into a generated file layout.
func ValidateName(name string, maxLen int) error {
	if maxLen <= 0 {
		maxLen = DefaultMaxNameLen
	}
	if name == "" {
		return &Error{Kind: KindInvalidCharacter, Input: name, Reason: "empty name"}
	}
	if len(name) > maxLen {
		return &Error{Kind: KindInvalidCharacter, Input: name, Reason: fmt.Sprintf("name exceeds %d characters", maxLen)}
	}
	if strings.ContainsRune(name, 0) {
		return &Error{Kind: KindInvalidCharacter, Input: name, Reason: "NUL byte in name"}
	}
	if strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return &Error{Kind: KindTraversal, Input: name, Reason: "path separators not allowed in name"}
	}
	if hasDrivePrefix(name) {
		return &Error{Kind: KindTraversal, Input: name, Reason: "drive-letter prefix not allowed in name"}
	}
	for i, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && (r == '-' || r == '_' || (r >= '0' && r <= '9')):
		default:
			return &Error{Kind: KindInvalidCharacter, Input: name, Reason: fmt.Sprintf("illegal character %q at position %d", r, i)}
		}
	}
	return nil
}

// hasDrivePrefix reports whether s starts with a Windows drive letter
// ("C:") or a UNC share ("//host").
func hasDrivePrefix(s string) bool {
	if len(s) >= 2 && s[1] == ':' {
		c := s[0]
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
			return true
		}
	}
	return strings.HasPrefix(s, "//")
}
