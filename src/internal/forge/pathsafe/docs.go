// Copyright (c) 2025 h315uk3 All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package pathsafe validates filesystem-path-like arguments before they reach
// any generator. It provides capabilities to:
//   - Sanitize relative output paths against a base directory, resolving
//     "." and ".." purely lexically so a live filesystem (and its symlinks)
//     is never consulted.
//   - Reject parent-directory traversal, absolute paths, Windows drive
//     letters, UNC prefixes, NUL bytes, and control characters.
//   - Validate project, tool, and resource names against a strict
//     identifier charset.
//
// All functions are pure: they never touch the filesystem and never
// substitute a default for a rejected input.
package pathsafe
