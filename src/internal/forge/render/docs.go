// Copyright (c) 2025 h315uk3 All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package render turns named, parameterized templates into final artifact
// text. It provides capabilities to:
//   - Parse a fixed template set once at startup from an embedded
//     filesystem and treat it as read-only afterwards.
//   - Render deterministically: the same template and parameters always
//     produce byte-identical output, with no time, randomness, or map
//     iteration order involved.
//   - Fail hard on unresolved placeholder slots instead of rendering an
//     empty string into generated code.
//   - Fingerprint rendered content with SHA3-256 so reproducibility can be
//     checked cheaply.
//
// Rendering goes through pooled buffers from the gc helper to keep
// allocation pressure low under concurrent requests.
package render
