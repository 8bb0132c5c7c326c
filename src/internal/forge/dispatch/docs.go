// Copyright (c) 2025 h315uk3 All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package dispatch routes named operations to their generators. It provides
// capabilities to:
//   - Hold an immutable catalog of operation descriptors (tools, resources,
//     prompts) built once at startup and read-only afterwards.
//   - Drive the per-request lifecycle: lookup, batch argument validation,
//     path-safety checks on identifier arguments, generation, response.
//   - Convert every validation, sanitization, and generation failure into a
//     typed error with a stable kind tag, so callers build structured error
//     payloads instead of leaking internal faults.
//
// Requests are stateless and independent: nothing mutable is shared between
// calls, so a Dispatcher is safe for concurrent use.
package dispatch
