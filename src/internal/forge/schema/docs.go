// Copyright (c) 2025 h315uk3 All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package schema validates argument bags and manifest documents before any
// generator runs. It provides capabilities to:
//   - Validate tool argument bags against closed, declared field specs:
//     required fields, enum values, length caps, and value types, with
//     unknown fields rejected rather than ignored.
//   - Collect every violation in a single pass (batch reporting) instead of
//     short-circuiting on the first failure.
//   - Validate MCP server manifest documents against a fixed JSON Schema via
//     [gojsonschema], reporting all schema violations at once.
//   - Render manifest validation outcomes as a human-readable markdown
//     report with [tablewriter].
//
// [gojsonschema]: https://github.com/xeipuuv/gojsonschema
// [tablewriter]: https://github.com/olekukonko/tablewriter
package schema
