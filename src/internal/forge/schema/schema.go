// Copyright (c) 2025 h315uk3 All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package schema

import (
	"fmt"
	"sort"
	"strings"
)

// Violation is a single field-level validation failure.
type Violation struct {
	Field  string
	Reason string
}

// String formats the violation as "field: reason".
func (v Violation) String() string { return v.Field + ": " + v.Reason }

// Violations is the full batch of failures for one argument bag. It
// implements error so a non-empty batch can flow through error returns
// without losing per-field detail.
type Violations []Violation

// Error implements the error interface, joining every violation so callers
// see the complete batch, not just the first failure.
func (vs Violations) Error() string {
	if len(vs) == 0 {
		return "schema: no violations"
	}
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = v.String()
	}
	return "schema: validation failed: " + strings.Join(parts, "; ")
}

// FieldSpec declares the shape of one argument field. Identifier is
// declarative: shape validation ignores it, and the dispatcher applies the
// path-safety step to the already-validated value, so a traversal in a name
// surfaces as a path rejection rather than a schema violation.
type FieldSpec struct {
	Name        string
	Required    bool
	Enum        []string
	MaxLen      int
	Identifier  bool // value must satisfy pathsafe.ValidateName
	Description string
}

// ArgSpec is the closed schema for one operation's argument bag. Fields not
// declared here are rejected, never silently ignored, so a hostile caller
// cannot inject unexpected template parameters.
type ArgSpec struct {
	Fields []FieldSpec
}

// Validate checks bag against the spec and returns the normalized string
// arguments together with every violation found. The returned Violations is
// nil when the bag is valid. All checks run to completion before returning;
// a bag missing two required fields reports both.
func (s ArgSpec) Validate(bag map[string]any) (map[string]string, Violations) {
	var violations Violations
	normalized := make(map[string]string, len(s.Fields))

	declared := make(map[string]FieldSpec, len(s.Fields))
	for _, f := range s.Fields {
		declared[f.Name] = f
	}

	// Closed schema: every supplied field must be declared. Sort so the
	// batch order is stable for callers and tests.
	unknown := make([]string, 0, len(bag))
	for name := range bag {
		if _, ok := declared[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	sort.Strings(unknown)
	for _, name := range unknown {
		violations = append(violations, Violation{Field: name, Reason: "unknown field"})
	}

	for _, f := range s.Fields {
		raw, present := bag[f.Name]
		if !present {
			if f.Required {
				violations = append(violations, Violation{Field: f.Name, Reason: "required field missing"})
			}
			continue
		}

		value, ok := raw.(string)
		if !ok {
			violations = append(violations, Violation{Field: f.Name, Reason: fmt.Sprintf("expected string, got %T", raw)})
			continue
		}
		if f.Required && strings.TrimSpace(value) == "" {
			violations = append(violations, Violation{Field: f.Name, Reason: "required field empty"})
			continue
		}
		if f.MaxLen > 0 && len(value) > f.MaxLen {
			violations = append(violations, Violation{Field: f.Name, Reason: fmt.Sprintf("exceeds %d characters", f.MaxLen)})
			continue
		}
		if len(f.Enum) > 0 && !contains(f.Enum, value) {
			violations = append(violations, Violation{
				Field:  f.Name,
				Reason: fmt.Sprintf("must be one of [%s], got %q", strings.Join(f.Enum, ", "), value),
			})
			continue
		}
		normalized[f.Name] = value
	}

	if len(violations) > 0 {
		return nil, violations
	}
	return normalized, nil
}

func contains(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}
