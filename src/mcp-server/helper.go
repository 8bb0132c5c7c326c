// Copyright (c) 2025 h315uk3 All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import "fmt"

// getParams extracts parameters from a normalized JSON-RPC request.
// The error text keeps the "missing params" / "invalid params" markers used
// to map failures to the JSON-RPC invalid-params error code.
func getParams(req map[string]any, method string) (map[string]any, error) {
	raw, ok := req["params"]
	if !ok {
		return nil, fmt.Errorf("missing params for %s", method)
	}
	p, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("invalid params for %s: expected object", method)
	}
	return p, nil
}

// getStringParam extracts a required string parameter from a params map.
func getStringParam(params map[string]any, method, key string) (string, error) {
	raw, ok := params[key]
	if !ok {
		return "", fmt.Errorf("missing params %q for %s", key, method)
	}
	s, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("invalid params %q for %s: expected string", key, method)
	}
	return s, nil
}

// getOptionalStringParam extracts an optional string parameter from a params map.
// Absent keys return an empty string without error.
func getOptionalStringParam(params map[string]any, method, key string) (string, error) {
	raw, ok := params[key]
	if !ok {
		return "", nil
	}
	s, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("invalid params %q for %s: expected string", key, method)
	}
	return s, nil
}

// getMapParam extracts an object parameter from a params map.
// A missing key yields an empty map so tool calls without arguments still dispatch.
func getMapParam(params map[string]any, method, key string) (map[string]any, error) {
	raw, ok := params[key]
	if !ok {
		return map[string]any{}, nil
	}
	m, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("invalid params %q for %s: expected object", key, method)
	}
	return m, nil
}
