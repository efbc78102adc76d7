// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is an example extractor. It records a resource's behavior
// as metadata and marks the resource as processed in its cache namespace.
//
//	behavior-extract --meta            describe the extractor
//	behavior-extract < input.json      run against one resource
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/pdiddy/extractor-kit/pkg/extractor"
	"github.com/pdiddy/extractor-kit/pkg/types"
)

const cacheKey = "behavior_python"

var descriptor = types.Descriptor{
	Name:     "Python extract!",
	Types:    []string{"Manifest"},
	CacheKey: cacheKey,
}

func main() {
	os.Exit(extractor.Run(descriptor, extractBehavior))
}

func extractBehavior(_ context.Context, in types.Input, out *types.Output) error {
	if behavior, ok := in.Lookup("resource", "behavior"); ok && present(behavior) {
		out.Logf("Found behavior %s", render(behavior))
		out.SetMeta(cacheKey, behavior)
	}
	out.SetCache(cacheKey, true)
	return nil
}

// render formats a behavior for the log line. Strings are written as is and
// other values as compact JSON, so a list logs as ["paged"] and a boolean as true.
func render(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(data)
}

// present reports whether v carries a value: not null, false, zero, or empty.
func present(v any) bool {
	switch v := v.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != ""
	case float64:
		return v != 0
	case []any:
		return len(v) > 0
	case map[string]any:
		return len(v) > 0
	}
	return true
}
