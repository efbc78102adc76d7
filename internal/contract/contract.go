// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package contract checks raw extractor documents against the wire
// contract: the discovery descriptor and the normal-mode output document.
package contract

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/pdiddy/extractor-kit/pkg/types"
)

// Problem is one contract violation found in a document.
type Problem struct {
	// Path locates the offending value ("$" for the document, "$.logs[2]" for an element).
	Path string `json:"path" yaml:"path"`

	// Message describes the violation.
	Message string `json:"message" yaml:"message"`

	// Severity is error for violations a harness cannot accept, warning otherwise.
	Severity types.Severity `json:"severity" yaml:"severity"`
}

func (p Problem) String() string {
	return fmt.Sprintf("%s %s: %s", p.Severity, p.Path, p.Message)
}

// HasErrors reports whether any problem is an error. With strict set,
// warnings count as well.
func HasErrors(problems []Problem, strict bool) bool {
	for _, p := range problems {
		if p.Severity == types.SeverityError || strict {
			return true
		}
	}
	return false
}

var (
	outputKeys     = []string{"meta", "caches", "logs"}
	descriptorKeys = []string{"name", "types", "cacheKey"}
)

// ValidateOutput checks raw as a normal-mode output document.
func ValidateOutput(raw []byte) []Problem {
	obj, problems := parseObject(raw)
	if obj == nil {
		return problems
	}

	for _, key := range []string{"meta", "caches"} {
		v, ok := obj[key]
		if !ok {
			problems = append(problems, errorf("$", "missing key %q", key))
			continue
		}
		if _, ok := v.(map[string]any); !ok {
			problems = append(problems, errorf("$."+key, "must be an object, got %s", kind(v)))
		}
	}

	problems = append(problems, checkStrings(obj, "logs")...)
	problems = append(problems, unknownKeys(obj, outputKeys)...)
	return problems
}

// ValidateDescriptor checks raw as a discovery response.
func ValidateDescriptor(raw []byte) []Problem {
	obj, problems := parseObject(raw)
	if obj == nil {
		return problems
	}

	for _, key := range []string{"name", "cacheKey"} {
		v, ok := obj[key]
		if !ok {
			problems = append(problems, errorf("$", "missing key %q", key))
			continue
		}
		s, ok := v.(string)
		if !ok {
			problems = append(problems, errorf("$."+key, "must be a string, got %s", kind(v)))
			continue
		}
		if key == "name" && s == "" {
			problems = append(problems, warnf("$.name", "is empty"))
		}
	}

	problems = append(problems, checkStrings(obj, "types")...)
	problems = append(problems, unknownKeys(obj, descriptorKeys)...)
	return problems
}

func parseObject(raw []byte) (map[string]any, []Problem) {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, []Problem{errorf("$", "not valid JSON: %v", err)}
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, []Problem{errorf("$", "must be an object, got %s", kind(v))}
	}
	return obj, nil
}

// checkStrings requires obj[key] to be an array of strings.
func checkStrings(obj map[string]any, key string) []Problem {
	v, ok := obj[key]
	if !ok {
		return []Problem{errorf("$", "missing key %q", key)}
	}
	arr, ok := v.([]any)
	if !ok {
		return []Problem{errorf("$."+key, "must be an array of strings, got %s", kind(v))}
	}
	var problems []Problem
	for i, el := range arr {
		if _, ok := el.(string); !ok {
			problems = append(problems, errorf(fmt.Sprintf("$.%s[%d]", key, i), "must be a string, got %s", kind(el)))
		}
	}
	return problems
}

func unknownKeys(obj map[string]any, known []string) []Problem {
	allowed := make(map[string]bool, len(known))
	for _, k := range known {
		allowed[k] = true
	}
	var extra []string
	for k := range obj {
		if !allowed[k] {
			extra = append(extra, k)
		}
	}
	sort.Strings(extra)

	var problems []Problem
	for _, k := range extra {
		problems = append(problems, warnf("$."+k, "unknown key"))
	}
	return problems
}

// kind names the JSON type of a decoded value.
func kind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case float64:
		return "number"
	case string:
		return "string"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	}
	return fmt.Sprintf("%T", v)
}

func errorf(path, format string, args ...any) Problem {
	return Problem{Path: path, Message: fmt.Sprintf(format, args...), Severity: types.SeverityError}
}

func warnf(path, format string, args ...any) Problem {
	return Problem{Path: path, Message: fmt.Sprintf(format, args...), Severity: types.SeverityWarning}
}
