// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"encoding/json"
	"fmt"
)

// Output is the document a normal-mode run emits. One Output exists per
// invocation; every accumulator call mutates that instance. Output is not
// safe for concurrent use.
type Output struct {
	// Meta holds discovered facts keyed by name.
	Meta map[string]any `json:"meta" yaml:"meta"`

	// Caches holds values the harness should persist under the extractor's cache key.
	Caches map[string]any `json:"caches" yaml:"caches"`

	// Logs holds diagnostic lines in call order.
	Logs []string `json:"logs" yaml:"logs"`
}

// NewOutput returns an Output with all three containers present and empty.
func NewOutput() *Output {
	return &Output{
		Meta:   map[string]any{},
		Caches: map[string]any{},
		Logs:   []string{},
	}
}

// Log appends message to Logs.
func (o *Output) Log(message string) {
	o.Logs = append(o.Logs, message)
}

// Logf formats according to format and appends the result to Logs.
func (o *Output) Logf(format string, args ...any) {
	o.Log(fmt.Sprintf(format, args...))
}

// SetMeta sets Meta[key], replacing any earlier value.
func (o *Output) SetMeta(key string, value any) {
	if o.Meta == nil {
		o.Meta = map[string]any{}
	}
	o.Meta[key] = value
}

// SetCache sets Caches[key], replacing any earlier value.
func (o *Output) SetCache(key string, value any) {
	if o.Caches == nil {
		o.Caches = map[string]any{}
	}
	o.Caches[key] = value
}

// SplitLogs separates the log lines from the rest of the document. The
// returned data map carries "meta" and "caches" and is what a harness
// forwards after printing the logs.
func (o *Output) SplitLogs() ([]string, map[string]any) {
	n := o.normalized()
	return n.Logs, map[string]any{
		"meta":   n.Meta,
		"caches": n.Caches,
	}
}

// MarshalJSON writes meta, caches, logs in that order. Nil containers are
// written as {} and [].
func (o Output) MarshalJSON() ([]byte, error) {
	n := o.normalized()
	return json.Marshal(struct {
		Meta   map[string]any `json:"meta"`
		Caches map[string]any `json:"caches"`
		Logs   []string       `json:"logs"`
	}{n.Meta, n.Caches, n.Logs})
}

func (o Output) normalized() Output {
	if o.Meta == nil {
		o.Meta = map[string]any{}
	}
	if o.Caches == nil {
		o.Caches = map[string]any{}
	}
	if o.Logs == nil {
		o.Logs = []string{}
	}
	return o
}
