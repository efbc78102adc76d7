// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the documents exchanged between an extractor and the
// harness that invokes it: the discovery descriptor, the input document, and
// the output document.
package types

import "encoding/json"

// Descriptor is the static self-description an extractor reports in
// discovery mode.
type Descriptor struct {
	// Name identifies the extractor (e.g. "Python extract!"). Empty is allowed.
	Name string `json:"name" yaml:"name"`

	// Types lists the resource types the extractor handles (e.g. "Manifest").
	// A nil slice is reported as an empty list.
	Types []string `json:"types" yaml:"types"`

	// CacheKey names the cache namespace the extractor writes to. Empty means unused.
	CacheKey string `json:"cacheKey" yaml:"cacheKey"`
}

// MarshalJSON writes name, types, cacheKey in that order and never emits
// null for types.
func (d Descriptor) MarshalJSON() ([]byte, error) {
	types := d.Types
	if types == nil {
		types = []string{}
	}
	return json.Marshal(struct {
		Name     string   `json:"name"`
		Types    []string `json:"types"`
		CacheKey string   `json:"cacheKey"`
	}{d.Name, types, d.CacheKey})
}
