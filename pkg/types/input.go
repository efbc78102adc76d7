// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ResourceContext describes the resource the harness is currently processing.
type ResourceContext struct {
	// ID is the resource identifier (usually its IIIF id).
	ID string `json:"id" yaml:"id"`

	// Path is the resource path inside its store.
	Path string `json:"path" yaml:"path"`

	// Type is the resource type (e.g. "Manifest", "Collection").
	Type string `json:"type" yaml:"type"`

	// Slug is the output slug assigned to the resource.
	Slug string `json:"slug" yaml:"slug"`

	// StoreID names the store the resource was loaded from.
	StoreID string `json:"storeId" yaml:"storeId"`

	// SlugSource records how the slug was derived, if known.
	SlugSource string `json:"slugSource,omitempty" yaml:"slugSource,omitempty"`

	// SaveToDisk reports whether the resource is written to the build output.
	SaveToDisk bool `json:"saveToDisk" yaml:"saveToDisk"`

	// Source describes where the resource came from (disk path, remote url, or parent collection).
	Source map[string]any `json:"source,omitempty" yaml:"source,omitempty"`
}

// Input is a typed view of the document a harness sends in normal mode.
// Fields the harness did not send are left at their zero values. Raw always
// holds the whole parsed document, including documents that are not objects.
type Input struct {
	Context  ResourceContext `json:"context" yaml:"context"`
	Meta     map[string]any  `json:"meta" yaml:"meta"`
	Indices  map[string]any  `json:"indicies" yaml:"indicies"`
	Caches   map[string]any  `json:"caches" yaml:"caches"`
	Config   map[string]any  `json:"config" yaml:"config"`
	Resource map[string]any  `json:"resource" yaml:"resource"`

	Raw any `json:"-" yaml:"-"`
}

// Lookup walks Raw through nested objects by key and returns the value at
// the end of path. It reports false when any step is missing or not an
// object. An empty path returns Raw itself.
func (in Input) Lookup(path ...string) (any, bool) {
	cur := in.Raw
	for _, key := range path {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = obj[key]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}
