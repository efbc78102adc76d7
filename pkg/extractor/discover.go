// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extractor

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pdiddy/extractor-kit/pkg/types"
)

// MetaFlag is the sole argument that selects discovery mode.
const MetaFlag = "--meta"

// IsDiscovery reports whether args (the program arguments without the
// program name) request discovery mode. Only exactly one argument equal to
// MetaFlag qualifies.
func IsDiscovery(args []string) bool {
	return len(args) == 1 && args[0] == MetaFlag
}

// Discover writes d to w when args request discovery mode and reports
// whether it did. It never touches w otherwise.
func Discover(args []string, w io.Writer, d types.Descriptor) (bool, error) {
	if !IsDiscovery(args) {
		return false, nil
	}
	return true, WriteDescriptor(w, d)
}

// WriteDescriptor serializes d as {"name","types","cacheKey"} with no
// trailing newline.
func WriteDescriptor(w io.Writer, d types.Descriptor) error {
	data, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("%w: encoding descriptor: %w", ErrParse, err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("%w: writing descriptor: %w", ErrIO, err)
	}
	return nil
}

// DecodeDescriptor parses a discovery response.
func DecodeDescriptor(r io.Reader) (types.Descriptor, error) {
	var d types.Descriptor
	if err := ReadInputInto(r, &d); err != nil {
		return types.Descriptor{}, err
	}
	if d.Types == nil {
		d.Types = []string{}
	}
	return d, nil
}
