// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extractor

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pdiddy/extractor-kit/pkg/types"
)

// ReadInput reads r to end of stream and parses the content as a single
// JSON value. An empty stream is a parse error.
func ReadInput(r io.Reader) (any, error) {
	var v any
	if err := ReadInputInto(r, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// ReadInputInto reads r to end of stream and decodes the content into v.
func ReadInputInto(r io.Reader, v any) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("%w: reading input: %w", ErrIO, err)
	}
	return parse(data, v)
}

func parse(data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: %w", ErrParse, err)
	}
	return nil
}

// WriteOutput serializes out as {"meta","caches","logs"} to w with no
// trailing newline. Calling it twice writes two documents; nothing guards
// against that.
func WriteOutput(w io.Writer, out *types.Output) error {
	if out == nil {
		out = types.NewOutput()
	}
	data, err := json.Marshal(out)
	if err != nil {
		return fmt.Errorf("%w: encoding output: %w", ErrParse, err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("%w: writing output: %w", ErrIO, err)
	}
	return nil
}

// DecodeOutput parses an output document. Missing containers come back
// present and empty.
func DecodeOutput(r io.Reader) (*types.Output, error) {
	out := &types.Output{}
	if err := ReadInputInto(r, out); err != nil {
		return nil, err
	}
	if out.Meta == nil {
		out.Meta = map[string]any{}
	}
	if out.Caches == nil {
		out.Caches = map[string]any{}
	}
	if out.Logs == nil {
		out.Logs = []string{}
	}
	return out, nil
}
