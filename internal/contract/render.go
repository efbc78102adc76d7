// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package contract

import (
	"encoding/json"
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/extractor-kit/pkg/types"
)

// Render writes v to w in the given format. FormatNone writes nothing.
func Render(w io.Writer, v any, format types.OutputFormat) error {
	switch format {
	case types.FormatNone:
		return nil
	case types.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case types.FormatYAML:
		data, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("marshaling yaml: %w", err)
		}
		_, err = w.Write(data)
		return err
	default:
		return fmt.Errorf("unsupported format %q: use json or yaml", format)
	}
}

// Report writes one line per problem to w and a closing summary.
func Report(w io.Writer, source string, problems []Problem) {
	for _, p := range problems {
		fmt.Fprintf(w, "%s: %s\n", source, p)
	}
	errs, warns := 0, 0
	for _, p := range problems {
		if p.Severity == types.SeverityError {
			errs++
		} else {
			warns++
		}
	}
	if errs == 0 && warns == 0 {
		fmt.Fprintf(w, "%s: ok\n", source)
		return
	}
	fmt.Fprintf(w, "%s: %d error(s), %d warning(s)\n", source, errs, warns)
}
