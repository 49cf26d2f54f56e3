package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"
)

// render writes v to w in the requested format (json or yaml).
func render(w io.Writer, v any, format string) error {
	switch format {
	case "", "json":
		out, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling output: %w", err)
		}
		fmt.Fprintln(w, string(out))
	case "yaml":
		out, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("marshaling output: %w", err)
		}
		fmt.Fprint(w, string(out))
	default:
		return fmt.Errorf("unknown output format %q (expected json or yaml)", format)
	}
	return nil
}
