package display

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// RenderSummary writes v in a structured format. FormatText writes nothing:
// text output is produced live by Console.
func RenderSummary(w io.Writer, format Format, v interface{}) error {
	switch format {
	case FormatText:
		return nil
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unknown format: %s", format)
}
