package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// outputFormat selects between text, JSON and YAML rendering.
type outputFormat int

const (
	formatText outputFormat = iota
	formatJSON
	formatYAML
)

func addFormatFlags(cmd *cobra.Command, withYAML bool) {
	cmd.Flags().Bool(flagJSON, false, "Output as JSON")
	if withYAML {
		cmd.Flags().Bool(flagYAML, false, "Output as YAML")
		cmd.MarkFlagsMutuallyExclusive(flagJSON, flagYAML)
	}
}

func formatFromFlags(cmd *cobra.Command) outputFormat {
	if asJSON, _ := cmd.Flags().GetBool(flagJSON); asJSON {
		return formatJSON
	}
	if cmd.Flags().Lookup(flagYAML) != nil {
		if asYAML, _ := cmd.Flags().GetBool(flagYAML); asYAML {
			return formatYAML
		}
	}
	return formatText
}

func writeJSON(out io.Writer, v interface{}) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeYAML(out io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// writeStructured renders v in a machine format. It returns false for text.
func writeStructured(out io.Writer, format outputFormat, v interface{}) (bool, error) {
	switch format {
	case formatJSON:
		return true, writeJSON(out, v)
	case formatYAML:
		return true, writeYAML(out, v)
	default:
		return false, nil
	}
}

// reportJSONError writes {"error": "..."} to errOut and marks err as reported.
func reportJSONError(errOut io.Writer, err error) error {
	if werr := writeJSON(errOut, map[string]string{"error": err.Error()}); werr != nil {
		return err
	}
	return fmt.Errorf("%w: %w", ErrAlreadyReported, err)
}
