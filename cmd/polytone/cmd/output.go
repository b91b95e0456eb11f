package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	yaml "gopkg.in/yaml.v2"
)

// printOutput writes v to the command output in the configured format. Values are encoded to JSON
// first so that both formats share the JSON field names.
func printOutput(cmd *cobra.Command, v *viper.Viper, out any) error {
	bz, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}

	switch format := v.GetString(flagOutput); format {
	case outputJSON:
		cmd.Println(string(bz))
		return nil
	case outputYAML:
		// JSON is a subset of YAML, MapSlice keeps the field order
		var doc yaml.MapSlice
		if err := yaml.Unmarshal(bz, &doc); err != nil {
			return err
		}

		bz, err = yaml.Marshal(doc)
		if err != nil {
			return err
		}

		cmd.Print(string(bz))
		return nil
	default:
		return fmt.Errorf("unknown output format %q, expected %s or %s", format, outputYAML, outputJSON)
	}
}
