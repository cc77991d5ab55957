// Package cmd implements the command-line interface for socialreels.
package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/anishere/SocialReels/source"
	"github.com/invopop/jsonschema"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(schemaCmd)

	schemaCmd.Flags().BoolP("list", "l", false, "Generate the schema for the full metadata manifest instead of a single record")
}

// schemaCmd generates JSON schemas for the metadata manifest written next to downloads.
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate the JSON Schema describing metadata manifest records",
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		reflector.Namer = func(t reflect.Type) string {
			name := t.Name()
			if strings.ToLower(name) == "video" {
				return filepath.Base(t.PkgPath()) + "." + name
			}

			return name
		}

		var schema *jsonschema.Schema
		if list, _ := cmd.Flags().GetBool("list"); list {
			schema = reflector.Reflect([]*source.Video{})
		} else {
			schema = reflector.Reflect(&source.Video{})
		}

		handleErr(json.NewEncoder(os.Stdout).Encode(schema))
	},
}
