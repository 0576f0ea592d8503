// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opensbom-generator/composerjson/composer"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

func newExportCommand(cfg *Config) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "export <composer.json>",
		Short: "Print a manifest as JSON or YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			manifest, err := composer.ReadWithOptions(args[0], cfg.parseOptions())
			if err != nil {
				return err
			}

			var data []byte
			switch format {
			case formatJSON:
				data, err = cfg.encode(manifest)
			case formatYAML:
				data, err = composer.MarshalYAML(manifest)
			default:
				return fmt.Errorf("unknown format %q, expected %s or %s", format, formatJSON, formatYAML)
			}
			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatYAML, "output format: json or yaml")

	return cmd
}
