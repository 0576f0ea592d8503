// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/opensbom-generator/composerjson/composer"
)

func newFmtCommand(cfg *Config) *cobra.Command {
	var write, check bool

	cmd := &cobra.Command{
		Use:   "fmt <composer.json>",
		Short: "Parse a manifest and print it in canonical key order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			original, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("%w: %w", composer.ErrUnreadableSource, err)
			}

			manifest, err := composer.ParseWithOptions(original, cfg.parseOptions())
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			formatted, err := cfg.encode(manifest)
			if err != nil {
				return err
			}

			switch {
			case check:
				if !bytes.Equal(original, formatted) {
					return fmt.Errorf("%s is not formatted", path)
				}
				log.Debugf("%s is formatted", path)
				return nil
			case write:
				if bytes.Equal(original, formatted) {
					return nil
				}
				log.Infof("rewriting %s", path)
				return os.WriteFile(path, formatted, 0o644)
			}

			_, err = cmd.OutOrStdout().Write(formatted)
			return err
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "write the result back to the file")
	cmd.Flags().BoolVar(&check, "check", false, "fail when the file is not already formatted")
	cmd.MarkFlagsMutuallyExclusive("write", "check")

	return cmd
}
