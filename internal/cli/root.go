// SPDX-License-Identifier: Apache-2.0

// Package cli implements the composer-json commands.
package cli

import (
	"bytes"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/opensbom-generator/composerjson/composer"
)

// Version is set from main at build time.
var Version = "dev"

// Config holds the flags shared by every command.
type Config struct {
	Verbose       bool
	AllowComments bool
	Indent        int
}

func (c *Config) parseOptions() composer.ParseOptions {
	return composer.ParseOptions{AllowComments: c.AllowComments}
}

// encode renders a manifest as JSON using the configured indent.
func (c *Config) encode(manifest *composer.Manifest) ([]byte, error) {
	var buf bytes.Buffer
	enc := composer.NewEncoder(&buf)
	enc.SetIndent(indentString(c.Indent))
	if err := enc.Encode(composer.ToPlainMapping(manifest)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func indentString(width int) string {
	return string(bytes.Repeat([]byte{' '}, width))
}

// NewRootCommand ...
func NewRootCommand() *cobra.Command {
	cfg := &Config{}

	rootCmd := &cobra.Command{
		Use:           "composer-json",
		Short:         "Read, build and rewrite composer.json manifests",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cfg.Indent < 0 {
				return fmt.Errorf("invalid argument %d for \"--indent\" flag: must not be negative", cfg.Indent)
			}
			if cfg.Verbose {
				log.SetLevel(log.DebugLevel)
			}
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&cfg.Verbose, "verbose", "v", false, "enable debug logging")
	flags.BoolVar(&cfg.AllowComments, "jsonc", false, "accept comments and trailing commas in input manifests")
	flags.IntVar(&cfg.Indent, "indent", 4, "number of spaces per indent level, 0 for compact output")

	rootCmd.AddCommand(
		newFmtCommand(cfg),
		newCreateCommand(cfg),
		newInfoCommand(cfg),
		newExportCommand(cfg),
	)

	return rootCmd
}

// Execute runs rootCmd and exits non-zero on failure.
func Execute(rootCmd *cobra.Command) {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
