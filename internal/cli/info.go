// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opensbom-generator/composerjson/composer"
	"github.com/opensbom-generator/composerjson/meta"
)

// infoOutput prints the supplier in its "Type: Name (email)" form.
type infoOutput struct {
	*meta.Package
	Supplier string `json:",omitempty"`
}

func newInfoCommand(cfg *Config) *cobra.Command {
	var algorithm string

	cmd := &cobra.Command{
		Use:   "info [dir]",
		Short: "Describe the root package declared by a project's composer.json",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}

			algo := meta.GetHashAlgorithm(algorithm)
			if !algo.Computable() {
				return fmt.Errorf("unsupported checksum algorithm %q", algorithm)
			}

			pkg, err := composer.New().GetRootModule(dir)
			if err != nil {
				return err
			}
			pkg.Checksum.Algorithm = algo
			pkg.Checksum.Value = ""
			_ = pkg.Checksum.String()

			data, err := json.MarshalIndent(infoOutput{
				Package:  pkg,
				Supplier: pkg.Supplier.Get(),
			}, "", indentString(cfg.Indent))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return err
		},
	}

	cmd.Flags().StringVar(&algorithm, "checksum", string(meta.HashAlgoSHA256), "manifest checksum algorithm: SHA1, SHA256 or SHA512")

	return cmd
}
