// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"net/mail"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/opensbom-generator/composerjson/composer"
)

type createOptions struct {
	name        string
	description string
	packageType string
	licenses    []string
	keywords    []string
	authors     []string
	require     []string
	requireDev  []string
	psr4        []string
	psr4Dev     []string
	output      string
}

func newCreateCommand(cfg *Config) *cobra.Command {
	opts := &createOptions{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Build a new manifest from flags",
		Example: `  composer-json create --name acme/widget --type library --license MIT \
    --author "Jane Doe <jane@example.com>" --require php:^8.1 --psr4 'Acme\Widget\=src/'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			manifest, err := opts.manifest()
			if err != nil {
				return err
			}

			data, err := cfg.encode(manifest)
			if err != nil {
				return err
			}

			if opts.output != "" {
				return os.WriteFile(opts.output, data, 0o644)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.name, "name", "", "package name, vendor/project")
	flags.StringVar(&opts.description, "description", "", "short package description")
	flags.StringVar(&opts.packageType, "type", "", "package type, e.g. library or project")
	flags.StringArrayVar(&opts.licenses, "license", nil, "SPDX license identifier (repeatable)")
	flags.StringArrayVar(&opts.keywords, "keyword", nil, "keyword (repeatable)")
	flags.StringArrayVar(&opts.authors, "author", nil, `author as "Name <email>" (repeatable)`)
	flags.StringArrayVar(&opts.require, "require", nil, "runtime requirement as package:constraint (repeatable)")
	flags.StringArrayVar(&opts.requireDev, "require-dev", nil, "development requirement as package:constraint (repeatable)")
	flags.StringArrayVar(&opts.psr4, "psr4", nil, `PSR-4 mapping as Namespace\=path (repeatable)`)
	flags.StringArrayVar(&opts.psr4Dev, "psr4-dev", nil, `development PSR-4 mapping as Namespace\=path (repeatable)`)
	flags.StringVarP(&opts.output, "output", "o", "", "write the manifest to this file instead of stdout")

	return cmd
}

func (o *createOptions) manifest() (*composer.Manifest, error) {
	manifest := &composer.Manifest{
		Name:        o.name,
		Description: o.description,
		Type:        o.packageType,
		Keywords:    o.keywords,
	}

	switch len(o.licenses) {
	case 0:
	case 1:
		manifest.License = o.licenses[0]
	default:
		manifest.License = o.licenses
	}

	for _, author := range o.authors {
		manifest.Authors = append(manifest.Authors, parseAuthor(author))
	}

	var err error
	if manifest.Require, err = parseLinks(o.require); err != nil {
		return nil, err
	}
	if manifest.RequireDev, err = parseLinks(o.requireDev); err != nil {
		return nil, err
	}

	if err := setPSR4(&manifest.Autoload, o.psr4); err != nil {
		return nil, err
	}
	if err := setPSR4(&manifest.AutoloadDev, o.psr4Dev); err != nil {
		return nil, err
	}

	return manifest, nil
}

func parseAuthor(value string) *composer.Author {
	address, err := mail.ParseAddress(value)
	if err != nil {
		return &composer.Author{Name: strings.TrimSpace(value)}
	}
	return &composer.Author{Name: address.Name, Email: address.Address}
}

func parseLinks(values []string) (*composer.Links, error) {
	if len(values) == 0 {
		return nil, nil
	}

	links := composer.NewLinks()
	for _, value := range values {
		name, constraint, found := strings.Cut(value, ":")
		if !found || name == "" || constraint == "" {
			return nil, fmt.Errorf("invalid requirement %q, expected package:constraint", value)
		}
		links.Set(name, constraint)
	}
	return links, nil
}

func setPSR4(autoload *composer.Autoload, values []string) error {
	if len(values) == 0 {
		return nil
	}

	prefixes := composer.NewObject()
	for _, value := range values {
		prefix, path, found := strings.Cut(value, "=")
		if !found || path == "" {
			return fmt.Errorf(`invalid PSR-4 mapping %q, expected Namespace\=path`, value)
		}
		prefixes.Set(prefix, path)
	}
	autoload.Set(composer.PSR4, prefixes)
	return nil
}
