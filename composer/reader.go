// SPDX-License-Identifier: Apache-2.0

package composer

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/tidwall/jsonc"
)

// ParseOptions ...
type ParseOptions struct {
	// AllowComments strips // and /* */ comments and trailing commas
	// before decoding.
	AllowComments bool
}

// Read reads and parses the manifest at path.
func Read(path string) (*Manifest, error) {
	return ReadWithOptions(path, ParseOptions{})
}

// ReadWithOptions ...
func ReadWithOptions(path string, opts ParseOptions) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnreadableSource, err)
	}

	manifest, err := ParseWithOptions(data, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return manifest, nil
}

// Parse converts a composer.json document into a Manifest. Unknown keys,
// unknown autoload types and values of the wrong type fail the whole parse.
func Parse(data []byte) (*Manifest, error) {
	return ParseWithOptions(data, ParseOptions{})
}

// ParseWithOptions ...
func ParseWithOptions(data []byte, opts ParseOptions) (*Manifest, error) {
	if opts.AllowComments {
		data = jsonc.ToJSON(data)
	}

	tree, err := decodeJSON(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}

	root, ok := tree.(*Object)
	if !ok {
		return nil, fmt.Errorf("%w: expected an object, got %s", ErrMalformedInput, jsonType(tree))
	}

	manifest := &Manifest{}
	for pair := root.Oldest(); pair != nil; pair = pair.Next() {
		if err := manifest.Set(pair.Key, pair.Value); err != nil {
			return nil, err
		}
	}

	log.Debugf("parsed composer manifest %q with %d keys", manifest.Name, root.Len())
	return manifest, nil
}

func buildAuthors(value any) ([]*Author, error) {
	entries, err := toObjectList(value)
	if err != nil || entries == nil {
		return nil, err
	}

	authors := make([]*Author, 0, len(entries))
	for i, entry := range entries {
		author := &Author{}
		if err := populate(author, entry, nil); err != nil {
			return nil, fmt.Errorf("[%d]: %w", i, err)
		}
		authors = append(authors, author)
	}

	return authors, nil
}

func buildSupport(value any) (*Support, error) {
	entry, err := toObject(value)
	if err != nil || entry == nil {
		return nil, err
	}

	support := &Support{}
	if err := populate(support, entry, nil); err != nil {
		return nil, err
	}

	return support, nil
}

var repositoryRenames = map[string]string{
	packagistKey: "packagistOrg",
}

func buildRepositories(value any) ([]*Repository, error) {
	entries, err := toObjectList(value)
	if err != nil || entries == nil {
		return nil, err
	}

	repositories := make([]*Repository, 0, len(entries))
	for i, entry := range entries {
		repository := &Repository{}
		if err := populate(repository, entry, repositoryRenames); err != nil {
			return nil, fmt.Errorf("[%d]: %w", i, err)
		}
		log.Debugf("found %s", repository)
		repositories = append(repositories, repository)
	}

	return repositories, nil
}

func buildAutoload(value any) (Autoload, error) {
	entry, err := toObject(value)
	if err != nil || entry == nil {
		return nil, err
	}

	autoload := make(Autoload, 0, entry.Len())
	for pair := entry.Oldest(); pair != nil; pair = pair.Next() {
		kind, err := ParseAutoloadKind(pair.Key)
		if err != nil {
			return nil, err
		}
		autoload.Set(kind, pair.Value)
	}

	return autoload, nil
}
