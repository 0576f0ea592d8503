// SPDX-License-Identifier: Apache-2.0

package composer

import (
	"errors"
)

type errType error

var (
	// ErrUnreadableSource is returned when the manifest file cannot be read.
	ErrUnreadableSource errType = errors.New("failed to read composer manifest")
	// ErrMalformedInput is returned when the source is not a JSON object.
	ErrMalformedInput errType = errors.New("composer manifest is not valid JSON")
	// ErrUnsupportedAutoloadType is returned for an autoload key outside psr-0, psr-4, classmap and files.
	ErrUnsupportedAutoloadType errType = errors.New("unsupported autoload type")
	// ErrUnknownField is returned when a key is not a declared field of the record it is assigned to.
	ErrUnknownField errType = errors.New("unknown field")
	// ErrFieldType is returned when a value does not have the type its field declares.
	ErrFieldType errType = errors.New("invalid field type")
	// ErrEncoding is returned when a flattened manifest cannot be written as JSON or YAML.
	ErrEncoding errType = errors.New("failed to encode composer manifest")

	errNoManifest           errType = errors.New("no composer.json found")
	errDependenciesNotFound errType = errors.New("no dependencies installed. Please install Modules, e.g.: `composer install`")
)
