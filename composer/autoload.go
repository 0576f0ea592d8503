// SPDX-License-Identifier: Apache-2.0

package composer

import (
	"fmt"

	"github.com/opensbom-generator/composerjson/internal/helper"
)

// AutoloadKind identifies one of the four autoload rule variants.
type AutoloadKind int

const (
	// PSR0 maps namespace prefixes to paths following PSR-0.
	PSR0 AutoloadKind = iota + 1
	// PSR4 maps namespace prefixes to paths following PSR-4.
	PSR4
	// Classmap lists directories and files scanned for classes.
	Classmap
	// Files lists files included on every request.
	Files
)

var autoloadKeys = map[AutoloadKind]string{
	PSR0:     "psr-0",
	PSR4:     "psr-4",
	Classmap: "classmap",
	Files:    "files",
}

// autoloadTokens is keyed by the dispatch token of each discriminator.
var autoloadTokens = map[string]AutoloadKind{
	"Psr0":     PSR0,
	"Psr4":     PSR4,
	"Classmap": Classmap,
	"Files":    Files,
}

// ParseAutoloadKind returns the variant named by an autoload key.
func ParseAutoloadKind(key string) (AutoloadKind, error) {
	kind, ok := autoloadTokens[helper.ToMethodName(key)]
	if !ok || kind.String() != key {
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedAutoloadType, key)
	}
	return kind, nil
}

// String returns the autoload key of the variant.
func (k AutoloadKind) String() string {
	if key, ok := autoloadKeys[k]; ok {
		return key
	}
	return fmt.Sprintf("AutoloadKind(%d)", int(k))
}

// AutoloadRule is a single autoload variant. Options is kept as decoded:
// prefix to path(s) for psr-0 and psr-4, a list of paths for classmap and files.
type AutoloadRule struct {
	Kind    AutoloadKind
	Options any
}

// Flatten returns the rule's options. The variant key is written by the
// enclosing Autoload.
func (r AutoloadRule) Flatten() any {
	return r.Options
}

// Autoload is an ordered set of rules with at most one rule per kind.
type Autoload []AutoloadRule

// Get returns the options of the rule of the given kind.
func (a Autoload) Get(kind AutoloadKind) (any, bool) {
	for i := range a {
		if a[i].Kind == kind {
			return a[i].Options, true
		}
	}
	return nil, false
}

// Set replaces the options of the rule of the given kind, appending a new
// rule when there is none.
func (a *Autoload) Set(kind AutoloadKind, options any) {
	for i := range *a {
		if (*a)[i].Kind == kind {
			(*a)[i].Options = options
			return
		}
	}
	*a = append(*a, AutoloadRule{Kind: kind, Options: options})
}

// Flatten keys every non-empty rule by its variant key.
func (a Autoload) Flatten() *Object {
	out := NewObject()
	for _, rule := range a {
		if options := rule.Flatten(); !isEmpty(options) {
			out.Set(rule.Kind.String(), options)
		}
	}
	return out
}

func autoloadField(name string, p *Autoload) field {
	return field{
		name: name,
		get: func() (any, bool) {
			flat := p.Flatten()
			return flat, flat.Len() > 0
		},
		set: func(value any) error {
			autoload, err := buildAutoload(value)
			if err != nil {
				return err
			}
			*p = autoload
			return nil
		},
	}
}
