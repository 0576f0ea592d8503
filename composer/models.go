// SPDX-License-Identifier: Apache-2.0

package composer

import (
	"fmt"

	"github.com/opensbom-generator/composerjson/internal/helper"
)

// Manifest is the root of a composer.json document. Every field is optional
// and empty fields are left out when the manifest is flattened.
type Manifest struct {
	Name        string
	Description string
	Version     string
	Type        string
	Keywords    []string
	Homepage    string
	Readme      string
	Time        string
	// License is a single SPDX identifier or a list of them.
	License any
	Authors []*Author
	Support *Support

	Require    *Links
	RequireDev *Links
	Conflict   *Links
	Replace    *Links
	Provide    *Links
	Suggest    *Links

	Autoload    Autoload
	AutoloadDev Autoload

	IncludePath      any
	TargetDir        any
	MinimumStability any
	PreferStable     any
	Repositories     []*Repository
	Config           *Object
	Scripts          *Object
	Extra            *Object
	Bin              any
	Archive          *Object
	// Abandoned is true or the name of a replacement package.
	Abandoned          any
	NonFeatureBranches any
}

func (m *Manifest) recordName() string { return "manifest" }

func (m *Manifest) fields() []field {
	return []field{
		stringField("name", &m.Name),
		stringField("description", &m.Description),
		stringField("version", &m.Version),
		stringField("type", &m.Type),
		stringsField("keywords", &m.Keywords),
		stringField("homepage", &m.Homepage),
		stringField("readme", &m.Readme),
		stringField("time", &m.Time),
		valueField("license", &m.License),
		m.authorsField(),
		m.supportField(),
		linksField("require", &m.Require),
		linksField("requireDev", &m.RequireDev),
		linksField("conflict", &m.Conflict),
		linksField("replace", &m.Replace),
		linksField("provide", &m.Provide),
		linksField("suggest", &m.Suggest),
		autoloadField("autoload", &m.Autoload),
		autoloadField("autoloadDev", &m.AutoloadDev),
		valueField("includePath", &m.IncludePath),
		valueField("targetDir", &m.TargetDir),
		valueField("minimumStability", &m.MinimumStability),
		valueField("preferStable", &m.PreferStable),
		m.repositoriesField(),
		objectField("config", &m.Config),
		objectField("scripts", &m.Scripts),
		objectField("extra", &m.Extra),
		valueField("bin", &m.Bin),
		objectField("archive", &m.Archive),
		valueField("abandoned", &m.Abandoned),
		valueField("nonFeatureBranches", &m.NonFeatureBranches),
	}
}

func (m *Manifest) authorsField() field {
	return field{
		name: "authors",
		get: func() (any, bool) {
			if len(m.Authors) == 0 {
				return nil, false
			}
			list := make([]any, len(m.Authors))
			for i := range m.Authors {
				list[i] = m.Authors[i].Flatten()
			}
			return list, true
		},
		set: func(value any) error {
			built, err := buildAuthors(value)
			if err != nil {
				return err
			}
			m.Authors = built
			return nil
		},
	}
}

func (m *Manifest) supportField() field {
	return field{
		name: "support",
		get: func() (any, bool) {
			flat := m.Support.Flatten()
			return flat, flat.Len() > 0
		},
		set: func(value any) error {
			built, err := buildSupport(value)
			if err != nil {
				return err
			}
			m.Support = built
			return nil
		},
	}
}

func (m *Manifest) repositoriesField() field {
	return field{
		name: "repositories",
		get: func() (any, bool) {
			if len(m.Repositories) == 0 {
				return nil, false
			}
			list := make([]any, len(m.Repositories))
			for i := range m.Repositories {
				list[i] = m.Repositories[i].Flatten()
			}
			return list, true
		},
		set: func(value any) error {
			built, err := buildRepositories(value)
			if err != nil {
				return err
			}
			m.Repositories = built
			return nil
		},
	}
}

// Set assigns value to the field whose manifest key is key, converting the
// hyphen-case key to its attribute name. Structured fields (authors, support,
// repositories, autoload, autoload-dev) expect the decoded document shape and
// are built into their typed records.
func (m *Manifest) Set(key string, value any) error {
	return assign(m, helper.ToInternalName(key), value)
}

// Flatten returns the manifest as an ordered mapping of manifest keys,
// omitting every empty field.
func (m *Manifest) Flatten() *Object {
	if m == nil {
		return NewObject()
	}
	return flatten(m)
}

// Author is one entry of the authors list.
type Author struct {
	Name     string
	Email    string
	Homepage string
	// Role is the author's role in the project, e.g. developer or translator.
	Role string
}

func (a *Author) recordName() string { return "author" }

func (a *Author) fields() []field {
	return []field{
		stringField("name", &a.Name),
		stringField("email", &a.Email),
		stringField("homepage", &a.Homepage),
		stringField("role", &a.Role),
	}
}

// Flatten ...
func (a *Author) Flatten() *Object {
	if a == nil {
		return NewObject()
	}
	return flatten(a)
}

// Support lists the places users can get help with the package.
type Support struct {
	Email  string
	Issues string
	Forum  string
	Wiki   string
	IRC    string
	Source string
	Docs   string
	RSS    string
	Chat   string
}

func (s *Support) recordName() string { return "support" }

func (s *Support) fields() []field {
	return []field{
		stringField("email", &s.Email),
		stringField("issues", &s.Issues),
		stringField("forum", &s.Forum),
		stringField("wiki", &s.Wiki),
		stringField("irc", &s.IRC),
		stringField("source", &s.Source),
		stringField("docs", &s.Docs),
		stringField("rss", &s.RSS),
		stringField("chat", &s.Chat),
	}
}

// Flatten ...
func (s *Support) Flatten() *Object {
	if s == nil {
		return NewObject()
	}
	return flatten(s)
}

// packagistKey is the only repository key that is not hyphen-case.
const packagistKey = "packagist.org"

// Repository is one entry of the repositories list.
type Repository struct {
	Type string
	URL  string
	// PackagistOrg is written as "packagist.org". It is nil when the key is
	// absent; {"packagist.org": false} disables the default repository.
	PackagistOrg *bool
	Composer     string
	VCS          string
	Pear         string
	// Package is an inline package definition, an object or a list of objects.
	Package any
	Options *Object
}

func (r *Repository) recordName() string { return "repository" }

func (r *Repository) fields() []field {
	return []field{
		stringField("type", &r.Type),
		stringField("url", &r.URL),
		boolPtrField("packagistOrg", packagistKey, &r.PackagistOrg),
		stringField("composer", &r.Composer),
		stringField("vcs", &r.VCS),
		stringField("pear", &r.Pear),
		valueField("package", &r.Package),
		objectField("options", &r.Options),
	}
}

// Flatten ...
func (r *Repository) Flatten() *Object {
	if r == nil {
		return NewObject()
	}
	return flatten(r)
}

// DisablePackagist returns the repository entry that turns off packagist.org.
func DisablePackagist() *Repository {
	disabled := false
	return &Repository{PackagistOrg: &disabled}
}

func (r *Repository) String() string {
	switch {
	case r.URL != "":
		return fmt.Sprintf("%s repository %s", r.Type, r.URL)
	case r.PackagistOrg != nil:
		return fmt.Sprintf("%s=%t", packagistKey, *r.PackagistOrg)
	}
	return r.Type + " repository"
}
