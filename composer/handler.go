// SPDX-License-Identifier: Apache-2.0

package composer

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-enry/go-license-detector/v4/licensedb"
	log "github.com/sirupsen/logrus"
	"golang.org/x/mod/semver"

	"github.com/opensbom-generator/composerjson/internal/helper"
	"github.com/opensbom-generator/composerjson/meta"
	"github.com/opensbom-generator/composerjson/plugin"
)

const (
	ManifestFileName = "composer.json"
	VendorFolderName = "vendor"
)

var _ plugin.Plugin = (*Composer)(nil)

type Composer struct {
	metadata plugin.Metadata
	rootPath string
	root     *meta.Package
}

// New ...
func New() *Composer {
	return &Composer{
		metadata: plugin.Metadata{
			Name:       "composer Package Manager",
			Slug:       "composer",
			Manifest:   []string{ManifestFileName},
			ModulePath: []string{VendorFolderName},
		},
	}
}

// GetMetadata ...
func (m *Composer) GetMetadata() plugin.Metadata {
	return m.metadata
}

// IsValid ...
func (m *Composer) IsValid(path string) bool {
	for i := range m.metadata.Manifest {
		if helper.Exists(filepath.Join(path, m.metadata.Manifest[i])) {
			return true
		}
	}
	return false
}

// HasModulesInstalled ...
func (m *Composer) HasModulesInstalled(path string) error {
	for i := range m.metadata.ModulePath {
		if helper.IsDir(filepath.Join(path, m.metadata.ModulePath[i])) {
			return nil
		}
	}
	return errDependenciesNotFound
}

// SetRootModule reads composer.json in path and keeps the root package it describes.
func (m *Composer) SetRootModule(path string) error {
	if !m.IsValid(path) {
		return fmt.Errorf("%w in %s", errNoManifest, path)
	}

	manifestPath := filepath.Join(path, ManifestFileName)
	data, err := os.ReadFile(manifestPath)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnreadableSource, err)
	}

	manifest, err := Parse(data)
	if err != nil {
		return fmt.Errorf("%s: %w", manifestPath, err)
	}

	m.rootPath = path
	m.root = RootPackage(manifest, path, data)
	return nil
}

// GetRootModule ...
func (m *Composer) GetRootModule(path string) (*meta.Package, error) {
	if m.root == nil || m.rootPath != path {
		if err := m.SetRootModule(path); err != nil {
			return nil, err
		}
	}
	return m.root, nil
}

// RootPackage describes the package declared by a manifest. dir is the
// directory holding it and content the raw manifest bytes the checksum is
// computed over.
func RootPackage(manifest *Manifest, dir string, content []byte) *meta.Package {
	if manifest.Version != "" && !semver.IsValid(canonicalVersion(manifest.Version)) {
		log.Warnf("composer package %s has a non semantic version %q", manifest.Name, manifest.Version)
	}

	pkg := &meta.Package{
		Name:            manifest.Name,
		Version:         manifest.Version,
		Path:            dir,
		LocalPath:       dir,
		Supplier:        supplier(manifest),
		PackageURL:      packageURL(manifest),
		PackageHomePage: manifest.Homepage,
		PackageComment:  manifest.Description,
		LicenseDeclared: licenseExpression(manifest.License),
		Root:            true,
		Checksum: meta.Checksum{
			Algorithm: meta.HashAlgoSHA256,
			Content:   content,
		},
	}
	if manifest.Support != nil {
		pkg.PackageDownloadLocation = manifest.Support.Source
	}
	if pkg.PackageDownloadLocation == "" {
		pkg.PackageDownloadLocation = meta.NoAssertion
	}

	pkg.LicenseConcluded = pkg.LicenseDeclared
	if pkg.LicenseConcluded == "" {
		pkg.LicenseConcluded = detectLicense(dir)
	}

	return pkg
}

// packageURL returns the purl of a vendor/project name, e.g.
// pkg:composer/acme/widget@1.4.0.
func packageURL(manifest *Manifest) string {
	vendor, project, found := strings.Cut(manifest.Name, "/")
	if !found || vendor == "" || project == "" {
		return ""
	}

	purl := "pkg:composer/" + url.PathEscape(vendor) + "/" + url.PathEscape(project)
	if manifest.Version != "" {
		purl += "@" + url.PathEscape(manifest.Version)
	}
	return purl
}

func canonicalVersion(version string) string {
	if strings.HasPrefix(version, "v") {
		return version
	}
	return "v" + version
}

// supplier prefers the first author and falls back to the vendor part of the name.
func supplier(manifest *Manifest) meta.Supplier {
	for _, author := range manifest.Authors {
		if author != nil && author.Name != "" {
			return meta.Supplier{Type: meta.Person, Name: author.Name, Email: author.Email}
		}
	}

	vendor, _, found := strings.Cut(manifest.Name, "/")
	if !found {
		return meta.Supplier{}
	}
	return meta.Supplier{Type: meta.Organization, Name: vendor}
}

// licenseExpression joins a list of licenses with OR, which is how composer
// reads them.
func licenseExpression(license any) string {
	switch v := license.(type) {
	case string:
		return v
	case []string:
		return joinLicenses(v)
	case []any:
		licenses := make([]string, 0, len(v))
		for i := range v {
			if s, ok := v[i].(string); ok && s != "" {
				licenses = append(licenses, s)
			}
		}
		return joinLicenses(licenses)
	}
	return ""
}

func joinLicenses(licenses []string) string {
	switch len(licenses) {
	case 0:
		return ""
	case 1:
		return licenses[0]
	}
	return "(" + strings.Join(licenses, " OR ") + ")"
}

func detectLicense(dir string) string {
	results := licensedb.Analyse(dir)
	if len(results) == 0 || results[0].ErrStr != "" {
		if len(results) > 0 {
			log.Warnf("license detection in %s failed: %s", dir, results[0].ErrStr)
		}
		return meta.NoAssertion
	}

	best := ""
	var confidence float32
	for _, match := range results[0].Matches {
		if match.Confidence > confidence {
			best, confidence = match.License, match.Confidence
		}
	}
	if best == "" {
		return meta.NoAssertion
	}

	log.Debugf("detected license %s in %s with confidence %.2f", best, dir, confidence)
	return best
}
