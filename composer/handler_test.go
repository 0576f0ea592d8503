// SPDX-License-Identifier: Apache-2.0

package composer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opensbom-generator/composerjson/meta"
)

func TestIsValid(t *testing.T) {
	sut := New()
	assert.True(t, sut.IsValid("testdata/project"))
	assert.False(t, sut.IsValid(t.TempDir()))
	assert.Equal(t, "composer", sut.GetMetadata().Slug)
}

func TestHasModulesInstalled(t *testing.T) {
	sut := New()
	assert.ErrorIs(t, sut.HasModulesInstalled("testdata/project"), errDependenciesNotFound)
}

func TestGetRootModule(t *testing.T) {
	sut := New()
	pkg, err := sut.GetRootModule("testdata/project")
	require.NoError(t, err)
	require.NotNil(t, pkg)

	assert.Equal(t, "acme/widget", pkg.Name)
	assert.Equal(t, "1.4.0", pkg.Version)
	assert.Equal(t, "https://acme.example.com/widget", pkg.PackageHomePage)
	assert.Equal(t, "Widgets for the Acme storefront", pkg.PackageComment)
	assert.Equal(t, "https://github.com/acme/widget", pkg.PackageDownloadLocation)
	assert.Equal(t, "MIT", pkg.LicenseDeclared)
	assert.Equal(t, "MIT", pkg.LicenseConcluded)
	assert.Equal(t, "Person: Jane Doe (jane@example.com)", pkg.Supplier.Get())
	assert.Equal(t, "pkg:composer/acme/widget@1.4.0", pkg.PackageURL)
	assert.True(t, pkg.Root)
	assert.Len(t, pkg.Checksum.String(), 64)

	again, err := sut.GetRootModule("testdata/project")
	require.NoError(t, err)
	assert.Same(t, pkg, again)
}

func TestGetRootModuleDetectsLicense(t *testing.T) {
	pkg, err := New().GetRootModule("testdata/unlicensed")
	require.NoError(t, err)

	assert.Empty(t, pkg.LicenseDeclared)
	assert.Equal(t, "MIT", pkg.LicenseConcluded)
	assert.Equal(t, meta.NoAssertion, pkg.PackageDownloadLocation)
	assert.Equal(t, meta.Supplier{Type: meta.Organization, Name: "acme"}, pkg.Supplier)
	assert.Equal(t, "pkg:composer/acme/gadget@2024.03", pkg.PackageURL)
}

func TestGetRootModuleErrors(t *testing.T) {
	_, err := New().GetRootModule(t.TempDir())
	assert.ErrorIs(t, err, errNoManifest)

	_, err = New().GetRootModule("testdata/invalid")
	assert.ErrorIs(t, err, ErrUnsupportedAutoloadType)
}

func TestPackageURL(t *testing.T) {
	for _, tc := range []struct {
		manifest *Manifest
		expected string
	}{
		{&Manifest{Name: "acme/widget", Version: "2.0.0-beta+1"}, "pkg:composer/acme/widget@2.0.0-beta+1"},
		{&Manifest{Name: "acme/widget"}, "pkg:composer/acme/widget"},
		{&Manifest{Name: "widget", Version: "1.0.0"}, ""},
		{&Manifest{Name: "acme/"}, ""},
		{&Manifest{}, ""},
	} {
		assert.Equal(t, tc.expected, packageURL(tc.manifest), tc.manifest.Name)
	}
}

func TestLicenseExpression(t *testing.T) {
	for _, tc := range []struct {
		license  any
		expected string
	}{
		{nil, ""},
		{"MIT", "MIT"},
		{[]any{"MIT"}, "MIT"},
		{[]any{"LGPL-2.1-only", "GPL-3.0-or-later"}, "(LGPL-2.1-only OR GPL-3.0-or-later)"},
		{[]string{"Apache-2.0", "MIT"}, "(Apache-2.0 OR MIT)"},
		{[]any{"", 3}, ""},
	} {
		assert.Equal(t, tc.expected, licenseExpression(tc.license))
	}
}
