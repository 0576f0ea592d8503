// SPDX-License-Identifier: Apache-2.0

package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToInternalName(t *testing.T) {
	for _, tc := range []struct {
		key      string
		expected string
	}{
		{"name", "name"},
		{"require-dev", "requireDev"},
		{"autoload-dev", "autoloadDev"},
		{"non-feature-branches", "nonFeatureBranches"},
		{"minimum-stability", "minimumStability"},
		{"psr-4", "psr4"},
		{"Name", "name"},
		{"", ""},
	} {
		assert.Equal(t, tc.expected, ToInternalName(tc.key), tc.key)
	}
}

func TestToExternalName(t *testing.T) {
	for _, tc := range []struct {
		name     string
		expected string
	}{
		{"name", "name"},
		{"requireDev", "require-dev"},
		{"packagistOrg", "packagist-org"},
		{"nonFeatureBranches", "non-feature-branches"},
		{"HTTPServer", "http-server"},
		{"getHTTP", "get-http"},
		{"Psr4", "psr4"},
		{"", ""},
	} {
		assert.Equal(t, tc.expected, ToExternalName(tc.name), tc.name)
	}
}

func TestToMethodName(t *testing.T) {
	for _, tc := range []struct {
		key      string
		expected string
	}{
		{"psr-0", "Psr0"},
		{"psr-4", "Psr4"},
		{"classmap", "Classmap"},
		{"files", "Files"},
		{"exclude-from-classmap", "ExcludeFromClassmap"},
		{"PSR-4", "PSR4"},
	} {
		assert.Equal(t, tc.expected, ToMethodName(tc.key), tc.key)
	}
}

func TestNamingRoundTrip(t *testing.T) {
	for _, name := range []string{"requireDev", "includePath", "targetDir", "preferStable", "autoloadDev"} {
		assert.Equal(t, name, ToInternalName(ToExternalName(name)))
	}
}
