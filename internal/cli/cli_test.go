// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opensbom-generator/composerjson/composer"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestFmt(t *testing.T) {
	expected, err := os.ReadFile("testdata/formatted.json")
	require.NoError(t, err)

	out, err := run(t, "fmt", "testdata/composer.json")
	require.NoError(t, err)
	assert.Equal(t, string(expected), out)
}

func TestFmtCheck(t *testing.T) {
	_, err := run(t, "fmt", "--check", "testdata/composer.json")
	assert.ErrorContains(t, err, "is not formatted")

	_, err = run(t, "fmt", "--check", "testdata/formatted.json")
	assert.NoError(t, err)
}

func TestFmtWrite(t *testing.T) {
	source, err := os.ReadFile("testdata/composer.json")
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "composer.json")
	require.NoError(t, os.WriteFile(path, source, 0o644))

	_, err = run(t, "fmt", "--write", path)
	require.NoError(t, err)

	written, err := os.ReadFile(path)
	require.NoError(t, err)
	expected, err := os.ReadFile("testdata/formatted.json")
	require.NoError(t, err)
	assert.Equal(t, string(expected), string(written))
}

func TestFmtErrors(t *testing.T) {
	_, err := run(t, "fmt", "testdata/missing.json")
	assert.ErrorIs(t, err, composer.ErrUnreadableSource)

	path := filepath.Join(t.TempDir(), "composer.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"autoload": {"psr-5": {}}}`), 0o644))
	_, err = run(t, "fmt", path)
	assert.ErrorIs(t, err, composer.ErrUnsupportedAutoloadType)
}

func TestCreate(t *testing.T) {
	out, err := run(t, "create",
		"--name", "acme/widget",
		"--type", "library",
		"--license", "MIT",
		"--author", "Jane Doe <jane@example.com>",
		"--author", "John Roe",
		"--require", "php:>=8.1,<9",
		"--psr4", `Acme\Widget\=src/`,
		"--psr4-dev", `Acme\Widget\Tests\=tests/`,
	)
	require.NoError(t, err)

	expected := `{
    "name": "acme/widget",
    "type": "library",
    "license": "MIT",
    "authors": [
        {
            "name": "Jane Doe",
            "email": "jane@example.com"
        },
        {
            "name": "John Roe"
        }
    ],
    "require": {
        "php": ">=8.1,<9"
    },
    "autoload": {
        "psr-4": {
            "Acme\\Widget\\": "src/"
        }
    },
    "autoload-dev": {
        "psr-4": {
            "Acme\\Widget\\Tests\\": "tests/"
        }
    }
}
`
	assert.Equal(t, expected, out)
}

func TestCreateInvalidRequirement(t *testing.T) {
	_, err := run(t, "create", "--name", "acme/widget", "--require", "php")
	assert.ErrorContains(t, err, "expected package:constraint")
}

func TestNegativeIndent(t *testing.T) {
	for _, args := range [][]string{
		{"--indent", "-1", "fmt", "testdata/composer.json"},
		{"--indent=-4", "create", "--name", "acme/widget"},
		{"--indent", "-2", "info", "testdata"},
	} {
		_, err := run(t, args...)
		assert.ErrorContains(t, err, "must not be negative", args)
	}
}

func TestCreateMultipleLicensesCompact(t *testing.T) {
	out, err := run(t, "--indent", "0", "create", "--name", "acme/widget", "--license", "MIT", "--license", "Apache-2.0")
	require.NoError(t, err)
	assert.Equal(t, `{"name":"acme/widget","license":["MIT","Apache-2.0"]}`+"\n", out)
}

func TestInfo(t *testing.T) {
	out, err := run(t, "info", "--checksum", "sha1", "testdata")
	require.NoError(t, err)

	var pkg map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &pkg))
	assert.Equal(t, "acme/widget", pkg["Name"])
	assert.Equal(t, true, pkg["Root"])
	assert.Equal(t, "Organization: acme", pkg["Supplier"])
	assert.Equal(t, "pkg:composer/acme/widget", pkg["PackageURL"])

	checksum, ok := pkg["Checksum"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "SHA1", checksum["Algorithm"])
	assert.Len(t, checksum["Value"], 40)
}

func TestInfoUnsupportedChecksum(t *testing.T) {
	_, err := run(t, "info", "--checksum", "md5", "testdata")
	assert.ErrorContains(t, err, "unsupported checksum algorithm")
}

func TestExport(t *testing.T) {
	out, err := run(t, "export", "testdata/composer.json")
	require.NoError(t, err)
	assert.Equal(t, "name: acme/widget\ntype: library\nrequire:\n    php: ^8.1\n", out)

	out, err = run(t, "export", "--format", "json", "testdata/composer.json")
	require.NoError(t, err)
	expected, err := os.ReadFile("testdata/formatted.json")
	require.NoError(t, err)
	assert.Equal(t, string(expected), out)

	_, err = run(t, "export", "--format", "toml", "testdata/composer.json")
	assert.ErrorContains(t, err, "unknown format")
}
