// SPDX-License-Identifier: Apache-2.0

package composer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAutoloadKind(t *testing.T) {
	for key, expected := range map[string]AutoloadKind{
		"psr-0":    PSR0,
		"psr-4":    PSR4,
		"classmap": Classmap,
		"files":    Files,
	} {
		kind, err := ParseAutoloadKind(key)
		require.NoError(t, err, key)
		assert.Equal(t, expected, kind)
		assert.Equal(t, key, kind.String())
	}

	for _, key := range []string{"psr4", "PSR-4", "Classmap", "exclude-from-classmap", "", "psr-0 "} {
		_, err := ParseAutoloadKind(key)
		assert.ErrorIs(t, err, ErrUnsupportedAutoloadType, key)
	}
}

func TestAutoloadKindString(t *testing.T) {
	assert.Equal(t, "AutoloadKind(9)", AutoloadKind(9).String())
}

func TestAutoloadSet(t *testing.T) {
	var autoload Autoload
	autoload.Set(Files, []any{"src/helpers.php"})
	autoload.Set(PSR4, NewObject())
	autoload.Set(Files, []any{"src/functions.php"})

	require.Len(t, autoload, 2)
	assert.Equal(t, Files, autoload[0].Kind)
	files, ok := autoload.Get(Files)
	assert.True(t, ok)
	assert.Equal(t, []any{"src/functions.php"}, files)

	_, ok = autoload.Get(PSR0)
	assert.False(t, ok)
}

func TestAutoloadFlatten(t *testing.T) {
	psr0 := NewObject()
	psr0.Set("Acme_", []any{"src/", "lib/"})

	autoload := Autoload{
		{Kind: Classmap, Options: []any{"lib/"}},
		{Kind: PSR4, Options: NewObject()},
		{Kind: PSR0, Options: psr0},
	}

	flat := autoload.Flatten()
	assert.Equal(t, []string{"classmap", "psr-0"}, keys(flat))

	value, _ := flat.Get("psr-0")
	assert.Same(t, psr0, value)
	assert.Equal(t, psr0, AutoloadRule{Kind: PSR0, Options: psr0}.Flatten())
}

func TestAutoloadDevIsIndependent(t *testing.T) {
	manifest, err := Parse([]byte(`{
		"autoload-dev": {"classmap": ["tests/"]},
		"autoload": {"files": ["src/functions.php"]}
	}`))
	require.NoError(t, err)

	require.Len(t, manifest.Autoload, 1)
	assert.Equal(t, Files, manifest.Autoload[0].Kind)
	require.Len(t, manifest.AutoloadDev, 1)
	assert.Equal(t, Classmap, manifest.AutoloadDev[0].Kind)

	assert.Equal(t, []string{"autoload", "autoload-dev"}, keys(manifest.Flatten()))
}
