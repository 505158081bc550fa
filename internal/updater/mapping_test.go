package updater

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMapping(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site_urls.yaml")
	content := "agencies:\n  mec: https://www.gov.br/mec/pt-br/noticias\n  mj: https://www.gov.br/mj/pt-br/noticias\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	agencies, err := LoadMapping(path)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"mec": "https://www.gov.br/mec/pt-br/noticias",
		"mj":  "https://www.gov.br/mj/pt-br/noticias",
	}, agencies)
}

func TestLoadMappingMissingFile(t *testing.T) {
	_, err := LoadMapping(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadMappingEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(path, []byte(""), 0o644))

	agencies, err := LoadMapping(path)
	require.NoError(t, err)
	assert.Empty(t, agencies)
}

func TestSaveMappingRoundTripSorted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	agencies := map[string]string{
		"mj":  "https://www.gov.br/mj/pt-br/noticias",
		"mec": "https://www.gov.br/mec/pt-br/noticias",
	}

	require.NoError(t, SaveMapping(agencies, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)
	assert.Less(t, strings.Index(text, "mec:"), strings.Index(text, "mj:"), "agencies must be sorted by code")

	reloaded, err := LoadMapping(path)
	require.NoError(t, err)
	assert.Equal(t, agencies, reloaded)
}
