package categorizer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRulesFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "categories.yaml")
	content := `categories:
  - name: Pets
    keywords: ["vet", "petco"]
  - name: Travel
    keywords: ["airline", "hotel"]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	rules, err := LoadRules(path, nil)
	require.NoError(t, err)
	require.Len(t, rules, 2)
	assert.Equal(t, "Pets", rules[0].Name)
	assert.Equal(t, []string{"vet", "petco"}, rules[0].Keywords)
	assert.Equal(t, "Travel", rules[1].Name)
}

func TestLoadRulesMissingFileUsesDefaults(t *testing.T) {
	rules, err := LoadRules(filepath.Join(t.TempDir(), "absent.yaml"), nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultRules(), rules)
}

func TestLoadRulesMalformedFileFails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("categories: [not: valid: yaml"), 0644))

	_, err := LoadRules(path, nil)
	assert.Error(t, err)
}

func TestLoadRulesEmptyDocumentUsesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.yaml")
	require.NoError(t, os.WriteFile(path, []byte("categories: []\n"), 0644))

	rules, err := LoadRules(path, nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultRules(), rules)
}
