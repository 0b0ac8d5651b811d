package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCommand(t *testing.T) {
	dir := t.TempDir()
	chdirForTest(t, dir)

	dataPath := filepath.Join(dir, "data", "segond_1910.json")
	require.NoError(t, os.MkdirAll(filepath.Dir(dataPath), 0755))
	require.NoError(t, os.WriteFile(dataPath, []byte(`{"verses": [
		{"book": 1, "chapter": 1, "book_name": "Genèse"},
		{"book": 1, "chapter": 2, "book_name": "Genèse"},
		{"book": 2, "chapter": 1, "book_name": "Exode"}
	]}`), 0644))

	out := filepath.Join(dir, "public", "sitemap.xml")
	rootCmd.SetArgs([]string{"generate", "--out", out, "--site", "https://example.org/", "--log-level", "error"})
	require.NoError(t, rootCmd.Execute())

	content, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, 8, strings.Count(string(content), "<url>"))
	assert.Contains(t, string(content), "<loc>https://example.org/genese/2</loc>")
	assert.Contains(t, string(content), "<loc>https://example.org/</loc>")
}

// chdirForTest changes the working directory for the duration of the test
// and restores it on cleanup (equivalent of testing.T.Chdir from Go 1.24).
func chdirForTest(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}
