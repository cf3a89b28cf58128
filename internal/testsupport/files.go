package testsupport

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

// WriteIMDbList writes an IMDb list export with a Const column holding ids,
// padded with the other columns the export carries.
func WriteIMDbList(t testing.TB, dir string, ids ...string) string {
	t.Helper()

	var b strings.Builder
	b.WriteString("Position,Const,Created,Modified,Description,Name,Known For\n")
	for i, id := range ids {
		b.WriteString(strings.Join([]string{
			strconv.Itoa(i + 1), id, "2024-01-01", "2024-01-01", "", "Name " + id, "\"Film, The\"",
		}, ","))
		b.WriteByte('\n')
	}
	return WriteFile(t, filepath.Join(dir, "list.csv"), b.String())
}

// WriteFile writes content to path, creating parent directories.
func WriteFile(t testing.TB, path, content string) string {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}
